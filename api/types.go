// Package api holds the request and response types of the HTTP surface.
package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type MovieSummary struct {
	Id          int             `json:"id"`
	Name        string          `json:"name"`
	Rating      decimal.Decimal `json:"rating"`
	Cast        string          `json:"cast"`
	Description string          `json:"description,omitempty"`
	PosterUrl   string          `json:"posterUrl,omitempty"`
	TrailerUrl  string          `json:"trailerUrl,omitempty"`
}

type MovieListResponse struct {
	Movies   []MovieSummary `json:"movies"`
	Metadata *Metadata      `json:"metadata,omitempty"`
}

type TheaterSummary struct {
	Id          int       `json:"id"`
	Name        string    `json:"name"`
	StartTime   time.Time `json:"startTime"`
	FullyBooked bool      `json:"fullyBooked"`
}

type TheaterListResponse struct {
	Movie    MovieSummary     `json:"movie"`
	Theaters []TheaterSummary `json:"theaters"`
}

type Seat struct {
	Id         int    `json:"id"`
	SeatNumber string `json:"seatNumber"`
	Booked     bool   `json:"booked"`
}

type SeatMapResponse struct {
	TheaterId   int    `json:"theaterId"`
	TheaterName string `json:"theaterName"`
	FullyBooked bool   `json:"fullyBooked"`
	Seats       []Seat `json:"seats"`
}

type CreateBookingRequest struct {
	SeatIds []int `json:"seatIds" validate:"omitempty,max=20,dive,gt=0"`
}

type SeatOutcome struct {
	SeatId     int    `json:"seatId"`
	SeatNumber string `json:"seatNumber,omitempty"`
	Status     string `json:"status"`
}

type BookingClaimResponse struct {
	TheaterId   int           `json:"theaterId"`
	FullyBooked bool          `json:"fullyBooked"`
	Seats       []SeatOutcome `json:"seats"`
}

type BookingSummary struct {
	Id          int       `json:"id"`
	Reference   uuid.UUID `json:"reference"`
	MovieName   string    `json:"movieName"`
	TheaterName string    `json:"theaterName"`
	StartTime   time.Time `json:"startTime"`
	SeatNumber  string    `json:"seatNumber"`
	BookedAt    time.Time `json:"bookedAt"`
}

type UserBookingsResponse struct {
	Bookings []BookingSummary `json:"bookings"`
	Metadata Metadata         `json:"metadata"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}
