package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Booking binds one user to one seat for one showing. The movie and theater
// references are denormalized for query convenience. A booking is immutable
// once created; BookedAt is assigned by the store at insertion time.
type Booking struct {
	ID        int
	Reference uuid.UUID
	UserID    int
	SeatID    int
	MovieID   int
	TheaterID int
	BookedAt  time.Time
}

type BookingSummary struct {
	BookingID   int
	Reference   uuid.UUID
	MovieName   string
	TheaterName string
	StartTime   time.Time
	SeatNumber  string
	BookedAt    time.Time
}

type BookingRepository interface {
	// ClaimSeat marks the seat as booked and inserts the booking as one
	// indivisible step. It returns ErrSeatAlreadyBooked when the seat has
	// already been claimed, whether the claim was observed through the seat's
	// booked flag or through the uniqueness of the seat-to-booking relation.
	ClaimSeat(ctx context.Context, booking *Booking) error

	GetSummariesByUserId(ctx context.Context, userID int, pagination Pagination) ([]BookingSummary, *Metadata, error)
}
