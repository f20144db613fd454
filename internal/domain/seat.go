package domain

import "context"

type Seat struct {
	ID         int
	TheaterID  int
	SeatNumber string
	IsBooked   bool
}

type SeatRepository interface {
	GetSeatsByTheater(ctx context.Context, theaterID int) ([]Seat, error)
}
