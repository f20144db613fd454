// Package booking implements the seat-claim core of the reservation system.
//
// The engine owns two invariants: a seat is never referenced by more than
// one booking, and a theater's fully-booked flag always converges to the
// conjunction of its seats' booked flags. Everything else (routing,
// sessions, rendering) lives above it and talks to it through plain method
// calls.
package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/movietix/movietix/internal/domain"
)

type SeatStatus string

const (
	SeatStatusBooked   SeatStatus = "BOOKED"
	SeatStatusConflict SeatStatus = "CONFLICT"
	SeatStatusNotFound SeatStatus = "NOT_FOUND"
)

// SeatResult reports the outcome of a single requested seat. SeatNumber is
// empty when the seat does not exist under the theater.
type SeatResult struct {
	SeatID     int
	SeatNumber string
	Status     SeatStatus
}

// ClaimResult is the per-seat outcome of a claim batch plus the theater's
// fully-booked status observed after the batch. Success is per-seat: seats
// that were claimed stay claimed even when other seats in the same request
// conflicted.
type ClaimResult struct {
	TheaterID   int
	Seats       []SeatResult
	FullyBooked bool
}

type Engine struct {
	theaterRepo domain.TheaterRepository
	seatRepo    domain.SeatRepository
	bookingRepo domain.BookingRepository
}

func NewEngine(
	theaterRepo domain.TheaterRepository,
	seatRepo domain.SeatRepository,
	bookingRepo domain.BookingRepository) *Engine {

	return &Engine{
		theaterRepo: theaterRepo,
		seatRepo:    seatRepo,
		bookingRepo: bookingRepo,
	}
}

// ClaimSeats attempts to book each of the requested seats for the user.
//
// The whole call fails without side effects when the theater does not exist
// (domain.ErrRecordNotFound), is already fully booked
// (domain.ErrTheaterFullyBooked), or no seats were requested
// (domain.ErrNoSeatsSelected). After that, each seat is processed
// independently: a seat that does not belong to the theater is reported as
// NOT_FOUND, a seat that is already booked (or is lost to a concurrent
// claim) as CONFLICT. Conflicts are ordinary outcomes, not errors; under
// load they are the common case.
func (e *Engine) ClaimSeats(ctx context.Context, theaterID, userID int, seatIDs []int) (*ClaimResult, error) {
	theater, err := e.theaterRepo.GetById(ctx, theaterID)
	if err != nil {
		return nil, err
	}

	if theater.IsFullyBooked {
		return nil, domain.ErrTheaterFullyBooked
	}

	seatIDs = dedupe(seatIDs)
	if len(seatIDs) == 0 {
		return nil, domain.ErrNoSeatsSelected
	}

	seats, err := e.seatRepo.GetSeatsByTheater(ctx, theaterID)
	if err != nil {
		return nil, err
	}

	seatsById := make(map[int]domain.Seat, len(seats))
	for _, seat := range seats {
		seatsById[seat.ID] = seat
	}

	result := &ClaimResult{TheaterID: theaterID}

	for _, seatID := range seatIDs {
		seat, ok := seatsById[seatID]
		if !ok {
			result.Seats = append(result.Seats, SeatResult{SeatID: seatID, Status: SeatStatusNotFound})
			continue
		}

		if seat.IsBooked {
			result.Seats = append(result.Seats, SeatResult{
				SeatID:     seatID,
				SeatNumber: seat.SeatNumber,
				Status:     SeatStatusConflict,
			})
			continue
		}

		b := domain.Booking{
			Reference: uuid.New(),
			UserID:    userID,
			SeatID:    seatID,
			MovieID:   theater.MovieID,
			TheaterID: theaterID,
		}

		err = e.bookingRepo.ClaimSeat(ctx, &b)
		if err != nil {
			// A lost race on a single seat is reported in the result, the
			// rest of the batch continues. The same goes for a seat removed
			// between the snapshot read and the claim.
			switch {
			case errors.Is(err, domain.ErrSeatAlreadyBooked):
				result.Seats = append(result.Seats, SeatResult{
					SeatID:     seatID,
					SeatNumber: seat.SeatNumber,
					Status:     SeatStatusConflict,
				})
				continue
			case errors.Is(err, domain.ErrRecordNotFound):
				result.Seats = append(result.Seats, SeatResult{
					SeatID: seatID,
					Status: SeatStatusNotFound,
				})
				continue
			default:
				return nil, fmt.Errorf("claim seat %d: %w", seatID, err)
			}
		}

		result.Seats = append(result.Seats, SeatResult{
			SeatID:     seatID,
			SeatNumber: seat.SeatNumber,
			Status:     SeatStatusBooked,
		})
	}

	fullyBooked, err := e.RecomputeFullyBooked(ctx, theaterID)
	if err != nil {
		return nil, err
	}

	result.FullyBooked = fullyBooked

	return result, nil
}

// RecomputeFullyBooked rereads the theater's seat collection, derives the
// fully-booked aggregate, persists it and returns it. It is idempotent and
// safe to call at any time; ClaimSeats calls it after every batch, and it
// can be invoked on its own after external seat-inventory changes.
//
// The recompute reads a state at least as recent as the caller's own claims
// but is not atomic with respect to other callers. The flag is a cache of a
// derivable aggregate and the next recompute converges.
func (e *Engine) RecomputeFullyBooked(ctx context.Context, theaterID int) (bool, error) {
	if _, err := e.theaterRepo.GetById(ctx, theaterID); err != nil {
		return false, err
	}

	seats, err := e.seatRepo.GetSeatsByTheater(ctx, theaterID)
	if err != nil {
		return false, err
	}

	fullyBooked := allBooked(seats)

	err = e.theaterRepo.UpdateFullyBooked(ctx, theaterID, fullyBooked)
	if err != nil {
		return false, err
	}

	return fullyBooked, nil
}

// allBooked is true iff the theater has at least one seat and every seat is
// booked. A theater without seats is never fully booked.
func allBooked(seats []domain.Seat) bool {
	if len(seats) == 0 {
		return false
	}

	for _, seat := range seats {
		if !seat.IsBooked {
			return false
		}
	}

	return true
}

func dedupe(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := ids[:0:0]

	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}

	return out
}
