package domain

import (
	"context"
	"time"
)

// Theater represents a single scheduled screening of a movie together with
// its own seat inventory. IsFullyBooked is a cached aggregate over the
// theater's seats; it is only ever written through
// TheaterRepository.UpdateFullyBooked and recomputed from the seat
// collection, never computed lazily on read paths.
type Theater struct {
	ID            int
	Name          string
	MovieID       int
	StartTime     time.Time
	IsFullyBooked bool
}

type TheaterRepository interface {
	GetById(ctx context.Context, id int) (*Theater, error)
	GetByMovie(ctx context.Context, movieID int) ([]Theater, error)
	UpdateFullyBooked(ctx context.Context, id int, fullyBooked bool) error
}
