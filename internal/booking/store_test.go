package booking

import (
	"context"
	"sync"
	"time"

	"github.com/movietix/movietix/internal/domain"
)

// memoryStore is an in-memory implementation of the theater, seat and
// booking repositories. ClaimSeat holds the store mutex for the whole
// check-and-write, giving the same indivisibility guarantee the Postgres
// implementation gets from its transaction and uniqueness constraint.
type memoryStore struct {
	mu       sync.Mutex
	theaters map[int]domain.Theater
	seats    map[int]domain.Seat
	bookings map[int]domain.Booking // keyed by seat ID, at most one per seat
	nextID   int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		theaters: make(map[int]domain.Theater),
		seats:    make(map[int]domain.Seat),
		bookings: make(map[int]domain.Booking),
	}
}

func (s *memoryStore) addTheater(t domain.Theater) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.theaters[t.ID] = t
}

func (s *memoryStore) addSeat(seat domain.Seat) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seats[seat.ID] = seat
}

func (s *memoryStore) bookingForSeat(seatID int) (domain.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[seatID]
	return b, ok
}

func (s *memoryStore) bookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.bookings)
}

func (s *memoryStore) GetById(ctx context.Context, id int) (*domain.Theater, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.theaters[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return &t, nil
}

func (s *memoryStore) GetByMovie(ctx context.Context, movieID int) ([]domain.Theater, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	theaters := make([]domain.Theater, 0)
	for _, t := range s.theaters {
		if t.MovieID == movieID {
			theaters = append(theaters, t)
		}
	}

	return theaters, nil
}

func (s *memoryStore) UpdateFullyBooked(ctx context.Context, id int, fullyBooked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.theaters[id]
	if !ok {
		return domain.ErrRecordNotFound
	}

	t.IsFullyBooked = fullyBooked
	s.theaters[id] = t

	return nil
}

func (s *memoryStore) GetSeatsByTheater(ctx context.Context, theaterID int) ([]domain.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seats := make([]domain.Seat, 0)
	for _, seat := range s.seats {
		if seat.TheaterID == theaterID {
			seats = append(seats, seat)
		}
	}

	return seats, nil
}

func (s *memoryStore) ClaimSeat(ctx context.Context, booking *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seat, ok := s.seats[booking.SeatID]
	if !ok || seat.TheaterID != booking.TheaterID {
		return domain.ErrRecordNotFound
	}

	if seat.IsBooked {
		return domain.ErrSeatAlreadyBooked
	}

	if _, exists := s.bookings[booking.SeatID]; exists {
		return domain.ErrSeatAlreadyBooked
	}

	seat.IsBooked = true
	s.seats[booking.SeatID] = seat

	s.nextID++
	booking.ID = s.nextID
	booking.BookedAt = time.Now()
	s.bookings[booking.SeatID] = *booking

	return nil
}

func (s *memoryStore) GetSummariesByUserId(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	summaries := make([]domain.BookingSummary, 0)
	for _, b := range s.bookings {
		if b.UserID != userID {
			continue
		}

		summaries = append(summaries, domain.BookingSummary{
			BookingID:   b.ID,
			Reference:   b.Reference,
			TheaterName: s.theaters[b.TheaterID].Name,
			SeatNumber:  s.seats[b.SeatID].SeatNumber,
			BookedAt:    b.BookedAt,
		})
	}

	metadata := domain.NewMetadata(len(summaries), pagination.Page, pagination.PageSize)

	return summaries, metadata, nil
}
