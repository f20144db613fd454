package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movietix/movietix/internal/domain"
)

type PostgresSeatRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatRepository(db *pgxpool.Pool) *PostgresSeatRepository {
	return &PostgresSeatRepository{
		db: db,
	}
}

func (p *PostgresSeatRepository) GetSeatsByTheater(ctx context.Context, theaterID int) ([]domain.Seat, error) {
	query := `
		SELECT id, theater_id, seat_number, is_booked
		FROM seats
		WHERE theater_id = $1
		ORDER BY seat_number`

	rows, err := p.db.Query(ctx, query, theaterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.Seat, 0)

	for rows.Next() {
		var seat domain.Seat

		err := rows.Scan(
			&seat.ID,
			&seat.TheaterID,
			&seat.SeatNumber,
			&seat.IsBooked,
		)

		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}
