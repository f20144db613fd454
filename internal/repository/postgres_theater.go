package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movietix/movietix/internal/domain"
)

type PostgresTheaterRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTheaterRepository(db *pgxpool.Pool) *PostgresTheaterRepository {
	return &PostgresTheaterRepository{
		db: db,
	}
}

func (p *PostgresTheaterRepository) GetById(ctx context.Context, id int) (*domain.Theater, error) {
	query := `
		SELECT id, name, movie_id, start_time, is_fully_booked
		FROM theaters
		WHERE id = $1`

	var theater domain.Theater

	err := p.db.QueryRow(ctx, query, id).Scan(
		&theater.ID,
		&theater.Name,
		&theater.MovieID,
		&theater.StartTime,
		&theater.IsFullyBooked,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &theater, nil
}

func (p *PostgresTheaterRepository) GetByMovie(ctx context.Context, movieID int) ([]domain.Theater, error) {
	query := `
		SELECT id, name, movie_id, start_time, is_fully_booked
		FROM theaters
		WHERE movie_id = $1
		ORDER BY start_time`

	rows, err := p.db.Query(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	theaters := make([]domain.Theater, 0)

	for rows.Next() {
		var theater domain.Theater

		err := rows.Scan(
			&theater.ID,
			&theater.Name,
			&theater.MovieID,
			&theater.StartTime,
			&theater.IsFullyBooked,
		)

		if err != nil {
			return nil, err
		}

		theaters = append(theaters, theater)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return theaters, nil
}

func (p *PostgresTheaterRepository) UpdateFullyBooked(ctx context.Context, id int, fullyBooked bool) error {
	query := `
		UPDATE theaters
		SET is_fully_booked = $2
		WHERE id = $1`

	tag, err := p.db.Exec(ctx, query, id, fullyBooked)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
