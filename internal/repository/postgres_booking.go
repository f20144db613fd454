package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movietix/movietix/internal/domain"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

// ClaimSeat flips the seat's booked flag and inserts the booking inside one
// transaction. The conditional UPDATE only matches while the seat is still
// free, so of two concurrent claims on the same seat exactly one sees a row
// affected; the loser gets domain.ErrSeatAlreadyBooked. The UNIQUE
// constraint on bookings.seat_id backstops the same guarantee at the
// relation level.
func (p *PostgresBookingRepository) ClaimSeat(ctx context.Context, booking *domain.Booking) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			UPDATE seats
			SET is_booked = TRUE
			WHERE id = $1 AND theater_id = $2 AND is_booked = FALSE`

		tag, err := tx.Exec(ctx, query, booking.SeatID, booking.TheaterID)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			exists, err := seatExists(ctx, tx, booking.SeatID, booking.TheaterID)
			if err != nil {
				return err
			}
			if !exists {
				return domain.ErrRecordNotFound
			}

			return domain.ErrSeatAlreadyBooked
		}

		query = `
			INSERT INTO bookings (reference, user_id, seat_id, movie_id, theater_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, booked_at`

		err = tx.QueryRow(
			ctx,
			query,
			booking.Reference,
			booking.UserID,
			booking.SeatID,
			booking.MovieID,
			booking.TheaterID).Scan(&booking.ID, &booking.BookedAt)

		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return domain.ErrSeatAlreadyBooked
			}

			return err
		}

		return nil
	})
}

func seatExists(ctx context.Context, tx pgx.Tx, seatID, theaterID int) (bool, error) {
	var exists bool

	query := `SELECT EXISTS (SELECT 1 FROM seats WHERE id = $1 AND theater_id = $2)`

	err := tx.QueryRow(ctx, query, seatID, theaterID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}

func (p *PostgresBookingRepository) GetSummariesByUserId(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			b.id,
			b.reference,
			m.name,
			t.name,
			t.start_time,
			s.seat_number,
			b.booked_at
		FROM bookings b
		JOIN seats s ON b.seat_id = s.id
		JOIN theaters t ON b.theater_id = t.id
		JOIN movies m ON b.movie_id = m.id
		WHERE b.user_id = $1
		ORDER BY b.booked_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := p.db.Query(ctx, query, userID, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	bookings := make([]domain.BookingSummary, 0)
	totalRecords := 0

	for rows.Next() {
		var booking domain.BookingSummary

		err := rows.Scan(
			&totalRecords,
			&booking.BookingID,
			&booking.Reference,
			&booking.MovieName,
			&booking.TheaterName,
			&booking.StartTime,
			&booking.SeatNumber,
			&booking.BookedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return bookings, metadata, nil
}
