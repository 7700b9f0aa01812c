package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	FindActive(ctx context.Context, flightNumber string, userID int64) (*domain.Booking, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	Reserve(ctx context.Context, booking *domain.Booking) (*domain.Flight, error)
	Cancel(ctx context.Context, flightNumber string, userID int64) (*domain.Flight, *domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

// FindActive returns the user's active booking on the flight, or nil when
// there is none.
func (r *PGBookingRepository) FindActive(ctx context.Context, flightNumber string, userID int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT id, flight_number, user_id, seats_booked, created_at FROM bookings WHERE flight_number=$1 AND user_id=$2`, flightNumber, userID)
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.FlightNumber, &b.UserID, &b.SeatsBooked, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) ListForUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT id, flight_number, user_id, seats_booked, created_at FROM bookings WHERE user_id=$1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.FlightNumber, &b.UserID, &b.SeatsBooked, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// Reserve debits the flight's seat count and records the booking as one
// transaction. The conditional UPDATE takes the flight row lock first, so
// reservations against the same flight are linearized by the database and
// the availability check can never act on a stale count.
func (r *PGBookingRepository) Reserve(ctx context.Context, booking *domain.Booking) (*domain.Flight, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `UPDATE flights SET seats_available = seats_available - $2, updated_at = now()
		WHERE flight_number=$1 AND seats_available >= $2
		RETURNING `+flightColumns, booking.FlightNumber, booking.SeatsBooked)
	var f domain.Flight
	if err := row.Scan(&f.FlightNumber, &f.Origin, &f.Destination, &f.Date, &f.PriceCents, &f.TotalSeats, &f.SeatsAvailable, &f.CreatedAt, &f.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInsufficientSeats
		}
		return nil, err
	}

	if err := tx.QueryRow(ctx, `INSERT INTO bookings (id, flight_number, user_id, seats_booked)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`, booking.ID, booking.FlightNumber, booking.UserID, booking.SeatsBooked).
		Scan(&booking.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrDuplicateBooking
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &f, nil
}

// Cancel credits the booking's seats back to the flight and deletes the
// booking as one transaction. The flight row is locked first, in the same
// order Reserve takes it, so the two paths cannot deadlock.
func (r *PGBookingRepository) Cancel(ctx context.Context, flightNumber string, userID int64) (*domain.Flight, *domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `SELECT 1 FROM flights WHERE flight_number=$1 FOR UPDATE`, flightNumber); err != nil {
		return nil, nil, err
	}

	var b domain.Booking
	row := tx.QueryRow(ctx, `DELETE FROM bookings WHERE flight_number=$1 AND user_id=$2
		RETURNING id, flight_number, user_id, seats_booked, created_at`, flightNumber, userID)
	if err := row.Scan(&b.ID, &b.FlightNumber, &b.UserID, &b.SeatsBooked, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, domain.ErrBookingNotFound
		}
		return nil, nil, err
	}

	var f domain.Flight
	row = tx.QueryRow(ctx, `UPDATE flights SET seats_available = seats_available + $2, updated_at = now()
		WHERE flight_number=$1
		RETURNING `+flightColumns, flightNumber, b.SeatsBooked)
	if err := row.Scan(&f.FlightNumber, &f.Origin, &f.Destination, &f.Date, &f.PriceCents, &f.TotalSeats, &f.SeatsAvailable, &f.CreatedAt, &f.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, domain.ErrFlightNotFound
		}
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}
	return &f, &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
