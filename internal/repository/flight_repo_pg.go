package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const flightColumns = "flight_number, origin, destination, date, price_cents, total_seats, seats_available, created_at, updated_at"

type FlightRepository interface {
	List(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error)
	Search(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error)
	GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error)
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, flights []domain.Flight) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

// List returns flights matching the filter with exact string comparison.
func (r *PGFlightRepository) List(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	var (
		conds []string
		args  []interface{}
	)
	if filter.Origin != "" {
		args = append(args, filter.Origin)
		conds = append(conds, fmt.Sprintf("origin = $%d", len(args)))
	}
	if filter.Destination != "" {
		args = append(args, filter.Destination)
		conds = append(conds, fmt.Sprintf("destination = $%d", len(args)))
	}
	if filter.Date != "" {
		args = append(args, filter.Date)
		conds = append(conds, fmt.Sprintf("date = $%d", len(args)))
	}

	query := "SELECT " + flightColumns + " FROM flights"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date, flight_number"

	return r.queryFlights(ctx, query, args...)
}

// Search is the relaxed variant: case-insensitive partial match on origin
// and destination, exact match on date.
func (r *PGFlightRepository) Search(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	var (
		conds []string
		args  []interface{}
	)
	if filter.Origin != "" {
		args = append(args, "%"+filter.Origin+"%")
		conds = append(conds, fmt.Sprintf("origin ILIKE $%d", len(args)))
	}
	if filter.Destination != "" {
		args = append(args, "%"+filter.Destination+"%")
		conds = append(conds, fmt.Sprintf("destination ILIKE $%d", len(args)))
	}
	if filter.Date != "" {
		args = append(args, filter.Date)
		conds = append(conds, fmt.Sprintf("date = $%d", len(args)))
	}

	query := "SELECT " + flightColumns + " FROM flights"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date, flight_number"

	return r.queryFlights(ctx, query, args...)
}

func (r *PGFlightRepository) queryFlights(ctx context.Context, query string, args ...interface{}) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.FlightNumber, &f.Origin, &f.Destination, &f.Date, &f.PriceCents, &f.TotalSeats, &f.SeatsAvailable, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, "SELECT "+flightColumns+" FROM flights WHERE flight_number=$1", flightNumber)
	var f domain.Flight
	if err := row.Scan(&f.FlightNumber, &f.Origin, &f.Destination, &f.Date, &f.PriceCents, &f.TotalSeats, &f.SeatsAvailable, &f.CreatedAt, &f.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *PGFlightRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, "SELECT count(*) FROM flights").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Insert adds flights to the catalog, skipping flight numbers that already
// exist so an offers sync never clobbers live seat counts.
func (r *PGFlightRepository) Insert(ctx context.Context, flights []domain.Flight) error {
	for _, f := range flights {
		_, err := r.db.Exec(ctx, `INSERT INTO flights (flight_number, origin, destination, date, price_cents, total_seats, seats_available)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (flight_number) DO NOTHING`,
			f.FlightNumber, f.Origin, f.Destination, f.Date, f.PriceCents, f.TotalSeats, f.SeatsAvailable)
		if err != nil {
			return fmt.Errorf("insert flight %s: %w", f.FlightNumber, err)
		}
	}
	return nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
