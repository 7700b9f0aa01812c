package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/kafka"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"github.com/google/uuid"
)

type Action string

const (
	ActionCreated  Action = "created"
	ActionCanceled Action = "canceled"
)

type BookingUseCase interface {
	Reconcile(ctx context.Context, input ReconcileInput) (*Result, error)
	Cancel(ctx context.Context, flightNumber string, userID int64) (*Result, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.Booking, error)
}

type Cache interface {
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type ReconcileInput struct {
	FlightNumber string `json:"flight_number"`
	UserID       int64  `json:"user_id"`
	Seats        int    `json:"seats"`
}

// Result reports which branch a reconcile took and the state it produced.
// Booking is the created record on the reserve branch and the removed
// record on the cancel branch.
type Result struct {
	Action  Action
	Flight  *domain.Flight
	Booking *domain.Booking
}

type BookingService struct {
	bookings repository.BookingRepository
	flights  repository.FlightRepository
	cache    Cache
	producer Producer
	topic    string
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	cache Cache,
	producer Producer,
	topic string,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		flights:  flights,
		cache:    cache,
		producer: producer,
		topic:    topic,
	}
}

// Reconcile applies a booking request against the current flight and
// booking state. A request from a user who already holds an active booking
// on the flight cancels that booking, whatever seat count was asked for;
// otherwise it is a fresh reservation. Seat debit/credit and the booking
// record mutation commit together, so a store failure never leaves the two
// halves inconsistent.
func (s *BookingService) Reconcile(ctx context.Context, input ReconcileInput) (*Result, error) {
	if input.FlightNumber == "" {
		return nil, errors.New("flight number is required")
	}
	if input.Seats <= 0 {
		return nil, errors.New("seats must be positive")
	}

	if _, err := s.flights.GetByNumber(ctx, input.FlightNumber); err != nil {
		return nil, err
	}

	existing, err := s.bookings.FindActive(ctx, input.FlightNumber, input.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		// Repeat request toggles to cancellation. The requested seat
		// count is deliberately ignored here: modifying an active
		// booking is cancel-then-rebook from the client's side.
		return s.Cancel(ctx, input.FlightNumber, input.UserID)
	}

	b := &domain.Booking{
		ID:           uuid.NewString(),
		FlightNumber: input.FlightNumber,
		UserID:       input.UserID,
		SeatsBooked:  input.Seats,
	}
	flight, err := s.bookings.Reserve(ctx, b)
	if err != nil {
		return nil, err
	}

	s.afterReconcile(ctx, "booking_created", b)
	return &Result{Action: ActionCreated, Flight: flight, Booking: b}, nil
}

// Cancel removes the user's active booking on the flight and credits its
// seats back.
func (s *BookingService) Cancel(ctx context.Context, flightNumber string, userID int64) (*Result, error) {
	flight, b, err := s.bookings.Cancel(ctx, flightNumber, userID)
	if err != nil {
		return nil, err
	}

	s.afterReconcile(ctx, "booking_canceled", b)
	return &Result{Action: ActionCanceled, Flight: flight, Booking: b}, nil
}

func (s *BookingService) ListForUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListForUser(ctx, userID)
}

func (s *BookingService) afterReconcile(ctx context.Context, eventType string, b *domain.Booking) {
	if s.cache != nil {
		if err := s.cache.InvalidateFlights(ctx); err != nil {
			log.Printf("invalidate flights cache: %v", err)
		}
	}
	if err := s.publish(ctx, eventType, b); err != nil {
		log.Printf("publish %s event for booking %s: %v", eventType, b.ID, err)
	}
}

func (s *BookingService) publish(ctx context.Context, eventType string, b *domain.Booking) error {
	if s.producer == nil || s.topic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:         eventType,
		BookingID:    b.ID,
		FlightNumber: b.FlightNumber,
		UserID:       b.UserID,
		Seats:        b.SeatsBooked,
		OccurredAt:   time.Now(),
	}
	return s.producer.Publish(ctx, s.topic, b.ID, event)
}

var _ BookingUseCase = (*BookingService)(nil)
