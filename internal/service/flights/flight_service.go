package flights

import (
	"context"
	"fmt"
	"log"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error)
	Search(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error)
	GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error)
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
}

type OffersClient interface {
	Search(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error)
}

type FlightService struct {
	repo   repository.FlightRepository
	cache  Cache
	offers OffersClient
}

func NewFlightService(repo repository.FlightRepository, cache Cache, offers OffersClient) *FlightService {
	return &FlightService{repo: repo, cache: cache, offers: offers}
}

// List returns the catalog with exact filter matching. The unfiltered list
// is served from cache when possible.
func (s *FlightService) List(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	unfiltered := filter == (domain.FlightFilter{})
	if unfiltered && s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if unfiltered && s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) Search(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	return s.repo.Search(ctx, filter)
}

func (s *FlightService) GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error) {
	return s.repo.GetByNumber(ctx, flightNumber)
}

// SeedIfEmpty loads the sample catalog on first start.
func (s *FlightService) SeedIfEmpty(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count flights: %w", err)
	}
	if n > 0 {
		return nil
	}
	if err := s.repo.Insert(ctx, seedFlights()); err != nil {
		return fmt.Errorf("seed flights: %w", err)
	}
	log.Printf("seeded %d sample flights", len(seedFlights()))
	return nil
}

// SyncOffers pulls the external offers feed and adds flights the catalog
// does not know yet. Existing flights are left untouched: their seat counts
// are owned by the booking path.
func (s *FlightService) SyncOffers(ctx context.Context) (int, error) {
	if s.offers == nil {
		return 0, nil
	}
	fetched, err := s.offers.Search(ctx, domain.FlightFilter{})
	if err != nil {
		return 0, err
	}
	if len(fetched) == 0 {
		return 0, nil
	}
	if err := s.repo.Insert(ctx, fetched); err != nil {
		return 0, err
	}
	return len(fetched), nil
}

var _ FlightUseCase = (*FlightService)(nil)
