package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"voyage/internal/models/db_models"
	"voyage/internal/models/request_models"
	"voyage/internal/repositories"
	"voyage/pkg/utils"
)

type CatalogServiceInterface interface {
	SearchFlights(ctx context.Context, params request_models.FlightSearchParams) ([]db_models.Flight, error)
	SearchHotels(ctx context.Context, params request_models.HotelSearchParams) ([]db_models.Hotel, error)
	SearchRestaurants(ctx context.Context, params request_models.RestaurantSearchParams) ([]db_models.Restaurant, error)
	SearchPlaces(ctx context.Context, params request_models.PlaceSearchParams) ([]db_models.Place, error)

	GetFlight(ctx context.Context, id string) (*db_models.Flight, error)
	GetHotel(ctx context.Context, id string) (*db_models.Hotel, error)
	GetRestaurant(ctx context.Context, id string) (*db_models.Restaurant, error)
	GetPlace(ctx context.Context, id string) (*db_models.Place, error)
}

// CatalogRepositories groups the catalog tables. A nil group means no
// database is configured.
type CatalogRepositories struct {
	Flights     repositories.FlightRepository
	Hotels      repositories.HotelRepository
	Restaurants repositories.RestaurantRepository
	Places      repositories.PlaceRepository
}

type CatalogService struct {
	repos  *CatalogRepositories
	logger *zap.Logger
}

func NewCatalogService(repos *CatalogRepositories, logger *zap.Logger) CatalogServiceInterface {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{repos: repos, logger: logger}
}

func (s *CatalogService) SearchFlights(ctx context.Context, params request_models.FlightSearchParams) ([]db_models.Flight, error) {
	if s.repos == nil {
		return nil, utils.ErrCatalogUnavailable
	}
	flights, err := s.repos.Flights.Search(ctx, repositories.FlightFilter{
		From:          params.From,
		To:            params.To,
		DepartureDate: params.DepartureDate,
	})
	if err != nil {
		return nil, s.databaseError("flights", err)
	}
	return nonNil(flights), nil
}

func (s *CatalogService) SearchHotels(ctx context.Context, params request_models.HotelSearchParams) ([]db_models.Hotel, error) {
	if s.repos == nil {
		return nil, utils.ErrCatalogUnavailable
	}
	hotels, err := s.repos.Hotels.Search(ctx, params.Location)
	if err != nil {
		return nil, s.databaseError("hotels", err)
	}
	return nonNil(hotels), nil
}

func (s *CatalogService) SearchRestaurants(ctx context.Context, params request_models.RestaurantSearchParams) ([]db_models.Restaurant, error) {
	if s.repos == nil {
		return nil, utils.ErrCatalogUnavailable
	}
	restaurants, err := s.repos.Restaurants.Search(ctx, repositories.RestaurantFilter{
		Location:   params.Location,
		Cuisine:    params.Cuisine,
		PriceRange: params.PriceRange,
	})
	if err != nil {
		return nil, s.databaseError("restaurants", err)
	}
	return nonNil(restaurants), nil
}

func (s *CatalogService) SearchPlaces(ctx context.Context, params request_models.PlaceSearchParams) ([]db_models.Place, error) {
	if s.repos == nil {
		return nil, utils.ErrCatalogUnavailable
	}
	places, err := s.repos.Places.Search(ctx, params.Location, params.Category)
	if err != nil {
		return nil, s.databaseError("places", err)
	}
	return nonNil(places), nil
}

func (s *CatalogService) GetFlight(ctx context.Context, id string) (*db_models.Flight, error) {
	if err := s.checkLookup(id); err != nil {
		return nil, err
	}
	flight, err := s.repos.Flights.GetByID(ctx, id)
	if err != nil {
		return nil, s.databaseError("flights", err)
	}
	return found(flight)
}

func (s *CatalogService) GetHotel(ctx context.Context, id string) (*db_models.Hotel, error) {
	if err := s.checkLookup(id); err != nil {
		return nil, err
	}
	hotel, err := s.repos.Hotels.GetByIDWithRooms(ctx, id)
	if err != nil {
		return nil, s.databaseError("hotels", err)
	}
	return found(hotel)
}

func (s *CatalogService) GetRestaurant(ctx context.Context, id string) (*db_models.Restaurant, error) {
	if err := s.checkLookup(id); err != nil {
		return nil, err
	}
	restaurant, err := s.repos.Restaurants.GetByID(ctx, id)
	if err != nil {
		return nil, s.databaseError("restaurants", err)
	}
	return found(restaurant)
}

func (s *CatalogService) GetPlace(ctx context.Context, id string) (*db_models.Place, error) {
	if err := s.checkLookup(id); err != nil {
		return nil, err
	}
	place, err := s.repos.Places.GetByID(ctx, id)
	if err != nil {
		return nil, s.databaseError("places", err)
	}
	return found(place)
}

func (s *CatalogService) checkLookup(id string) error {
	if s.repos == nil {
		return utils.ErrCatalogUnavailable
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: id must be a UUID", utils.ErrInvalidInput)
	}
	return nil
}

// databaseError logs the driver error and hides it behind ErrDatabaseError.
func (s *CatalogService) databaseError(table string, err error) error {
	s.logger.Error("catalog query failed", zap.String("table", table), zap.Error(err))
	return utils.ErrDatabaseError
}

func found[T any](record *T) (*T, error) {
	if record == nil {
		return nil, utils.ErrNotFound
	}
	return record, nil
}

func nonNil[T any](records []T) []T {
	if records == nil {
		return []T{}
	}
	return records
}
