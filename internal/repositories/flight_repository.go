package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"voyage/internal/models/db_models"
)

type FlightFilter struct {
	From          string
	To            string
	DepartureDate string // YYYY-MM-DD
}

type FlightRepository interface {
	Search(ctx context.Context, filter FlightFilter) ([]db_models.Flight, error)
	GetByID(ctx context.Context, id string) (*db_models.Flight, error)
}

type flightRepository struct {
	db *gorm.DB
}

func NewFlightRepository(db *gorm.DB) FlightRepository {
	return &flightRepository{db: db}
}

// Search returns flights with free seats, cheapest economy fare first.
func (r *flightRepository) Search(ctx context.Context, filter FlightFilter) ([]db_models.Flight, error) {
	query := r.db.WithContext(ctx).Where("available_seats > 0")

	if filter.From != "" {
		pattern := containsPattern(filter.From)
		query = query.Where("(departure_airport_code ILIKE ? OR departure_city ILIKE ?)", pattern, pattern)
	}
	if filter.To != "" {
		pattern := containsPattern(filter.To)
		query = query.Where("(arrival_airport_code ILIKE ? OR arrival_city ILIKE ?)", pattern, pattern)
	}
	if filter.DepartureDate != "" {
		query = query.Where("DATE(departure_time) = ?", filter.DepartureDate)
	}

	var flights []db_models.Flight
	err := query.
		Order("price_economy ASC").
		Limit(flightSearchLimit).
		Find(&flights).Error
	if err != nil {
		return nil, err
	}
	return flights, nil
}

func (r *flightRepository) GetByID(ctx context.Context, id string) (*db_models.Flight, error) {
	var flight db_models.Flight
	err := r.db.WithContext(ctx).First(&flight, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &flight, nil
}
