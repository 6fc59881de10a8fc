package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"voyage/internal/models/db_models"
)

type HotelRepository interface {
	Search(ctx context.Context, location string) ([]db_models.Hotel, error)
	GetByIDWithRooms(ctx context.Context, id string) (*db_models.Hotel, error)
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

// Search lists the best rated hotels in a city or country. Only rooms that
// can still be booked are attached.
func (r *hotelRepository) Search(ctx context.Context, location string) ([]db_models.Hotel, error) {
	query := r.db.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB {
			return db.Where("available_rooms > 0").Order("price_per_night ASC")
		})

	if location != "" {
		pattern := containsPattern(location)
		query = query.Where("(city ILIKE ? OR country ILIKE ?)", pattern, pattern)
	}

	var hotels []db_models.Hotel
	err := query.
		Order("rating DESC").
		Limit(catalogSearchLimit).
		Find(&hotels).Error
	if err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *hotelRepository) GetByIDWithRooms(ctx context.Context, id string) (*db_models.Hotel, error) {
	var hotel db_models.Hotel
	err := r.db.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB {
			return db.Order("price_per_night ASC")
		}).
		First(&hotel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hotel, nil
}
