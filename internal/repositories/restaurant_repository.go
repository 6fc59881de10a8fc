package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"voyage/internal/models/db_models"
)

type RestaurantFilter struct {
	Location   string
	Cuisine    string
	PriceRange string
}

type RestaurantRepository interface {
	Search(ctx context.Context, filter RestaurantFilter) ([]db_models.Restaurant, error)
	GetByID(ctx context.Context, id string) (*db_models.Restaurant, error)
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Search(ctx context.Context, filter RestaurantFilter) ([]db_models.Restaurant, error) {
	query := r.db.WithContext(ctx)

	if filter.Location != "" {
		pattern := containsPattern(filter.Location)
		query = query.Where("(city ILIKE ? OR country ILIKE ?)", pattern, pattern)
	}
	if filter.Cuisine != "" {
		query = query.Where("cuisine_type ILIKE ?", containsPattern(filter.Cuisine))
	}
	if filter.PriceRange != "" {
		query = query.Where("price_range = ?", filter.PriceRange)
	}

	var restaurants []db_models.Restaurant
	err := query.
		Order("rating DESC").
		Limit(catalogSearchLimit).
		Find(&restaurants).Error
	if err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) GetByID(ctx context.Context, id string) (*db_models.Restaurant, error) {
	var restaurant db_models.Restaurant
	err := r.db.WithContext(ctx).First(&restaurant, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &restaurant, nil
}
