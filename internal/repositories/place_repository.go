package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"voyage/internal/models/db_models"
)

type PlaceRepository interface {
	Search(ctx context.Context, location, category string) ([]db_models.Place, error)
	GetByID(ctx context.Context, id string) (*db_models.Place, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) Search(ctx context.Context, location, category string) ([]db_models.Place, error) {
	query := r.db.WithContext(ctx)

	if location != "" {
		pattern := containsPattern(location)
		query = query.Where("(city ILIKE ? OR country ILIKE ?)", pattern, pattern)
	}
	if category != "" {
		query = query.Where("category ILIKE ?", containsPattern(category))
	}

	var places []db_models.Place
	err := query.
		Order("rating DESC").
		Limit(catalogSearchLimit).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) GetByID(ctx context.Context, id string) (*db_models.Place, error) {
	var place db_models.Place
	err := r.db.WithContext(ctx).First(&place, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}
