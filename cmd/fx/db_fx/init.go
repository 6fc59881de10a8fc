package db_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"voyage/internal/config"
	"voyage/internal/infra"
	"voyage/internal/repositories"
	"voyage/internal/services"
)

var Module = fx.Provide(
	provideDB,
	provideCatalogRepositories,
)

func provideDB(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := infra.OpenPostgresql(cfg.Database, logger)
	if err != nil || db == nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := infra.MigrateCatalog(db); err != nil {
			return nil, err
		}
	}

	lc.Append(fx.StopHook(func() {
		infra.ClosePostgresql(db, logger)
	}))
	return db, nil
}

// provideCatalogRepositories returns nil without a database.
func provideCatalogRepositories(db *gorm.DB) *services.CatalogRepositories {
	if db == nil {
		return nil
	}
	return &services.CatalogRepositories{
		Flights:     repositories.NewFlightRepository(db),
		Hotels:      repositories.NewHotelRepository(db),
		Restaurants: repositories.NewRestaurantRepository(db),
		Places:      repositories.NewPlaceRepository(db),
	}
}
