package catalog_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"voyage/internal/services"
)

var Module = fx.Provide(provideCatalogService)

func provideCatalogService(repos *services.CatalogRepositories, logger *zap.Logger) services.CatalogServiceInterface {
	return services.NewCatalogService(repos, logger.Named("catalog"))
}
