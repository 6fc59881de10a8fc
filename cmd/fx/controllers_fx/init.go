package controllers_fx

import (
	"go.uber.org/fx"

	"voyage/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewTravelAnalysisController),
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewFlightSearchController),
	fx.Provide(controllers.NewPlacesSearchController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewHealthController))
