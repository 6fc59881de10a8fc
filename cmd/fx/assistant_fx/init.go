package assistant_fx

import (
	"go.uber.org/fx"

	"voyage/internal/services"
)

var Module = fx.Provide(
	services.NewChatService,
	services.NewFlightSearchService,
	services.NewPlacesSearchService,
)
