package analysis_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"voyage/internal/services"
)

var Module = fx.Provide(
	services.NewTripAnalyzerService,
	services.NewFlightRecommendationService,
	services.NewHotelRecommendationService,
	services.NewRestaurantRecommendationService,
	services.NewPlacesRecommendationService,
	provideTravelAnalysisService,
	services.NewItineraryPDFService,
)

func provideTravelAnalysisService(
	analyzer services.TripAnalyzerServiceInterface,
	flights services.FlightRecommendationServiceInterface,
	hotels services.HotelRecommendationServiceInterface,
	restaurants services.RestaurantRecommendationServiceInterface,
	places services.PlacesRecommendationServiceInterface,
	pipeline services.LLMPipeline,
	logger *zap.Logger,
) services.TravelAnalysisServiceInterface {
	return services.NewTravelAnalysisService(
		analyzer,
		flights,
		hotels,
		restaurants,
		places,
		pipeline,
		logger.Named("analysis"),
	)
}
