package services

import (
	"context"

	"voyage/internal/models/response_models"
	"voyage/pkg/currency"
)

const (
	domainFlights     = "flights"
	domainHotels      = "hotels"
	domainRestaurants = "restaurants"
	domainPlaces      = "places"
)

type FlightRecommendationServiceInterface interface {
	Generate(ctx context.Context, analysis response_models.TripAnalysis, from, to string) response_models.FlightRecommendations
}

type HotelRecommendationServiceInterface interface {
	Generate(ctx context.Context, analysis response_models.TripAnalysis, destination string) response_models.HotelRecommendations
}

type RestaurantRecommendationServiceInterface interface {
	Generate(ctx context.Context, analysis response_models.TripAnalysis, destination string) response_models.RestaurantRecommendations
}

type PlacesRecommendationServiceInterface interface {
	Generate(ctx context.Context, analysis response_models.TripAnalysis, destination string) response_models.PlacesRecommendations
}

type FlightRecommendationService struct {
	pipeline  LLMPipeline
	converter currency.Converter
}

func NewFlightRecommendationService(pipeline LLMPipeline, converter currency.Converter) FlightRecommendationServiceInterface {
	return &FlightRecommendationService{pipeline: pipeline, converter: converter}
}

func (s *FlightRecommendationService) Generate(ctx context.Context, analysis response_models.TripAnalysis, from, to string) response_models.FlightRecommendations {
	return generateWithFallback(ctx, s.pipeline, domainFlights,
		flightPrompt(analysis, from, to),
		func(recs response_models.FlightRecommendations) response_models.FlightRecommendations {
			// priceUSD is authoritative; whatever INR the model reported is discarded
			for i := range recs.Recommendations {
				recs.Recommendations[i].PriceINR = response_models.Rupees(s.converter.ToINR(recs.Recommendations[i].PriceUSD))
			}
			return recs
		},
		func() response_models.FlightRecommendations { return MockFlightRecommendations(s.converter, from, to) },
	)
}

type HotelRecommendationService struct {
	pipeline  LLMPipeline
	converter currency.Converter
}

func NewHotelRecommendationService(pipeline LLMPipeline, converter currency.Converter) HotelRecommendationServiceInterface {
	return &HotelRecommendationService{pipeline: pipeline, converter: converter}
}

func (s *HotelRecommendationService) Generate(ctx context.Context, analysis response_models.TripAnalysis, destination string) response_models.HotelRecommendations {
	return generateWithFallback(ctx, s.pipeline, domainHotels,
		hotelPrompt(analysis, destination),
		func(recs response_models.HotelRecommendations) response_models.HotelRecommendations {
			for i := range recs.Recommendations {
				recs.Recommendations[i].PricePerNightINR = response_models.Rupees(s.converter.ToINR(recs.Recommendations[i].PricePerNightUSD))
			}
			return recs
		},
		func() response_models.HotelRecommendations { return MockHotelRecommendations(s.converter, destination) },
	)
}

type RestaurantRecommendationService struct {
	pipeline LLMPipeline
}

func NewRestaurantRecommendationService(pipeline LLMPipeline) RestaurantRecommendationServiceInterface {
	return &RestaurantRecommendationService{pipeline: pipeline}
}

func (s *RestaurantRecommendationService) Generate(ctx context.Context, analysis response_models.TripAnalysis, destination string) response_models.RestaurantRecommendations {
	return generateWithFallback(ctx, s.pipeline, domainRestaurants,
		restaurantPrompt(analysis, destination),
		nil,
		func() response_models.RestaurantRecommendations { return MockRestaurantRecommendations(destination) },
	)
}

type PlacesRecommendationService struct {
	pipeline LLMPipeline
}

func NewPlacesRecommendationService(pipeline LLMPipeline) PlacesRecommendationServiceInterface {
	return &PlacesRecommendationService{pipeline: pipeline}
}

func (s *PlacesRecommendationService) Generate(ctx context.Context, analysis response_models.TripAnalysis, destination string) response_models.PlacesRecommendations {
	return generateWithFallback(ctx, s.pipeline, domainPlaces,
		placesPrompt(analysis, destination),
		nil,
		func() response_models.PlacesRecommendations {
			return MockPlacesRecommendations(destination, analysis.Duration.Days)
		},
	)
}
