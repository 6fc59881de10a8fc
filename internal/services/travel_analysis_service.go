package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"voyage/internal/models/response_models"
	"voyage/pkg/metrics"
	"voyage/pkg/utils"
)

const domainSummary = "summary"

const demoTravelSummary = `Based on your travel request, here's a comprehensive overview:

**Best Time to Visit**: The ideal time depends on your destination, but generally avoid extreme weather seasons for the most comfortable experience.

**Budget Considerations**: Plan for accommodation (40-50% of budget), food (20-25%), transportation (15-20%), and activities (15-20%). Consider booking in advance for better deals.

**Cultural Insights**: India offers incredible diversity in culture, cuisine, and traditions. Each region has its unique character and attractions worth exploring.

**Practical Tips**:
- Keep important documents in digital and physical copies
- Learn basic local phrases for better interaction
- Try local cuisine but be mindful of spice levels
- Respect local customs and dress codes

**Transportation**: Domestic flights for long distances, trains for scenic routes, and local transportation for city exploration work best.

**Safety**: India is generally safe for tourists. Stay aware of your surroundings, use reputable transportation, and keep emergency contacts handy.

This analysis is generated using demo data. For personalized AI-powered recommendations, configure an LLM provider API key.`

const summaryUnavailableMessage = "Unable to generate personalized travel summary at this time. Please check your API configuration and try again."

type TravelAnalysisServiceInterface interface {
	GenerateComprehensiveAnalysis(ctx context.Context, request, from, to string) (*response_models.ComprehensiveAnalysis, error)
	GenerateTravelSummary(ctx context.Context, request string) string
}

type TravelAnalysisService struct {
	analyzer    TripAnalyzerServiceInterface
	flights     FlightRecommendationServiceInterface
	hotels      HotelRecommendationServiceInterface
	restaurants RestaurantRecommendationServiceInterface
	places      PlacesRecommendationServiceInterface
	pipeline    LLMPipeline
	logger      *zap.Logger
}

func NewTravelAnalysisService(
	analyzer TripAnalyzerServiceInterface,
	flights FlightRecommendationServiceInterface,
	hotels HotelRecommendationServiceInterface,
	restaurants RestaurantRecommendationServiceInterface,
	places PlacesRecommendationServiceInterface,
	pipeline LLMPipeline,
	logger *zap.Logger,
) TravelAnalysisServiceInterface {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TravelAnalysisService{
		analyzer:    analyzer,
		flights:     flights,
		hotels:      hotels,
		restaurants: restaurants,
		places:      places,
		pipeline:    pipeline,
		logger:      logger,
	}
}

// GenerateComprehensiveAnalysis analyzes the request, then runs the
// recommendation generators concurrently and waits for all of them. Flights
// are generated only when both from and to are non-blank. Generators absorb
// their own failures; anything that still escapes (a panic) fails the whole
// call and no partial result is returned.
func (s *TravelAnalysisService) GenerateComprehensiveAnalysis(ctx context.Context, request, from, to string) (result *response_models.ComprehensiveAnalysis, err error) {
	if strings.TrimSpace(request) == "" {
		return nil, fmt.Errorf("%w: travel request is required", utils.ErrInvalidInput)
	}

	defer func() {
		if r := recover(); r != nil {
			result, err = nil, s.analysisFailure(fmt.Errorf("trip analyzer panicked: %v", r))
		}
	}()

	analysis := s.analyzer.AnalyzeTravelRequest(ctx, request)
	destination := analysis.Destinations.Primary
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)

	out := &response_models.ComprehensiveAnalysis{Analysis: analysis}
	g, gctx := errgroup.WithContext(ctx)

	if from != "" && to != "" {
		g.Go(recovered(domainFlights, func() {
			flights := s.flights.Generate(gctx, analysis, from, to)
			out.Recommendations.Flights = &flights
		}))
	}
	g.Go(recovered(domainHotels, func() {
		out.Recommendations.Hotels = s.hotels.Generate(gctx, analysis, destination)
	}))
	g.Go(recovered(domainRestaurants, func() {
		out.Recommendations.Restaurants = s.restaurants.Generate(gctx, analysis, destination)
	}))
	g.Go(recovered(domainPlaces, func() {
		out.Recommendations.Places = s.places.Generate(gctx, analysis, destination)
	}))

	if err := g.Wait(); err != nil {
		return nil, s.analysisFailure(err)
	}
	return out, nil
}

// GenerateTravelSummary returns free-form advisory prose. It never fails: the
// demo text is served without a client and a fixed notice on call failure.
func (s *TravelAnalysisService) GenerateTravelSummary(ctx context.Context, request string) string {
	if !s.pipeline.Available() {
		s.pipeline.metrics.RecordOutcome(domainSummary, metrics.SourceMock)
		return demoTravelSummary
	}

	text, err := s.pipeline.complete(ctx, domainSummary, travelSummaryPrompt(request))
	if err == nil && strings.TrimSpace(text) == "" {
		err = utils.ErrEmptyCompletionResponse
	}
	if err != nil {
		s.pipeline.logFallback(domainSummary, failureReason(err), err)
		return summaryUnavailableMessage
	}

	s.pipeline.metrics.RecordOutcome(domainSummary, metrics.SourceLLM)
	return strings.TrimSpace(text)
}

func (s *TravelAnalysisService) analysisFailure(cause error) error {
	err := fmt.Errorf("%w: %w", utils.ErrAnalysisFailed, cause)
	s.logger.Error("travel analysis failed", zap.Error(err))
	return err
}

// recovered turns a panic inside a task into the task's error.
func recovered(task string, fn func()) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%s generator panicked: %v", task, r)
			}
		}()
		fn()
		return nil
	}
}
