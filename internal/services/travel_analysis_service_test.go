package services

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"voyage/internal/models/response_models"
	"voyage/pkg/utils"
)

func newTravelAnalysisService(t *testing.T, pipeline LLMPipeline) TravelAnalysisServiceInterface {
	t.Helper()
	return NewTravelAnalysisService(
		NewTripAnalyzerService(pipeline),
		NewFlightRecommendationService(pipeline, testConverter),
		NewHotelRecommendationService(pipeline, testConverter),
		NewRestaurantRecommendationService(pipeline),
		NewPlacesRecommendationService(pipeline),
		pipeline,
		zaptest.NewLogger(t),
	)
}

type panickingHotels struct{}

func (panickingHotels) Generate(context.Context, response_models.TripAnalysis, string) response_models.HotelRecommendations {
	panic("nil map write")
}

type panickingAnalyzer struct{}

func (panickingAnalyzer) AnalyzeTravelRequest(context.Context, string) response_models.TripAnalysis {
	panic("unreachable state")
}

// barrier.wait succeeds only once want callers have arrived; callers that
// run one after another time out instead.
type barrier struct {
	arrived atomic.Int32
	want    int32
}

func (b *barrier) wait(ctx context.Context) bool {
	b.arrived.Add(1)
	deadline := time.After(2 * time.Second)
	for b.arrived.Load() < b.want {
		select {
		case <-deadline:
			return false
		case <-ctx.Done():
			return false
		case <-time.After(time.Millisecond):
		}
	}
	return true
}

type barrierHotels struct{ b *barrier }

func (f barrierHotels) Generate(ctx context.Context, _ response_models.TripAnalysis, dest string) response_models.HotelRecommendations {
	if !f.b.wait(ctx) {
		return response_models.HotelRecommendations{}
	}
	return MockHotelRecommendations(testConverter, dest)
}

type barrierRestaurants struct{ b *barrier }

func (f barrierRestaurants) Generate(ctx context.Context, _ response_models.TripAnalysis, dest string) response_models.RestaurantRecommendations {
	if !f.b.wait(ctx) {
		return response_models.RestaurantRecommendations{}
	}
	return MockRestaurantRecommendations(dest)
}

type barrierPlaces struct{ b *barrier }

func (f barrierPlaces) Generate(ctx context.Context, a response_models.TripAnalysis, dest string) response_models.PlacesRecommendations {
	if !f.b.wait(ctx) {
		return response_models.PlacesRecommendations{}
	}
	return MockPlacesRecommendations(dest, a.Duration.Days)
}

func TestGenerateComprehensiveAnalysis_NoCredential(t *testing.T) {
	pipeline, _ := newTestPipeline(t, nil, testOptions())
	svc := newTravelAnalysisService(t, pipeline)

	result, err := svc.GenerateComprehensiveAnalysis(context.Background(), "I want a luxury romantic trip to Paris for 5 days", "", "")

	require.NoError(t, err)
	assert.Equal(t, "romantic", result.Analysis.TravelType)
	assert.Equal(t, "luxury", result.Analysis.Budget)
	assert.Equal(t, "Mumbai", result.Analysis.Destinations.Primary)

	recs := result.Recommendations
	assert.Nil(t, recs.Flights)
	assert.NotEmpty(t, recs.Hotels.Recommendations)
	assert.NotEmpty(t, recs.Restaurants.Recommendations)
	assert.NotEmpty(t, recs.Places.Attractions)
	assert.Len(t, recs.Places.Itinerary, 5)
	assertSchemaValid(t, recs.Hotels)
	assertSchemaValid(t, recs.Restaurants)
	assertSchemaValid(t, recs.Places)
}

func TestGenerateComprehensiveAnalysis_FlightsNeedBothEnds(t *testing.T) {
	pipeline, _ := newTestPipeline(t, nil, testOptions())
	svc := newTravelAnalysisService(t, pipeline)
	ctx := context.Background()

	tests := []struct {
		name     string
		from, to string
		want     bool
	}{
		{"both", "Kolkata", "Mumbai", true},
		{"missing to", "Kolkata", "", false},
		{"blank from", "   ", "Mumbai", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.GenerateComprehensiveAnalysis(ctx, "Business trip to Mumbai", tt.from, tt.to)
			require.NoError(t, err)

			if !tt.want {
				assert.Nil(t, result.Recommendations.Flights)
				return
			}
			require.NotNil(t, result.Recommendations.Flights)
			assert.Equal(t, "Kolkata to Mumbai", result.Recommendations.Flights.Recommendations[0].Route)
			assertSchemaValid(t, *result.Recommendations.Flights)
		})
	}
}

func TestGenerateComprehensiveAnalysis_EmptyRequest(t *testing.T) {
	pipeline, _ := newTestPipeline(t, nil, testOptions())
	svc := newTravelAnalysisService(t, pipeline)

	result, err := svc.GenerateComprehensiveAnalysis(context.Background(), "  ", "", "")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGenerateComprehensiveAnalysis_PanicFailsWholeCall(t *testing.T) {
	pipeline, _ := newTestPipeline(t, nil, testOptions())

	t.Run("generator", func(t *testing.T) {
		svc := NewTravelAnalysisService(
			NewTripAnalyzerService(pipeline),
			NewFlightRecommendationService(pipeline, testConverter),
			panickingHotels{},
			NewRestaurantRecommendationService(pipeline),
			NewPlacesRecommendationService(pipeline),
			pipeline,
			zaptest.NewLogger(t),
		)

		result, err := svc.GenerateComprehensiveAnalysis(context.Background(), "Goa for 3 days", "Delhi", "Goa")

		assert.Nil(t, result)
		require.Error(t, err)
		assert.True(t, errors.Is(err, utils.ErrAnalysisFailed))
		assert.True(t, strings.HasPrefix(err.Error(), "failed to analyze travel request: "), err.Error())
		assert.Contains(t, err.Error(), "nil map write")
	})

	t.Run("analyzer", func(t *testing.T) {
		svc := NewTravelAnalysisService(
			panickingAnalyzer{},
			NewFlightRecommendationService(pipeline, testConverter),
			NewHotelRecommendationService(pipeline, testConverter),
			NewRestaurantRecommendationService(pipeline),
			NewPlacesRecommendationService(pipeline),
			pipeline,
			nil,
		)

		result, err := svc.GenerateComprehensiveAnalysis(context.Background(), "Goa", "", "")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, utils.ErrAnalysisFailed)
		assert.Contains(t, err.Error(), "unreachable state")
	})
}

func TestGenerateComprehensiveAnalysis_GeneratorsRunConcurrently(t *testing.T) {
	pipeline, _ := newTestPipeline(t, nil, testOptions())
	b := &barrier{want: 3}
	svc := NewTravelAnalysisService(
		NewTripAnalyzerService(pipeline),
		NewFlightRecommendationService(pipeline, testConverter),
		barrierHotels{b},
		barrierRestaurants{b},
		barrierPlaces{b},
		pipeline,
		zaptest.NewLogger(t),
	)

	result, err := svc.GenerateComprehensiveAnalysis(context.Background(), "Delhi for 2 days", "", "")

	require.NoError(t, err)
	assert.NotEmpty(t, result.Recommendations.Hotels.Recommendations)
	assert.NotEmpty(t, result.Recommendations.Restaurants.Recommendations)
	assert.NotEmpty(t, result.Recommendations.Places.Attractions)
}

func TestGenerateComprehensiveAnalysis_LLMFailuresAreAbsorbed(t *testing.T) {
	pipeline, _ := newTestPipeline(t, &stubLLM{err: errors.New("503 from provider")}, testOptions())
	svc := newTravelAnalysisService(t, pipeline)
	request := "Family trip to Kerala for a week"

	result, err := svc.GenerateComprehensiveAnalysis(context.Background(), request, "Delhi", "Kochi")

	require.NoError(t, err)
	assert.Equal(t, MockTripAnalysis(request), result.Analysis)
	require.NotNil(t, result.Recommendations.Flights)
	assert.Equal(t, MockFlightRecommendations(testConverter, "Delhi", "Kochi"), *result.Recommendations.Flights)
	assert.Equal(t, MockHotelRecommendations(testConverter, "Kerala"), result.Recommendations.Hotels)
	assert.Equal(t, MockPlacesRecommendations("Kerala", 7), result.Recommendations.Places)
}

func TestGenerateTravelSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("no credential serves demo text", func(t *testing.T) {
		pipeline, _ := newTestPipeline(t, nil, testOptions())
		summary := newTravelAnalysisService(t, pipeline).GenerateTravelSummary(ctx, "Goa")
		assert.Equal(t, demoTravelSummary, summary)
	})

	t.Run("call failure serves notice", func(t *testing.T) {
		pipeline, _ := newTestPipeline(t, &stubLLM{err: errors.New("boom")}, testOptions())
		summary := newTravelAnalysisService(t, pipeline).GenerateTravelSummary(ctx, "Goa")
		assert.Equal(t, summaryUnavailableMessage, summary)
	})

	t.Run("empty completion serves notice", func(t *testing.T) {
		pipeline, _ := newTestPipeline(t, &stubLLM{response: "  \n"}, testOptions())
		summary := newTravelAnalysisService(t, pipeline).GenerateTravelSummary(ctx, "Goa")
		assert.Equal(t, summaryUnavailableMessage, summary)
	})

	t.Run("model prose is returned trimmed", func(t *testing.T) {
		stub := &stubLLM{response: "\nGoa is best from November to February.\n"}
		pipeline, _ := newTestPipeline(t, stub, testOptions())
		summary := newTravelAnalysisService(t, pipeline).GenerateTravelSummary(ctx, "Goa in winter")
		assert.Equal(t, "Goa is best from November to February.", summary)
		assert.Contains(t, stub.prompts[0], `"Goa in winter"`)
	})
}
