package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyage/internal/models/request_models"
	"voyage/pkg/currency"
	"voyage/pkg/metrics"
	"voyage/pkg/utils"
)

const placesSearchCompletion = `Here you go:
[
  {
    "id": 99,
    "name": "Amber Fort",
    "category": "Historical",
    "rating": 4.7,
    "reviews": 42000,
    "priceUSD": "$15",
    "duration": "3-4 hours",
    "address": "Devisinghpura, Amer, Jaipur",
    "description": "Hilltop fort of red sandstone and marble.",
    "openingHours": "8:00 AM - 5:30 PM",
    "features": ["Elephant rides", "Light show"],
    "highlights": ["Sheesh Mahal"],
    "bestTimeToVisit": "Early morning",
    "howToGet": "Taxi from the old city",
    "imageDescription": "Golden fort walls above Maota lake"
  },
  {"name": "Hawa Mahal", "rating": "high", "priceUSD": 2},
  {"name": "Jantar Mantar", "category": "Historical", "priceUSD": 2.5},
  {"name": "Galta Ji", "category": "Temple", "priceUSD": "Free"},
  {"name": "", "priceUSD": 1}
]`

func testPlacesSearchRequest() request_models.PlacesSearchRequest {
	return request_models.PlacesSearchRequest{Destination: "Jaipur", Category: "Historical"}
}

func TestPlacesSearchService_NormalizesPlaces(t *testing.T) {
	stub := &stubLLM{response: placesSearchCompletion}
	pipeline, reg := newTestPipeline(t, stub, testOptions())
	svc := NewPlacesSearchService(pipeline, testConverter)

	places, err := svc.Search(context.Background(), testPlacesSearchRequest())
	require.NoError(t, err)

	// Hawa Mahal has a non-numeric rating and the last entry has no name
	require.Len(t, places, 3)

	fort := places[0]
	assert.Equal(t, 1, fort.ID)
	assert.Equal(t, "Amber Fort", fort.Name)
	assert.Equal(t, "$15", string(fort.PriceUSD))
	assert.Equal(t, "₹1,249", fort.PriceINR)
	assert.Equal(t, "/images/places/amber-fort.jpg", fort.Image)
	assert.Equal(t, "https://www.google.com/search?q=Amber+Fort+Jaipur+booking", fort.BookingURL)
	assert.Equal(t, []string{"Sheesh Mahal"}, fort.Highlights)

	observatory := places[1]
	assert.Equal(t, 2, observatory.ID)
	assert.Equal(t, "2.5", string(observatory.PriceUSD))
	assert.Equal(t, currency.FormatINR(testConverter.ToINR(2.5)), observatory.PriceINR)
	assert.Equal(t, []string{}, observatory.Features)

	assert.Equal(t, "Free", places[2].PriceINR)

	assert.Equal(t, float64(1), outcomeCount(t, reg, domainPlacesSearch, metrics.SourceLLM))
}

func TestPlacesSearchService_PlacePriceINR(t *testing.T) {
	svc := &PlacesSearchService{converter: testConverter}

	tests := []struct {
		price string
		want  string
	}{
		{"", "Free"},
		{"free", "Free"},
		{"0", "Free"},
		{"$0.00", "Free"},
		{"$15", "₹1,249"},
		{"100", "₹8,325"},
		{"Varies by season", "Varies by season"},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.placePriceINR(tt.price))
		})
	}
}

func TestPlacesSearchService_SampleFallback(t *testing.T) {
	tests := []struct {
		name       string
		client     utils.LLMClientInterface
		wantSource string
	}{
		{"no client", nil, metrics.SourceMock},
		{"prose only", &stubLLM{response: "Jaipur has many forts."}, metrics.SourceFallback},
		{"no usable entries", &stubLLM{response: `[{"rating": "five"}, {"name": ""}]`}, metrics.SourceFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipeline, reg := newTestPipeline(t, tt.client, testOptions())
			svc := NewPlacesSearchService(pipeline, testConverter)

			places, err := svc.Search(context.Background(), testPlacesSearchRequest())
			require.NoError(t, err)
			require.Len(t, places, 1)

			sample := places[0]
			assert.Equal(t, 1, sample.ID)
			assert.Equal(t, "Popular Attraction in Jaipur", sample.Name)
			assert.Equal(t, "Historical", sample.Category)
			assert.Equal(t, "₹1,249", sample.PriceINR)
			assert.Equal(t, "/images/places/popular-attraction-in-jaipur.jpg", sample.Image)
			assert.Equal(t, float64(1), outcomeCount(t, reg, domainPlacesSearch, tt.wantSource))
		})
	}
}

func TestPlacesSearchService_Errors(t *testing.T) {
	t.Run("transport error", func(t *testing.T) {
		pipeline, reg := newTestPipeline(t, &stubLLM{err: errors.New("connection reset")}, testOptions())
		svc := NewPlacesSearchService(pipeline, testConverter)

		places, err := svc.Search(context.Background(), testPlacesSearchRequest())
		assert.ErrorIs(t, err, utils.ErrLLMUnavailable)
		assert.Nil(t, places)
		assert.Equal(t, float64(1), outcomeCount(t, reg, domainPlacesSearch, metrics.SourceError))
	})

	t.Run("blank destination", func(t *testing.T) {
		stub := &stubLLM{response: "[]"}
		pipeline, _ := newTestPipeline(t, stub, testOptions())
		svc := NewPlacesSearchService(pipeline, testConverter)

		_, err := svc.Search(context.Background(), request_models.PlacesSearchRequest{Destination: "  "})
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
		assert.Zero(t, stub.calls())
	})
}

func TestPlacesSearchService_Prompt(t *testing.T) {
	stub := &stubLLM{response: "[]"}
	pipeline, _ := newTestPipeline(t, stub, testOptions())
	svc := NewPlacesSearchService(pipeline, testConverter)

	places, err := svc.Search(context.Background(), testPlacesSearchRequest())
	require.NoError(t, err)
	assert.Empty(t, places)

	require.Equal(t, 1, stub.calls())
	prompt := stub.prompts[0]
	assert.Contains(t, prompt, "places to visit in Jaipur in the Historical category.")
	assert.Contains(t, prompt, "Budget context: any budget")
	assert.Contains(t, prompt, "Duration preference: any duration")
	assert.Contains(t, prompt, "exist in Jaipur.")
}
