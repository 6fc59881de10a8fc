package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyage/internal/models/response_models"
	"voyage/pkg/utils"
)

func TestItineraryPDFService_Render(t *testing.T) {
	analysis := MockTripAnalysis("5 days in Goa with family")
	flights := MockFlightRecommendations(testConverter, "Kolkata", "Goa")
	result := &response_models.ComprehensiveAnalysis{
		Analysis: analysis,
		Recommendations: response_models.RecommendationsBundle{
			Flights:     &flights,
			Hotels:      MockHotelRecommendations(testConverter, "Goa"),
			Restaurants: MockRestaurantRecommendations("Goa"),
			Places:      MockPlacesRecommendations("Goa", analysis.Duration.Days),
		},
	}

	svc := &ItineraryPDFService{now: func() time.Time { return time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC) }}
	out, err := svc.Render(result, "Beaches by day, seafood by night. Café hopping in Panjim – don’t miss it.")
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Greater(t, len(out), 1000)
}

func TestItineraryPDFService_RenderWithoutFlights(t *testing.T) {
	result := &response_models.ComprehensiveAnalysis{
		Analysis: MockTripAnalysis("weekend in Jaipur"),
		Recommendations: response_models.RecommendationsBundle{
			Places: MockPlacesRecommendations("Jaipur", 2),
		},
	}

	out, err := NewItineraryPDFService().Render(result, "")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestItineraryPDFService_RenderNil(t *testing.T) {
	_, err := NewItineraryPDFService().Render(nil, "summary")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestPdfRupees(t *testing.T) {
	assert.Equal(t, "INR 12,525", pdfRupees(12525))
	assert.Equal(t, "INR 1,23,456", pdfRupees(123456))
	assert.Equal(t, "INR 0", pdfRupees(0))
}
