package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockTripAnalysis_LuxuryRomanticParis(t *testing.T) {
	analysis := MockTripAnalysis("I want a luxury romantic trip to Paris for 5 days")

	assert.Equal(t, "romantic", analysis.TravelType)
	assert.Equal(t, "luxury", analysis.Budget)
	// Paris is not a known mock destination
	assert.Equal(t, "Mumbai", analysis.Destinations.Primary)
	assert.Equal(t, 5, analysis.Duration.Days)
	assert.Equal(t, "medium", analysis.Duration.Category)
	assert.Equal(t, 2, analysis.Travelers.Adults)
	assert.Nil(t, analysis.Dates.Departure)
	assert.True(t, analysis.Dates.Flexible)
	assertSchemaValid(t, analysis)
}

func TestMockTripAnalysis_Keywords(t *testing.T) {
	tests := []struct {
		request     string
		travelType  string
		budget      string
		destination string
	}{
		{"Business meeting in Delhi next month", "business", "mid-range", "Delhi"},
		{"Family holiday in Goa on a budget", "family", "budget", "Goa"},
		{"Adventure trekking near Kerala, something cheap", "adventure", "budget", "Kerala"},
		{"Heritage walks and museums in Jaipur", "cultural", "mid-range", "Jaipur"},
		{"An expensive getaway", "leisure", "luxury", "Mumbai"},
		{"Romantic business trip to Chennai", "business", "mid-range", "Chennai"},
		{"Kolkata or Mumbai, not sure", "leisure", "mid-range", "Mumbai"},
	}

	for _, tt := range tests {
		t.Run(tt.request, func(t *testing.T) {
			analysis := MockTripAnalysis(tt.request)

			assert.Equal(t, tt.travelType, analysis.TravelType)
			assert.Equal(t, tt.budget, analysis.Budget)
			assert.Equal(t, tt.destination, analysis.Destinations.Primary)
			assertSchemaValid(t, analysis)
		})
	}
}

func TestExtractDayCount(t *testing.T) {
	tests := []struct {
		request string
		want    int
	}{
		{"trip for 5 days", 5},
		{"a 3-day trip", 3},
		{"1 day in goa", 1},
		{"11 days around kerala", 11},
		{"five days in delhi", 5},
		{"a long weekend", 2},
		{"a week in goa", 7},
		{"two weeks across india", 14},
		{"0 days", 1},
		{"100 days", 30},
		{"somewhere warm", 7},
	}

	for _, tt := range tests {
		t.Run(tt.request, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDayCount(tt.request))
		})
	}
}

func TestDurationCategory(t *testing.T) {
	assert.Equal(t, "short", durationCategory(1))
	assert.Equal(t, "short", durationCategory(3))
	assert.Equal(t, "medium", durationCategory(4))
	assert.Equal(t, "medium", durationCategory(7))
	assert.Equal(t, "long", durationCategory(8))
}

func TestMockRecommendations_PassSchema(t *testing.T) {
	assertSchemaValid(t, MockFlightRecommendations(testConverter, "Kolkata", "Mumbai"))
	assertSchemaValid(t, MockHotelRecommendations(testConverter, "Goa"))
	assertSchemaValid(t, MockRestaurantRecommendations("Goa"))
	for _, days := range []int{-2, 0, 1, 2, 7} {
		assertSchemaValid(t, MockPlacesRecommendations("Goa", days))
	}
}

func TestMockRecommendations_CurrencyConsistency(t *testing.T) {
	flights := MockFlightRecommendations(testConverter, "Kolkata", "Mumbai")
	require.NotEmpty(t, flights.Recommendations)
	for _, f := range flights.Recommendations {
		assert.Equal(t, testConverter.ToINR(f.PriceUSD), int(f.PriceINR), f.Airline)
	}
	assert.Equal(t, 12488, int(flights.Recommendations[0].PriceINR))

	hotels := MockHotelRecommendations(testConverter, "Goa")
	require.NotEmpty(t, hotels.Recommendations)
	for _, h := range hotels.Recommendations {
		assert.Equal(t, testConverter.ToINR(h.PricePerNightUSD), int(h.PricePerNightINR), h.Name)
	}
}

func TestMockFlightRecommendations_Route(t *testing.T) {
	flights := MockFlightRecommendations(testConverter, "Kolkata", "Mumbai")

	for _, f := range flights.Recommendations {
		assert.Equal(t, "Kolkata to Mumbai", f.Route)
	}
}

func TestMockPlacesRecommendations_Itinerary(t *testing.T) {
	places := MockPlacesRecommendations("Jaipur", 3)

	require.Len(t, places.Itinerary, 3)
	assert.Equal(t, "Day 1: Arrival & City Tour", places.Itinerary[0].Theme)
	assert.Equal(t, "Day 2: Cultural Exploration", places.Itinerary[1].Theme)
	assert.Equal(t, "Day 3: Shopping & Departure", places.Itinerary[2].Theme)
	assert.Equal(t, "Shopping and departure prep", places.Itinerary[2].Activities[2])
	assert.Equal(t, 9000, int(places.BudgetBreakdown.TotalEstimatedCostINR))
	assert.Equal(t, "Jaipur Heritage Museum", places.Attractions[0].Name)

	single := MockPlacesRecommendations("Jaipur", 0)
	require.Len(t, single.Itinerary, 1)
	assert.Equal(t, "Day 1: Arrival & City Tour", single.Itinerary[0].Theme)
}

func TestMockTripAnalysis_Deterministic(t *testing.T) {
	request := "Family trip to Goa for 4 days"

	first, err := json.Marshal(MockTripAnalysis(request))
	require.NoError(t, err)
	second, err := json.Marshal(MockTripAnalysis(request))
	require.NoError(t, err)

	assert.JSONEq(t, string(first), string(second))
}
