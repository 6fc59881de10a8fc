package response_models

// ComprehensiveAnalysis is the aggregate returned for one travel request.
// Flights is nil, and serializes as null, when no route was given.
type ComprehensiveAnalysis struct {
	Analysis        TripAnalysis          `json:"analysis"`
	Recommendations RecommendationsBundle `json:"recommendations"`
}

type RecommendationsBundle struct {
	Flights     *FlightRecommendations    `json:"flights"`
	Hotels      HotelRecommendations      `json:"hotels"`
	Restaurants RestaurantRecommendations `json:"restaurants"`
	Places      PlacesRecommendations     `json:"places"`
}

type TravelAnalysisResponse struct {
	ComprehensiveAnalysis
	Summary string `json:"summary"`
}
