package services

import (
	"fmt"

	"voyage/internal/models/response_models"
	"voyage/pkg/currency"
)

const mockDailyBudgetINR = 3000

func MockFlightRecommendations(conv currency.Converter, from, to string) response_models.FlightRecommendations {
	route := fmt.Sprintf("%s to %s", from, to)

	return response_models.FlightRecommendations{
		Recommendations: []response_models.FlightRecommendation{
			{
				Airline:       "IndiGo",
				Route:         route,
				Class:         "economy",
				PriceUSD:      150,
				PriceINR:      response_models.Rupees(conv.ToINR(150)),
				Duration:      "2h 30m",
				Stops:         0,
				DepartureTime: "10:30 AM",
				ArrivalTime:   "1:00 PM",
				Reasoning:     "Best value for money with good timing",
				BookingURL:    "https://www.goindigo.in",
				Baggage:       "15kg checked, 7kg cabin",
				Cancellation:  "Free cancellation within 24 hours",
			},
			{
				Airline:       "Air India",
				Route:         route,
				Class:         "economy",
				PriceUSD:      180,
				PriceINR:      response_models.Rupees(conv.ToINR(180)),
				Duration:      "2h 45m",
				Stops:         0,
				DepartureTime: "2:15 PM",
				ArrivalTime:   "5:00 PM",
				Reasoning:     "National carrier with reliable service",
				BookingURL:    "https://www.airindia.in",
				Baggage:       "20kg checked, 8kg cabin",
				Cancellation:  "Cancellation charges apply",
			},
		},
		Tips:            []string{"Book 2-3 months in advance for better prices", "Check for direct flights to save time"},
		Alternatives:    []string{"Train travel for scenic routes", "Bus services for budget travel"},
		BestBookingTime: "Tuesday and Wednesday mornings typically offer better deals",
	}
}

func MockHotelRecommendations(conv currency.Converter, destination string) response_models.HotelRecommendations {
	return response_models.HotelRecommendations{
		Recommendations: []response_models.HotelRecommendation{
			{
				Name:               "The Grand Palace Hotel",
				Location:           "Central " + destination,
				Category:           "luxury",
				Rating:             4.5,
				PricePerNightUSD:   200,
				PricePerNightINR:   response_models.Rupees(conv.ToINR(200)),
				Amenities:          []string{"WiFi", "Pool", "Spa", "Restaurant", "Gym"},
				Reasoning:          "Luxury hotel with excellent amenities and central location",
				BookingURL:         "https://www.booking.com",
				CheckInTime:        "3:00 PM",
				CheckOutTime:       "12:00 PM",
				CancellationPolicy: "Free cancellation up to 24 hours before check-in",
			},
			{
				Name:               "City Center Inn",
				Location:           "Downtown " + destination,
				Category:           "mid-range",
				Rating:             4.0,
				PricePerNightUSD:   80,
				PricePerNightINR:   response_models.Rupees(conv.ToINR(80)),
				Amenities:          []string{"WiFi", "Restaurant", "24/7 Reception"},
				Reasoning:          "Great value hotel in prime location",
				BookingURL:         "https://www.booking.com",
				CheckInTime:        "2:00 PM",
				CheckOutTime:       "11:00 AM",
				CancellationPolicy: "Free cancellation up to 48 hours before check-in",
			},
		},
		Neighborhoods: []response_models.Neighborhood{
			{
				Name:            "City Center",
				Description:     "Heart of the city with shopping and dining",
				Suitability:     "Perfect for business and leisure travelers",
				AveragePriceINR: 8000,
			},
		},
		Tips: []string{"Book early for better rates", "Check for package deals with flights"},
	}
}

func MockRestaurantRecommendations(destination string) response_models.RestaurantRecommendations {
	return response_models.RestaurantRecommendations{
		Recommendations: []response_models.RestaurantRecommendation{
			{
				Name:                "Local Flavors",
				Cuisine:             "Regional Indian",
				AverageMealPriceINR: 800,
				Location:            "Central " + destination,
				Specialties:         []string{"Local specialties", "Traditional curries"},
				Atmosphere:          "Authentic local dining experience",
				Reasoning:           "Best place to experience authentic local cuisine",
				ReservationURL:      "https://www.zomato.com",
				OpeningHours:        "11:00 AM - 11:00 PM",
				PhoneNumber:         "+91 98765 43210",
			},
			{
				Name:                "Fine Dining Palace",
				Cuisine:             "Multi-cuisine",
				AverageMealPriceINR: 2500,
				Location:            "Premium area, " + destination,
				Specialties:         []string{"Continental", "Indian fusion"},
				Atmosphere:          "Upscale dining with elegant ambiance",
				Reasoning:           "Perfect for special occasions and fine dining",
				ReservationURL:      "https://www.opentable.com",
				OpeningHours:        "7:00 PM - 12:00 AM",
				PhoneNumber:         "+91 98765 43211",
			},
		},
		FoodScene: response_models.FoodScene{
			Highlights:       []string{"Rich culinary heritage", "Street food culture", "Fine dining scene"},
			LocalSpecialties: []string{"Regional delicacies", "Street food favorites"},
			DiningTips:       []string{"Try local street food", "Book fine dining in advance"},
			AverageMealCosts: response_models.AverageMealCosts{
				StreetFood:   100,
				CasualDining: 500,
				FineDining:   2000,
			},
		},
	}
}

// MockPlacesRecommendations builds one itinerary entry per day; days < 1 is
// treated as a single day.
func MockPlacesRecommendations(destination string, days int) response_models.PlacesRecommendations {
	if days < 1 {
		days = 1
	}

	itinerary := make([]response_models.ItineraryDay, 0, days)
	for i := 0; i < days; i++ {
		first, last := i == 0, i == days-1

		theme := "Cultural Exploration"
		switch {
		case first:
			theme = "Arrival & City Tour"
		case last:
			theme = "Shopping & Departure"
		}

		opening := "Morning sightseeing"
		tips := "Book popular attractions in advance"
		if first {
			opening = "Check-in and city orientation"
			tips = "Start with nearby attractions"
		}
		closing := "Evening cultural activities"
		if last {
			closing = "Shopping and departure prep"
		}

		itinerary = append(itinerary, response_models.ItineraryDay{
			Day:                i + 1,
			Theme:              fmt.Sprintf("Day %d: %s", i+1, theme),
			Activities:         []string{opening, "Local cuisine experience", closing},
			EstimatedCostINR:   mockDailyBudgetINR,
			Tips:               tips,
			TransportationTips: "Use local transportation for authentic experience",
		})
	}

	return response_models.PlacesRecommendations{
		Attractions: []response_models.Attraction{
			{
				Name:              destination + " Heritage Museum",
				Type:              "museum",
				Location:          "Central " + destination,
				Duration:          "2-3 hours",
				BestTime:          "Morning hours",
				TicketPriceINR:    200,
				Reasoning:         "Rich collection showcasing local history and culture",
				OfficialURL:       "https://www.museum.gov.in",
				NearbyAttractions: []string{"City Park", "Shopping District"},
				Accessibility:     "Wheelchair accessible",
			},
			{
				Name:              destination + " City Palace",
				Type:              "palace",
				Location:          "Old City, " + destination,
				Duration:          "3-4 hours",
				BestTime:          "Early morning or late afternoon",
				TicketPriceINR:    500,
				Reasoning:         "Magnificent architecture and royal history",
				OfficialURL:       "https://www.heritage.gov.in",
				NearbyAttractions: []string{"Royal Gardens", "Traditional Market"},
				Accessibility:     "Partially accessible",
			},
		},
		Itinerary: itinerary,
		LocalInsights: []string{
			destination + " is known for its rich cultural heritage",
			"Local people are friendly and helpful to tourists",
			"Best time to visit is during cooler months",
		},
		BudgetBreakdown: response_models.BudgetBreakdown{
			DailyBudgetINR:        mockDailyBudgetINR,
			TotalEstimatedCostINR: response_models.Rupees(days * mockDailyBudgetINR),
			CostSavingTips:        []string{"Use public transportation", "Eat at local restaurants", "Book accommodations in advance"},
		},
	}
}
