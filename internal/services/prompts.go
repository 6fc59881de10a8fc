package services

import (
	"fmt"
	"strings"

	"voyage/internal/models/response_models"
)

const jsonOnlyInstruction = "Return ONLY a valid JSON object with this exact structure (no markdown, no explanations):"

func tripAnalysisPrompt(request string) string {
	return fmt.Sprintf(`Analyze this travel request and extract structured information as valid JSON:
"%s"

Consider:
- Travel type and purpose
- Budget indicators (luxury, budget, etc.)
- Duration clues
- Destination preferences
- Number of travelers
- Special requirements or preferences
- Accommodation preferences
- Activity interests

Allowed values:
- travelType: "business", "leisure", "family", "romantic", "adventure", "cultural"
- budget: "budget", "mid-range", "luxury", "ultra-luxury"
- duration.category: "short" (1-3 days), "medium" (4-7 days), "long" (8+ days)

%s
{
  "travelType": "leisure",
  "budget": "mid-range",
  "duration": {"days": 7, "category": "medium"},
  "preferences": {
    "accommodation": ["hotel", "resort"],
    "dining": ["local cuisine", "fine dining"],
    "activities": ["sightseeing", "cultural tours"],
    "transportation": ["flight", "taxi"]
  },
  "destinations": {"primary": "Mumbai", "secondary": ["Goa", "Delhi"]},
  "travelers": {"adults": 2, "children": 0, "infants": 0},
  "dates": {"departure": null, "return": null, "flexible": true},
  "specialRequirements": []
}`, request, jsonOnlyInstruction)
}

func flightPrompt(analysis response_models.TripAnalysis, from, to string) string {
	return fmt.Sprintf(`You are an expert travel agent. Based on this travel analysis, recommend flights from %[1]s to %[2]s:

%[3]s

"class" must be one of "economy", "premium-economy", "business", "first".
Prices are in US dollars; "priceUSD" is the fare per adult.

%[4]s
{
  "recommendations": [
    {
      "airline": "IndiGo",
      "route": "%[1]s to %[2]s",
      "class": "economy",
      "priceUSD": 150,
      "priceINR": 12488,
      "duration": "2h 30m",
      "stops": 0,
      "departureTime": "10:30 AM",
      "arrivalTime": "1:00 PM",
      "reasoning": "Best value for money with good timing",
      "bookingUrl": "https://www.goindigo.in",
      "baggage": "15kg checked, 7kg cabin",
      "cancellation": "Free cancellation within 24 hours"
    }
  ],
  "tips": ["Book 2-3 months in advance", "Check for direct flights"],
  "alternatives": ["Train travel", "Bus services"],
  "bestBookingTime": "Tuesday and Wednesday mornings"
}

Provide 3-5 flight recommendations with realistic pricing and details.`,
		from, to, tripContext(analysis, true), jsonOnlyInstruction)
}

func hotelPrompt(analysis response_models.TripAnalysis, destination string) string {
	return fmt.Sprintf(`Recommend hotels in %s based on this analysis:

%s

"category" must be one of "budget", "mid-range", "luxury", "ultra-luxury". "rating" is between 0 and 5.

%s
{
  "recommendations": [
    {
      "name": "The Taj Mahal Palace",
      "location": "Colaba, Mumbai",
      "category": "luxury",
      "rating": 4.5,
      "pricePerNightUSD": 200,
      "pricePerNightINR": 16650,
      "amenities": ["WiFi", "Pool", "Spa", "Restaurant"],
      "reasoning": "Iconic luxury hotel with excellent service",
      "bookingUrl": "https://www.tajhotels.com",
      "checkInTime": "3:00 PM",
      "checkOutTime": "12:00 PM",
      "cancellationPolicy": "Free cancellation up to 24 hours before check-in"
    }
  ],
  "neighborhoods": [
    {
      "name": "Colaba",
      "description": "Historic area near Gateway of India",
      "suitability": "Perfect for first-time visitors",
      "averagePriceINR": 8000
    }
  ],
  "tips": ["Book early for better rates", "Check for package deals"]
}

Provide 3-5 hotel recommendations with realistic details.`,
		destination, tripContext(analysis, true), jsonOnlyInstruction)
}

func restaurantPrompt(analysis response_models.TripAnalysis, destination string) string {
	return fmt.Sprintf(`Recommend restaurants in %s based on this analysis:

%s

All prices are in Indian rupees.

%s
{
  "recommendations": [
    {
      "name": "Trishna",
      "cuisine": "Seafood",
      "averageMealPriceINR": 2500,
      "location": "Fort, Mumbai",
      "specialties": ["Koliwada Prawns", "Crab Curry"],
      "atmosphere": "Fine dining with modern Indian cuisine",
      "reasoning": "Award-winning restaurant known for innovative seafood",
      "reservationUrl": "https://www.trishna-mumbai.com",
      "openingHours": "12:00 PM - 3:00 PM, 7:00 PM - 11:30 PM",
      "phoneNumber": "+91 22 2270 3213"
    }
  ],
  "foodScene": {
    "highlights": ["Street food culture", "Fine dining scene"],
    "localSpecialties": ["Vada Pav", "Pav Bhaji", "Bombay Duck"],
    "diningTips": ["Try street food at Mohammed Ali Road", "Book fine dining in advance"],
    "averageMealCosts": {"streetFood": 100, "casualDining": 500, "fineDining": 2000}
  }
}

Provide 3-5 restaurant recommendations with realistic details.`,
		destination, tripContext(analysis, false), jsonOnlyInstruction)
}

func placesPrompt(analysis response_models.TripAnalysis, destination string) string {
	types := make([]string, len(response_models.AttractionTypes))
	for i, t := range response_models.AttractionTypes {
		types[i] = `"` + t + `"`
	}

	return fmt.Sprintf(`Recommend places and create an itinerary for %[1]s based on this analysis:

%[2]s

IMPORTANT: For the "type" field, use ONLY these exact values:
%[3]s

%[4]s
{
  "attractions": [
    {
      "name": "Gateway of India",
      "type": "landmark",
      "location": "Colaba, Mumbai",
      "duration": "1-2 hours",
      "bestTime": "Early morning or evening",
      "ticketPriceINR": 0,
      "reasoning": "Iconic landmark and starting point for Mumbai exploration",
      "officialUrl": "https://www.maharashtratourism.gov.in",
      "nearbyAttractions": ["Taj Mahal Palace", "Colaba Causeway"],
      "accessibility": "Wheelchair accessible"
    }
  ],
  "itinerary": [
    {
      "day": 1,
      "theme": "Historic Mumbai",
      "activities": ["Visit Gateway of India", "Explore Colaba Causeway", "Taj Mahal Palace tour"],
      "estimatedCostINR": 2000,
      "tips": "Start early to avoid crowds",
      "transportationTips": "Use local trains or taxis"
    }
  ],
  "localInsights": ["Mumbai locals are called Mumbaikars", "Local trains are the lifeline of the city"],
  "budgetBreakdown": {
    "dailyBudgetINR": 3000,
    "totalEstimatedCostINR": 21000,
    "costSavingTips": ["Use local trains", "Eat at local restaurants"]
  }
}

Create a %[5]d-day itinerary with realistic attractions and costs.
Remember: Use only the specified type values exactly as listed above.`,
		destination, tripContext(analysis, false), strings.Join(types, ", "), jsonOnlyInstruction, analysis.Duration.Days)
}

func travelSummaryPrompt(request string) string {
	return fmt.Sprintf(`Provide a comprehensive travel summary and expert advice for this request:
"%s"

Include:
- Best time to visit
- Budget considerations
- Cultural insights
- Practical tips
- Weather considerations
- Local customs
- Transportation advice
- Safety information

Write in a friendly, expert tone as a professional travel advisor.
Keep it informative but concise (300-500 words).`, request)
}

// tripContext renders the analysis fields a recommendation prompt conditions on.
func tripContext(analysis response_models.TripAnalysis, withTravelers bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Travel Type: %s\n", analysis.TravelType)
	fmt.Fprintf(&b, "Budget: %s\n", analysis.Budget)
	fmt.Fprintf(&b, "Duration: %d days\n", analysis.Duration.Days)
	if withTravelers {
		fmt.Fprintf(&b, "Travelers: %d adults, %d children, %d infants\n",
			analysis.Travelers.Adults, analysis.Travelers.Children, analysis.Travelers.Infants)
	}
	if prefs := joinNonEmpty(analysis.Preferences.Accommodation, analysis.Preferences.Activities, analysis.Preferences.Dining); prefs != "" {
		fmt.Fprintf(&b, "Preferences: %s\n", prefs)
	}
	if len(analysis.SpecialRequirements) > 0 {
		fmt.Fprintf(&b, "Special Requirements: %s\n", strings.Join(analysis.SpecialRequirements, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

func joinNonEmpty(lists ...[]string) string {
	var all []string
	for _, list := range lists {
		for _, item := range list {
			if item = strings.TrimSpace(item); item != "" {
				all = append(all, item)
			}
		}
	}
	return strings.Join(all, ", ")
}
