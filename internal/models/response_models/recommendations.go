package response_models

type FlightRecommendations struct {
	Recommendations []FlightRecommendation `json:"recommendations" validate:"min=1,dive"`
	Tips            []string               `json:"tips"`
	Alternatives    []string               `json:"alternatives"`
	BestBookingTime string                 `json:"bestBookingTime"`
}

type FlightRecommendation struct {
	Airline       string  `json:"airline"`
	Route         string  `json:"route"`
	Class         string  `json:"class" validate:"oneof=economy premium-economy business first"`
	PriceUSD      float64 `json:"priceUSD" validate:"gte=0"`
	PriceINR      Rupees  `json:"priceINR"`
	Duration      string  `json:"duration"`
	Stops         int     `json:"stops" validate:"min=0"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
	Reasoning     string  `json:"reasoning"`
	BookingURL    string  `json:"bookingUrl"`
	Baggage       string  `json:"baggage"`
	Cancellation  string  `json:"cancellation"`
}

type HotelRecommendations struct {
	Recommendations []HotelRecommendation `json:"recommendations" validate:"min=1,dive"`
	Neighborhoods   []Neighborhood        `json:"neighborhoods"`
	Tips            []string              `json:"tips"`
}

type HotelRecommendation struct {
	Name               string   `json:"name"`
	Location           string   `json:"location"`
	Category           string   `json:"category" validate:"oneof=budget mid-range luxury ultra-luxury"`
	Rating             float64  `json:"rating" validate:"gte=0"`
	PricePerNightUSD   float64  `json:"pricePerNightUSD" validate:"gte=0"`
	PricePerNightINR   Rupees   `json:"pricePerNightINR"`
	Amenities          []string `json:"amenities"`
	Reasoning          string   `json:"reasoning"`
	BookingURL         string   `json:"bookingUrl"`
	CheckInTime        string   `json:"checkInTime"`
	CheckOutTime       string   `json:"checkOutTime"`
	CancellationPolicy string   `json:"cancellationPolicy"`
}

type Neighborhood struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Suitability     string `json:"suitability"`
	AveragePriceINR Rupees `json:"averagePriceINR"`
}

type RestaurantRecommendations struct {
	Recommendations []RestaurantRecommendation `json:"recommendations" validate:"min=1,dive"`
	FoodScene       FoodScene                  `json:"foodScene"`
}

type RestaurantRecommendation struct {
	Name                string   `json:"name"`
	Cuisine             string   `json:"cuisine"`
	AverageMealPriceINR Rupees   `json:"averageMealPriceINR" validate:"min=0"`
	Location            string   `json:"location"`
	Specialties         []string `json:"specialties"`
	Atmosphere          string   `json:"atmosphere"`
	Reasoning           string   `json:"reasoning"`
	ReservationURL      string   `json:"reservationUrl,omitempty"`
	OpeningHours        string   `json:"openingHours"`
	PhoneNumber         string   `json:"phoneNumber,omitempty"`
}

type FoodScene struct {
	Highlights       []string         `json:"highlights"`
	LocalSpecialties []string         `json:"localSpecialties"`
	DiningTips       []string         `json:"diningTips"`
	AverageMealCosts AverageMealCosts `json:"averageMealCosts"`
}

type AverageMealCosts struct {
	StreetFood   Rupees `json:"streetFood"`
	CasualDining Rupees `json:"casualDining"`
	FineDining   Rupees `json:"fineDining"`
}

// AttractionTypes lists the values accepted for Attraction.Type.
var AttractionTypes = []string{
	"museum", "landmark", "nature", "entertainment", "cultural", "historical", "temple",
	"park", "shopping", "beach", "market", "monument", "garden", "zoo", "aquarium",
	"palace", "fort", "religious", "adventure",
}

type PlacesRecommendations struct {
	Attractions     []Attraction    `json:"attractions" validate:"min=1,dive"`
	Itinerary       []ItineraryDay  `json:"itinerary" validate:"min=1,dive"`
	LocalInsights   []string        `json:"localInsights"`
	BudgetBreakdown BudgetBreakdown `json:"budgetBreakdown"`
}

type Attraction struct {
	Name              string   `json:"name"`
	Type              string   `json:"type" validate:"oneof=museum landmark nature entertainment cultural historical temple park shopping beach market monument garden zoo aquarium palace fort religious adventure"`
	Location          string   `json:"location"`
	Duration          string   `json:"duration"`
	BestTime          string   `json:"bestTime"`
	TicketPriceINR    Rupees   `json:"ticketPriceINR" validate:"min=0"`
	Reasoning         string   `json:"reasoning"`
	OfficialURL       string   `json:"officialUrl,omitempty"`
	NearbyAttractions []string `json:"nearbyAttractions"`
	Accessibility     string   `json:"accessibility"`
}

type ItineraryDay struct {
	Day                int      `json:"day" validate:"min=1"`
	Theme              string   `json:"theme"`
	Activities         []string `json:"activities"`
	EstimatedCostINR   Rupees   `json:"estimatedCostINR" validate:"min=0"`
	Tips               string   `json:"tips"`
	TransportationTips string   `json:"transportationTips"`
}

type BudgetBreakdown struct {
	DailyBudgetINR        Rupees   `json:"dailyBudgetINR"`
	TotalEstimatedCostINR Rupees   `json:"totalEstimatedCostINR"`
	CostSavingTips        []string `json:"costSavingTips"`
}
