package response_models

// TripAnalysis is the structured reading of a free-text travel request.
type TripAnalysis struct {
	TravelType          string           `json:"travelType" validate:"oneof=business leisure family romantic adventure cultural"`
	Budget              string           `json:"budget" validate:"oneof=budget mid-range luxury ultra-luxury"`
	Duration            TripDuration     `json:"duration"`
	Preferences         TripPreferences  `json:"preferences"`
	Destinations        TripDestinations `json:"destinations"`
	Travelers           TravelerCount    `json:"travelers"`
	Dates               TripDates        `json:"dates"`
	SpecialRequirements []string         `json:"specialRequirements"`
}

type TripDuration struct {
	Days     int    `json:"days" validate:"min=1"`
	Category string `json:"category" validate:"oneof=short medium long"`
}

type TripPreferences struct {
	Accommodation  []string `json:"accommodation"`
	Dining         []string `json:"dining"`
	Activities     []string `json:"activities"`
	Transportation []string `json:"transportation"`
}

type TripDestinations struct {
	Primary   string   `json:"primary" validate:"required"`
	Secondary []string `json:"secondary" schema:"optional"`
}

type TravelerCount struct {
	Adults   int `json:"adults" validate:"min=0"`
	Children int `json:"children" validate:"min=0"`
	Infants  int `json:"infants" validate:"min=0"`
}

// TripDates keeps departure and return nullable; a missing key reads as null.
type TripDates struct {
	Departure *string `json:"departure"`
	Return    *string `json:"return"`
	Flexible  bool    `json:"flexible"`
}
