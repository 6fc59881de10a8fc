package request_models

// Query parameters for the catalog endpoints. Empty fields do not filter.

type FlightSearchParams struct {
	From          string `form:"from"`
	To            string `form:"to"`
	DepartureDate string `form:"departure_date" binding:"omitempty,datetime=2006-01-02"`
	ReturnDate    string `form:"return_date"`
	Passengers    int    `form:"passengers,default=1" binding:"min=1"`
	Class         string `form:"class,default=economy" binding:"oneof=economy business first"`
}

type HotelSearchParams struct {
	Location string `form:"location"`
	CheckIn  string `form:"checkin"`
	CheckOut string `form:"checkout"`
	Guests   int    `form:"guests,default=1"`
	Rooms    int    `form:"rooms,default=1"`
}

type RestaurantSearchParams struct {
	Location   string `form:"location"`
	Cuisine    string `form:"cuisine"`
	PriceRange string `form:"price_range"`
}

type PlaceSearchParams struct {
	Location string `form:"location"`
	Category string `form:"category"`
}
