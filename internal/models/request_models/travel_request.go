package request_models

type TravelAnalysisRequest struct {
	Request string `json:"request" binding:"required"`
	From    string `json:"from"`
	To      string `json:"to"`
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type FlightSearchRequest struct {
	From          string `json:"from" binding:"required"`
	To            string `json:"to" binding:"required"`
	DepartureDate string `json:"departureDate" binding:"required"`
	ReturnDate    string `json:"returnDate"`
	Passengers    int    `json:"passengers" binding:"omitempty,min=1,max=9"`
	Class         string `json:"class"`
}

type PlacesSearchRequest struct {
	Destination string `json:"destination" binding:"required"`
	Category    string `json:"category"`
	Duration    string `json:"duration"`
	Budget      string `json:"budget"`
}
