package response_models

import (
	"encoding/json"
	"strings"

	"voyage/pkg/currency"
)

type AIFlight struct {
	ID             string         `json:"id"`
	Airline        AIAirline      `json:"airline"`
	FlightNumber   string         `json:"flightNumber"`
	Departure      FlightEndpoint `json:"departure"`
	Arrival        FlightEndpoint `json:"arrival"`
	Duration       string         `json:"duration"`
	Stops          int            `json:"stops"`
	StopCities     []string       `json:"stopCities"`
	PriceUSD       FlexibleUSD    `json:"priceUSD"`
	PriceINR       int            `json:"priceINR"`
	Price          int            `json:"price"`
	PriceFormatted string         `json:"priceFormatted"`
	Currency       string         `json:"currency"`
	Class          string         `json:"class"`
	Baggage        string         `json:"baggage"`
	Amenities      []string       `json:"amenities"`
	Aircraft       string         `json:"aircraft"`
}

type AIAirline struct {
	Name string `json:"name"`
	Code string `json:"code"`
	Logo string `json:"logo"`
}

type FlightEndpoint struct {
	Airport string `json:"airport"`
	City    string `json:"city"`
	Time    string `json:"time"`
	Date    string `json:"date"`
}

// FlexibleUSD accepts 120, 120.5 or "$120" and always encodes as a number.
type FlexibleUSD float64

func (f *FlexibleUSD) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "null" {
		*f = 0
		return nil
	}
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexibleUSD(currency.ParseUSDFromText(s))
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = FlexibleUSD(v)
	return nil
}

type FlightSearchResponse struct {
	Flights    []AIFlight `json:"flights"`
	Count      int        `json:"count"`
	SearchData any        `json:"searchData"`
}
