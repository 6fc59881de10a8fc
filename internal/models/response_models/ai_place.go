package response_models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type AIPlace struct {
	ID               int              `json:"id"`
	Name             string           `json:"name"`
	Category         string           `json:"category"`
	Rating           float64          `json:"rating"`
	Reviews          int              `json:"reviews"`
	PriceUSD         PriceText        `json:"priceUSD"`
	PriceINR         string           `json:"priceINR"`
	Duration         string           `json:"duration"`
	Address          string           `json:"address"`
	Description      string           `json:"description"`
	OpeningHours     string           `json:"openingHours"`
	Features         []string         `json:"features"`
	Highlights       []string         `json:"highlights"`
	BestTimeToVisit  string           `json:"bestTimeToVisit"`
	HowToGet         string           `json:"howToGet"`
	ImageDescription string           `json:"imageDescription"`
	Image            string           `json:"image"`
	BookingURL       string           `json:"bookingUrl"`
	Coordinates      PlaceCoordinates `json:"coordinates"`
}

type PlaceCoordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PriceText keeps an entry price as text: "$15", "Free" and 15 all decode.
type PriceText string

func (p *PriceText) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	switch {
	case text == "null":
		*p = ""
		return nil
	case strings.HasPrefix(text, `"`):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = PriceText(s)
		return nil
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("price must be a string or a number, got %s", text)
	}
	*p = PriceText(strconv.FormatFloat(v, 'f', -1, 64))
	return nil
}

type PlacesSearchResponse struct {
	Places       []AIPlace `json:"places"`
	SearchParams any       `json:"searchParams"`
}
