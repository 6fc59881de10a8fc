package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"voyage/internal/models/request_models"
	"voyage/internal/models/response_models"
	"voyage/pkg/currency"
	"voyage/pkg/metrics"
	"voyage/pkg/utils"
)

const domainPlacesSearch = "places_search"

type PlacesSearchServiceInterface interface {
	Search(ctx context.Context, req request_models.PlacesSearchRequest) ([]response_models.AIPlace, error)
}

type PlacesSearchService struct {
	pipeline  LLMPipeline
	converter currency.Converter
}

func NewPlacesSearchService(pipeline LLMPipeline, converter currency.Converter) PlacesSearchServiceInterface {
	return &PlacesSearchService{pipeline: pipeline, converter: converter}
}

// Search asks the model for real attractions in a destination. Output that
// cannot be parsed is replaced by a single sample place; a failed call is an
// error.
func (s *PlacesSearchService) Search(ctx context.Context, req request_models.PlacesSearchRequest) ([]response_models.AIPlace, error) {
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" {
		return nil, fmt.Errorf("%w: destination is required", utils.ErrInvalidInput)
	}

	if !s.pipeline.Available() {
		s.pipeline.metrics.RecordOutcome(domainPlacesSearch, metrics.SourceMock)
		return s.normalizePlaces(samplePlaces(req), req.Destination), nil
	}

	raw, err := s.pipeline.complete(ctx, domainPlacesSearch, placesSearchPrompt(req))
	if err != nil {
		s.pipeline.logger.Warn("places search completion failed",
			zap.String("reason", failureReason(err)),
			zap.Error(err),
		)
		s.pipeline.metrics.RecordOutcome(domainPlacesSearch, metrics.SourceError)
		return nil, fmt.Errorf("%w: %w", utils.ErrLLMUnavailable, err)
	}

	places, err := s.parsePlaces(raw)
	if err != nil {
		s.pipeline.logFallback(domainPlacesSearch, reasonMalformed, err)
		return s.normalizePlaces(samplePlaces(req), req.Destination), nil
	}

	s.pipeline.metrics.RecordOutcome(domainPlacesSearch, metrics.SourceLLM)
	return s.normalizePlaces(places, req.Destination), nil
}

// parsePlaces keeps every element that decodes and has a name.
func (s *PlacesSearchService) parsePlaces(raw string) ([]response_models.AIPlace, error) {
	array, ok := utils.ExtractJSONArray(raw)
	if !ok {
		return nil, fmt.Errorf("%w: no JSON array in places search response", utils.ErrUnexpectedBehaviorOfAI)
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(array), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUnexpectedBehaviorOfAI, err)
	}

	places := make([]response_models.AIPlace, 0, len(items))
	for i, item := range items {
		var place response_models.AIPlace
		if err := json.Unmarshal(item, &place); err != nil {
			s.pipeline.logger.Debug("skipping malformed place", zap.Int("index", i), zap.Error(err))
			continue
		}
		if strings.TrimSpace(place.Name) == "" {
			s.pipeline.logger.Debug("skipping unnamed place", zap.Int("index", i))
			continue
		}
		places = append(places, place)
	}

	if len(places) == 0 && len(items) > 0 {
		return nil, fmt.Errorf("%w: no usable places in response", utils.ErrUnexpectedBehaviorOfAI)
	}
	return places, nil
}

func (s *PlacesSearchService) normalizePlaces(places []response_models.AIPlace, destination string) []response_models.AIPlace {
	for i := range places {
		place := &places[i]
		place.ID = i + 1
		place.PriceINR = s.placePriceINR(string(place.PriceUSD))
		place.Image = "/images/places/" + url.PathEscape(strings.Join(strings.Fields(strings.ToLower(place.Name)), "-")) + ".jpg"
		place.BookingURL = "https://www.google.com/search?q=" + url.QueryEscape(place.Name+" "+destination+" booking")
		place.Coordinates = response_models.PlaceCoordinates{}
		if place.Features == nil {
			place.Features = []string{}
		}
		if place.Highlights == nil {
			place.Highlights = []string{}
		}
	}
	return places
}

// placePriceINR maps "$15" to "₹1,249". Missing and zero prices read as
// "Free"; text without an amount is kept as given.
func (s *PlacesSearchService) placePriceINR(price string) string {
	price = strings.TrimSpace(price)
	if price == "" || strings.EqualFold(price, "free") || strings.Trim(price, "$0.") == "" {
		return "Free"
	}
	return s.converter.ConvertPriceStringToINR(price)
}

func samplePlaces(req request_models.PlacesSearchRequest) []response_models.AIPlace {
	category := req.Category
	if category == "" {
		category = "Attraction"
	}
	return []response_models.AIPlace{{
		Name:             "Popular Attraction in " + req.Destination,
		Category:         category,
		Rating:           4.5,
		Reviews:          12500,
		PriceUSD:         "$15",
		Duration:         "2-3 hours",
		Address:          "Main Street, " + req.Destination,
		Description:      fmt.Sprintf("A must-visit attraction in %s offering great experiences for visitors.", req.Destination),
		OpeningHours:     "9:00 AM - 6:00 PM",
		Features:         []string{"Guided Tours", "Photography Allowed", "Gift Shop"},
		Highlights:       []string{"Scenic Views", "Historical Significance", "Cultural Experience"},
		BestTimeToVisit:  "Morning hours for fewer crowds",
		HowToGet:         "Accessible by public transport",
		ImageDescription: "A detailed description for generating a realistic photo of this place.",
	}}
}

func placesSearchPrompt(req request_models.PlacesSearchRequest) string {
	category := ""
	if req.Category != "" {
		category = fmt.Sprintf(" in the %s category", req.Category)
	}
	budget := req.Budget
	if budget == "" {
		budget = "any budget"
	}
	duration := req.Duration
	if duration == "" {
		duration = "any duration"
	}

	return fmt.Sprintf(`Generate 5-8 realistic places to visit in %[1]s%[2]s.

For each place, provide:
- name: Real place name
- category: Type of attraction
- rating: Realistic rating (4.0-4.9)
- reviews: Number of reviews (1000-50000)
- priceUSD: Entry price in USD (or "Free")
- duration: Time needed to visit
- address: Real street address
- description: 2-3 sentence description
- openingHours: Realistic opening hours
- features: Array of 3-4 features/amenities
- highlights: Array of 3-4 main attractions
- bestTimeToVisit: Best time recommendation
- howToGet: Transportation information
- imageDescription: Detailed description for generating a realistic photo of this place (architecture, landscape, activities, atmosphere)

Budget context: %[3]s
Duration preference: %[4]s

Return as valid JSON array with these exact field names. Make sure all places are real and exist in %[1]s.`,
		req.Destination, category, budget, duration)
}
