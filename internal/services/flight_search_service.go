package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"voyage/internal/models/request_models"
	"voyage/internal/models/response_models"
	"voyage/pkg/currency"
	"voyage/pkg/metrics"
	"voyage/pkg/utils"
)

const domainFlightSearch = "flight_search"

type FlightSearchServiceInterface interface {
	Search(ctx context.Context, req request_models.FlightSearchRequest) ([]response_models.AIFlight, error)
}

type FlightSearchService struct {
	pipeline  LLMPipeline
	converter currency.Converter
}

func NewFlightSearchService(pipeline LLMPipeline, converter currency.Converter) FlightSearchServiceInterface {
	return &FlightSearchService{pipeline: pipeline, converter: converter}
}

// Search asks the model for concrete flight options on one route. Unlike the
// recommendation generators there is no mock: failures surface as errors.
func (s *FlightSearchService) Search(ctx context.Context, req request_models.FlightSearchRequest) ([]response_models.AIFlight, error) {
	if !s.pipeline.Available() {
		s.pipeline.metrics.RecordOutcome(domainFlightSearch, metrics.SourceError)
		return nil, fmt.Errorf("%w: no LLM credential configured", utils.ErrLLMUnavailable)
	}
	if req.Passengers < 1 {
		req.Passengers = 1
	}
	if req.Class == "" {
		req.Class = "economy"
	}

	raw, err := s.pipeline.complete(ctx, domainFlightSearch, flightSearchPrompt(req))
	if err != nil {
		s.pipeline.logger.Warn("flight search completion failed",
			zap.String("reason", failureReason(err)),
			zap.Error(err),
		)
		s.pipeline.metrics.RecordOutcome(domainFlightSearch, metrics.SourceError)
		return nil, fmt.Errorf("%w: %w", utils.ErrLLMUnavailable, err)
	}

	flights, err := s.parseFlights(raw)
	if err != nil {
		s.pipeline.logger.Warn("flight search returned unusable output",
			zap.String("reason", reasonMalformed),
			zap.Error(err),
		)
		s.pipeline.metrics.RecordOutcome(domainFlightSearch, metrics.SourceError)
		return nil, err
	}

	s.pipeline.metrics.RecordOutcome(domainFlightSearch, metrics.SourceLLM)
	return flights, nil
}

// parseFlights keeps every array element that decodes; entries with the
// wrong shape are dropped individually.
func (s *FlightSearchService) parseFlights(raw string) ([]response_models.AIFlight, error) {
	array, ok := utils.ExtractJSONArray(raw)
	if !ok {
		return nil, fmt.Errorf("%w: no JSON array in flight search response", utils.ErrUnexpectedBehaviorOfAI)
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(array), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUnexpectedBehaviorOfAI, err)
	}

	flights := make([]response_models.AIFlight, 0, len(items))
	for i, item := range items {
		var flight response_models.AIFlight
		if err := json.Unmarshal(item, &flight); err != nil {
			s.pipeline.logger.Debug("skipping malformed flight", zap.Int("index", i), zap.Error(err))
			continue
		}
		flights = append(flights, s.normalizeFlight(flight, len(flights)+1))
	}

	if len(flights) == 0 && len(items) > 0 {
		return nil, fmt.Errorf("%w: no usable flights in response", utils.ErrUnexpectedBehaviorOfAI)
	}
	return flights, nil
}

func (s *FlightSearchService) normalizeFlight(flight response_models.AIFlight, n int) response_models.AIFlight {
	if strings.TrimSpace(flight.ID) == "" {
		flight.ID = fmt.Sprintf("flight-%d", n)
	}
	if flight.StopCities == nil {
		flight.StopCities = []string{}
	}
	if flight.Amenities == nil {
		flight.Amenities = []string{}
	}

	inr := s.converter.ToINR(float64(flight.PriceUSD))
	flight.PriceINR = inr
	flight.Price = inr
	flight.PriceFormatted = currency.FormatINR(inr)
	flight.Currency = "INR"
	return flight
}

func flightSearchPrompt(req request_models.FlightSearchRequest) string {
	returnDate := req.ReturnDate
	if returnDate == "" {
		returnDate = "One-way"
	}

	return fmt.Sprintf(`You are a flight search expert. Generate ONLY realistic flight options for the EXACT route requested.

SEARCH CRITERIA:
From: %[1]s
To: %[2]s
Departure Date: %[3]s
Return Date: %[4]s
Passengers: %[5]d
Class: %[6]s

IMPORTANT RULES:
1. ONLY generate flights that go from "%[1]s" to "%[2]s"
2. For domestic routes (within same country), prioritize domestic airlines and direct flights
3. For international routes, include realistic connecting flights through major hubs
4. Do NOT include flights that go to unrelated destinations
5. Use appropriate airport codes for the cities mentioned
6. Price flights realistically based on route distance and class

Generate 6-8 realistic flight options with airlines that actually operate on this route,
realistic flight numbers, times and durations, and realistic pricing in USD.

For domestic Indian routes use IndiGo, SpiceJet, Air India, Vistara or GoAir, mostly direct
(2-3 hours for major routes). Prices: Economy $80-200, Business $200-400.

Return ONLY a JSON array with this exact structure:
[
  {
    "id": "flight-1",
    "airline": {"name": "IndiGo", "code": "6E", "logo": "/airline-logos/indigo.png"},
    "flightNumber": "6E123",
    "departure": {"airport": "CCU", "city": "%[1]s", "time": "08:30", "date": "%[3]s"},
    "arrival": {"airport": "BOM", "city": "%[2]s", "time": "11:00", "date": "%[3]s"},
    "duration": "2h 30m",
    "stops": 0,
    "stopCities": [],
    "priceUSD": 120,
    "class": "%[6]s",
    "baggage": "1 carry-on, 1 checked bag",
    "amenities": ["WiFi", "Entertainment", "Meals"],
    "aircraft": "Airbus A320"
  }
]

Focus on accuracy and relevance to the specific route requested.`,
		req.From, req.To, req.DepartureDate, returnDate, req.Passengers, req.Class)
}
