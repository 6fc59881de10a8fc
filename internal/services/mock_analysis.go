package services

import (
	"regexp"
	"strconv"
	"strings"

	"voyage/internal/models/response_models"
)

const (
	defaultMockDestination = "Mumbai"
	defaultMockDays        = 7
	maxMockDays            = 30
)

// mockDestinations is matched in order; the first one found in the request wins.
var mockDestinations = []string{"Mumbai", "Delhi", "Goa", "Bangalore", "Chennai", "Kolkata", "Jaipur", "Kerala"}

var (
	digitDaysPattern   = regexp.MustCompile(`\b(\d{1,3})[\s-]*(?:days?|nights?)\b`)
	writtenDaysPattern = regexp.MustCompile(`\b(one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|thirteen|fourteen)[\s-]+(?:days?|nights?)\b`)
	weekendPattern     = regexp.MustCompile(`\bweekend\b`)
	weeksPattern       = regexp.MustCompile(`\b(a|one|two|three|four|\d)[\s-]+weeks?\b`)
)

var writtenNumbers = map[string]int{
	"a": 1, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6, "seven": 7,
	"eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
}

// MockTripAnalysis derives a TripAnalysis from keywords in the request.
func MockTripAnalysis(request string) response_models.TripAnalysis {
	lower := strings.ToLower(request)
	days := extractDayCount(lower)

	return response_models.TripAnalysis{
		TravelType: mockTravelType(lower),
		Budget:     mockBudget(lower),
		Duration: response_models.TripDuration{
			Days:     days,
			Category: durationCategory(days),
		},
		Preferences: response_models.TripPreferences{
			Accommodation:  []string{"hotel", "resort"},
			Dining:         []string{"local cuisine", "fine dining"},
			Activities:     []string{"sightseeing", "cultural tours"},
			Transportation: []string{"flight", "taxi"},
		},
		Destinations: response_models.TripDestinations{
			Primary:   mockDestination(lower),
			Secondary: []string{},
		},
		Travelers:           response_models.TravelerCount{Adults: 2},
		Dates:               response_models.TripDates{Flexible: true},
		SpecialRequirements: []string{},
	}
}

func mockTravelType(lower string) string {
	switch {
	case strings.Contains(lower, "business"):
		return "business"
	case strings.Contains(lower, "family"):
		return "family"
	case strings.Contains(lower, "romantic"):
		return "romantic"
	case strings.Contains(lower, "adventure"):
		return "adventure"
	case containsAny(lower, "culture", "cultural", "heritage", "museum"):
		return "cultural"
	default:
		return "leisure"
	}
}

func mockBudget(lower string) string {
	switch {
	case containsAny(lower, "luxury", "expensive"):
		return "luxury"
	case containsAny(lower, "budget", "cheap"):
		return "budget"
	default:
		return "mid-range"
	}
}

func mockDestination(lower string) string {
	for _, dest := range mockDestinations {
		if strings.Contains(lower, strings.ToLower(dest)) {
			return dest
		}
	}
	return defaultMockDestination
}

// extractDayCount reads "5 days", "5-day", "five days", "a week" or "weekend"
// from an already lowercased request. The result is clamped to 1..30.
func extractDayCount(lower string) int {
	days := defaultMockDays

	switch {
	case digitDaysPattern.MatchString(lower):
		days, _ = strconv.Atoi(digitDaysPattern.FindStringSubmatch(lower)[1])
	case writtenDaysPattern.MatchString(lower):
		days = writtenNumbers[writtenDaysPattern.FindStringSubmatch(lower)[1]]
	case weekendPattern.MatchString(lower):
		days = 2
	case weeksPattern.MatchString(lower):
		count := weeksPattern.FindStringSubmatch(lower)[1]
		n, ok := writtenNumbers[count]
		if !ok {
			n, _ = strconv.Atoi(count)
		}
		days = n * 7
	}

	if days < 1 {
		return 1
	}
	if days > maxMockDays {
		return maxMockDays
	}
	return days
}

func durationCategory(days int) string {
	switch {
	case days <= 3:
		return "short"
	case days <= 7:
		return "medium"
	default:
		return "long"
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
