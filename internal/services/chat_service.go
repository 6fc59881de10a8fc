package services

import (
	"context"
	"fmt"
	"strings"

	"voyage/internal/models/response_models"
	"voyage/pkg/metrics"
	"voyage/pkg/utils"
)

const domainChat = "chat"

type ChatServiceInterface interface {
	Reply(ctx context.Context, message string) (response_models.ChatReply, error)
}

type ChatService struct {
	pipeline LLMPipeline
}

func NewChatService(pipeline LLMPipeline) ChatServiceInterface {
	return &ChatService{pipeline: pipeline}
}

// Reply answers a free-form travel question. Model failures degrade to a
// keyword-matched canned answer; only an empty message is an error.
func (s *ChatService) Reply(ctx context.Context, message string) (response_models.ChatReply, error) {
	if strings.TrimSpace(message) == "" {
		return response_models.ChatReply{}, fmt.Errorf("%w: message is required", utils.ErrInvalidInput)
	}

	text := s.answer(ctx, message)
	return response_models.ChatReply{
		Response:        text,
		Suggestions:     chatSuggestions(message, text),
		Recommendations: chatRecommendations(message, text),
	}, nil
}

func (s *ChatService) answer(ctx context.Context, message string) string {
	if !s.pipeline.Available() {
		s.pipeline.metrics.RecordOutcome(domainChat, metrics.SourceMock)
		return mockChatResponse(message)
	}

	text, err := s.pipeline.complete(ctx, domainChat, chatPrompt(message))
	if err == nil && strings.TrimSpace(text) == "" {
		err = utils.ErrEmptyCompletionResponse
	}
	if err != nil {
		s.pipeline.logFallback(domainChat, failureReason(err), err)
		return mockChatResponse(message)
	}

	s.pipeline.metrics.RecordOutcome(domainChat, metrics.SourceLLM)
	return strings.TrimSpace(text)
}

func chatPrompt(message string) string {
	return fmt.Sprintf(`You are an expert AI Travel Assistant. Respond to this travel-related question or request:
"%s"

Guidelines:
- Be helpful, friendly, and knowledgeable about travel
- Provide specific, actionable advice when possible
- If asked about destinations, include practical information like best time to visit, budget considerations, and key attractions
- If asked about flights, hotels, or restaurants, provide realistic recommendations
- Keep responses conversational but informative
- If the question isn't travel-related, politely redirect to travel topics
- Limit responses to 2-3 paragraphs maximum

Respond naturally as a travel expert would.`, message)
}

type chatTopic struct {
	keywords []string
	response string
}

// chatTopics is checked in order; the first topic with a matching keyword answers.
var chatTopics = []chatTopic{
	{[]string{"japan"}, "Japan is an incredible destination! For a first visit, I'd recommend the Golden Route: Tokyo (3-4 days), Kyoto (2-3 days), and Osaka (1-2 days). **Best time to visit:** Spring (March-May) for cherry blossoms or autumn (September-November) for fall colors. **Budget:** $150-250/day for mid-range travel. **Must-visit places:** Senso-ji Temple in Asakusa, Fushimi Inari Shrine in Kyoto, Osaka Castle, and the bamboo groves of Arashiyama. Don't miss trying authentic ramen in Ichiran, kaiseki dining in Kyoto, and experiencing a traditional ryokan!"},
	{[]string{"paris"}, "Paris is magical year-round! I'd suggest 4-5 days minimum. **Best neighborhoods:** Le Marais (historic charm), Saint-Germain (elegant cafés), or Montmartre (artistic vibe). **Must-see:** Louvre Museum (book timed entry), Eiffel Tower at sunset, Notre-Dame Cathedral area, and a Seine river cruise. **Local tips:** Visit Sainte-Chapelle for stunning stained glass, explore covered passages like Galerie Vivienne, and dine at traditional bistros in the 11th arrondissement. Budget €120-180/day for comfortable travel."},
	{[]string{"italy"}, "Italy offers incredible diversity! **Classic route:** Rome (3 days for Colosseum, Vatican, Trevi Fountain), Florence (2 days for Uffizi, Duomo, Ponte Vecchio), Venice (2 days for St. Mark's Square, Doge's Palace, gondola rides). **Best time:** April-May or September-October for perfect weather. **Food highlights:** Carbonara in Rome, Bistecca alla Fiorentina in Florence, fresh seafood in Venice. **Pro tip:** Book skip-the-line tickets for major attractions and always make dinner reservations!"},
	{[]string{"budget", "cheap"}, "**Top budget destinations:** Thailand ($30-50/day) - try Bangkok's street food and Chiang Mai's temples. Vietnam ($25-40/day) - explore Hanoi's Old Quarter and Ha Long Bay. Czech Republic ($40-60/day) - Prague's stunning architecture and affordable beer. **Money-saving tips:** Travel during shoulder seasons, stay in hostels or guesthouses, eat at local markets, use public transport, and book flights 2-3 months ahead using Skyscanner or Google Flights."},
	{[]string{"beach", "tropical"}, "**Top beach destinations:** Bali, Indonesia - Seminyak for luxury, Canggu for surfing, Ubud for culture ($40-80/day). Maldives - overwater bungalows at resorts like Conrad Maldives or Four Seasons ($500-2000/night). Costa Rica - Manuel Antonio for wildlife, Tamarindo for surfing ($60-120/day). **Best time:** Bali (April-October), Maldives (November-April), Costa Rica (December-April). Always pack reef-safe sunscreen and water shoes!"},
	{[]string{"flight", "fly"}, "For the best flight deals, book domestic flights 1-3 months ahead and international flights 2-8 months in advance. Tuesday and Wednesday departures are often cheaper. Use flexible date searches and consider nearby airports. Clear your browser cookies between searches, and consider booking one-way tickets separately for better deals!"},
	{[]string{"hotel", "accommodation"}, "For accommodations, book directly with hotels for potential upgrades and better cancellation policies. Read recent reviews on multiple platforms. Consider location over luxury - being walkable to attractions saves time and money. Boutique hotels often offer more character than chains, and don't overlook vacation rentals for longer stays!"},
	{[]string{"first time", "beginner"}, "For first-time international travel, start with English-speaking countries or popular tourist destinations with good infrastructure. Always notify your bank of travel plans, get travel insurance, and keep digital copies of important documents. Pack light - you can buy almost anything you need at your destination!"},
	{[]string{"solo", "alone"}, "Solo travel is incredibly rewarding! Start with safe, tourist-friendly destinations like New Zealand, Japan, or Scandinavia. Stay in social accommodations like hostels to meet people. Trust your instincts, share your itinerary with someone at home, and don't be afraid to join group tours or activities to meet fellow travelers!"},
}

const defaultChatResponse = "I'd be happy to help you plan your trip! Whether you're looking for destination recommendations, travel tips, or help with bookings, I'm here to assist. What specific aspect of travel planning can I help you with today? Are you thinking about a particular destination, budget range, or type of experience?"

func mockChatResponse(message string) string {
	lower := strings.ToLower(message)
	for _, topic := range chatTopics {
		if containsAny(lower, topic.keywords...) {
			return topic.response
		}
	}
	return defaultChatResponse
}

func chatSuggestions(message, response string) []string {
	msg, resp := strings.ToLower(message), strings.ToLower(response)

	switch {
	case strings.Contains(msg, "japan") || strings.Contains(resp, "japan"):
		return []string{"Show me a 10-day Japan itinerary", "Find traditional ryokans", "What's the best time to see cherry blossoms?", "Recommend Japanese restaurants"}
	case strings.Contains(msg, "paris") || strings.Contains(resp, "paris"):
		return []string{"Create a 5-day Paris itinerary", "Find romantic restaurants", "Show me museum passes", "Best neighborhoods to stay"}
	case strings.Contains(msg, "italy") || strings.Contains(resp, "italy"):
		return []string{"Create a 7-day Italy itinerary", "Find budget-friendly accommodations", "Best time to visit historical sites", "Recommend local Italian cuisine"}
	case containsAny(msg, "budget", "cheap"):
		return []string{"Show me budget destinations in Asia", "Find hostels and budget hotels", "When is the cheapest time to fly?", "Create a $1000 Europe trip"}
	case containsAny(msg, "beach", "tropical"):
		return []string{"Find tropical beach destinations", "Recommend beach resorts", "Best time for beach vacations", "Water sports and activities"}
	case containsAny(msg, "flight", "fly"):
		return []string{"Find flight deals", "Book flights in advance", "Explore travel apps for flights", "Tips for budget-friendly flights"}
	case containsAny(msg, "hotel", "accommodation"):
		return []string{"Find hotel deals", "Book hotels directly", "Explore travel apps for hotels", "Tips for budget-friendly accommodations"}
	default:
		return []string{"Plan a weekend getaway", "Find flights to popular destinations", "Recommend family-friendly places", "Create a cultural tour itinerary"}
	}
}

func chatRecommendations(message, response string) []response_models.ChatRecommendation {
	msg, resp := strings.ToLower(message), strings.ToLower(response)

	switch {
	case strings.Contains(msg, "japan") || strings.Contains(resp, "japan"):
		return []response_models.ChatRecommendation{
			{Type: "Attraction", Title: "Senso-ji Temple, Tokyo", Description: "Ancient Buddhist temple in historic Asakusa district", Icon: "MapPin", Location: "Asakusa, Tokyo", Image: "/senso-ji-temple-tokyo-traditional-red-architecture.jpg"},
			{Type: "Experience", Title: "Traditional Ryokan Stay", Description: "Authentic Japanese inn experience with tatami mats and kaiseki dining", Icon: "Hotel", Location: "Kyoto/Hakone", Image: "/traditional-japanese-ryokan-interior-tatami-mats.jpg"},
			{Type: "Food", Title: "Tsukiji Outer Market", Description: "Fresh sushi and street food in Tokyo's famous fish market area", Icon: "Utensils", Location: "Tsukiji, Tokyo", Image: "/tsukiji-fish-market-fresh-sushi-tokyo.jpg"},
		}
	case strings.Contains(msg, "paris") || strings.Contains(resp, "paris"):
		return []response_models.ChatRecommendation{
			{Type: "Museum", Title: "Louvre Museum", Description: "World's largest art museum, home to the Mona Lisa", Icon: "MapPin", Location: "1st Arrondissement, Paris", Image: "/louvre-museum-paris-glass-pyramid-architecture.jpg"},
			{Type: "Landmark", Title: "Eiffel Tower", Description: "Iconic iron lattice tower, best viewed at sunset", Icon: "MapPin", Location: "Champ de Mars, Paris", Image: "/eiffel-tower-paris-sunset-golden-hour.jpg"},
			{Type: "Neighborhood", Title: "Le Marais District", Description: "Historic Jewish quarter with trendy boutiques and cafés", Icon: "MapPin", Location: "3rd & 4th Arrondissements", Image: "/le-marais-paris-historic-cobblestone-streets-cafes.jpg"},
		}
	case strings.Contains(msg, "italy") || strings.Contains(resp, "italy"):
		return []response_models.ChatRecommendation{
			{Type: "Historic Site", Title: "Colosseum, Rome", Description: "Ancient amphitheater and iconic symbol of Imperial Rome", Icon: "MapPin", Location: "Rome, Italy", Image: "/roman-colosseum-ancient-amphitheater-architecture.jpg"},
			{Type: "Art Gallery", Title: "Uffizi Gallery, Florence", Description: "Renaissance masterpieces including Botticelli's Birth of Venus", Icon: "MapPin", Location: "Florence, Italy", Image: "/uffizi-gallery-florence-renaissance-art-museum.jpg"},
			{Type: "Canal Experience", Title: "Grand Canal, Venice", Description: "Scenic gondola rides through Venice's main waterway", Icon: "MapPin", Location: "Venice, Italy", Image: "/venice-grand-canal-gondola-traditional-boats.jpg"},
		}
	case containsAny(msg, "flight", "fly"):
		return []response_models.ChatRecommendation{
			{Type: "Flight", Title: "Flight Search", Description: "Find the best flight deals", Icon: "Plane"},
		}
	case containsAny(msg, "hotel", "stay"):
		return []response_models.ChatRecommendation{
			{Type: "Hotel", Title: "Hotel Booking", Description: "Discover great accommodations", Icon: "MapPin"},
		}
	case containsAny(msg, "restaurant", "food"):
		return []response_models.ChatRecommendation{
			{Type: "Restaurant", Title: "Dining Options", Description: "Explore local cuisine", Icon: "Calendar"},
		}
	default:
		return []response_models.ChatRecommendation{}
	}
}
