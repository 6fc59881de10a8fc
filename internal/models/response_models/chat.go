package response_models

type ChatReply struct {
	Response        string               `json:"response"`
	Suggestions     []string             `json:"suggestions"`
	Recommendations []ChatRecommendation `json:"recommendations"`
}

// ChatRecommendation is a card the assistant UI renders under a reply.
type ChatRecommendation struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Location    string `json:"location,omitempty"`
	Image       string `json:"image,omitempty"`
}
