package utils

import (
	"context"
	"fmt"
	"strings"

	"voyage/internal/config"
)

type CompletionRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float32
}

// LLMClientInterface is a single-shot text completion backend.
type LLMClientInterface interface {
	GenerateText(ctx context.Context, req CompletionRequest) (string, error)
	Model() string
}

// NewLLMClient builds the client for the configured provider. It returns a nil
// client and no error when the provider has no credential.
func NewLLMClient(cfg config.LLMConfig) (LLMClientInterface, error) {
	if !cfg.IsConfigured() {
		return nil, nil
	}

	model := cfg.Model
	if model == "" {
		model = config.DefaultModel(cfg.Provider)
	}

	switch strings.ToLower(cfg.Provider) {
	case config.ProviderGroq:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = GroqBaseURL
		}
		return NewOpenAICompatibleClient(cfg.APIKey, baseURL, model), nil
	case config.ProviderOpenAI:
		return NewOpenAICompatibleClient(cfg.APIKey, cfg.BaseURL, model), nil
	case config.ProviderGemini:
		client, err := NewGeminiClient(cfg.APIKey, model)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLLMProvider, cfg.Provider)
	}
}
