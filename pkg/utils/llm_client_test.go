package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyage/internal/config"
)

func TestNewLLMClient(t *testing.T) {
	t.Run("no credential means no client", func(t *testing.T) {
		client, err := NewLLMClient(config.LLMConfig{Provider: config.ProviderGroq})
		require.NoError(t, err)
		assert.Nil(t, client)
	})

	t.Run("groq uses the compatible client with its default model", func(t *testing.T) {
		client, err := NewLLMClient(config.LLMConfig{Provider: config.ProviderGroq, APIKey: "k"})
		require.NoError(t, err)
		require.IsType(t, &OpenAICompatibleClient{}, client)
		assert.Equal(t, "llama-3.3-70b-versatile", client.Model())
	})

	t.Run("openai keeps the configured model", func(t *testing.T) {
		client, err := NewLLMClient(config.LLMConfig{Provider: config.ProviderOpenAI, APIKey: "k", Model: "gpt-4o"})
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o", client.Model())
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewLLMClient(config.LLMConfig{Provider: "acme", APIKey: "k"})
		assert.ErrorIs(t, err, ErrUnsupportedLLMProvider)
	})
}
