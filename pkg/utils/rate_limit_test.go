package utils

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingClient struct {
	calls atomic.Int32
}

func (c *countingClient) GenerateText(_ context.Context, req CompletionRequest) (string, error) {
	c.calls.Add(1)
	return "echo: " + req.Prompt, nil
}

func (c *countingClient) Model() string { return "counting" }

func TestRateLimitedClient_PassesThrough(t *testing.T) {
	inner := &countingClient{}
	client := NewRateLimitedClient(inner, 100, 2)

	out, err := client.GenerateText(context.Background(), CompletionRequest{Prompt: "hi"})

	require.NoError(t, err)
	assert.Equal(t, "echo: hi", out)
	assert.Equal(t, "counting", client.Model())
	assert.Equal(t, int32(1), inner.calls.Load())
}

func TestRateLimitedClient_WaitRespectsContext(t *testing.T) {
	inner := &countingClient{}
	client := NewRateLimitedClient(inner, 0.001, 1)

	_, err := client.GenerateText(context.Background(), CompletionRequest{Prompt: "first"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = client.GenerateText(ctx, CompletionRequest{Prompt: "second"})

	assert.Error(t, err)
	assert.Equal(t, int32(1), inner.calls.Load())
}

func TestNewRateLimitedClient_NonPositiveRateIsUnlimited(t *testing.T) {
	inner := &countingClient{}
	client := NewRateLimitedClient(inner, 0, 0)

	for i := 0; i < 5; i++ {
		_, err := client.GenerateText(context.Background(), CompletionRequest{Prompt: "x"})
		require.NoError(t, err)
	}
	assert.Equal(t, int32(5), inner.calls.Load())
}
