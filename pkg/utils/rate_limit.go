package utils

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimitedClient throttles outbound completions so a burst of concurrent
// generators stays inside the provider quota.
type RateLimitedClient struct {
	inner   LLMClientInterface
	limiter *rate.Limiter
}

func NewRateLimitedClient(inner LLMClientInterface, rps float64, burst int) *RateLimitedClient {
	if burst < 1 {
		burst = 1
	}
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &RateLimitedClient{
		inner:   inner,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (c *RateLimitedClient) GenerateText(ctx context.Context, req CompletionRequest) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}
	return c.inner.GenerateText(ctx, req)
}

func (c *RateLimitedClient) Model() string {
	return c.inner.Model()
}
