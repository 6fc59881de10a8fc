package services

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"voyage/pkg/currency"
	"voyage/pkg/metrics"
	"voyage/pkg/schema"
	"voyage/pkg/utils"
)

var testConverter = currency.NewConverter(currency.DefaultUSDToINRRate)

// stubLLM returns a canned completion or error. With block set it waits for
// the context to expire instead.
type stubLLM struct {
	response string
	err      error
	block    bool

	mu      sync.Mutex
	prompts []string
}

func (s *stubLLM) GenerateText(ctx context.Context, req utils.CompletionRequest) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, req.Prompt)
	s.mu.Unlock()

	if s.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return s.response, s.err
}

func (s *stubLLM) Model() string { return "stub" }

func (s *stubLLM) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prompts)
}

func testOptions() GenerationOptions {
	return GenerationOptions{MaxTokens: 4000, Temperature: 0.7, CallTimeout: 2 * time.Second}
}

// newTestPipeline builds a pipeline around client; pass a nil client for the
// no-credential mode.
func newTestPipeline(t *testing.T, client utils.LLMClientInterface, opts GenerationOptions) (LLMPipeline, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewLLMPipeline(client, opts, zaptest.NewLogger(t), metrics.NewRecorder(reg)), reg
}

// outcomeCount reads voyage_recommendation_outcomes_total for one label pair.
func outcomeCount(t *testing.T, reg *prometheus.Registry, domain, source string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != "voyage_recommendation_outcomes_total" {
			continue
		}
		for _, m := range family.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["domain"] == domain && labels["source"] == source {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func assertSchemaValid[T any](t *testing.T, v T) {
	t.Helper()
	payload, err := json.Marshal(v)
	require.NoError(t, err)
	res := schema.Validate[T](payload)
	require.True(t, res.IsOk(), "schema rejected %T: %v", v, res.Err())
}
