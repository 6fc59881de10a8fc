package services

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyage/pkg/utils"
)

// lateLLM answers successfully, but only after the call's deadline passed.
type lateLLM struct {
	response string
}

func (l lateLLM) GenerateText(ctx context.Context, _ utils.CompletionRequest) (string, error) {
	<-ctx.Done()
	return l.response, nil
}

func (lateLLM) Model() string { return "late" }

// llmCallCount reads the sample count of voyage_llm_call_duration_milliseconds.
func llmCallCount(t *testing.T, reg *prometheus.Registry, domain, status string) uint64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != "voyage_llm_call_duration_milliseconds" {
			continue
		}
		for _, m := range family.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["domain"] == domain && labels["status"] == status {
				return m.GetHistogram().GetSampleCount()
			}
		}
	}
	return 0
}

func TestLLMPipeline_LateAnswerCountsAsFailedCall(t *testing.T) {
	opts := testOptions()
	opts.CallTimeout = 20 * time.Millisecond
	pipeline, reg := newTestPipeline(t, lateLLM{response: `{"ok": true}`}, opts)

	_, err := pipeline.complete(context.Background(), domainHotels, "prompt")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, reasonTimeout, failureReason(err))
	assert.Equal(t, uint64(1), llmCallCount(t, reg, domainHotels, "error"))
	assert.Zero(t, llmCallCount(t, reg, domainHotels, "ok"))
}

func TestLLMPipeline_SuccessfulCallObserved(t *testing.T) {
	pipeline, reg := newTestPipeline(t, &stubLLM{response: "hello"}, testOptions())

	raw, err := pipeline.complete(context.Background(), domainHotels, "prompt")

	require.NoError(t, err)
	assert.Equal(t, "hello", raw)
	assert.Equal(t, uint64(1), llmCallCount(t, reg, domainHotels, "ok"))
}
