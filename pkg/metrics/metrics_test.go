package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_RecordOutcome(t *testing.T) {
	r := NewRecorder(prometheus.NewRegistry())

	r.RecordOutcome("hotels", SourceFallback)
	r.RecordOutcome("hotels", SourceFallback)
	r.RecordOutcome("hotels", SourceLLM)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.outcomes.WithLabelValues("hotels", SourceFallback)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.outcomes.WithLabelValues("hotels", SourceLLM)))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.outcomes.WithLabelValues("flights", SourceMock)))
}

func TestRecorder_ObserveLLMCall(t *testing.T) {
	r := NewRecorder(prometheus.NewRegistry())

	r.ObserveLLMCall("places", 120*time.Millisecond, nil)
	r.ObserveLLMCall("places", time.Second, errors.New("timeout"))

	assert.Equal(t, 2, testutil.CollectAndCount(r.llmDuration))
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.RecordOutcome("analysis", SourceMock)
		r.ObserveLLMCall("analysis", time.Millisecond, nil)
	})
}
