package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome sources for a generated payload.
const (
	SourceLLM      = "llm"
	SourceFallback = "fallback"
	SourceMock     = "mock"
	// SourceError marks requests that produced no payload at all.
	SourceError = "error"
)

// Recorder collects AI pipeline metrics. A nil *Recorder is a no-op.
type Recorder struct {
	outcomes    *prometheus.CounterVec
	llmDuration *prometheus.HistogramVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "voyage_recommendation_outcomes_total",
				Help: "Generated payloads by domain and by the path that produced them",
			},
			[]string{"domain", "source"},
		),
		llmDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "voyage_llm_call_duration_milliseconds",
				Help:    "LLM completion latency in milliseconds",
				Buckets: []float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000},
			},
			[]string{"domain", "status"},
		),
	}
	reg.MustRegister(r.outcomes, r.llmDuration)
	return r
}

func (r *Recorder) RecordOutcome(domain, source string) {
	if r == nil {
		return
	}
	r.outcomes.WithLabelValues(domain, source).Inc()
}

func (r *Recorder) ObserveLLMCall(domain string, elapsed time.Duration, err error) {
	if r == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.llmDuration.WithLabelValues(domain, status).Observe(float64(elapsed.Milliseconds()))
}
