package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"voyage/pkg/metrics"
	"voyage/pkg/schema"
	"voyage/pkg/utils"
)

// Fallback reasons attached to log entries.
const (
	reasonNoClient  = "no_client"
	reasonTimeout   = "timeout"
	reasonTransport = "transport"
	reasonMalformed = "malformed_output"
)

type GenerationOptions struct {
	MaxTokens   int
	Temperature float32
	CallTimeout time.Duration
}

// LLMPipeline is shared by every LLM-backed service. A nil client is the
// configuration-absence mode: callers go straight to their fallback.
type LLMPipeline struct {
	client  utils.LLMClientInterface
	opts    GenerationOptions
	logger  *zap.Logger
	metrics *metrics.Recorder
}

func NewLLMPipeline(client utils.LLMClientInterface, opts GenerationOptions, logger *zap.Logger, recorder *metrics.Recorder) LLMPipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return LLMPipeline{
		client:  client,
		opts:    opts,
		logger:  logger,
		metrics: recorder,
	}
}

func (p LLMPipeline) Available() bool {
	return p.client != nil
}

// complete runs a single completion under the per-call timeout.
func (p LLMPipeline) complete(ctx context.Context, domain, prompt string) (string, error) {
	if p.opts.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.CallTimeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := p.client.GenerateText(ctx, utils.CompletionRequest{
		Prompt:      prompt,
		MaxTokens:   p.opts.MaxTokens,
		Temperature: p.opts.Temperature,
	})
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	p.metrics.ObserveLLMCall(domain, time.Since(start), err)
	return raw, err
}

func (p LLMPipeline) logFallback(domain, reason string, err error) {
	p.logger.Warn("falling back to deterministic output",
		zap.String("domain", domain),
		zap.String("reason", reason),
		zap.Error(err),
	)
	p.metrics.RecordOutcome(domain, metrics.SourceFallback)
}

func failureReason(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return reasonTimeout
	}
	return reasonTransport
}

// generateWithFallback asks the model for a T and returns it once it passes
// schema validation and postprocess. Every failure returns fallback().
func generateWithFallback[T any](
	ctx context.Context,
	p LLMPipeline,
	domain string,
	prompt string,
	postprocess func(T) T,
	fallback func() T,
) T {
	if !p.Available() {
		p.logger.Debug("no LLM client configured, using mock",
			zap.String("domain", domain),
			zap.String("reason", reasonNoClient),
		)
		p.metrics.RecordOutcome(domain, metrics.SourceMock)
		return fallback()
	}

	raw, err := p.complete(ctx, domain, prompt)
	if err != nil {
		p.logFallback(domain, failureReason(err), err)
		return fallback()
	}

	result := schema.Validate[T]([]byte(utils.ExtractJSON(raw)))
	if !result.IsOk() {
		p.logFallback(domain, reasonMalformed, result.Err())
		return fallback()
	}

	value := result.Value()
	if postprocess != nil {
		value = postprocess(value)
	}
	p.metrics.RecordOutcome(domain, metrics.SourceLLM)
	return value
}
