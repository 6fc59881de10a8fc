package utils

import "errors"

var (
	ErrInvalidInput            = errors.New("invalid input")
	ErrAnalysisFailed          = errors.New("failed to analyze travel request")
	ErrUnexpectedBehaviorOfAI  = errors.New("unexpected behavior of AI")
	ErrLLMUnavailable          = errors.New("LLM provider unavailable")
	ErrDatabaseError           = errors.New("database error")
	ErrCatalogUnavailable      = errors.New("catalog database not configured")
	ErrNotFound                = errors.New("record not found")
	ErrUnsupportedLLMProvider  = errors.New("unsupported LLM provider")
	ErrEmptyCompletionResponse = errors.New("empty completion response")
)
