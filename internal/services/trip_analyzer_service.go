package services

import (
	"context"

	"voyage/internal/models/response_models"
)

const domainAnalysis = "analysis"

type TripAnalyzerServiceInterface interface {
	AnalyzeTravelRequest(ctx context.Context, request string) response_models.TripAnalysis
}

type TripAnalyzerService struct {
	pipeline LLMPipeline
}

func NewTripAnalyzerService(pipeline LLMPipeline) TripAnalyzerServiceInterface {
	return &TripAnalyzerService{pipeline: pipeline}
}

// AnalyzeTravelRequest never fails; unusable model output degrades to the
// keyword heuristic in MockTripAnalysis.
func (s *TripAnalyzerService) AnalyzeTravelRequest(ctx context.Context, request string) response_models.TripAnalysis {
	return generateWithFallback(ctx, s.pipeline, domainAnalysis,
		tripAnalysisPrompt(request),
		normalizeAnalysis,
		func() response_models.TripAnalysis { return MockTripAnalysis(request) },
	)
}

// normalizeAnalysis gives the model's output the same list shapes the mock has.
func normalizeAnalysis(a response_models.TripAnalysis) response_models.TripAnalysis {
	if a.Destinations.Secondary == nil {
		a.Destinations.Secondary = []string{}
	}
	return a
}
