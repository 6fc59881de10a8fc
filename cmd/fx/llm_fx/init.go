package llm_fx

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"voyage/internal/config"
	"voyage/internal/services"
	"voyage/pkg/currency"
	"voyage/pkg/metrics"
	"voyage/pkg/utils"
)

var Module = fx.Provide(
	provideLLMClient,
	provideConverter,
	provideRegistry,
	provideRecorder,
	providePipeline,
)

// provideLLMClient returns a nil client when the selected provider has no
// credential. Every AI flow then serves its fallback.
func provideLLMClient(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (utils.LLMClientInterface, error) {
	client, err := utils.NewLLMClient(cfg.LLM)
	if err != nil {
		return nil, err
	}
	if client == nil {
		logger.Warn("no LLM credential configured, serving mock data",
			zap.String("provider", cfg.LLM.Provider))
		return nil, nil
	}

	if closer, ok := client.(io.Closer); ok {
		lc.Append(fx.StopHook(closer.Close))
	}

	logger.Info("LLM client ready",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", client.Model()),
		zap.Float64("rate_limit_rps", cfg.LLM.RateLimitRPS),
	)
	return utils.NewRateLimitedClient(client, cfg.LLM.RateLimitRPS, cfg.LLM.RateLimitBurst), nil
}

func provideConverter(cfg *config.Config) currency.Converter {
	return currency.NewConverter(cfg.Currency.USDToINRRate)
}

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideRecorder(reg *prometheus.Registry) *metrics.Recorder {
	return metrics.NewRecorder(reg)
}

func providePipeline(client utils.LLMClientInterface, cfg *config.Config, logger *zap.Logger, recorder *metrics.Recorder) services.LLMPipeline {
	return services.NewLLMPipeline(client, services.GenerationOptions{
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
		CallTimeout: cfg.LLM.CallTimeout,
	}, logger.Named("llm"), recorder)
}
