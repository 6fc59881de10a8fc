package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	LLM      LLMConfig
	Currency CurrencyConfig
	Database DatabaseConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port            string
	Env             string
	ShutdownTimeout time.Duration
}

// LLMConfig selects the completion provider. An empty APIKey is a valid
// state: every AI flow then serves its deterministic fallback.
type LLMConfig struct {
	Provider       string
	APIKey         string
	Model          string
	BaseURL        string
	MaxTokens      int
	Temperature    float32
	CallTimeout    time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
}

type CurrencyConfig struct {
	USDToINRRate float64
}

type DatabaseConfig struct {
	URL         string
	AutoMigrate bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load loads configuration from .env and environment variables
func Load() *Config {
	// a missing .env is fine, the environment may carry everything
	_ = godotenv.Load(".env")

	provider := strings.ToLower(getEnv("LLM_PROVIDER", ProviderGroq))

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Env:             getEnv("APP_ENV", "production"),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		LLM: LLMConfig{
			Provider:       provider,
			APIKey:         apiKeyFor(provider),
			Model:          getEnv("LLM_MODEL", DefaultModel(provider)),
			BaseURL:        getEnv("LLM_BASE_URL", ""),
			MaxTokens:      getIntEnv("LLM_MAX_TOKENS", 4000),
			Temperature:    float32(getFloatEnv("LLM_TEMPERATURE", 0.7)),
			CallTimeout:    getDurationEnv("LLM_CALL_TIMEOUT", 30*time.Second),
			RateLimitRPS:   getFloatEnv("LLM_RATE_LIMIT_RPS", 5),
			RateLimitBurst: getIntEnv("LLM_RATE_LIMIT_BURST", 10),
		},
		Currency: CurrencyConfig{
			USDToINRRate: getFloatEnv("USD_TO_INR_RATE", 83.25),
		},
		Database: DatabaseConfig{
			URL:         getEnv("POSTGRES_URL", ""),
			AutoMigrate: getBoolEnv("DB_AUTO_MIGRATE", false),
		},
		CORS: CORSConfig{
			AllowedOrigins: getStringSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func (c *Config) IsDatabaseConfigured() bool {
	return c.Database.URL != ""
}

func (c LLMConfig) IsConfigured() bool {
	return c.APIKey != ""
}

// DefaultModel returns the model used when LLM_MODEL is unset.
func DefaultModel(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "gpt-4o-mini"
	case ProviderGemini:
		return "gemini-1.5-flash"
	default:
		return "llama-3.3-70b-versatile"
	}
}

func apiKeyFor(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return os.Getenv("OPENAI_API_KEY")
	case ProviderGemini:
		return os.Getenv("GEMINI_API_KEY")
	default:
		return os.Getenv("GROQ_API_KEY")
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var parts []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return defaultValue
	}
	return parts
}
