// Package config loads process configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Provider identifies an LLM backend.
type Provider string

// Supported LLM providers.
const (
	ProviderOllama    Provider = "ollama"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// ErrMissingConfig indicates one or more required environment variables are unset.
// Startup must abort when Load returns this error.
var ErrMissingConfig = errors.New("missing required configuration")

// Config holds all configuration values.
type Config struct {
	// SurrealDB connection. URL, user, and pass are required.
	SurrealDBURL       string
	SurrealDBNamespace string
	SurrealDBDatabase  string
	SurrealDBUser      string
	SurrealDBPass      string
	SurrealDBAuthLevel string

	// LLM generation
	LLMProvider     Provider
	LLMModel        string
	OllamaHost      string
	OpenAIAPIKey    string
	AnthropicAPIKey string

	// Collaborator APIs. Keys are optional; missing keys degrade to
	// fixed fallback values at call time.
	WeatherAPIKey  string
	WeatherBaseURL string
	NewsAPIKey     string
	NewsBaseURL    string

	// HTTP server
	Port string

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables.
// The SurrealDB endpoint and credentials have no defaults: the graph store
// is the only hard dependency, so their absence is a startup failure rather
// than a runtime surprise. The returned error names every missing variable.
func Load() (Config, error) {
	cfg := Config{
		SurrealDBNamespace: getEnv("SURREALDB_NAMESPACE", "daytrip"),
		SurrealDBDatabase:  getEnv("SURREALDB_DATABASE", "trips"),
		SurrealDBAuthLevel: getEnv("SURREALDB_AUTH_LEVEL", "root"),

		LLMProvider:     Provider(getEnv("DAYTRIP_LLM_PROVIDER", string(ProviderOllama))),
		LLMModel:        getEnv("DAYTRIP_LLM_MODEL", "llama2"),
		OllamaHost:      getEnv("OLLAMA_HOST", "http://localhost:11434"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),

		WeatherAPIKey:  os.Getenv("WEATHER_API_KEY"),
		WeatherBaseURL: getEnv("DAYTRIP_WEATHER_URL", "https://api.weatherapi.com/v1"),
		NewsAPIKey:     os.Getenv("NEWS_API_KEY"),
		NewsBaseURL:    getEnv("DAYTRIP_NEWS_URL", "https://newsapi.org/v2"),

		Port: getEnv("DAYTRIP_PORT", "8080"),

		LogFile:  getEnv("DAYTRIP_LOG_FILE", "/tmp/daytrip.log"),
		LogLevel: parseLogLevel(getEnv("DAYTRIP_LOG_LEVEL", "INFO")),
	}

	var missing []string
	for _, v := range []struct {
		key string
		dst *string
	}{
		{"SURREALDB_URL", &cfg.SurrealDBURL},
		{"SURREALDB_USER", &cfg.SurrealDBUser},
		{"SURREALDB_PASS", &cfg.SurrealDBPass},
	} {
		*v.dst = os.Getenv(v.key)
		if *v.dst == "" {
			missing = append(missing, v.key)
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
