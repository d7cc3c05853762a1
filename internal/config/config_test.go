package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("SURREALDB_URL", "ws://localhost:8000/rpc")
	t.Setenv("SURREALDB_USER", "root")
	t.Setenv("SURREALDB_PASS", "root")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "daytrip", cfg.SurrealDBNamespace)
	assert.Equal(t, "trips", cfg.SurrealDBDatabase)
	assert.Equal(t, ProviderOllama, cfg.LLMProvider)
	assert.Equal(t, "llama2", cfg.LLMModel)
	assert.Equal(t, "http://localhost:11434", cfg.OllamaHost)
	assert.Equal(t, "https://api.weatherapi.com/v1", cfg.WeatherBaseURL)
	assert.Equal(t, "https://newsapi.org/v2", cfg.NewsBaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_MissingCredentialsIsFatal(t *testing.T) {
	t.Setenv("SURREALDB_URL", "")
	t.Setenv("SURREALDB_USER", "")
	t.Setenv("SURREALDB_PASS", "root")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingConfig)
	assert.Contains(t, err.Error(), "SURREALDB_URL")
	assert.Contains(t, err.Error(), "SURREALDB_USER")
	assert.NotContains(t, err.Error(), "SURREALDB_PASS")
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DAYTRIP_LLM_PROVIDER", "openai")
	t.Setenv("DAYTRIP_LLM_MODEL", "gpt-4o-mini")
	t.Setenv("DAYTRIP_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenAI, cfg.LLMProvider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLMModel)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"garbage", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.input))
		})
	}
}

func TestNewLoggerWithWriters(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := NewLoggerWithWriters(&stderr, &file, slog.LevelInfo)

	logger.Info("itinerary generated", "city", "Paris")

	assert.Contains(t, stderr.String(), "itinerary generated")
	assert.Contains(t, file.String(), `"city":"Paris"`)
}

func TestSetupLogger_AppendsJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daytrip.log")
	logger, cleanup := SetupLogger(Config{LogFile: path, LogLevel: slog.LevelInfo})

	logger.Info("plan complete", "city", "Rome")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"city":"Rome"`)
}

func TestSetupLogger_UnopenableFileFallsBackToStderr(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "daytrip.log")
	logger, cleanup := SetupLogger(Config{LogFile: path, LogLevel: slog.LevelInfo})

	require.NotNil(t, logger)
	assert.NoError(t, cleanup())
}
