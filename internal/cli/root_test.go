package cli

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raphaelgruber/daytrip-go/internal/config"
)

func TestApplyVerbosity(t *testing.T) {
	cfg := config.Config{LogLevel: slog.LevelInfo}

	assert.Equal(t, slog.LevelDebug, applyVerbosity(cfg, true).LogLevel)
	assert.Equal(t, slog.LevelInfo, applyVerbosity(cfg, false).LogLevel)
}
