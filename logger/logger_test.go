package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/isdmx/previewbox/config"
)

func TestLoggerNew(t *testing.T) {
	t.Run("ValidDevelopmentMode", func(t *testing.T) {
		logger, err := New("development", "debug", "stderr")
		require.NoError(t, err)
		assert.NotNil(t, logger)
		logger.Sync()
	})

	t.Run("ValidProductionMode", func(t *testing.T) {
		logger, err := New("production", "info", "stderr")
		require.NoError(t, err)
		assert.NotNil(t, logger)
		logger.Sync()
	})

	t.Run("InvalidMode", func(t *testing.T) {
		_, err := New("invalid_mode", "info", "stderr")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid logging mode")
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		_, err := New("production", "invalid_level", "stderr")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid logging level")
	})

	t.Run("MissingOutput", func(t *testing.T) {
		_, err := New("production", "info", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "logging output is required")
	})

	t.Run("UnwritableOutput", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "missing", "dir", "preview.log")
		_, err := New("production", "info", output)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open logging output")
	})

	t.Run("LevelApplied", func(t *testing.T) {
		logger, err := New("production", "warn", "stderr")
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zap.InfoLevel))
		assert.True(t, logger.Core().Enabled(zap.WarnLevel))
	})
}

func TestLoggerFileOutput(t *testing.T) {
	output := filepath.Join(t.TempDir(), "preview.log")
	logger, err := New("production", "info", output)
	require.NoError(t, err)

	logger.Debug("dropped")
	logger.Info("preview assembled", zap.Int("files", 18))
	_ = logger.Sync()

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	entry := lines[0]
	assert.Equal(t, "preview assembled", gjson.Get(entry, "msg").String())
	assert.Equal(t, "info", gjson.Get(entry, "level").String())
	assert.Equal(t, ServiceName, gjson.Get(entry, "service").String())
	assert.Equal(t, int64(18), gjson.Get(entry, "files").Int())
	assert.True(t, gjson.Get(entry, "timestamp").Exists())
}

func TestLoggerNewFromConfig(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := &config.Config{
			Logging: config.LoggingConfig{
				Mode:   "development",
				Level:  "debug",
				Output: "stderr",
			},
		}
		logger, err := NewFromConfig(cfg)
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zap.DebugLevel))
		logger.Sync()
	})

	t.Run("InvalidConfig", func(t *testing.T) {
		cfg := &config.Config{
			Logging: config.LoggingConfig{
				Mode:   "invalid_mode",
				Level:  "info",
				Output: "stderr",
			},
		}
		_, err := NewFromConfig(cfg)
		assert.Error(t, err)
	})
}
