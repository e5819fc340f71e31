package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polkiloo/pawshope/internal/config"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log line: %s", buf.String())
	return entry
}

func TestProductionLoggerWritesInfoJSON(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, &config.Config{Environment: config.EnvProduction, PayPalMode: config.ModeLive})

	l.Debug("hidden")
	assert.Zero(t, buf.Len(), "debug must be filtered in production")

	l.Info("donation created", slog.String("order_id", "ORDER-1"))
	entry := decodeLine(t, &buf)
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "pawshope", entry["service"])
	assert.Equal(t, "live", entry["paypal_mode"])
	assert.Equal(t, "ORDER-1", entry["order_id"])
	assert.NotContains(t, entry, slog.SourceKey)
}

func TestDevelopmentLoggerAddsDebugAndSource(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, &config.Config{Environment: config.EnvDevelopment})

	l.Debug("capture attempt")
	entry := decodeLine(t, &buf)
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Contains(t, entry, slog.SourceKey)
	assert.NotContains(t, entry, "paypal_mode")
}

func TestNilConfigDefaultsToInfo(t *testing.T) {
	l := New(nil)
	assert.True(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
}
