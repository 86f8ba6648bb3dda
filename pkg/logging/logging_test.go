package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ssargent/tinyprs/pkg/config"
)

func TestNew_Defaults(t *testing.T) {
	logger, err := New(config.Logging{})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithSink(config.Logging{Level: "debug", Format: "json"}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	logger.Debug("decoded preset", zap.String("path", "a.prs"))
	require.NoError(t, logger.Sync())

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "decoded preset", line["msg"])
	assert.Equal(t, "a.prs", line["path"])
	assert.Equal(t, "debug", line["level"])
}

func TestNew_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithSink(config.Logging{Level: "WARN", Format: "console"}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("checksum mismatch")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "checksum mismatch")
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(config.Logging{Level: "loud"})
	assert.Error(t, err)

	_, err = New(config.Logging{Format: "xml"})
	assert.Error(t, err)
}
