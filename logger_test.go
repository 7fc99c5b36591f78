package demokit

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var text bytes.Buffer
	NewLogger("warn", "text", &text).Info("hidden")
	NewLogger("warn", "text", &text).Warn("shown", "step", 2)
	assert.NotContains(t, text.String(), "hidden")
	assert.Contains(t, text.String(), "msg=shown step=2")

	var js bytes.Buffer
	NewLogger("debug", "JSON", &js).Debug("detail", "lesson", "builder")
	assert.Contains(t, js.String(), `"msg":"detail"`)
	assert.Contains(t, js.String(), `"lesson":"builder"`)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("anything"))
}

func TestLoggerInterfaceSatisfied(t *testing.T) {
	t.Parallel()
	var _ Logger = slog.Default()
	var _ Logger = discardLogger{}
}
