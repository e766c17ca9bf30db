package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return logger.NewWithOutput(buf), buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Info("compiling 3 source units")

	assert.Equal(t, "compiling 3 source units\n", buf.String())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Warn("build cache unreadable, rebuilding")

	assert.Equal(t, "! build cache unreadable, rebuilding\n", buf.String())
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(zerr.Wrap(errors.New("exit status 2"), "compilation failed"))

	assert.Equal(t, "✗ Error: compilation failed\n\n  Caused by:\n    → exit status 2\n", buf.String())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("hello")
	lg.Error(errors.New("boom"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var info map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &info))
	assert.Equal(t, "INFO", info["level"])
	assert.Equal(t, "hello", info["msg"])

	var failure map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &failure))
	assert.Equal(t, "ERROR", failure["level"])
	assert.Equal(t, "boom", failure["error"])
}

func TestLogger_SetOutputKeepsMode(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)

	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	lg.Info("hello")

	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "standard error",
			err:  errors.New("simple error"),
			want: "Error: simple error",
		},
		{
			name: "multiline standard error",
			err:  errors.New("package version conflict\nacme/c is required at 2 versions:"),
			want: "Error: package version conflict\n       acme/c is required at 2 versions:",
		},
		{
			name: "wrapped chain",
			err:  zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			want: "Error: outer layer\n\n  Caused by:\n    → middle layer\n    → root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatError(tt.err))
		})
	}
}

func TestFormatError_Metadata(t *testing.T) {
	err := zerr.With(zerr.New("package not found in registry"), "path", "/reg/acme")

	assert.Contains(t, logger.FormatError(err), "package not found in registry (path=/reg/acme)")
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	h := logger.NewPrettyHandler(buf, nil).WithGroup("build").WithAttrs([]slog.Attr{slog.Int("units", 3)})
	slog.New(h).Info("done", "cached", true)

	assert.Equal(t, "done build.units=3 build.cached=true\n", buf.String())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, h.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, h.Enabled(t.Context(), slog.LevelError))
}
