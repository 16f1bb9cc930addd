package distances

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	return NewLogger(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal(line, &m))
		out = append(out, m)
	}
	return out
}

func TestLogCheck(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	l := newBufferLogger(&buf).WithMetric("cosine").WithBackend("lanes")

	l.LogCheck(ctx, "cosine/f32", 1000, 10000, 0, time.Millisecond, nil)
	l.LogCheck(ctx, "cosine/f32", 2000, 10000, 3, time.Millisecond, nil)
	l.LogCheck(ctx, "cosine/f32", 4000, 0, 0, 0, errors.New("boom"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 3)

	assert.Equal(t, "DEBUG", lines[0]["level"])
	assert.Equal(t, "WARN", lines[1]["level"])
	assert.Equal(t, float64(3), lines[1]["failures"])
	assert.Equal(t, "ERROR", lines[2]["level"])
	assert.Equal(t, "boom", lines[2]["error"])

	for _, line := range lines {
		assert.Equal(t, "cosine", line["metric"])
		assert.Equal(t, "lanes", line["backend"])
	}
}

func TestLogFixture(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	l.LogFixture(ctx, "a", true, nil)
	l.LogFixture(ctx, "b", false, nil)
	l.LogFixture(ctx, "c", false, errors.New("denied"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 3)
	assert.Equal(t, "fixture loaded", lines[0]["msg"])
	assert.Equal(t, "fixture generated", lines[1]["msg"])
	assert.Equal(t, "fixture unavailable", lines[2]["msg"])
}

func TestLogSummary(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf).WithDimension(8).WithCount(2)
	l.LogSummary(context.Background(), 4, 1, time.Second)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, float64(3), lines[0]["passed"])
	assert.Equal(t, float64(8), lines[0]["dimension"])
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	l.LogCheck(context.Background(), "x", 1, 1, 1, 0, nil)
}

func TestNewLoggerDefault(t *testing.T) {
	assert.NotNil(t, NewLogger(nil))
	assert.True(t, NewJSONLogger(slog.LevelDebug).Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, NewTextLogger(slog.LevelWarn).Enabled(context.Background(), slog.LevelInfo))
}
