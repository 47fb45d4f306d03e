package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level, "json")
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info", "json")

	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")
	log.Info(ctx, "formatted message: %s %d", "test", 123)

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.Contains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
	assert.Contains(t, out, "formatted message: test 123")
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		emit        func(Logger)
		wantOutput  bool
	}{
		{"debug logs at debug level", "debug", func(l Logger) { l.Debug(context.Background(), "m") }, true},
		{"info logs at debug level", "debug", func(l Logger) { l.Info(context.Background(), "m") }, true},
		{"debug doesn't log at info level", "info", func(l Logger) { l.Debug(context.Background(), "m") }, false},
		{"info logs at info level", "info", func(l Logger) { l.Info(context.Background(), "m") }, true},
		{"warn doesn't log at error level", "error", func(l Logger) { l.Warn(context.Background(), "m") }, false},
		{"error always logs", "error", func(l Logger) { l.Error(context.Background(), "m") }, true},
		{"invalid config defaults to info", "bogus", func(l Logger) { l.Debug(context.Background(), "m") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(NewWithWriter(&buf, tt.configLevel, "json"))
			assert.Equal(t, tt.wantOutput, buf.Len() > 0)
		})
	}
}

func TestWithKeepsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn", "json").With("run_id", "abc")

	log.Info(context.Background(), "dropped")
	assert.Zero(t, buf.Len())

	log.Warn(context.Background(), "kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestWithAttachesField(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info", "json").With("run_id", "abc")

	log.Info(context.Background(), "hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "abc", entry["run_id"])
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "info", entry["level"])
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info", "text")

	log.Warn(context.Background(), "disk %s", "full")

	out := buf.String()
	assert.True(t, strings.Contains(out, "WRN"), out)
	assert.Contains(t, out, "disk full")
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Error(context.Background(), "ignored")
	log.With("k", "v").Info(context.Background(), "ignored")
}
