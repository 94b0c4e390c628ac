package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"WARN", zerolog.WarnLevel},
		{"Error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestNew_WritesToFileWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "debug", File: &buf})

	logger.Info().Str("vehicle", "TRK-001").Msg("tick complete")

	out := buf.String()
	assert.Contains(t, out, "tick complete")
	assert.Contains(t, out, "TRK-001")
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "warn", File: &buf})

	logger.Debug().Msg("should not appear")
	logger.Warn().Msg("should appear")

	out := buf.String()
	assert.NotContains(t, out, "should not appear")
	assert.Contains(t, out, "should appear")
}

func TestLogFilePath(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 30, 15, 0, time.UTC)
	path := LogFilePath("logs", "truck_tracker", start)

	assert.True(t, strings.HasSuffix(path, "truck_tracker.20250601_093015.log"), path)
}
