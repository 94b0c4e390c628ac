// Package logging configures the process-wide zerolog logger: console
// output for interactive use, JSON to a session log file, and optionally
// GELF to a Graylog endpoint.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Graylog2/go-gelf/gelf"
	"github.com/rs/zerolog"
)

// Options controls logger construction.
type Options struct {
	Level          string
	ConsoleWriter  bool // human-readable console output instead of JSON
	File           io.Writer
	GraylogEnabled bool
	GraylogAddress string
}

// ParseLevel converts a config string to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New builds the logger. Graylog connection failures are reported on the
// returned logger rather than failing startup; logging must not take the
// service down.
func New(opts Options) zerolog.Logger {
	var writers []io.Writer

	if opts.ConsoleWriter {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	} else {
		writers = append(writers, os.Stdout)
	}
	if opts.File != nil {
		writers = append(writers, opts.File)
	}

	var gelfErr error
	if opts.GraylogEnabled && opts.GraylogAddress != "" {
		w, err := gelf.NewWriter(opts.GraylogAddress)
		if err != nil {
			gelfErr = err
		} else {
			writers = append(writers, w)
		}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLevel(opts.Level)).
		With().Timestamp().Logger()

	if gelfErr != nil {
		logger.Warn().Err(gelfErr).Str("address", opts.GraylogAddress).
			Msg("Graylog writer unavailable, continuing without it")
	}

	return logger
}

// LogFilePath builds a session log file path using OS-appropriate path
// separators.
func LogFilePath(logsDir, serviceName string, sessionStart time.Time) string {
	return filepath.Join(
		logsDir,
		fmt.Sprintf("%s.%s.log", serviceName, sessionStart.Format("20060102_150405")),
	)
}
