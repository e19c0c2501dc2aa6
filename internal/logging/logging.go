// Package logging builds the zerolog loggers used across reorderlist.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options selects the level and destination of the runtime logger.
type Options struct {
	Level   string
	File    string // Empty disables file output; the TUI owns stdout.
	NoColor bool
}

// ParseLevel maps a config string to a zerolog level. Unknown strings
// report false.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

// New returns the runtime logger and the closer for its file. With no file
// or a disabled level it returns a no-op logger.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	level, ok := ParseLevel(opts.Level)
	if !ok && strings.TrimSpace(opts.Level) != "" {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("unknown log level %q", opts.Level)
	}
	if level == zerolog.Disabled || opts.File == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
	}

	return NewWriter(f, level, opts.NoColor), f, nil
}

// NewWriter returns a console-formatted logger writing to w.
func NewWriter(w io.Writer, level zerolog.Level, noColor bool) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// ForTest returns a debug logger that writes through t.Log.
func ForTest(t zerolog.TestingLog) zerolog.Logger {
	return zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
