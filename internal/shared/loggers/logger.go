package loggers

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a wrapper around zerolog.Logger for convenience.
type Logger = zerolog.Logger

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

type options struct {
	writer io.Writer
	format string
}

// Option customizes a logger built by New.
type Option func(*options)

// WithWriter sets the destination. Defaults to stderr so stdout only carries the report tables.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

// WithFormat selects FormatJSON or FormatConsole. Anything else means JSON.
func WithFormat(format string) Option {
	return func(o *options) {
		o.format = format
	}
}

// New creates a new zerolog logger based on the provided log level string.
// The level is case-insensitive. Returns an error if it cannot be parsed.
func New(level string, opts ...Option) (Logger, error) {
	o := &options{writer: os.Stderr, format: FormatJSON}
	for _, opt := range opts {
		opt(o)
	}

	zerologLevel, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), err
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	w := o.writer
	if o.format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}

	logger := zerolog.New(w).
		Level(zerologLevel).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger, nil
}

// Nop returns a disabled logger.
func Nop() Logger {
	return zerolog.Nop()
}

// Ctx extracts a logger from the context.
// Returns a no-op logger if no logger is found in context.
var Ctx = func(ctx context.Context) *Logger {
	return zerolog.Ctx(ctx)
}
