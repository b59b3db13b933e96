// Package logging builds the slog loggers used by lvtsp commands.
//
// Two formats are supported: "text" for terminals and "json" for log
// shippers. Every command run is tagged with a run_id attribute so that the
// records of concurrent strategies can be correlated.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// RunIDKey is the attribute key carrying the run identifier.
const RunIDKey = "run_id"

var (
	// ErrUnknownLevel is returned for a level name slog does not know.
	ErrUnknownLevel = errors.New("logging: unknown level")
	// ErrUnknownFormat is returned for a format other than text or json.
	ErrUnknownFormat = errors.New("logging: unknown format")
)

// Config selects the handler. The zero value writes Info and above as text
// to stderr.
type Config struct {
	Level  string    // debug, info, warn or error; empty means info
	Format string    // text or json; empty means text
	Writer io.Writer // nil means os.Stderr
}

// ParseLevel maps a case-insensitive level name onto slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
}

// New builds a logger from cfg.
func New(cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(cfg.Format) {
	case "", FormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}
}

// WithRunID tags logger with a fresh random run identifier and returns both.
func WithRunID(logger *slog.Logger) (*slog.Logger, string) {
	id := uuid.NewString()

	return logger.With(slog.String(RunIDKey, id)), id
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger { return slog.New(slog.DiscardHandler) }
