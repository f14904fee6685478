// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package observability builds the structured logger that is handed to the
// source client, the mapping engine, and the harvest driver. Nothing in the
// module logs through a package-level logger.
package observability

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/orcid-works/pkg/types"
)

// DefaultLoggingConfig returns info-level console logging on stderr.
func DefaultLoggingConfig() types.LoggingConfig {
	return types.LoggingConfig{
		Level:  "info",
		Format: "console",
		Output: "stderr",
	}
}

// NewLogger creates a logger from cfg. When w is non-nil it overrides
// cfg.Output, which lets callers capture log output.
func NewLogger(cfg types.LoggingConfig, w io.Writer) zerolog.Logger {
	output := w
	if output == nil {
		switch strings.ToLower(cfg.Output) {
		case "stdout":
			output = os.Stdout
		default:
			output = os.Stderr
		}
	}

	if strings.EqualFold(cfg.Format, "console") || strings.EqualFold(cfg.Format, "pretty") {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
			NoColor:    w != nil,
		}
	}

	return zerolog.New(output).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel converts a level name to a zerolog.Level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// WithClaimContext adds the fields identifying a single work claim.
func WithClaimContext(logger zerolog.Logger, title string, year int) zerolog.Logger {
	ctx := logger.With().Str("title", title)
	if year != 0 {
		ctx = ctx.Int("year", year)
	}
	return ctx.Logger()
}
