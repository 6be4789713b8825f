package irtoy

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string    `yaml:"level"`  // debug, info, warn, error
	Pretty bool      `yaml:"pretty"` // human-readable console output
	Output io.Writer `yaml:"-"`
}

// Validate rejects levels NewLogger does not know. Empty means info.
func (c LogConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownLogLevel, c.Level)
}

// NewLogger creates a structured logger. Output defaults to stderr.
func NewLogger(cfg LogConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch cfg.Level {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("service", "irtoy").
		Logger()
}
