// Package logger builds the zerolog logger used by the demo command.
package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"

	FieldRunID   = "run_id"
	FieldSection = "section"
)

// Config contains logging configuration.
type Config struct {
	Level   string `yaml:"level" mapstructure:"level"`
	Format  string `yaml:"format" mapstructure:"format"`
	NoColor bool   `yaml:"no_color" mapstructure:"no_color"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = FormatConsole
	}
}

// Validate validates logging configuration.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of [trace debug info warn error] (got: %s)", c.Level)
	}
	switch strings.ToLower(c.Format) {
	case FormatConsole, FormatJSON:
		return nil
	}
	return fmt.Errorf("log.format must be one of [%s %s] (got: %s)", FormatConsole, FormatJSON, c.Format)
}

// New creates a logger writing to w. Every entry carries a timestamp and a
// fresh run id so that the lines of one demo run can be correlated.
func New(cfg Config, w io.Writer) zerolog.Logger {
	cfg.ApplyDefaults()
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	// The global level caps every logger; trace is below its default.
	if level < zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(level)
	}

	var zl zerolog.Logger
	if strings.ToLower(cfg.Format) == FormatJSON {
		zl = zerolog.New(w)
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "15:04:05",
			NoColor:    cfg.NoColor,
		})
	}

	return zl.Level(level).With().
		Timestamp().
		Str(FieldRunID, uuid.NewString()).
		Logger()
}
