// ============================================================================
// hearty - Date and Time Helpers
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from the hearty
//              configuration
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	hlog "github.com/msto63/hearty/foundation/core/log"
	"github.com/msto63/hearty/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name, shown in text output and as "logger" in JSON
	Name string

	// Log level. Default: info
	Level hlog.Level

	// Output format. Default: text
	Format hlog.Format

	// Output writer. Default: os.Stderr
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer

	// CorrelationID tags every entry with a fresh run ID
	CorrelationID bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  hlog.LevelInfo,
		Format: hlog.FormatText,
	}
}

// NewLogger creates a new Foundation logger
func NewLogger(cfg LoggerConfig) *hlog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	logger := hlog.NewWithConfig(hlog.Config{
		Level:        cfg.Level,
		Format:       cfg.Format,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.Level <= hlog.LevelDebug,
	})

	if cfg.CorrelationID {
		logger = logger.WithCorrelationID(uuid.NewString())
	}

	return logger
}

// FromConfig creates the application logger from the [general] section.
// Unknown levels and formats fall back to info and text.
// verbose lowers the level to debug regardless of the file.
func FromConfig(cfg *config.Config, name string, output io.Writer, verbose bool) *hlog.Logger {
	lc := DefaultLoggerConfig(name)
	lc.Level = cfg.LogLevel()
	lc.Format = cfg.LogFormat()
	lc.Output = output
	lc.CorrelationID = true

	if verbose {
		lc.Level = hlog.LevelDebug
	}

	return NewLogger(lc)
}

// Fields converts key-value pairs to hlog.Fields. Non-string keys and a
// trailing key without value are skipped.
func Fields(keysAndValues ...interface{}) hlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(hlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
