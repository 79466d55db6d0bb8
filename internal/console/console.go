// Package console provides the shared leveled logger used across the
// generator. Debug output is off by default and enabled via DebugLevel.
package console

import (
	"os"

	"github.com/rs/zerolog"
)

// Console wraps a zerolog logger with a debug gate.
type Console struct {
	log        zerolog.Logger
	DebugLevel int
}

// Logger is the process-wide console instance.
var Logger = New()

// New builds a Console writing human-readable output to stderr.
func New() *Console {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()
	return &Console{log: zl}
}

// Debug logs a formatted debug message when debug output is enabled.
func (c *Console) Debug(format string, v ...interface{}) {
	if c.DebugLevel < 1 {
		return
	}
	c.log.Debug().Msgf(format, v...)
}

// Info logs a formatted informational message.
func (c *Console) Info(format string, v ...interface{}) {
	c.log.Info().Msgf(format, v...)
}

// Warn logs a formatted warning.
func (c *Console) Warn(format string, v ...interface{}) {
	c.log.Warn().Msgf(format, v...)
}

// Error logs a formatted error message.
func (c *Console) Error(format string, v ...interface{}) {
	c.log.Error().Msgf(format, v...)
}

// Quiet suppresses everything below the error level.
func (c *Console) Quiet() {
	c.log = c.log.Level(zerolog.ErrorLevel)
	c.DebugLevel = 0
}
