// Package config provides configuration for the chessrules tools.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int `json:"verbosity"` // 0=nothing, 1=results, 2=running commentary

	Display DisplayConfig `json:"display"`
	Perft   PerftConfig   `json:"perft"`

	// Output streams
	OutputFile io.Writer `json:"-"`
	LogFile    io.Writer `json:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Display:    *NewDisplayConfig(),
		Perft:      *NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer boards and move lists are printed to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer diagnostics are printed to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every section.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > MaxVerbosity {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d not in 0..%d", c.Verbosity, MaxVerbosity)
	}
	return c.Perft.Validate()
}

// MaxVerbosity is the most detailed logging level.
const MaxVerbosity = 2
