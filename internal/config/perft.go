package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// PerftConfig holds settings for perft runs.
type PerftConfig struct {
	// Workers is the size of the divide worker pool; 0 means one per CPU
	Workers int `json:"workers"`

	// BufferSize is the worker channel capacity
	BufferSize int `json:"buffer_size"`
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{BufferSize: 64}
}

// Validate checks that the perft configuration is usable.
func (p *PerftConfig) Validate() error {
	if p.Workers < 0 {
		return fmt.Errorf("perft workers %d: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.BufferSize < 1 {
		return fmt.Errorf("perft buffer size %d: %w", p.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
