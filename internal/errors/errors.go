// Package errors provides sentinel errors and error types for the chess rules
// engine's boundary layers. It defines common error conditions and structured
// error types that preserve context while allowing error inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSquare indicates square or move text that is not valid
	// file+rank notation.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrIllegalMove indicates a move absent from the current legal move list.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates a move submitted after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidPosition indicates a board that breaks the one-king-per-colour rule.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrParseFailure indicates input that could not be decoded, such as a malformed config file.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// MoveError wraps errors with move context, including the ply the move
// was submitted at and the move text. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	PlyNum   int    // 1-based ply the move would have been (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	ToMove   string // Side to move when the error occurred (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	if e.ToMove != "" {
		parts = append(parts, fmt.Sprintf("%s to move", e.ToMove))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "move error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with input location context.
// It's used for square/move notation and configuration parsing errors.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name (if any)
	Input    string // The text being parsed
	Line     int    // Line number (1-based, 0 if not applicable)
	Column   int    // Column number (1-based, 0 if not applicable)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	// Add location
	loc := e.File
	if e.Input != "" {
		if loc != "" {
			loc += " "
		}
		loc += fmt.Sprintf("%q", e.Input)
	}
	if e.Line > 0 {
		loc += fmt.Sprintf(":%d", e.Line)
	}
	if e.Column > 0 {
		loc += fmt.Sprintf(":%d", e.Column)
	}
	if loc != "" {
		parts = append(parts, loc)
	}

	// Add expected/got context
	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	// Add underlying error
	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
