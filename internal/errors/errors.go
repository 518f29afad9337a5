// Package errors provides sentinel errors and error types for the chess rules core
// and its driver. Recoverable failures at the text boundary are returned as wrapped
// errors; the rules kernel panics with errors wrapping ErrInvariant or ErrProtocol,
// which signal caller bugs rather than bad input.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a malformed algebraic square name.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrIllegalMove indicates a move that is not in the legal move list.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvariant indicates an out-of-range piece, square or direction value
	// reached a lookup with no matching case.
	ErrInvariant = errors.New("invariant violation")

	// ErrProtocol indicates a derived position field was computed twice or read
	// before it was computed.
	ErrProtocol = errors.New("protocol violation")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDuplicatePosition indicates a position was already seen in a batch.
	ErrDuplicatePosition = errors.New("duplicate position")
)

// PositionError wraps errors with the context of a position in a batch: the input
// line, the FEN text and the move being resolved, when known. It supports
// unwrapping via errors.Is() and errors.As().
type PositionError struct {
	Err  error  // The underlying error
	Line int    // 1-based input line (0 if not applicable)
	FEN  string // The position text (if known)
	Move string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *PositionError) Error() string {
	var parts []string

	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
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
	return "position error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PositionError wrapper.
func (e *PositionError) Unwrap() error {
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

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
