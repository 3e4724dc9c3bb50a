// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfRange indicates a position outside the 8x8 grid was dereferenced.
	ErrOutOfRange = errors.New("position out of range")

	// ErrStaleReference indicates a move was generated against a different board snapshot.
	ErrStaleReference = errors.New("stale board reference")

	// ErrIllegalSuggestion indicates an externally suggested move is not currently legal.
	ErrIllegalSuggestion = errors.New("illegal suggestion")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidNotation indicates a malformed coordinate move string.
	ErrInvalidNotation = errors.New("invalid move notation")

	// ErrGameOver indicates a move was attempted after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrWrongTurn indicates a piece of the side not to move was selected.
	ErrWrongTurn = errors.New("not this side's turn")

	// ErrAdvisorUnavailable indicates the move-suggestion service failed or timed out.
	ErrAdvisorUnavailable = errors.New("advisor unavailable")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context, including ply, the moving
// piece and the squares involved. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err   error  // The underlying error
	Ply   int    // 1-based ply number (0 if not applicable)
	Piece string // Identity key of the moving piece (if known)
	From  string // Source square (if known)
	To    string // Destination square (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Piece != "" {
		parts = append(parts, fmt.Sprintf("piece %s", e.Piece))
	}
	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("%s->%s", e.From, e.To))
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

// AdvisorError represents a failed round trip to a move-suggestion service.
type AdvisorError struct {
	Err        error  // The underlying error
	Endpoint   string // Request path or URL
	StatusCode int    // HTTP status (0 if no response)
}

// Error returns a formatted error message with endpoint and status.
func (e *AdvisorError) Error() string {
	var parts []string
	if e.Endpoint != "" {
		parts = append(parts, e.Endpoint)
	}
	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("status %d", e.StatusCode))
	}
	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}
	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "advisor error"
}

// Unwrap returns the underlying error.
func (e *AdvisorError) Unwrap() error {
	return e.Err
}

// Is reports every AdvisorError as ErrAdvisorUnavailable so callers can
// treat all advisor failures uniformly.
func (e *AdvisorError) Is(target error) bool {
	return target == ErrAdvisorUnavailable
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

// Is reports whether any error in err's chain matches target. It lets
// callers that import this package under the name errors skip a second
// import of the standard library package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
