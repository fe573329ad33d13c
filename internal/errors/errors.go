package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
// It allows for the creation of configuration-specific errors with dynamic
// content.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// InvalidInputError reports a request for a Fibonacci index that is not a
// non-negative integer. It is the only error the solver itself produces,
// carrying the offending index for diagnostics.
type InvalidInputError struct {
	// N is the rejected index.
	N int
}

// Error returns a formatted message describing the invalid input.
//
// Returns:
//   - string: The error message string.
func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: index must be a non-negative integer, got %d", e.N)
}

// NewInvalidInputError creates an InvalidInputError for the given index.
//
// Parameters:
//   - n: The rejected index.
//
// Returns:
//   - error: A new InvalidInputError instance.
func NewInvalidInputError(n int) error {
	return InvalidInputError{N: n}
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInputError.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error chain contains an InvalidInputError.
func IsInvalidInput(err error) bool {
	var iie InvalidInputError
	return errors.As(err, &iie)
}

// BatchError encapsulates a batch execution error while preserving the
// original cause. This allows for structured error handling and inspection
// of what went wrong while running the concurrent batch.
type BatchError struct {
	// Cause is the underlying error that triggered this batch error.
	Cause error
}

// Error returns the error message from the underlying cause.
//
// Returns:
//   - string: The error message string from the wrapped error.
func (e BatchError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the BatchError.
func (e BatchError) Unwrap() error { return e.Cause }

// TimeoutError represents a batch timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
//
// Returns:
//   - string: The error message string.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeForError maps an error to the application exit-code taxonomy. A nil
// error maps to ExitSuccess; cancellation maps to ExitErrorCanceled, deadline
// expiry and TimeoutError to ExitErrorTimeout, ConfigError to ExitErrorConfig,
// anything else to ExitErrorGeneric.
//
// Parameters:
//   - err: The error to classify.
//
// Returns:
//   - int: The exit code corresponding to the error class.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	}
	var te TimeoutError
	if errors.As(err, &te) {
		return ExitErrorTimeout
	}
	var ce ConfigError
	if errors.As(err, &ce) {
		return ExitErrorConfig
	}
	return ExitErrorGeneric
}
