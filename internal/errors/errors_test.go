// Package apperrors provides tests for application error types.
package apperrors

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %d for flag %s", 42, "--max-n"),
			expected: "invalid value 42 for flag --max-n",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestInvalidInputError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		n        int
		expected string
	}{
		{
			name:     "negative one",
			n:        -1,
			expected: "invalid input: index must be a non-negative integer, got -1",
		},
		{
			name:     "large negative",
			n:        -42,
			expected: "invalid input: index must be a non-negative integer, got -42",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := NewInvalidInputError(tt.n)
			if err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, err.Error())
			}
			var iie InvalidInputError
			if !errors.As(err, &iie) {
				t.Fatal("expected error to be InvalidInputError type")
			}
			if iie.N != tt.n {
				t.Errorf("expected N=%d, got %d", tt.n, iie.N)
			}
		})
	}
}

func TestIsInvalidInput(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"direct InvalidInputError", NewInvalidInputError(-3), true},
		{"wrapped InvalidInputError", WrapError(NewInvalidInputError(-3), "solving element 5"), true},
		{"wrapped in BatchError", BatchError{Cause: NewInvalidInputError(-1)}, true},
		{"unrelated error", errors.New("boom"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsInvalidInput(tt.err); got != tt.expected {
				t.Errorf("IsInvalidInput(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestBatchError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		cause       error
		expectedMsg string
		checkIs     error
		checkUnwrap bool
	}{
		{
			name:        "Error returns cause message",
			cause:       errors.New("goroutine panic"),
			expectedMsg: "goroutine panic",
		},
		{
			name:        "Unwrap returns cause",
			cause:       errors.New("original error"),
			expectedMsg: "original error",
			checkUnwrap: true,
		},
		{
			name:        "errors.Is works with wrapped error",
			cause:       context.Canceled,
			expectedMsg: "context canceled",
			checkIs:     context.Canceled,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := BatchError{Cause: tt.cause}

			if err.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, err.Error())
			}

			if tt.checkUnwrap && err.Unwrap() != tt.cause {
				t.Error("Unwrap should return the original cause")
			}

			if tt.checkIs != nil && !errors.Is(err, tt.checkIs) {
				t.Errorf("errors.Is should find %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestTimeoutError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      TimeoutError
		expected string
	}{
		{
			name:     "Error returns formatted message",
			err:      TimeoutError{Operation: "batch", Limit: 30 * time.Second},
			expected: `operation "batch" timed out after 30s`,
		},
		{
			name:     "Error with subsecond limit",
			err:      TimeoutError{Operation: "solve", Limit: 500 * time.Millisecond},
			expected: `operation "solve" timed out after 500ms`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	t.Run("wraps with context message", func(t *testing.T) {
		t.Parallel()
		base := errors.New("low level failure")
		err := WrapError(base, "solving F(%d)", 7)
		if err == nil {
			t.Fatal("expected non-nil error")
		}
		if err.Error() != "solving F(7): low level failure" {
			t.Errorf("unexpected message: %q", err.Error())
		}
		if !errors.Is(err, base) {
			t.Error("wrapped error should match base via errors.Is")
		}
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		if err := WrapError(nil, "context"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"context.Canceled", context.Canceled, true},
		{"context.DeadlineExceeded", context.DeadlineExceeded, true},
		{"wrapped cancellation", WrapError(context.Canceled, "batch aborted"), true},
		{"other error", errors.New("other"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.expected {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil is success", nil, ExitSuccess},
		{"cancellation", context.Canceled, ExitErrorCanceled},
		{"deadline exceeded", context.DeadlineExceeded, ExitErrorTimeout},
		{"timeout error", TimeoutError{Operation: "batch", Limit: time.Second}, ExitErrorTimeout},
		{"config error", NewConfigError("bad flag"), ExitErrorConfig},
		{"invalid input", NewInvalidInputError(-1), ExitErrorGeneric},
		{"generic error", errors.New("boom"), ExitErrorGeneric},
		{"wrapped cancellation", WrapError(context.Canceled, "outer"), ExitErrorCanceled},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeForError(tt.err); got != tt.expected {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.expected)
			}
		})
	}
}
