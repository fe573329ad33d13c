package app

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/fibmemo/internal/errors"
	"github.com/agbru/fibmemo/internal/logging"
)

func TestNew_ParsesArguments(t *testing.T) {
	application, err := New([]string{"fibmemo", "-max-n", "12", "-workers", "2"}, io.Discard)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if application.Config.MaxN != 12 {
		t.Errorf("MaxN = %d, want 12", application.Config.MaxN)
	}
	if application.Config.Workers != 2 {
		t.Errorf("Workers = %d, want 2", application.Config.Workers)
	}
	if application.Logger == nil {
		t.Error("Logger should be initialized by default")
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New([]string{"fibmemo", "-max-n", "-5"}, io.Discard)
	if err == nil {
		t.Fatal("expected error for negative max-n")
	}
}

func TestNew_HelpFlag(t *testing.T) {
	_, err := New([]string{"fibmemo", "-help"}, io.Discard)
	if err == nil {
		t.Fatal("expected flag.ErrHelp")
	}
	if !IsHelpError(err) {
		t.Errorf("IsHelpError(%v) should be true", err)
	}
}

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected bool
	}{
		{"single dash", []string{"-version"}, true},
		{"double dash", []string{"--version"}, true},
		{"mixed args", []string{"-max-n", "5", "--version"}, true},
		{"absent", []string{"-max-n", "5"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasVersionFlag(tt.args); got != tt.expected {
				t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.expected)
			}
		})
	}
}

func TestRun_VersionMode(t *testing.T) {
	application, err := New([]string{"fibmemo", "-version"}, io.Discard, WithLogger(logging.NopLogger{}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want success", code)
	}
	if !strings.Contains(out.String(), "fibmemo") {
		t.Errorf("version output = %q", out.String())
	}
}

// TestRun_QuietBatch runs the full application in quiet mode and verifies the
// exact value sequence on stdout.
func TestRun_QuietBatch(t *testing.T) {
	args := []string{"fibmemo", "-max-n", "10", "-q", "-delay", "0s"}
	application, err := New(args, io.Discard, WithLogger(logging.NopLogger{}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want success", code)
	}
	want := "0\n1\n1\n2\n3\n5\n8\n13\n21\n34\n55\n"
	if out.String() != want {
		t.Errorf("quiet output = %q, want %q", out.String(), want)
	}
}

// TestRun_VerboseBatch verifies the human-readable output path, including the
// cache statistics section.
func TestRun_VerboseBatch(t *testing.T) {
	args := []string{"fibmemo", "-max-n", "8", "-v", "-no-color", "-delay", "0s"}
	application, err := New(args, io.Discard, WithLogger(logging.NopLogger{}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want success", code)
	}
	output := out.String()
	for _, want := range []string{
		"Execution Configuration",
		"Batch Results",
		"Total time taken for Fibonacci up to 8",
		"Cache Stats",
		"Memory Stats",
		"System Stats",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got:\n%s", want, output)
		}
	}
}

// TestRun_TimeoutProducesSentinels verifies that an expired batch deadline
// surfaces as the timeout exit code.
func TestRun_TimeoutProducesSentinels(t *testing.T) {
	args := []string{"fibmemo", "-max-n", "40", "-q", "-delay", "50ms", "-timeout", "30ms"}
	application, err := New(args, io.Discard, WithLogger(logging.NopLogger{}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	start := time.Now()
	var out bytes.Buffer
	code := application.Run(context.Background(), &out)
	elapsed := time.Since(start)

	if code != apperrors.ExitErrorTimeout && code != apperrors.ExitErrorCanceled {
		t.Errorf("exit code = %d, want timeout or canceled", code)
	}
	if elapsed > 5*time.Second {
		t.Errorf("timed-out batch should return promptly, took %s", elapsed)
	}
	if !strings.Contains(out.String(), "-1") {
		t.Error("timed-out elements should be substituted with the sentinel")
	}
}
