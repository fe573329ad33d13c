// Package config defines the application configuration, parsed from
// command-line flags with environment variable overrides.
// Priority: CLI flags > Environment variables > Defaults.
package config

import (
	"flag"
	"io"
	"time"

	apperrors "github.com/agbru/fibmemo/internal/errors"
)

// EnvPrefix is the prefix for all environment variable overrides.
const EnvPrefix = "FIBMEMO_"

// Default configuration values.
const (
	// DefaultMaxN is the default largest Fibonacci index of the batch.
	DefaultMaxN = 15
	// DefaultWorkers is the default advisory parallelism hint.
	DefaultWorkers = 4
	// DefaultDelay is the default simulated work delay per cache miss.
	DefaultDelay = time.Millisecond
	// DefaultTimeout is the default wall-clock limit for the whole batch.
	DefaultTimeout = time.Minute
	// MaxSafeIndex is the largest index whose Fibonacci number fits in a
	// signed 64-bit integer (F(92) = 7540113804746346429).
	MaxSafeIndex = 92
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	// MaxN is the largest Fibonacci index of the batch, inclusive.
	MaxN int
	// Workers is the advisory parallelism hint. It is reported to the user
	// and logged; the driver launches one goroutine per element regardless.
	Workers int
	// Delay is the simulated work delay applied by the solver on each cache miss.
	Delay time.Duration
	// Timeout bounds the wall-clock duration of the whole batch.
	Timeout time.Duration
	// Quiet suppresses all output except the computed values.
	Quiet bool
	// Verbose enables the cache, memory, and system usage summary.
	Verbose bool
	// NoColor disables ANSI colors in the output.
	NoColor bool
	// MetricsAddr is the listen address of the Prometheus metrics server.
	// Empty disables the server.
	MetricsAddr string
	// Version requests printing the version and exiting.
	Version bool
}

// NewDefaultConfig returns an AppConfig populated with the default values.
//
// Returns:
//   - AppConfig: The default configuration.
func NewDefaultConfig() AppConfig {
	return AppConfig{
		MaxN:    DefaultMaxN,
		Workers: DefaultWorkers,
		Delay:   DefaultDelay,
		Timeout: DefaultTimeout,
	}
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment variable overrides for flags not explicitly set, and validates
// the result.
//
// Parameters:
//   - programName: The program name used in usage output.
//   - args: The command-line arguments, excluding the program name.
//   - errWriter: The writer for flag parse errors and usage output.
//
// Returns:
//   - AppConfig: The parsed and validated configuration.
//   - error: A ConfigError on invalid values, or flag.ErrHelp when --help was used.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := NewDefaultConfig()

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.IntVar(&cfg.MaxN, "max-n", cfg.MaxN, "largest Fibonacci index of the batch (inclusive)")
	fs.IntVar(&cfg.MaxN, "n", cfg.MaxN, "shorthand for -max-n")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "advisory parallelism hint (informational only)")
	fs.IntVar(&cfg.Workers, "w", cfg.Workers, "shorthand for -workers")
	fs.DurationVar(&cfg.Delay, "delay", cfg.Delay, "simulated work delay per cache miss")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "wall-clock limit for the whole batch")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "print computed values only")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "shorthand for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "print cache, memory, and system usage summary")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "shorthand for -verbose")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable ANSI colors")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Prometheus metrics listen address (empty disables)")
	fs.BoolVar(&cfg.Version, "version", cfg.Version, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
//
// Returns:
//   - error: A ConfigError describing the first violated constraint, or nil.
func (c AppConfig) Validate() error {
	if c.MaxN < 0 {
		return apperrors.NewConfigError("max-n must be non-negative, got %d", c.MaxN)
	}
	if c.MaxN > MaxSafeIndex {
		return apperrors.NewConfigError("max-n must not exceed %d (int64 overflow), got %d", MaxSafeIndex, c.MaxN)
	}
	if c.Workers <= 0 {
		return apperrors.NewConfigError("workers must be positive, got %d", c.Workers)
	}
	if c.Delay < 0 {
		return apperrors.NewConfigError("delay must be non-negative, got %s", c.Delay)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
