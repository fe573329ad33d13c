// Package app wires configuration, logging, metrics, and the batch driver
// into the application lifecycle.
package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/fibmemo/internal/config"
	apperrors "github.com/agbru/fibmemo/internal/errors"
	"github.com/agbru/fibmemo/internal/logging"
	"github.com/agbru/fibmemo/internal/ui"
)

// Application represents the fibmemo application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom logger for the application.
func WithLogger(logger logging.Logger) AppOption {
	return func(a *Application) { a.Logger = logger }
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: The full argument vector, including the program name.
//   - errWriter: The writer for flag errors and usage output.
//   - opts: Optional configuration (logger).
//
// Returns:
//   - *Application: The configured application.
//   - error: A ConfigError or flag parse error, including flag.ErrHelp.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "fibmemo"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		app.Logger = logging.NewDefaultLogger()
	}
	return app, nil
}

// Run executes the application based on the configured mode.
//
// Parameters:
//   - ctx: The root context for the run.
//   - out: The writer for standard output.
//
// Returns:
//   - int: The process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Version {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}

	if a.Config.Quiet {
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	return a.runBatch(ctx, out)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
