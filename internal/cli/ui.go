package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/fibmemo/internal/orchestration"
)

// ProgressRefreshRate defines the refresh frequency of the spinner.
const ProgressRefreshRate = 100 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows the decoupling of DisplayProgress from a specific spinner
// implementation, facilitating easier testing. It defines the essential
// controls for a spinner: starting, stopping, and updating its status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the spinner.Spinner that implements the
// Spinner interface. This adapter allows the spinner library to be used
// within the application's CLI framework.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
//
// Parameters:
//   - suffix: The string to display.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

// newSpinner constructs the spinner used by DisplayProgress. It is a package
// variable so tests can substitute a fake implementation.
var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress renders a spinner with a completion counter while the batch
// runs. It consumes updates until the channel is closed, then stops the
// spinner and signals the wait group.
//
// Parameters:
//   - wg: A WaitGroup signaled when display is complete.
//   - progressChan: Channel receiving per-element completion updates.
//   - total: The total number of batch elements.
//   - out: The writer for spinner output.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, total int, out io.Writer) {
	defer wg.Done()

	sp := newSpinner(spinner.WithWriter(out))
	sp.UpdateSuffix(fmt.Sprintf(" solving 0/%d elements", total))
	sp.Start()
	defer sp.Stop()

	for update := range progressChan {
		sp.UpdateSuffix(fmt.Sprintf(" solving %d/%d elements", update.Completed, update.Total))
	}
}

// CLIProgressReporter implements orchestration.ProgressReporter for CLI output.
// It wraps the DisplayProgress function to provide a spinner display with a
// completion counter during batch runs.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner for the ongoing batch.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, total int, out io.Writer) {
	DisplayProgress(wg, progressChan, total, out)
}
