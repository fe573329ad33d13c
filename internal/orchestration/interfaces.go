//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"context"
	"io"
	"sync"
	"time"
)

// Solver is the contract the batch driver requires from the memoized solver.
// It matches the solver package's Solve method, allowing the driver to be
// tested against mocks without invoking the real recursion.
type Solver interface {
	// Solve computes the nth Fibonacci number.
	Solve(ctx context.Context, n int) (int64, error)
}

// ElementResult encapsulates the outcome of a single batch element.
// It serves as the shared domain type between orchestration and presentation
// layers.
type ElementResult struct {
	// Index is the requested Fibonacci index.
	Index int
	// Value is the computed Fibonacci number. It is unspecified if an error
	// occurred; consumers should use BatchSummary.Values for the
	// sentinel-substituted sequence.
	Value int64
	// Duration is the time taken to complete this element.
	Duration time.Duration
	// Err contains any error that occurred while solving this element.
	Err error
}

// BatchSummary aggregates the outcome of a complete batch run.
type BatchSummary struct {
	// Results holds per-element outcomes in input order.
	Results []ElementResult
	// Values is the result sequence in input order, with the error sentinel
	// substituted at failed positions.
	Values []int64
	// Elapsed is the wall-clock duration of the whole batch.
	Elapsed time.Duration
	// Failed is the number of elements that did not produce a value.
	Failed int
}

// ProgressUpdate is sent by the driver each time a batch element completes.
type ProgressUpdate struct {
	// Index is the index of the element that just completed.
	Index int
	// Completed is the number of elements completed so far.
	Completed int
	// Total is the total number of elements in the batch.
	Total int
}

// ProgressReporter defines the interface for displaying batch progress.
// This interface decouples the orchestration layer from the presentation
// layer; implementations handle the visual representation (spinner, counter)
// while the driver focuses on coordinating the solves.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until the
	// progressChan is closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving per-element completion updates.
	//   - total: The total number of elements in the batch.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain channel silently
	}
}

// ResultPresenter defines the interface for presenting batch results.
// This decouples orchestration from output formats (CLI table, quiet values)
// without modifying the driver logic.
type ResultPresenter interface {
	// PresentBatchTable displays the per-element result table.
	PresentBatchTable(summary BatchSummary, out io.Writer)

	// PresentSummary displays the closing summary line(s) for the batch.
	PresentSummary(summary BatchSummary, out io.Writer)
}

// Recorder records batch execution events for instrumentation. The metrics
// package provides the Prometheus-backed implementation.
type Recorder interface {
	// SolveStarted records that a top-level solve has begun.
	SolveStarted()
	// SolveFinished records that a top-level solve has completed.
	SolveFinished(err error)
	// BatchCompleted records the wall-clock duration of a finished batch.
	BatchCompleted(seconds float64)
}

// NullRecorder is a no-op Recorder used when metrics are disabled.
type NullRecorder struct{}

// SolveStarted is a no-op.
func (NullRecorder) SolveStarted() {}

// SolveFinished is a no-op.
func (NullRecorder) SolveFinished(error) {}

// BatchCompleted is a no-op.
func (NullRecorder) BatchCompleted(float64) {}
