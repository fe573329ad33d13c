package orchestration

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/fibmemo/internal/logging"
)

// ErrorSentinel is the value substituted in the result sequence at positions
// whose solve failed. Failures never abort sibling elements.
const ErrorSentinel int64 = -1

// ProgressBufferMultiplier defines the buffer size multiplier for the
// progress channel. A larger buffer reduces the likelihood of blocking solve
// goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 2

// tracerName identifies this package's OpenTelemetry tracer.
const tracerName = "github.com/agbru/fibmemo/internal/orchestration"

// Driver launches the concurrent batch and collects results in input order.
type Driver struct {
	solver   Solver
	recorder Recorder
	logger   logging.Logger
	tracer   trace.Tracer
}

// DriverOption configures a Driver during construction.
type DriverOption func(*Driver)

// WithRecorder sets the instrumentation recorder.
func WithRecorder(r Recorder) DriverOption {
	return func(d *Driver) { d.recorder = r }
}

// WithLogger sets the logger for batch lifecycle records.
func WithLogger(logger logging.Logger) DriverOption {
	return func(d *Driver) { d.logger = logger }
}

// NewDriver creates a batch driver over the given solver.
//
// Parameters:
//   - solver: The memoized solver executing each element.
//   - opts: Optional configuration (recorder, logger).
//
// Returns:
//   - *Driver: The configured driver.
func NewDriver(solver Solver, opts ...DriverOption) *Driver {
	d := &Driver{
		solver:   solver,
		recorder: NullRecorder{},
		logger:   logging.NopLogger{},
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// RunBatch solves F(0)..F(maxN) concurrently and returns the aggregated
// summary. One goroutine is launched per element regardless of workers: the
// parallelism hint is advisory only and never bounds concurrency. (The
// original design intended it to size a worker pool but never wired it; the
// behavior is preserved and the hint merely logged.)
//
// Parameters:
//   - ctx: The context bounding the whole batch.
//   - maxN: The largest index, inclusive. The batch has maxN+1 elements.
//   - workers: The advisory parallelism hint.
//   - reporter: The progress reporter (use NullProgressReporter for quiet mode).
//   - out: The writer for progress output.
//
// Returns:
//   - BatchSummary: Per-element results, the sentinel-substituted value
//     sequence in index order, and the elapsed wall-clock time.
func (d *Driver) RunBatch(ctx context.Context, maxN, workers int, reporter ProgressReporter, out io.Writer) BatchSummary {
	indices := make([]int, maxN+1)
	for i := range indices {
		indices[i] = i
	}
	d.logger.Info("starting batch",
		logging.Int("max_n", maxN),
		logging.Int("parallelism_hint", workers))
	return d.RunIndices(ctx, indices, reporter, out)
}

// RunIndices solves the given indices concurrently, collecting results in the
// order the indices were supplied. An element whose solve fails contributes
// the error sentinel at its position; its siblings are unaffected.
//
// Parameters:
//   - ctx: The context bounding the whole batch.
//   - indices: The Fibonacci indices to solve, in output order.
//   - reporter: The progress reporter.
//   - out: The writer for progress output.
//
// Returns:
//   - BatchSummary: The aggregated batch outcome.
func (d *Driver) RunIndices(ctx context.Context, indices []int, reporter ProgressReporter, out io.Writer) BatchSummary {
	ctx, span := d.tracer.Start(ctx, "batch",
		trace.WithAttributes(attribute.Int("batch.size", len(indices))))
	defer span.End()

	total := len(indices)
	results := make([]ElementResult, total)
	progressChan := make(chan ProgressUpdate, total*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, total, out)

	startTime := time.Now()
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for i, n := range indices {
		idx, index := i, n
		g.Go(func() error {
			elemCtx, elemSpan := d.tracer.Start(gctx, "solve",
				trace.WithAttributes(attribute.Int("fib.n", index)))
			defer elemSpan.End()

			d.recorder.SolveStarted()
			elemStart := time.Now()
			value, err := d.solver.Solve(elemCtx, index)
			results[idx] = ElementResult{
				Index: index, Value: value, Duration: time.Since(elemStart), Err: err,
			}
			d.recorder.SolveFinished(err)
			if err != nil {
				d.logger.Warn("element failed",
					logging.Int("index", index),
					logging.Err(err))
			}
			progressChan <- ProgressUpdate{
				Index:     index,
				Completed: int(completed.Add(1)),
				Total:     total,
			}
			// Per-element errors are captured in the result slot; returning
			// nil keeps sibling elements running.
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	summary := BatchSummary{
		Results: results,
		Values:  make([]int64, total),
		Elapsed: time.Since(startTime),
	}
	for i := range results {
		if results[i].Err != nil {
			summary.Values[i] = ErrorSentinel
			summary.Failed++
		} else {
			summary.Values[i] = results[i].Value
		}
	}

	d.recorder.BatchCompleted(summary.Elapsed.Seconds())
	d.logger.Info("batch complete",
		logging.Int("elements", total),
		logging.Int("failed", summary.Failed),
		logging.Dur("elapsed", summary.Elapsed))
	return summary
}
