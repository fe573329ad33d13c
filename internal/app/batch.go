package app

import (
	"context"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/fibmemo/internal/cli"
	apperrors "github.com/agbru/fibmemo/internal/errors"
	"github.com/agbru/fibmemo/internal/metrics"
	"github.com/agbru/fibmemo/internal/orchestration"
	"github.com/agbru/fibmemo/internal/server"
	"github.com/agbru/fibmemo/internal/solver"
	"github.com/agbru/fibmemo/internal/sysmon"
)

// shutdownGrace bounds the graceful shutdown of the metrics server.
const shutdownGrace = 2 * time.Second

// runBatch orchestrates the execution of the concurrent Fibonacci batch.
func (a *Application) runBatch(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	// Shared cache + instrumentation
	batchMetrics := metrics.NewBatchMetrics()
	cache := solver.NewCache()
	batchMetrics.ObserveCache(cache)

	memCollector := metrics.NewMemoryCollector()
	memBefore := memCollector.Snapshot()

	// Optional metrics endpoint
	if a.Config.MetricsAddr != "" {
		srv := server.New(a.Config.MetricsAddr, batchMetrics.Registry(), a.Logger)
		srv.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				a.Logger.Error("metrics server shutdown failed", err)
			}
		}()
	}

	s := solver.New(cache,
		solver.WithDelay(a.Config.Delay),
		solver.WithLogger(a.Logger))

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
	}

	// Choose progress reporter based on quiet mode
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	driver := orchestration.NewDriver(s,
		orchestration.WithRecorder(batchMetrics),
		orchestration.WithLogger(a.Logger))
	summary := driver.RunBatch(ctx, a.Config.MaxN, a.Config.Workers, progressReporter, progressOut)

	a.presentResults(summary, cache, memCollector, memBefore, out)

	return a.exitCode(summary)
}

// presentResults renders the batch outcome according to the output mode.
func (a *Application) presentResults(summary orchestration.BatchSummary, cache *solver.Cache, memCollector *metrics.MemoryCollector, memBefore metrics.MemorySnapshot, out io.Writer) {
	if a.Config.Quiet {
		cli.DisplayQuietValues(summary.Values, out)
		return
	}

	presenter := cli.CLIResultPresenter{}
	presenter.PresentBatchTable(summary, out)
	presenter.PresentSummary(summary, out)

	if a.Config.Verbose {
		cli.DisplayCacheStats(cache.Stats(), cache.Len(), out)
		cli.DisplayMemoryStats(metrics.Delta(memBefore, memCollector.Snapshot()), out)
		cli.DisplaySystemStats(sysmon.Sample(), out)
	}
}

// exitCode derives the process exit code from the batch outcome. A fully
// successful batch exits zero; otherwise the first element error determines
// the code (cancellation and timeout map to their dedicated codes).
func (a *Application) exitCode(summary orchestration.BatchSummary) int {
	if summary.Failed == 0 {
		return apperrors.ExitSuccess
	}
	for _, res := range summary.Results {
		if res.Err != nil {
			return apperrors.ExitCodeForError(res.Err)
		}
	}
	return apperrors.ExitErrorGeneric
}
