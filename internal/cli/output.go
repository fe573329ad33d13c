package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/fibmemo/internal/config"
	"github.com/agbru/fibmemo/internal/format"
	"github.com/agbru/fibmemo/internal/metrics"
	"github.com/agbru/fibmemo/internal/solver"
	"github.com/agbru/fibmemo/internal/sysmon"
	"github.com/agbru/fibmemo/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the
// user. It shows the batch range, the advisory parallelism hint, the
// simulated work delay, the timeout, and environment details.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Calculating %sF(0)..F(%d)%s concurrently with a hint of %s%d%s workers.\n",
		ui.ColorCyan(), cfg.MaxN, ui.ColorReset(), ui.ColorCyan(), cfg.Workers, ui.ColorReset())
	fmt.Fprintf(out, "Simulated work delay: %s%s%s per cache miss, timeout %s%s%s.\n",
		ui.ColorYellow(), cfg.Delay, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Note: the hint is advisory; one goroutine is launched per element.\n")
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}

// DisplayQuietValues prints the computed value sequence, one per line,
// without any decoration. Failed positions carry the error sentinel.
//
// Parameters:
//   - values: The sentinel-substituted result sequence in index order.
//   - out: The writer for standard output.
func DisplayQuietValues(values []int64, out io.Writer) {
	for _, v := range values {
		fmt.Fprintln(out, v)
	}
}

// DisplayCacheStats shows the memoization cache statistics after a batch.
// The duplicate-store count quantifies the redundant recomputation allowed by
// the unprotected check-then-act on the cache.
//
// Parameters:
//   - stats: A snapshot of the cache statistics.
//   - entries: The current cache entry count.
//   - out: The writer for standard output.
func DisplayCacheStats(stats solver.Stats, entries int, out io.Writer) {
	fmt.Fprintf(out, "\nCache Stats:\n")
	fmt.Fprintf(out, "  Entries:          %d\n", entries)
	fmt.Fprintf(out, "  Hits:             %d\n", stats.Hits)
	fmt.Fprintf(out, "  Misses:           %d\n", stats.Misses)
	fmt.Fprintf(out, "  Stores:           %d\n", stats.Stores)
	fmt.Fprintf(out, "  Duplicate stores: %d\n", stats.DuplicateStores)
}

// DisplayMemoryStats shows process memory statistics attributed to the batch.
//
// Parameters:
//   - delta: The memory snapshot delta for the batch run.
//   - out: The writer for standard output.
func DisplayMemoryStats(delta metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(delta.HeapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(delta.TotalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", delta.NumGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(delta.PauseTotalNs)/1e6)
}

// DisplaySystemStats shows a system-wide resource snapshot.
//
// Parameters:
//   - stats: The system usage sample.
//   - out: The writer for standard output.
func DisplaySystemStats(stats sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "\nSystem Stats:\n")
	fmt.Fprintf(out, "  CPU usage:  %.1f%%\n", stats.CPUPercent)
	fmt.Fprintf(out, "  Mem usage:  %.1f%%\n", stats.MemPercent)
	fmt.Fprintf(out, "  Goroutines: %d\n", stats.Goroutines)
}
