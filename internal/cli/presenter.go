package cli

import (
	"fmt"
	"io"

	"github.com/agbru/fibmemo/internal/format"
	"github.com/agbru/fibmemo/internal/orchestration"
	"github.com/agbru/fibmemo/internal/ui"
)

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It provides formatted, colorized output for batch results in the
// command-line interface.
type CLIResultPresenter struct{}

// Verify interface compliance.
var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentBatchTable displays the per-element result table with indices,
// values, durations, and status in a formatted tabular layout.
// Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentBatchTable(summary orchestration.BatchSummary, out io.Writer) {
	fmt.Fprintf(out, "\n--- Batch Results ---\n")

	// Find the maximum value width for proper alignment
	maxValueLen := 5 // "Value" header length
	maxDurationLen := 8 // "Duration" header length
	for i, res := range summary.Results {
		value := fmt.Sprintf("%d", summary.Values[i])
		if len(value) > maxValueLen {
			maxValueLen = len(value)
		}
		duration := formatElementDuration(res)
		if len(duration) > maxDurationLen {
			maxDurationLen = len(duration)
		}
	}

	// Print header with proper padding
	fmt.Fprintf(out, "%sIndex%s   %sValue%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxValueLen-5),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-8),
		ui.ColorUnderline(), ui.ColorReset())

	// Print each result row
	for i, res := range summary.Results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%sFailure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%sSuccess%s", ui.ColorGreen(), ui.ColorReset())
		}
		value := fmt.Sprintf("%d", summary.Values[i])
		duration := formatElementDuration(res)
		fmt.Fprintf(out, "%s%5d%s   %s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Index, ui.ColorReset(),
			ui.ColorCyan(), value, ui.ColorReset(), padRight("", maxValueLen-len(value)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

// PresentSummary displays the closing summary for the batch: the total
// wall-clock time and, when failures occurred, their count.
func (CLIResultPresenter) PresentSummary(summary orchestration.BatchSummary, out io.Writer) {
	maxN := len(summary.Values) - 1
	fmt.Fprintf(out, "\nTotal time taken for Fibonacci up to %s%d%s: %s%s%s\n",
		ui.ColorCyan(), maxN, ui.ColorReset(),
		ui.ColorYellow(), format.FormatExecutionDuration(summary.Elapsed), ui.ColorReset())
	if summary.Failed > 0 {
		fmt.Fprintf(out, "%s%d element(s) failed and were substituted with %d.%s\n",
			ui.ColorRed(), summary.Failed, orchestration.ErrorSentinel, ui.ColorReset())
	}
}

// formatElementDuration formats a single element's duration, flooring
// sub-microsecond values for readability.
func formatElementDuration(res orchestration.ElementResult) string {
	if res.Duration == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(res.Duration)
}

// padRight returns a string of spaces with the given length appended to s.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}
