package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/torosent/k6report/internal/metrics"
	"github.com/torosent/k6report/internal/threshold"
)

var (
	goodColor = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	badColor  = color.New(color.FgRed)
)

// PrintSummary writes a short console summary for one analyzed test.
// Lines backed by empty series are omitted, mirroring the markdown report.
func PrintSummary(w io.Writer, testName string, stats metrics.Stats) {
	fmt.Fprintf(w, "\n--- %s ---\n", testName)

	if stats.Duration != nil {
		fmt.Fprintf(w, "Latency (ms):    p50=%.2f p95=%.2f p99=%.2f min=%.2f max=%.2f\n",
			stats.Duration.P50, stats.Duration.P95, stats.Duration.P99,
			stats.Duration.Min, stats.Duration.Max)
	}

	if stats.Total > 0 {
		line := fmt.Sprintf("Error rate:      %.2f%% (%.0f/%d)", stats.ErrorRate, stats.Failed, stats.Total)
		switch {
		case stats.ErrorRate < 1:
			goodColor.Fprintln(w, line)
		case stats.ErrorRate < 10:
			warnColor.Fprintln(w, line)
		default:
			badColor.Fprintln(w, line)
		}
	}

	if stats.RequestsPerSec > 0 {
		fmt.Fprintf(w, "Requests/sec:    %.1f (%d requests over %.1fs)\n",
			stats.RequestsPerSec, stats.Requests, stats.ElapsedSeconds)
	}
	if stats.PeakVUs > 0 {
		fmt.Fprintf(w, "Peak VUs:        %.0f\n", stats.PeakVUs)
	}
	if stats.Iterations > 0 {
		fmt.Fprintf(w, "Iterations:      %d\n", stats.Iterations)
	}
}

// PrintThresholdResults writes one line per threshold evaluation.
func PrintThresholdResults(w io.Writer, results []threshold.Result) {
	if len(results) == 0 {
		return
	}
	fmt.Fprintln(w, "\nThresholds:")
	for _, r := range results {
		if r.Pass {
			goodColor.Fprintf(w, "  %s\n", r.Message)
		} else {
			badColor.Fprintf(w, "  %s\n", r.Message)
		}
	}
}
