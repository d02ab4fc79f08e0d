// Package output renders analysis results as markdown, console text, JSON,
// and HTML. All writers are pure functions of already-computed data; callers
// own file creation.
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/torosent/k6report/internal/metrics"
)

// WriteAnalysis renders the single-run markdown report for one test.
// Sections without qualifying data are omitted entirely rather than rendered
// as "N/A".
func WriteAnalysis(w io.Writer, testName string, b metrics.Buckets) {
	fmt.Fprintf(w, "# Performance Report: %s\n\n", testName)
	fmt.Fprintf(w, "Generated: %s\n\n", time.Now().Format(time.RFC3339))

	writeResponseTimeSection(w, b)
	writeErrorSection(w, b)
	writeThroughputSection(w, b)
}

func writeResponseTimeSection(w io.Writer, b metrics.Buckets) {
	s, ok := metrics.Summarize(b.Series(metrics.RequestDuration))
	if !ok {
		return
	}

	fmt.Fprint(w, "## Response Time Analysis\n\n")
	fmt.Fprintf(w, "- **Average**: %.2fms\n", s.Avg)
	fmt.Fprintf(w, "- **Median (P50)**: %.2fms\n", s.Median)
	fmt.Fprintf(w, "- **P95**: %.2fms\n", s.P95)
	fmt.Fprintf(w, "- **P99**: %.2fms\n", s.P99)
	fmt.Fprintf(w, "- **Min**: %.2fms\n", s.Min)
	fmt.Fprintf(w, "- **Max**: %.2fms\n\n", s.Max)

	switch {
	case s.P95 < 100:
		fmt.Fprint(w, "✅ **Excellent**: P95 latency under 100ms\n\n")
	case s.P95 < 200:
		fmt.Fprint(w, "✅ **Good**: P95 latency under 200ms\n\n")
	case s.P95 < 500:
		fmt.Fprint(w, "⚠️ **Acceptable**: P95 latency under 500ms\n\n")
	default:
		fmt.Fprint(w, "❌ **Poor**: P95 latency exceeds 500ms\n\n")
	}
}

func writeErrorSection(w io.Writer, b metrics.Buckets) {
	failed := b.Series(metrics.RequestFailed)
	if len(failed) == 0 {
		return
	}

	var failedCount float64
	for _, v := range failed {
		failedCount += v
	}
	total := len(failed)
	errorRate := failedCount / float64(total) * 100

	fmt.Fprint(w, "## Error Analysis\n\n")
	fmt.Fprintf(w, "- **Total Requests**: %d\n", total)
	fmt.Fprintf(w, "- **Failed Requests**: %.0f\n", failedCount)
	fmt.Fprintf(w, "- **Error Rate**: %.2f%%\n\n", errorRate)

	switch {
	case errorRate < 1:
		fmt.Fprint(w, "✅ **Excellent**: Error rate under 1%\n\n")
	case errorRate < 5:
		fmt.Fprint(w, "✅ **Good**: Error rate under 5%\n\n")
	case errorRate < 10:
		fmt.Fprint(w, "⚠️ **Concerning**: Error rate under 10%\n\n")
	default:
		fmt.Fprint(w, "❌ **Poor**: Error rate exceeds 10%\n\n")
	}
}

func writeThroughputSection(w io.Writer, b metrics.Buckets) {
	reqs := b.Series(metrics.Requests)
	if len(reqs) == 0 {
		return
	}
	span, ok := b.Span()
	if !ok {
		return
	}

	seconds := span.Seconds()
	rps := 0.0
	if seconds > 0 {
		rps = float64(len(reqs)) / seconds
	}

	fmt.Fprint(w, "## Throughput Analysis\n\n")
	fmt.Fprintf(w, "- **Total Requests**: %d\n", len(reqs))
	fmt.Fprintf(w, "- **Test Duration**: %.1fs\n", seconds)
	fmt.Fprintf(w, "- **Average RPS**: %.1f\n\n", rps)

	switch {
	case rps >= 1000:
		fmt.Fprint(w, "🏆 **Excellent**: Throughput exceeds 1000 RPS\n\n")
	case rps >= 500:
		fmt.Fprint(w, "✅ **Good**: Throughput exceeds 500 RPS\n\n")
	case rps >= 100:
		fmt.Fprint(w, "⚠️ **Acceptable**: Throughput exceeds 100 RPS\n\n")
	default:
		fmt.Fprint(w, "❌ **Poor**: Throughput below 100 RPS\n\n")
	}
}

// Entry pairs a test name with its duration statistics for comparison.
type Entry struct {
	Name  string
	Stats metrics.Summary
}

// WriteComparison renders the multi-test comparison table, one row per entry
// in input order. Callers must skip the call (and the output file) when no
// entries have duration data.
func WriteComparison(w io.Writer, entries []Entry) {
	fmt.Fprint(w, "# Test Comparison Report\n\n")
	fmt.Fprint(w, "| Test | P50 (ms) | P95 (ms) | P99 (ms) | Avg (ms) | Max (ms) |\n")
	fmt.Fprint(w, "|------|----------|----------|----------|----------|----------|\n")
	for _, e := range entries {
		fmt.Fprintf(w, "| %s | %.1f | %.1f | %.1f | %.1f | %.1f |\n",
			e.Name, e.Stats.P50, e.Stats.P95, e.Stats.P99, e.Stats.Avg, e.Stats.Max)
	}

	// Ties resolve to the earliest entry.
	best, worst := entries[0], entries[0]
	for _, e := range entries[1:] {
		if e.Stats.P95 < best.Stats.P95 {
			best = e
		}
		if e.Stats.P95 > worst.Stats.P95 {
			worst = e
		}
	}

	fmt.Fprint(w, "\n## Analysis\n\n")
	fmt.Fprintf(w, "- **Best P95 latency**: %s (%.1fms)\n", best.Name, best.Stats.P95)
	fmt.Fprintf(w, "- **Worst P95 latency**: %s (%.1fms)\n\n", worst.Name, worst.Stats.P95)
}
