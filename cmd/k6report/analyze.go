package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/torosent/k6report/internal/config"
	"github.com/torosent/k6report/internal/metrics"
	"github.com/torosent/k6report/internal/output"
	"github.com/torosent/k6report/internal/results"
	"github.com/torosent/k6report/internal/threshold"
)

// analyzer runs the per-test pipeline: load, extract, summarize, render.
// Tests are processed strictly one at a time; nothing is shared between
// analyses beyond the configuration.
type analyzer struct {
	cfg              *config.Config
	thresholds       []threshold.Threshold
	stdout           io.Writer
	stderr           io.Writer
	failedThresholds int
}

func (a *analyzer) resultsPath(name string) string {
	return filepath.Join(a.cfg.ResultsDir, name+"_results.json")
}

// analyzeTest loads one test's results and writes its markdown analysis.
// A missing file or an empty result set is reported and skipped, never fatal.
func (a *analyzer) analyzeTest(name string) {
	path := a.resultsPath(name)
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(a.stderr, "Results file not found: %s\n", path)
		return
	}
	fmt.Fprintf(a.stdout, "Analyzing %s test results...\n", name)

	records := results.Load(path)
	if len(records) == 0 {
		fmt.Fprintf(a.stderr, "No valid results found in %s\n", path)
		return
	}

	buckets := metrics.Extract(records)

	reportPath := filepath.Join(a.cfg.ResultsDir, name+"_analysis.md")
	err := writeFileWith(reportPath, func(w io.Writer) error {
		output.WriteAnalysis(w, name, buckets)
		return nil
	})
	if err != nil {
		fmt.Fprintf(a.stderr, "Failed to write analysis report: %v\n", err)
		return
	}
	fmt.Fprintf(a.stdout, "Analysis report saved: %s\n", reportPath)

	stats := metrics.Compute(buckets)

	var checks []threshold.Result
	if len(a.thresholds) > 0 {
		checks = threshold.NewEvaluator(a.thresholds).Evaluate(stats)
		for _, r := range checks {
			if !r.Pass {
				a.failedThresholds++
			}
		}
	}

	if a.cfg.JSONOutput {
		if err := output.PrintJSONStats(a.stdout, name, stats); err != nil {
			fmt.Fprintf(a.stderr, "Failed to encode stats: %v\n", err)
		}
	} else {
		output.PrintSummary(a.stdout, name, stats)
	}
	output.PrintThresholdResults(a.stdout, checks)

	if a.cfg.HTMLOutput {
		htmlPath := filepath.Join(a.cfg.ResultsDir, name+"_analysis.html")
		err := writeFileWith(htmlPath, func(w io.Writer) error {
			return output.GenerateHTMLReport(w, name, stats, buckets.Series(metrics.RequestDuration), checks)
		})
		if err != nil {
			fmt.Fprintf(a.stderr, "Failed to write HTML report: %v\n", err)
			return
		}
		fmt.Fprintf(a.stdout, "HTML report saved: %s\n", htmlPath)
	}
}

// compareTests assembles duration summaries for the named tests and writes
// the comparison report. Tests without a results file or without duration
// data are skipped; with no comparable tests no report file is written.
func (a *analyzer) compareTests(names []string) {
	var entries []output.Entry
	for _, name := range names {
		path := a.resultsPath(name)
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(a.stderr, "Skipping %s - results file not found\n", name)
			continue
		}
		records := results.Load(path)
		if len(records) == 0 {
			continue
		}
		buckets := metrics.Extract(records)
		if summary, ok := metrics.Summarize(buckets.Series(metrics.RequestDuration)); ok {
			entries = append(entries, output.Entry{Name: name, Stats: summary})
		}
	}
	if len(entries) == 0 {
		return
	}

	reportPath := filepath.Join(a.cfg.ResultsDir, "comparison_report.md")
	err := writeFileWith(reportPath, func(w io.Writer) error {
		output.WriteComparison(w, entries)
		return nil
	})
	if err != nil {
		fmt.Fprintf(a.stderr, "Failed to write comparison report: %v\n", err)
		return
	}
	fmt.Fprintf(a.stdout, "Comparison report saved: %s\n", reportPath)
}

func writeFileWith(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
