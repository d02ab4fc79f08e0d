package output

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/torosent/k6report/internal/metrics"
	"github.com/torosent/k6report/internal/threshold"
)

// HTMLReportData contains all data needed for the HTML report template.
type HTMLReportData struct {
	GeneratedAt      string
	TestName         string
	Stats            metrics.Stats
	Distribution     []DistributionRow
	ThresholdResults []threshold.Result
}

// DistributionRow is one rung of the latency distribution ladder.
type DistributionRow struct {
	Quantile float64
	ValueMs  float64
}

var distributionQuantiles = []float64{50, 75, 90, 95, 99, 99.9, 100}

// GenerateHTMLReport generates a standalone HTML report for one test. The
// latency distribution section is included only when duration samples exist.
func GenerateHTMLReport(w io.Writer, testName string, stats metrics.Stats, durations []float64, thresholdResults []threshold.Result) error {
	data := HTMLReportData{
		GeneratedAt:      time.Now().Format(time.RFC3339),
		TestName:         testName,
		Stats:            stats,
		Distribution:     buildDistribution(durations),
		ThresholdResults: thresholdResults,
	}

	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"formatFloat": func(f float64) string {
			return fmt.Sprintf("%.2f", f)
		},
		"formatQuantile": func(q float64) string {
			return fmt.Sprintf("%g", q)
		},
	}).Parse(htmlTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return nil
}

// buildDistribution records the millisecond samples into an HDR histogram
// (1µs to 60s, 3 significant figures) and reads back a quantile ladder.
func buildDistribution(durations []float64) []DistributionRow {
	if len(durations) == 0 {
		return nil
	}

	h := hdrhistogram.New(1, 60_000_000, 3)
	for _, ms := range durations {
		us := int64(ms * 1000)
		if us < h.LowestTrackableValue() {
			us = h.LowestTrackableValue()
		}
		if us > h.HighestTrackableValue() {
			us = h.HighestTrackableValue()
		}
		_ = h.RecordValue(us)
	}

	rows := make([]DistributionRow, 0, len(distributionQuantiles))
	for _, q := range distributionQuantiles {
		rows = append(rows, DistributionRow{
			Quantile: q,
			ValueMs:  float64(h.ValueAtQuantile(q)) / 1000,
		})
	}
	return rows
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Performance Report: {{.TestName}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 2rem auto; max-width: 900px; color: #1f2430; }
h1 { border-bottom: 2px solid #e3e6ec; padding-bottom: 0.4rem; }
.meta { color: #70778a; margin-bottom: 1.5rem; }
.cards { display: flex; flex-wrap: wrap; gap: 1rem; margin-bottom: 1.5rem; }
.card { background: #f5f6fa; border-radius: 8px; padding: 1rem 1.4rem; min-width: 140px; }
.card .label { color: #70778a; font-size: 0.8rem; text-transform: uppercase; }
.card .value { font-size: 1.4rem; font-weight: 600; }
table { border-collapse: collapse; width: 100%; margin-bottom: 1.5rem; }
th, td { text-align: left; padding: 0.5rem 0.8rem; border-bottom: 1px solid #e3e6ec; }
th { background: #f5f6fa; }
.pass { color: #1a9850; }
.fail { color: #d73027; }
</style>
</head>
<body>
<h1>Performance Report: {{.TestName}}</h1>
<p class="meta">Generated: {{.GeneratedAt}}</p>

<div class="cards">
{{if .Stats.Duration}}
  <div class="card"><div class="label">P95 Latency</div><div class="value">{{formatFloat .Stats.Duration.P95}} ms</div></div>
  <div class="card"><div class="label">Average Latency</div><div class="value">{{formatFloat .Stats.Duration.Avg}} ms</div></div>
{{end}}
{{if gt .Stats.Total 0}}
  <div class="card"><div class="label">Error Rate</div><div class="value">{{formatFloat .Stats.ErrorRate}}%</div></div>
{{end}}
{{if gt .Stats.RequestsPerSec 0.0}}
  <div class="card"><div class="label">Requests/sec</div><div class="value">{{formatFloat .Stats.RequestsPerSec}}</div></div>
{{end}}
{{if gt .Stats.PeakVUs 0.0}}
  <div class="card"><div class="label">Peak VUs</div><div class="value">{{formatFloat .Stats.PeakVUs}}</div></div>
{{end}}
</div>

{{if .Stats.Duration}}
<h2>Response Times</h2>
<table>
<tr><th>Min</th><th>P50</th><th>P95</th><th>P99</th><th>Max</th><th>Average</th></tr>
<tr>
  <td>{{formatFloat .Stats.Duration.Min}} ms</td>
  <td>{{formatFloat .Stats.Duration.P50}} ms</td>
  <td>{{formatFloat .Stats.Duration.P95}} ms</td>
  <td>{{formatFloat .Stats.Duration.P99}} ms</td>
  <td>{{formatFloat .Stats.Duration.Max}} ms</td>
  <td>{{formatFloat .Stats.Duration.Avg}} ms</td>
</tr>
</table>
{{end}}

{{if .Distribution}}
<h2>Latency Distribution</h2>
<table>
<tr><th>Percentile</th><th>Latency</th></tr>
{{range .Distribution}}
<tr><td>p{{formatQuantile .Quantile}}</td><td>{{formatFloat .ValueMs}} ms</td></tr>
{{end}}
</table>
{{end}}

{{if .ThresholdResults}}
<h2>Thresholds</h2>
<table>
<tr><th>Threshold</th><th>Actual</th><th>Result</th></tr>
{{range .ThresholdResults}}
<tr>
  <td>{{.Threshold.Raw}}</td>
  <td>{{formatFloat .Actual}}</td>
  {{if .Pass}}<td class="pass">pass</td>{{else}}<td class="fail">fail</td>{{end}}
</tr>
{{end}}
</table>
{{end}}

</body>
</html>
`
