package threshold

import (
	"strings"
	"testing"

	"github.com/torosent/k6report/internal/metrics"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Threshold
		wantError bool
	}{
		{
			name:  "valid p95 latency threshold",
			input: "http_req_duration:p95 < 500",
			want: Threshold{
				Metric:    "http_req_duration",
				Aggregate: "p95",
				Operator:  "<",
				Value:     500,
				Raw:       "http_req_duration:p95 < 500",
			},
		},
		{
			name:  "valid failure rate threshold",
			input: "http_req_failed:rate < 0.01",
			want: Threshold{
				Metric:    "http_req_failed",
				Aggregate: "rate",
				Operator:  "<",
				Value:     0.01,
				Raw:       "http_req_failed:rate < 0.01",
			},
		},
		{
			name:  "valid p99 latency with <=",
			input: "http_req_duration:p99 <= 1000",
			want: Threshold{
				Metric:    "http_req_duration",
				Aggregate: "p99",
				Operator:  "<=",
				Value:     1000,
				Raw:       "http_req_duration:p99 <= 1000",
			},
		},
		{
			name:  "valid requests rate threshold with >",
			input: "http_reqs:rate > 100",
			want: Threshold{
				Metric:    "http_reqs",
				Aggregate: "rate",
				Operator:  ">",
				Value:     100,
				Raw:       "http_reqs:rate > 100",
			},
		},
		{
			name:  "valid median latency",
			input: "http_req_duration:median < 150",
			want: Threshold{
				Metric:    "http_req_duration",
				Aggregate: "median",
				Operator:  "<",
				Value:     150,
				Raw:       "http_req_duration:median < 150",
			},
		},
		{
			name:      "empty string",
			input:     "",
			wantError: true,
		},
		{
			name:      "invalid format - missing operator",
			input:     "http_req_duration:p95 500",
			wantError: true,
		},
		{
			name:      "invalid metric",
			input:     "invalid_metric:p95 < 500",
			wantError: true,
		},
		{
			name:      "invalid aggregate",
			input:     "http_req_duration:p42 < 500",
			wantError: true,
		},
		{
			name:      "invalid operator",
			input:     "http_req_duration:p95 != 500",
			wantError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if tc.wantError {
				if err == nil {
					t.Fatalf("expected error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseMultiple(t *testing.T) {
	thresholds, err := ParseMultiple([]string{
		"http_req_duration:p95 < 500",
		"http_req_failed:rate < 0.05",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(thresholds) != 2 {
		t.Fatalf("expected 2 thresholds, got %d", len(thresholds))
	}

	if _, err := ParseMultiple([]string{"http_req_duration:p95 < 500", "bogus"}); err == nil {
		t.Fatal("expected aggregated parse error")
	}

	if got, err := ParseMultiple(nil); err != nil || got != nil {
		t.Fatalf("expected nil, nil for empty input, got %v, %v", got, err)
	}
}

func testStats() metrics.Stats {
	return metrics.Stats{
		Duration: &metrics.Summary{
			P50:    80,
			P95:    220,
			P99:    450,
			Min:    10,
			Max:    600,
			Avg:    110,
			Median: 80,
		},
		Total:          1000,
		Failed:         20,
		ErrorRate:      2,
		Requests:       1000,
		ElapsedSeconds: 4,
		RequestsPerSec: 250,
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input    string
		wantPass bool
	}{
		{"http_req_duration:p50 < 100", true},
		{"http_req_duration:p95 < 200", false},
		{"http_req_duration:p95 <= 220", true},
		{"http_req_duration:p99 < 500", true},
		{"http_req_duration:avg < 100", false},
		{"http_req_duration:min >= 10", true},
		{"http_req_duration:max < 500", false},
		{"http_req_duration:median == 80", true},
		{"http_req_failed:rate < 0.05", true},
		{"http_req_failed:rate < 0.01", false},
		{"http_req_failed:count <= 20", true},
		{"http_reqs:rate >= 250", true},
		{"http_reqs:count == 1000", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			th, err := Parse(tc.input)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			results := NewEvaluator([]Threshold{th}).Evaluate(testStats())
			if len(results) != 1 {
				t.Fatalf("expected 1 result, got %d", len(results))
			}
			if results[0].Pass != tc.wantPass {
				t.Errorf("%q pass = %v, want %v (actual %v)", tc.input, results[0].Pass, tc.wantPass, results[0].Actual)
			}
		})
	}
}

func TestEvaluateWithoutLatencySamples(t *testing.T) {
	th, err := Parse("http_req_duration:p95 < 500")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	stats := testStats()
	stats.Duration = nil
	results := NewEvaluator([]Threshold{th}).Evaluate(stats)
	if results[0].Pass {
		t.Error("expected failure when no latency samples exist")
	}
	if !strings.Contains(results[0].Message, "no latency samples") {
		t.Errorf("message = %q, want mention of missing samples", results[0].Message)
	}
}

func TestEvaluateEmptyThresholds(t *testing.T) {
	if got := NewEvaluator(nil).Evaluate(testStats()); got != nil {
		t.Errorf("expected nil results, got %v", got)
	}
}
