package metrics

import (
	"time"

	"github.com/torosent/k6report/internal/results"
)

// Metric identifies one of the k6 series the analyzer understands.
type Metric string

const (
	RequestDuration Metric = "http_req_duration"
	RequestFailed   Metric = "http_req_failed"
	Requests        Metric = "http_reqs"
	VUs             Metric = "vus"
	Iterations      Metric = "iterations"
)

// recognized is the fixed whitelist of retained metrics. Adding a metric is
// a one-line change here plus a constant above; anything else in the input
// is silently dropped.
var recognized = []Metric{RequestDuration, RequestFailed, Requests, VUs, Iterations}

// pointType tags point-in-time measurements in k6 output.
const pointType = "Point"

// Buckets holds per-metric sample series in arrival order, plus a single
// timestamp series accumulated across every recognized measurement. The
// timestamps are a global time-span proxy only; they are not aligned with
// any one metric's samples.
type Buckets struct {
	series     map[Metric][]float64
	Timestamps []time.Time
}

// NewBuckets returns an empty bucket set covering the recognized metrics.
func NewBuckets() Buckets {
	b := Buckets{series: make(map[Metric][]float64, len(recognized))}
	for _, m := range recognized {
		b.series[m] = nil
	}
	return b
}

// Extract filters records down to Point measurements of recognized metrics.
// Values default to 0 when absent; a record's timestamp contributes to the
// shared series only when present and parseable.
func Extract(records []results.Record) Buckets {
	b := NewBuckets()
	for _, rec := range records {
		if rec.Type() != pointType {
			continue
		}
		name := Metric(rec.Metric())
		if !b.Add(name, rec.Value()) {
			continue
		}
		if ts, ok := rec.Timestamp(); ok {
			b.AddTimestamp(ts)
		}
	}
	return b
}

// Add appends a sample to m's series, reporting whether m is recognized.
func (b *Buckets) Add(m Metric, v float64) bool {
	if _, ok := b.series[m]; !ok {
		return false
	}
	b.series[m] = append(b.series[m], v)
	return true
}

// AddTimestamp appends to the shared timestamp series.
func (b *Buckets) AddTimestamp(t time.Time) {
	b.Timestamps = append(b.Timestamps, t)
}

// Series returns the samples recorded for m, in input order.
func (b Buckets) Series(m Metric) []float64 { return b.series[m] }

// Span returns the elapsed time between the first and last observed
// timestamps. ok is false with fewer than two timestamps.
func (b Buckets) Span() (time.Duration, bool) {
	if len(b.Timestamps) < 2 {
		return 0, false
	}
	return b.Timestamps[len(b.Timestamps)-1].Sub(b.Timestamps[0]), true
}
