package metrics

import "sort"

// Summary is an immutable descriptive-statistics snapshot of one series.
// Values carry the unit of the underlying metric (milliseconds for
// http_req_duration).
type Summary struct {
	P50    float64 `json:"p50"`
	P95    float64 `json:"p95"`
	P99    float64 `json:"p99"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Avg    float64 `json:"avg"`
	Median float64 `json:"median"`
}

// Summarize computes a Summary over series. ok is false for an empty series,
// in which case report sections backed by it must be skipped.
//
// High percentiles fall back to the series maximum when the sample is too
// small to support the requested quantile resolution: p95 needs more than 19
// samples, p99 more than 99, and p50 more than 1. The exact thresholds are
// part of the report contract and must not change.
func Summarize(series []float64) (Summary, bool) {
	if len(series) == 0 {
		return Summary{}, false
	}

	sorted := append([]float64(nil), series...)
	sort.Float64s(sorted)

	s := Summary{
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Avg:    mean(sorted),
		Median: median(sorted),
	}

	if len(sorted) > 1 {
		s.P50 = quantile(sorted, 2, 1)
	} else {
		s.P50 = sorted[0]
	}
	if len(sorted) > 19 {
		s.P95 = quantile(sorted, 20, 19)
	} else {
		s.P95 = s.Max
	}
	if len(sorted) > 99 {
		s.P99 = quantile(sorted, 100, 99)
	} else {
		s.P99 = s.Max
	}
	return s, true
}

// quantile returns the i-th of n-1 division points splitting sorted into n
// equal-probability groups, interpolating between neighbors (the exclusive
// quantile method). Callers guarantee 1 <= i < n and len(sorted) > 1.
func quantile(sorted []float64, n, i int) float64 {
	ld := len(sorted)
	m := ld + 1
	j := i * m / n
	if j < 1 {
		j = 1
	} else if j > ld-1 {
		j = ld - 1
	}
	delta := i*m - j*n
	return (sorted[j-1]*float64(n-delta) + sorted[j]*float64(delta)) / float64(n)
}

func mean(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// median expects sorted input.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
