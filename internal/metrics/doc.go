// Package metrics turns raw k6 records into per-metric sample series and
// descriptive statistics.
//
// [Extract] filters a record sequence down to Point measurements of the
// recognized k6 metrics and buckets their values in arrival order:
//
//	buckets := metrics.Extract(records)
//	durations := buckets.Series(metrics.RequestDuration)
//
// [Summarize] computes percentiles and the usual descriptive statistics over
// one series, and [Compute] derives the aggregate view of a whole test run
// (error rate, throughput, peak VUs) used by console output and thresholds.
//
// The percentile estimator intentionally substitutes the series maximum for
// p95 and p99 on small samples; see [Summarize] for the exact thresholds.
package metrics
