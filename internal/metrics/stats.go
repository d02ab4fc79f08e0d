package metrics

// Stats aggregates one test run for console output, JSON output, and
// threshold evaluation. Duration is nil when no latency samples were seen.
type Stats struct {
	Duration       *Summary `json:"duration,omitempty"`
	Total          int      `json:"total"`
	Failed         float64  `json:"failed"`
	ErrorRate      float64  `json:"error_rate_percent"`
	Requests       int      `json:"requests"`
	ElapsedSeconds float64  `json:"elapsed_seconds"`
	RequestsPerSec float64  `json:"requests_per_sec"`
	PeakVUs        float64  `json:"peak_vus"`
	Iterations     int      `json:"iterations"`
}

// Compute derives aggregate statistics from an extracted bucket set.
// Total and Failed come from the failure-flag series (one 0/1 sample per
// request); throughput comes from the request-count series over the global
// timestamp span.
func Compute(b Buckets) Stats {
	var s Stats

	if sum, ok := Summarize(b.Series(RequestDuration)); ok {
		s.Duration = &sum
	}

	failed := b.Series(RequestFailed)
	s.Total = len(failed)
	for _, v := range failed {
		s.Failed += v
	}
	if s.Total > 0 {
		s.ErrorRate = s.Failed / float64(s.Total) * 100
	}

	s.Requests = len(b.Series(Requests))
	if span, ok := b.Span(); ok {
		s.ElapsedSeconds = span.Seconds()
		if s.ElapsedSeconds > 0 && s.Requests > 0 {
			s.RequestsPerSec = float64(s.Requests) / s.ElapsedSeconds
		}
	}

	for _, v := range b.Series(VUs) {
		if v > s.PeakVUs {
			s.PeakVUs = v
		}
	}
	s.Iterations = len(b.Series(Iterations))

	return s
}
