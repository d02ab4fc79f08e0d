// Package results reads k6's line-delimited JSON output into untyped records.
package results

import (
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Record is a single line of k6 output. Fields are read lazily through gjson
// so no schema is enforced beyond the paths the accessors ask for.
type Record struct {
	raw gjson.Result
}

// ParseLine parses a single line of output into a Record. ok is false for
// blank or invalid JSON input.
func ParseLine(line string) (Record, bool) {
	line = strings.TrimSpace(line)
	if line == "" || !gjson.Valid(line) {
		return Record{}, false
	}
	return Record{raw: gjson.Parse(line)}, true
}

// Type returns the record's discriminator tag ("Point" for measurements).
func (r Record) Type() string { return r.raw.Get("type").String() }

// Metric returns the metric name, or "" when absent.
func (r Record) Metric() string { return r.raw.Get("metric").String() }

// Value returns the sample value, defaulting to 0 when absent.
func (r Record) Value() float64 { return r.raw.Get("data.value").Float() }

// Timestamp parses data.time as ISO-8601. k6 emits RFC3339 with a trailing
// "Z"; timestamps without a zone suffix are treated as UTC. ok is false when
// the field is absent or unparsable.
func (r Record) Timestamp() (time.Time, bool) {
	v := r.raw.Get("data.time")
	if !v.Exists() || v.String() == "" {
		return time.Time{}, false
	}
	s := v.String()
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02T15:04:05.999999999", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
