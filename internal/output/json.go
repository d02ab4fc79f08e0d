package output

import (
	"encoding/json"
	"io"

	"github.com/torosent/k6report/internal/metrics"
)

// PrintJSONStats outputs one test's aggregated stats as indented JSON.
func PrintJSONStats(w io.Writer, testName string, stats metrics.Stats) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Test string `json:"test"`
		metrics.Stats
	}{Test: testName, Stats: stats})
}
