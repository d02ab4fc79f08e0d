package results_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/torosent/k6report/internal/results"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test_results.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadNonexistentFileReturnsEmpty(t *testing.T) {
	records := results.Load(filepath.Join(t.TempDir(), "missing_results.json"))
	if len(records) != 0 {
		t.Errorf("expected empty sequence, got %d records", len(records))
	}
}

func TestLoadSkipsBlankLines(t *testing.T) {
	path := writeFile(t, `{"type":"Point","metric":"http_reqs","data":{"value":1}}


{"type":"Point","metric":"http_reqs","data":{"value":2}}
`)

	records := results.Load(path)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Value() != 1 || records[1].Value() != 2 {
		t.Errorf("records out of order: %v, %v", records[0].Value(), records[1].Value())
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	path := writeFile(t, `{"type":"Point","metric":"http_reqs","data":{"value":1}}
{not json at all
{"type":"Point","metric":"http_reqs","data":{"value":3}}
`)

	records := results.Load(path)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[1].Value() != 3 {
		t.Errorf("expected record after malformed line to survive, got %v", records[1].Value())
	}
}

func TestLoadEmptyFile(t *testing.T) {
	records := results.Load(writeFile(t, ""))
	if len(records) != 0 {
		t.Errorf("expected empty sequence, got %d records", len(records))
	}
}

func TestRecordAccessors(t *testing.T) {
	rec, ok := results.ParseLine(`{"type":"Point","metric":"http_req_duration","data":{"value":42.5,"time":"2024-03-01T10:00:00Z"}}`)
	if !ok {
		t.Fatal("expected valid line")
	}
	if rec.Type() != "Point" {
		t.Errorf("type = %q, want Point", rec.Type())
	}
	if rec.Metric() != "http_req_duration" {
		t.Errorf("metric = %q, want http_req_duration", rec.Metric())
	}
	if rec.Value() != 42.5 {
		t.Errorf("value = %v, want 42.5", rec.Value())
	}
	ts, ok := rec.Timestamp()
	if !ok {
		t.Fatal("expected a timestamp")
	}
	want := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	if !ts.Equal(want) {
		t.Errorf("timestamp = %v, want %v", ts, want)
	}
}

func TestRecordMissingFieldsDefaultSafely(t *testing.T) {
	rec, ok := results.ParseLine(`{"type":"Point","metric":"http_reqs"}`)
	if !ok {
		t.Fatal("expected valid line")
	}
	if rec.Value() != 0 {
		t.Errorf("missing value = %v, want 0", rec.Value())
	}
	if _, ok := rec.Timestamp(); ok {
		t.Error("expected no timestamp")
	}
}

func TestRecordTimestampFormats(t *testing.T) {
	tests := []struct {
		name  string
		time  string
		valid bool
	}{
		{"rfc3339 with zulu", "2024-03-01T10:00:00Z", true},
		{"rfc3339 with offset", "2024-03-01T10:00:00+02:00", true},
		{"fractional seconds", "2024-03-01T10:00:00.123456789Z", true},
		{"no zone suffix", "2024-03-01T10:00:00.5", true},
		{"garbage", "yesterday-ish", false},
		{"empty", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, ok := results.ParseLine(`{"type":"Point","metric":"vus","data":{"value":1,"time":"` + tc.time + `"}}`)
			if !ok {
				t.Fatal("expected valid line")
			}
			if _, got := rec.Timestamp(); got != tc.valid {
				t.Errorf("Timestamp() ok = %v, want %v", got, tc.valid)
			}
		})
	}
}

func TestParseLineRejectsInvalidInput(t *testing.T) {
	if _, ok := results.ParseLine(""); ok {
		t.Error("expected blank line to be rejected")
	}
	if _, ok := results.ParseLine("   "); ok {
		t.Error("expected whitespace line to be rejected")
	}
	if _, ok := results.ParseLine(`{"truncated":`); ok {
		t.Error("expected invalid JSON to be rejected")
	}
}
