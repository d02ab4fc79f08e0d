package results

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// k6 lines are small, but custom metrics with tags can get long.
const maxLineBytes = 1 << 20

// Load reads a k6 results file into an ordered record sequence, one record
// per non-blank line. An unreadable file is reported to stderr and yields an
// empty slice, which callers must treat the same as an empty file. A line
// that is not valid JSON is skipped with a diagnostic and processing
// continues.
func Load(path string) []Record {
	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading results from %s: %v\n", path, err)
		return nil
	}
	defer file.Close()

	var records []Record
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rec, ok := ParseLine(line)
		if !ok {
			fmt.Fprintf(os.Stderr, "Skipping malformed JSON on line %d of %s\n", lineNo, path)
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading results from %s: %v\n", path, err)
		return nil
	}
	return records
}
