package client

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Formatter handles output formatting
type Formatter struct {
	JSONL bool
}

// NewFormatter creates a new formatter
func NewFormatter(jsonl bool) *Formatter {
	return &Formatter{JSONL: jsonl}
}

// FormatLatest renders the most recent entry as a single line:
// timestamp, value, units, trend direction, space-separated.
func (f *Formatter) FormatLatest(entry Entry) (string, error) {
	ts, err := time.Parse(time.RFC3339, entry.DateString)
	if err != nil {
		return "", NewAPIError(fmt.Sprintf("invalid entry timestamp %q: %v", entry.DateString, err))
	}

	return fmt.Sprintf("%s %s %s %s",
		ts.Format(time.RFC3339), entry.SGVString(), entry.UnitsOrDefault(), entry.Direction), nil
}

// FormatHistory renders history entries one line per entry, in the order
// the server returned them. An empty result yields an empty string.
func (f *Formatter) FormatHistory(entries []Entry) (string, error) {
	if f.JSONL {
		return f.formatHistoryJSONL(entries)
	}
	return f.formatHistoryText(entries), nil
}

// formatHistoryText renders entries as plain text: timestamp value units
func (f *Formatter) formatHistoryText(entries []Entry) string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			entry.DateString, entry.SGVString(), entry.UnitsOrDefault()))
	}
	return strings.Join(lines, "\n")
}

// formatHistoryJSONL renders entries as one compact JSON object per line
func (f *Formatter) formatHistoryJSONL(entries []Entry) (string, error) {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		data, err := json.Marshal(newEntryLine(entry))
		if err != nil {
			return "", NewAPIError(fmt.Sprintf("failed to encode entry: %v", err))
		}
		lines = append(lines, string(data))
	}
	return strings.Join(lines, "\n"), nil
}
