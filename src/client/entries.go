package client

import "strconv"

// DefaultUnits is substituted when the server omits the units field
const DefaultUnits = "mg/dL"

// ValueUnavailable is printed when an entry carries no glucose value
const ValueUnavailable = "N/A"

// Entry is one glucose measurement as returned by /api/v1/entries.json.
// Only the fields this client consumes are decoded; anything else in the
// server payload is ignored.
type Entry struct {
	DateString string   `json:"dateString"`
	SGV        *float64 `json:"sgv"`
	Units      string   `json:"units"`
	Direction  string   `json:"direction"`
}

// SGVString returns the glucose value as text, or the N/A placeholder.
// Integral values render without a decimal point.
func (e Entry) SGVString() string {
	if e.SGV == nil {
		return ValueUnavailable
	}
	return strconv.FormatFloat(*e.SGV, 'f', -1, 64)
}

// UnitsOrDefault returns the units field, defaulted when absent
func (e Entry) UnitsOrDefault() string {
	if e.Units == "" {
		return DefaultUnits
	}
	return e.Units
}

// entryLine is the per-entry object emitted in JSONL mode. Field order
// matches the output key order. A missing glucose value stays null.
type entryLine struct {
	Timestamp string   `json:"timestamp"`
	SGV       *float64 `json:"sgv"`
	Units     string   `json:"units"`
	Direction string   `json:"direction"`
}

func newEntryLine(e Entry) entryLine {
	return entryLine{
		Timestamp: e.DateString,
		SGV:       e.SGV,
		Units:     e.UnitsOrDefault(),
		Direction: e.Direction,
	}
}
