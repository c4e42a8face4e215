package client

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFormatLatest(t *testing.T) {
	formatter := NewFormatter(false)

	entry := Entry{
		DateString: "2024-01-01T00:00:00Z",
		SGV:        floatPtr(120),
		Units:      "mg/dL",
		Direction:  "Flat",
	}

	line, err := formatter.FormatLatest(entry)
	if err != nil {
		t.Fatalf("FormatLatest failed: %v", err)
	}

	if line != "2024-01-01T00:00:00Z 120 mg/dL Flat" {
		t.Errorf("Unexpected output: %q", line)
	}
}

func TestFormatLatestDefaults(t *testing.T) {
	formatter := NewFormatter(false)

	// Value, units and direction all absent
	entry := Entry{DateString: "2024-01-01T00:00:00Z"}

	line, err := formatter.FormatLatest(entry)
	if err != nil {
		t.Fatalf("FormatLatest failed: %v", err)
	}

	if line != "2024-01-01T00:00:00Z N/A mg/dL " {
		t.Errorf("Unexpected output: %q", line)
	}
}

func TestFormatLatestBadTimestamp(t *testing.T) {
	formatter := NewFormatter(false)

	entry := Entry{DateString: "not-a-timestamp"}

	if _, err := formatter.FormatLatest(entry); err == nil {
		t.Error("Expected error for invalid timestamp")
	}
}

func TestFormatHistoryText(t *testing.T) {
	formatter := NewFormatter(false)

	entries := []Entry{
		{DateString: "2024-01-01T00:00:00Z", SGV: floatPtr(120), Units: "mg/dL"},
		{DateString: "2024-01-01T00:05:00Z"},
	}

	output, err := formatter.FormatHistory(entries)
	if err != nil {
		t.Fatalf("FormatHistory failed: %v", err)
	}

	lines := strings.Split(output, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}

	if lines[0] != "2024-01-01T00:00:00Z 120 mg/dL" {
		t.Errorf("Unexpected first line: %q", lines[0])
	}

	// Missing value and units fall back to placeholder and default
	if lines[1] != "2024-01-01T00:05:00Z N/A mg/dL" {
		t.Errorf("Unexpected second line: %q", lines[1])
	}
}

func TestFormatHistoryJSONL(t *testing.T) {
	formatter := NewFormatter(true)

	entries := []Entry{
		{DateString: "2024-01-01T00:00:00Z", SGV: floatPtr(120), Units: "mg/dL", Direction: "Flat"},
		{DateString: "2024-01-01T00:05:00Z"},
	}

	output, err := formatter.FormatHistory(entries)
	if err != nil {
		t.Fatalf("FormatHistory failed: %v", err)
	}

	lines := strings.Split(output, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}

	// Every line must be valid JSON with all four keys
	for i, line := range lines {
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			t.Fatalf("Line %d is not valid JSON: %v", i, err)
		}
		for _, key := range []string{"timestamp", "sgv", "units", "direction"} {
			if _, ok := obj[key]; !ok {
				t.Errorf("Line %d missing key %q", i, key)
			}
		}
	}

	var first map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatal(err)
	}
	if first["sgv"] != float64(120) {
		t.Errorf("Expected sgv 120, got %v", first["sgv"])
	}
	if first["direction"] != "Flat" {
		t.Errorf("Expected direction Flat, got %v", first["direction"])
	}

	// Defaults apply when fields are absent from input; sgv stays null
	var second map[string]interface{}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatal(err)
	}
	if second["sgv"] != nil {
		t.Errorf("Expected null sgv, got %v", second["sgv"])
	}
	if second["units"] != "mg/dL" {
		t.Errorf("Expected default units mg/dL, got %v", second["units"])
	}
	if second["direction"] != "" {
		t.Errorf("Expected empty direction, got %v", second["direction"])
	}
}

func TestFormatHistoryEmpty(t *testing.T) {
	for _, jsonl := range []bool{false, true} {
		formatter := NewFormatter(jsonl)
		output, err := formatter.FormatHistory(nil)
		if err != nil {
			t.Fatalf("FormatHistory failed: %v", err)
		}
		if output != "" {
			t.Errorf("Expected empty output (jsonl=%t), got %q", jsonl, output)
		}
	}
}
