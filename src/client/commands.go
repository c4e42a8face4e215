package client

import (
	"flag"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// entriesPath is the only endpoint this client talks to
const entriesPath = "/api/v1/entries.json"

// historyMaxCount approximates "no practical limit" for a single window
const historyMaxCount = 10000

// handleGetCommand prints the most recent glucose entry
func handleGetCommand(config *Config, args []string) error {
	flagSet := flag.NewFlagSet("get", flag.ContinueOnError)
	if err := flagSet.Parse(args); err != nil {
		return NewUsageError(err.Error())
	}

	params := url.Values{}
	params.Set("count", "1")

	// Make API request
	client := NewHTTPClient(config)
	var entries []Entry
	if err := client.GetJSON(entriesPath, params, &entries); err != nil {
		return err
	}

	// An empty result set is not an error
	if len(entries) == 0 {
		fmt.Println("No data available")
		return nil
	}

	// Format and print output
	formatter := NewFormatter(false)
	line, err := formatter.FormatLatest(entries[0])
	if err != nil {
		return err
	}
	fmt.Println(line)

	return nil
}

// handleHistoryCommand prints entries within a time window
func handleHistoryCommand(config *Config, args []string) error {
	flagSet := flag.NewFlagSet("history", flag.ContinueOnError)
	daysAgo := flagSet.Int("days-ago", 0, "Number of days ago the window ends (default: 0 = now)")
	period := flagSet.Int("period", 1440, "Window length in minutes (default: 1440 = 24 hours)")
	jsonl := flagSet.Bool("jsonl", false, "Output as JSONL (one JSON object per line)")

	if err := flagSet.Parse(args); err != nil {
		return NewUsageError(err.Error())
	}

	// Build query parameters
	start, end := historyRange(time.Now(), *daysAgo, *period)

	params := url.Values{}
	params.Set("find[dateString][$gte]", start.Format(time.RFC3339))
	params.Set("find[dateString][$lte]", end.Format(time.RFC3339))
	params.Set("count", strconv.Itoa(historyMaxCount))

	// Make API request
	client := NewHTTPClient(config)
	var entries []Entry
	if err := client.GetJSON(entriesPath, params, &entries); err != nil {
		return err
	}

	// Format and print output; an empty window produces zero lines
	formatter := NewFormatter(*jsonl)
	output, err := formatter.FormatHistory(entries)
	if err != nil {
		return err
	}
	if output != "" {
		fmt.Println(output)
	}

	return nil
}

// historyRange computes the query window in UTC. The window ends daysAgo
// days before now and covers the preceding period minutes, so start never
// exceeds end for non-negative periods.
func historyRange(now time.Time, daysAgo, period int) (start, end time.Time) {
	end = now.UTC().Add(-time.Duration(daysAgo) * 24 * time.Hour)
	start = end.Add(-time.Duration(period) * time.Minute)
	return start, end
}
