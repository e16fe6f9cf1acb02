package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Delimiters for the explicit --format string handed to the engine.
// Fields within a record are pipe-separated, records tab-separated.
const (
	fieldSep  = "|"
	recordSep = "\t"
)

// recordDateLayout is the engine's default register date rendering.
const recordDateLayout = "2006/01/02"

// Record is one parsed register line: the posting date, the amount
// moved that line, and the running total up to and including it.
type Record struct {
	Date   time.Time
	Amount float64
	Total  float64
}

// Register runs a register report for account between the from and to
// dates (YYYY-MM-DD) and returns one merged Record per calendar day.
// The account filter is anchored with "^" so it matches from the root
// of the hierarchy.
func (c *Client) Register(ctx context.Context, from, to, account string) ([]Record, error) {
	format := strings.Join([]string{"%(date)", "%(account)", "%t", "%T" + recordSep}, fieldSep)
	output, err := c.run.Run(ctx,
		"-f", c.file,
		"register",
		"--no-total",
		"--flat",
		"--format", format,
		"--begin", from,
		"--end", to,
		"^"+account)
	if err != nil {
		return nil, err
	}

	records, err := c.parseRegister(string(output))
	if err != nil {
		return nil, err
	}
	return mergeByDate(records), nil
}

// parseRegister splits raw report text into records on the record
// separator, then each record into exactly four fields on the field
// separator: date, account, amount, running total. The account field is
// carried by the format for future filtering but not used here. The
// running-total field may span multiple lines when the total holds
// several currencies at once.
func (c *Client) parseRegister(raw string) ([]Record, error) {
	var records []Record
	for _, rec := range strings.Split(strings.TrimSpace(raw), recordSep) {
		if strings.TrimSpace(rec) == "" {
			continue
		}

		parts := strings.Split(rec, fieldSep)
		if len(parts) != 4 {
			return nil, &ParseError{
				Record: rec,
				Reason: fmt.Sprintf("want 4 fields, got %d", len(parts)),
			}
		}

		date, err := time.ParseInLocation(recordDateLayout, strings.TrimSpace(parts[0]), time.UTC)
		if err != nil {
			return nil, &ParseError{Record: rec, Reason: "bad date: " + err.Error()}
		}

		amount, skipped, err := Normalize([]string{parts[2]}, c.strictRegister)
		if err != nil {
			return nil, err
		}
		c.logSkipped(skipped)

		total, skipped, err := Normalize(strings.Split(strings.TrimSpace(parts[3]), "\n"), c.strictRegister)
		if err != nil {
			return nil, err
		}
		c.logSkipped(skipped)

		records = append(records, Record{Date: date, Amount: amount, Total: total})
	}
	return records, nil
}

// mergeByDate collapses records sharing a calendar day into one,
// summing amounts and keeping the maximum running total (totals are
// monotonic within a day, so max is the latest figure). First-seen
// order of distinct days is preserved.
func mergeByDate(records []Record) []Record {
	merged := make([]Record, 0, len(records))
	index := make(map[time.Time]int)
	for _, r := range records {
		if i, ok := index[r.Date]; ok {
			merged[i].Amount += r.Amount
			if r.Total > merged[i].Total {
				merged[i].Total = r.Total
			}
			continue
		}
		index[r.Date] = len(merged)
		merged = append(merged, r)
	}
	return merged
}
