package ledger

import (
	"context"
	"strings"
)

// Balance runs a balance report for account between the from and to
// dates (YYYY-MM-DD) and returns the aggregate total for the range.
func (c *Client) Balance(ctx context.Context, from, to, account string) (float64, error) {
	output, err := c.run.Run(ctx,
		"-f", c.file,
		"balance",
		"--format", "%T"+recordSep,
		"--begin", from,
		"--end", to,
		"^"+account)
	if err != nil {
		return 0, err
	}
	return c.parseBalance(string(output))
}

// parseBalance takes the first record-separated segment of the report
// (the current top-level total). A total holding several currencies is
// rendered one per line inside that segment; each line is normalized
// and the results summed.
func (c *Client) parseBalance(raw string) (float64, error) {
	segment, _, _ := strings.Cut(raw, recordSep)
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return 0, nil
	}

	total, skipped, err := Normalize(strings.Split(segment, "\n"), c.strictBalance)
	if err != nil {
		return 0, err
	}
	c.logSkipped(skipped)
	return total, nil
}
