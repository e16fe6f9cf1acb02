package ledger

import (
	"bufio"
	"bytes"
	"context"
	"sort"
	"strings"
)

// ExpandHierarchy returns every ancestor prefix of a colon-delimited
// account name, shallowest first:
//
//	Expenses:Grocery:Vegetables -> [Expenses, Expenses:Grocery, Expenses:Grocery:Vegetables]
//
// An empty name yields nil.
func ExpandHierarchy(name string) []string {
	if name == "" {
		return nil
	}
	i := strings.LastIndex(name, ":")
	if i < 0 {
		return []string{name}
	}
	return append(ExpandHierarchy(name[:i]), name)
}

// AccountNames lists every account known to the journal plus all of its
// ancestor prefixes, deduplicated and sorted.
func (c *Client) AccountNames(ctx context.Context) ([]string, error) {
	output, err := c.run.Run(ctx, "-f", c.file, "accounts")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		for _, name := range ExpandHierarchy(line) {
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
