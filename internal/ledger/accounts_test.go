package ledger

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExpandHierarchy(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty name", "", nil},
		{"top level", "Expenses", []string{"Expenses"}},
		{"two levels", "Expenses:Grocery", []string{"Expenses", "Expenses:Grocery"}},
		{
			"three levels",
			"Expenses:Grocery:Vegetables",
			[]string{"Expenses", "Expenses:Grocery", "Expenses:Grocery:Vegetables"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandHierarchy(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExpandHierarchy(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

// Every name with k separators expands to k+1 entries, each a prefix
// ending exactly at a separator boundary.
func TestExpandHierarchyPrefixProperty(t *testing.T) {
	name := "A:B:C:D:E"
	got := ExpandHierarchy(name)
	if len(got) != 5 {
		t.Fatalf("got %d entries, want 5", len(got))
	}
	for _, prefix := range got {
		if prefix != name && name[:len(prefix)+1] != prefix+":" {
			t.Errorf("%q is not a separator-boundary prefix of %q", prefix, name)
		}
	}
}

func TestAccountNames(t *testing.T) {
	listing := "Expenses:Grocery:Vegetables\nExpenses:Rent\n\nAssets:Bank\nExpenses:Grocery\n"
	c, fake := newTestClient(listing, nil)

	got, err := c.AccountNames(context.Background())
	if err != nil {
		t.Fatalf("AccountNames: %v", err)
	}

	want := []string{
		"Assets",
		"Assets:Bank",
		"Expenses",
		"Expenses:Grocery",
		"Expenses:Grocery:Vegetables",
		"Expenses:Rent",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AccountNames mismatch (-want +got):\n%s", diff)
	}

	wantArgs := []string{"-f", "test.journal", "accounts"}
	if diff := cmp.Diff(wantArgs, fake.calls[0]); diff != "" {
		t.Errorf("invocation args mismatch (-want +got):\n%s", diff)
	}
}

func TestAccountNamesCommandFailure(t *testing.T) {
	c, _ := newTestClient("", &CommandError{Args: []string{"accounts"}, Err: errExec})
	if _, err := c.AccountNames(context.Background()); err == nil {
		t.Fatal("expected error from failing engine, got nil")
	}
}
