package datasource

import "testing"

func TestParseRangeTime(t *testing.T) {
	got, err := parseRangeTime("2023-01-15T00:00:00.000Z")
	if err != nil {
		t.Fatalf("parseRangeTime: %v", err)
	}
	if engineDate(got) != "2023-01-15" {
		t.Errorf("engineDate = %q, want 2023-01-15", engineDate(got))
	}
	if got.UnixMilli() != 1673740800000 {
		t.Errorf("UnixMilli = %d, want 1673740800000", got.UnixMilli())
	}
}

func TestParseRangeTimeRejectsGarbage(t *testing.T) {
	if _, err := parseRangeTime("yesterday"); err == nil {
		t.Fatal("expected error for malformed timestamp, got nil")
	}
}

// Every timestamp within a calendar day maps to the same UTC-midnight
// millisecond stamp used for that day's datapoints.
func TestDayMillis(t *testing.T) {
	for _, stamp := range []string{
		"2023-01-15T00:00:00.000Z",
		"2023-01-15T13:45:10.500Z",
		"2023-01-15T23:59:59.999Z",
	} {
		parsed, err := parseRangeTime(stamp)
		if err != nil {
			t.Fatalf("parseRangeTime(%q): %v", stamp, err)
		}
		if got := dayMillis(parsed); got != 1673740800000 {
			t.Errorf("dayMillis(%q) = %d, want 1673740800000", stamp, got)
		}
	}
}
