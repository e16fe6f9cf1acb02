package datasource

import "time"

// parseRangeTime parses a dashboard range timestamp such as
// "2023-01-15T00:00:00.000Z" and pins it to UTC.
func parseRangeTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// engineDate renders t in the engine's plain date argument form.
func engineDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// dayMillis is the UTC-midnight epoch-millisecond stamp for t's
// calendar day. All datapoints on a given day share this value.
func dayMillis(t time.Time) int64 {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).UnixMilli()
}
