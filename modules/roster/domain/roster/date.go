package roster

import (
	"strings"
	"time"
)

// DateLayout is the wire format of every duty date.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate reads a duty date as a calendar date. Timestamps are reduced to
// the date they carry in their own offset, never converted to another zone.
// The result is midnight UTC of that date.
func ParseDate(v string) (time.Time, error) {
	raw := v
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, &InvalidDateError{Value: raw}
	}
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, v)
		if err == nil {
			return CalendarDay(t), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, &InvalidDateError{Value: raw, Err: firstErr}
}

// CalendarDay drops the clock and zone of t, keeping the date it shows.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
