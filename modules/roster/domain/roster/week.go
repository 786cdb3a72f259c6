package roster

import (
	"encoding/json"
	"time"
)

const daysPerWeek = 7

// WeekRange is an inclusive Monday to Sunday window.
type WeekRange struct {
	Start time.Time
	End   time.Time
}

// ResolveWeek returns the ISO week (Monday to Sunday) containing anchor.
// Only the calendar date of anchor, in its own location, is considered.
func ResolveWeek(anchor time.Time) WeekRange {
	day := CalendarDay(anchor)
	sinceMonday := (int(day.Weekday()) + 6) % daysPerWeek
	start := day.AddDate(0, 0, -sinceMonday)
	return WeekRange{
		Start: start,
		End:   start.AddDate(0, 0, daysPerWeek-1),
	}
}

// ParseWeek resolves the week of an anchor given as a date string.
// An unreadable anchor yields an *InvalidDateError and a zero range.
func ParseWeek(anchor string) (WeekRange, error) {
	day, err := ParseDate(anchor)
	if err != nil {
		return WeekRange{}, err
	}
	return ResolveWeek(day), nil
}

// StartDate renders the Monday as YYYY-MM-DD.
func (w WeekRange) StartDate() string { return FormatDate(w.Start) }

// EndDate renders the Sunday as YYYY-MM-DD.
func (w WeekRange) EndDate() string { return FormatDate(w.End) }

// ISOWeek returns the ISO year and week number of the range.
func (w WeekRange) ISOWeek() (year, week int) {
	return w.Start.ISOWeek()
}

// Days lists the seven dates of the week, Monday first.
func (w WeekRange) Days() []time.Time {
	days := make([]time.Time, 0, daysPerWeek)
	for i := 0; i < daysPerWeek; i++ {
		days = append(days, w.Start.AddDate(0, 0, i))
	}
	return days
}

// Contains reports whether the calendar date of t falls inside the week.
func (w WeekRange) Contains(t time.Time) bool {
	day := CalendarDay(t)
	return !day.Before(w.Start) && !day.After(w.End)
}

// Next returns the following week.
func (w WeekRange) Next() WeekRange {
	return ResolveWeek(w.Start.AddDate(0, 0, daysPerWeek))
}

// Prev returns the preceding week.
func (w WeekRange) Prev() WeekRange {
	return ResolveWeek(w.Start.AddDate(0, 0, -daysPerWeek))
}

// IsZero reports whether w was never resolved.
func (w WeekRange) IsZero() bool {
	return w.Start.IsZero() && w.End.IsZero()
}

type weekRangeJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MarshalJSON encodes the range as {"start","end"} date strings.
func (w WeekRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(weekRangeJSON{Start: w.StartDate(), End: w.EndDate()})
}

// UnmarshalJSON reads the form written by MarshalJSON.
func (w *WeekRange) UnmarshalJSON(b []byte) error {
	var raw weekRangeJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	start, err := ParseDate(raw.Start)
	if err != nil {
		return err
	}
	end, err := ParseDate(raw.End)
	if err != nil {
		return err
	}
	w.Start, w.End = start, end
	return nil
}
