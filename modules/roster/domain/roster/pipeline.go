package roster

import "time"

// Result is the display-ready roster of one batch of raw assignments.
type Result struct {
	Rows     []AggregatedRow
	Warnings []MalformedRecordWarning
}

// Build runs aggregation, visibility filtering and sorting over records.
func Build(records []RawAssignment) Result {
	agg := Aggregate(records)
	return Result{
		Rows:     Sort(Filter(agg.Rows())),
		Warnings: agg.Warnings,
	}
}

// DayGroup holds the rows of a single duty date.
type DayGroup struct {
	DutyDate string          `json:"dutyDate"`
	Weekday  time.Weekday    `json:"weekday"`
	Rows     []AggregatedRow `json:"rows"`
}

// Days groups the rows by duty date. Rows must already be sorted.
func (r Result) Days() []DayGroup {
	var groups []DayGroup
	for _, row := range r.Rows {
		if n := len(groups); n > 0 && groups[n-1].DutyDate == row.DutyDate {
			groups[n-1].Rows = append(groups[n-1].Rows, row)
			continue
		}
		groups = append(groups, DayGroup{
			DutyDate: row.DutyDate,
			Weekday:  row.Weekday,
			Rows:     []AggregatedRow{row},
		})
	}
	return groups
}

// InWeek keeps the records dated inside w. Records with an unreadable date
// are kept so that aggregation reports them.
func InWeek(records []RawAssignment, w WeekRange) []RawAssignment {
	out := make([]RawAssignment, 0, len(records))
	for _, rec := range records {
		day, err := ParseDate(rec.DutyDate)
		if err != nil || w.Contains(day) {
			out = append(out, rec)
		}
	}
	return out
}
