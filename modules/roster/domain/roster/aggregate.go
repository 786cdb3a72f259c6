package roster

import "time"

type rowKey struct {
	date     string
	position Position
}

// Aggregation is the keyed result of folding raw assignments into rows.
// Rows keep the order in which their (date, position) key was first seen.
type Aggregation struct {
	rows     []AggregatedRow
	index    map[rowKey]int
	Warnings []MalformedRecordWarning
}

// Aggregate groups the employees of every record by (date, position) and
// merges day and night occupants into one row per key.
//
// Records whose duty date does not parse are skipped and reported in
// Warnings. When several employees land on the same shift of the same key,
// the last one in input order wins.
func Aggregate(records []RawAssignment) *Aggregation {
	agg := &Aggregation{index: make(map[rowKey]int)}
	for i, rec := range records {
		day, err := ParseDate(rec.DutyDate)
		if err != nil {
			agg.Warnings = append(agg.Warnings, MalformedRecordWarning{
				Index:    i,
				DutyDate: rec.DutyDate,
				Err:      err,
			})
			continue
		}
		if len(rec.Employees) == 0 {
			continue
		}

		shift := ShiftKeyFromCode(rec.ShiftType)
		date := FormatDate(day)
		for _, emp := range rec.Employees {
			key := rowKey{date: date, position: RoleCode(emp.RoleCode).Position()}
			row := agg.row(key, day)
			switch shift {
			case ShiftNight:
				row.NightPerson = emp.EmployeeName
				row.NightPhone = emp.Phone
				row.NightPosition = key.position
			default:
				row.DayPerson = emp.EmployeeName
				row.DayPhone = emp.Phone
			}
		}
	}
	return agg
}

// row returns the row for key, seeding it on first use. The pointer is only
// valid until the next call.
func (a *Aggregation) row(key rowKey, day time.Time) *AggregatedRow {
	if i, ok := a.index[key]; ok {
		return &a.rows[i]
	}
	a.rows = append(a.rows, AggregatedRow{
		DutyDate: key.date,
		Weekday:  day.Weekday(),
		Position: key.position,
	})
	a.index[key] = len(a.rows) - 1
	return &a.rows[len(a.rows)-1]
}

// Rows returns a copy of the aggregated rows in emission order.
func (a *Aggregation) Rows() []AggregatedRow {
	out := make([]AggregatedRow, len(a.rows))
	copy(out, a.rows)
	return out
}

// Get looks up the row of a date and position.
func (a *Aggregation) Get(date string, position Position) (AggregatedRow, bool) {
	day, err := ParseDate(date)
	if err != nil {
		return AggregatedRow{}, false
	}
	i, ok := a.index[rowKey{date: FormatDate(day), position: position}]
	if !ok {
		return AggregatedRow{}, false
	}
	return a.rows[i], true
}

// Len is the number of distinct (date, position) rows.
func (a *Aggregation) Len() int {
	return len(a.rows)
}
