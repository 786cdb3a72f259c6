package roster

import "time"

// AggregatedRow is one line of the roster table: a date and position slot
// with its day and night occupants merged.
type AggregatedRow struct {
	DutyDate    string       `json:"dutyDate"`
	Weekday     time.Weekday `json:"weekday"`
	Position    Position     `json:"position"`
	DayPerson   string       `json:"dayPerson"`
	DayPhone    string       `json:"dayPhone"`
	NightPerson string       `json:"nightPerson"`
	NightPhone  string       `json:"nightPhone"`
	// NightPosition is set only once night data was assigned to the row.
	NightPosition Position `json:"nightPosition,omitempty"`
}

func (r AggregatedRow) HasDay() bool {
	return r.DayPerson != "" || r.DayPhone != ""
}

func (r AggregatedRow) HasNight() bool {
	return r.NightPerson != "" || r.NightPhone != ""
}

func (r AggregatedRow) Empty() bool {
	return !r.HasDay() && !r.HasNight()
}
