package roster

import "time"

// MalformedRecordEvent is published for every record skipped while building
// a week.
type MalformedRecordEvent struct {
	Range   WeekRange
	Warning MalformedRecordWarning
}

// WeekBuiltEvent is published once a week roster has been assembled.
type WeekBuiltEvent struct {
	Range    WeekRange
	Source   string
	Records  int
	Rows     int
	Skipped  int
	Duration time.Duration
}
