package roster

import (
	"errors"
	"fmt"
)

// ErrInvalidDate is matched by every *InvalidDateError via errors.Is.
var ErrInvalidDate = errors.New("invalid date")

// InvalidDateError reports a date that could not be read as a calendar date.
type InvalidDateError struct {
	Value string
	Err   error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q (expected YYYY-MM-DD)", e.Value)
}

func (e *InvalidDateError) Unwrap() error { return e.Err }

func (e *InvalidDateError) Is(target error) bool { return target == ErrInvalidDate }

// MalformedRecordWarning describes a raw assignment that was skipped during
// aggregation. It is collected, never returned as an error.
type MalformedRecordWarning struct {
	// Index is the position of the record in the aggregated input.
	Index    int
	DutyDate string
	Err      error
}

func (w MalformedRecordWarning) Error() string {
	return fmt.Sprintf("record %d skipped: %v", w.Index, w.Err)
}
