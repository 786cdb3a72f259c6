package roster

import (
	"cmp"
	"slices"
)

// Sort returns rows ordered by duty date, then by position priority
// DUTY_LEADER, SHIFT_MANAGER, SAFETY_OFFICER, SAFETY_MANAGER. Positions
// outside that list share the last rank and keep their relative order.
func Sort(rows []AggregatedRow) []AggregatedRow {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, compareRows)
	return out
}

// DutyDate is always canonical YYYY-MM-DD, so string order is date order.
func compareRows(a, b AggregatedRow) int {
	if c := cmp.Compare(a.DutyDate, b.DutyDate); c != 0 {
		return c
	}
	return cmp.Compare(a.Position.priority(), b.Position.priority())
}
