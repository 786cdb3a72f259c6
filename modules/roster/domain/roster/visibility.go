package roster

// Visible reports whether a row carries enough data to be displayed.
// Day-only positions need day data and no night data; a night occupant
// under such a position is a data anomaly and hides the row. Every other
// position, unknown ones included, needs data on either shift.
func Visible(row AggregatedRow) bool {
	if row.Empty() {
		return false
	}
	if row.Position.DayOnly() {
		return row.HasDay() && !row.HasNight()
	}
	return row.HasDay() || row.HasNight()
}

// Filter returns the visible rows, preserving order. rows is not modified.
func Filter(rows []AggregatedRow) []AggregatedRow {
	out := make([]AggregatedRow, 0, len(rows))
	for _, row := range rows {
		if Visible(row) {
			out = append(out, row)
		}
	}
	return out
}
