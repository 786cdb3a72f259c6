package roster

// Slot is a normalized (position, shift) pair.
type Slot struct {
	Position Position
	Shift    ShiftKey
}

// Normalize resolves the role and shift codes of a raw assignment entry.
// It never fails: unknown codes resolve to PositionUnknown and ShiftDay.
func Normalize(roleCode string, shiftTypeCode int) Slot {
	return Slot{
		Position: RoleCode(roleCode).Position(),
		Shift:    ShiftKeyFromCode(shiftTypeCode),
	}
}
