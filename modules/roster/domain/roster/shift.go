package roster

// ShiftKey is the day/night partition of a duty date.
type ShiftKey string

const (
	ShiftDay   ShiftKey = "day"
	ShiftNight ShiftKey = "night"
)

const (
	ShiftCodeDay   = 0
	ShiftCodeNight = 1
)

// ShiftKeyFromCode maps the upstream shift code onto a shift key.
// Any code other than ShiftCodeNight falls back to the day shift,
// upstream data occasionally omits the field.
func ShiftKeyFromCode(code int) ShiftKey {
	switch code {
	case ShiftCodeNight:
		return ShiftNight
	default:
		return ShiftDay
	}
}
