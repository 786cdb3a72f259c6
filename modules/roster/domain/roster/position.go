package roster

import "strings"

// Position is the canonical duty role a roster row is keyed by.
type Position string

const (
	PositionDutyLeader    Position = "DUTY_LEADER"
	PositionShiftManager  Position = "SHIFT_MANAGER"
	PositionSafetyManager Position = "SAFETY_MANAGER"
	PositionSafetyOfficer Position = "SAFETY_OFFICER"
	PositionUnknown       Position = "UNKNOWN"
)

// Positions lists the known positions in display priority order.
func Positions() []Position {
	return []Position{
		PositionDutyLeader,
		PositionShiftManager,
		PositionSafetyOfficer,
		PositionSafetyManager,
	}
}

// DayOnly reports whether the position is staffed on the day shift only.
func (p Position) DayOnly() bool {
	switch p {
	case PositionShiftManager, PositionSafetyManager:
		return true
	default:
		return false
	}
}

// Known reports whether p is one of the four canonical positions.
func (p Position) Known() bool {
	return p.priority() < unlistedPriority
}

const unlistedPriority = 4

func (p Position) priority() int {
	switch p {
	case PositionDutyLeader:
		return 0
	case PositionShiftManager:
		return 1
	case PositionSafetyOfficer:
		return 2
	case PositionSafetyManager:
		return 3
	default:
		return unlistedPriority
	}
}

// RoleCode is the upstream role identifier carried on each duty employee.
type RoleCode string

const (
	RoleDayDutyLeader        RoleCode = "dayDutyLeader"
	RoleNightDutyLeader      RoleCode = "nightDutyLeader"
	RoleDayShiftManager      RoleCode = "dayShiftManager"
	RoleDaySafetyManager     RoleCode = "daySafetyManager"
	RoleDaySafetyOfficer     RoleCode = "daySafetyOfficer"
	RoleDaySecurityOfficer   RoleCode = "daySecurityOfficer"
	RoleNightSafetyOfficer   RoleCode = "nightSafetyOfficer"
	RoleNightSecurityOfficer RoleCode = "nightSecurityOfficer"
)

// RoleCodes returns the eight recognised role codes.
func RoleCodes() []RoleCode {
	return []RoleCode{
		RoleDayDutyLeader,
		RoleNightDutyLeader,
		RoleDayShiftManager,
		RoleDaySafetyManager,
		RoleDaySafetyOfficer,
		RoleDaySecurityOfficer,
		RoleNightSafetyOfficer,
		RoleNightSecurityOfficer,
	}
}

// Position maps the role code onto its canonical position.
// Unrecognised codes map to PositionUnknown.
func (c RoleCode) Position() Position {
	switch RoleCode(strings.TrimSpace(string(c))) {
	case RoleDayDutyLeader, RoleNightDutyLeader:
		return PositionDutyLeader
	case RoleDayShiftManager:
		return PositionShiftManager
	case RoleDaySafetyManager:
		return PositionSafetyManager
	case RoleDaySafetyOfficer, RoleDaySecurityOfficer,
		RoleNightSafetyOfficer, RoleNightSecurityOfficer:
		return PositionSafetyOfficer
	default:
		return PositionUnknown
	}
}
