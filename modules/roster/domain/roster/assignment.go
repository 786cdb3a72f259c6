package roster

// Employee is one person on duty within a raw assignment.
type Employee struct {
	RoleCode     string `json:"roleCode"`
	EmployeeName string `json:"employeeName"`
	Phone        string `json:"phone"`
}

// RawAssignment is the upstream record of who is on duty for one shift of
// one date. Several employees, possibly in different roles, share a record.
type RawAssignment struct {
	DutyDate  string     `json:"dutyDate"`
	ShiftType int        `json:"shiftType"`
	Employees []Employee `json:"employees"`
}
