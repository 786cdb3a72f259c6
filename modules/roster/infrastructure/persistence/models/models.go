package models

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// DutyEmployeeRow is one row of the duty_records LEFT JOIN
// duty_record_employees read. Employee columns are NULL for records
// without employees.
type DutyEmployeeRow struct {
	RecordID     int64
	DutyDate     time.Time
	ShiftType    int16
	Seq          pgtype.Int4
	RoleCode     pgtype.Text
	EmployeeName pgtype.Text
	Phone        pgtype.Text
}

// CachedWindow is the JSON document stored per fetched date window.
type CachedWindow struct {
	Start       string             `json:"start"`
	End         string             `json:"end"`
	Assignments []CachedAssignment `json:"assignments"`
}

type CachedAssignment struct {
	DutyDate  string           `json:"dutyDate"`
	ShiftType int              `json:"shiftType"`
	Employees []CachedEmployee `json:"employees"`
}

type CachedEmployee struct {
	RoleCode     string `json:"roleCode"`
	EmployeeName string `json:"employeeName"`
	Phone        string `json:"phone"`
}
