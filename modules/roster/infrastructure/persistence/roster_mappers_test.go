package persistence_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"

	"github.com/jacksonlee411/safety-console/modules/roster/domain/roster"
	"github.com/jacksonlee411/safety-console/modules/roster/infrastructure/persistence"
	"github.com/jacksonlee411/safety-console/modules/roster/infrastructure/persistence/models"
)

func text(v string) pgtype.Text { return pgtype.Text{String: v, Valid: true} }

func TestToDomainAssignments(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	rows := []models.DutyEmployeeRow{
		{RecordID: 1, DutyDate: day, ShiftType: 0, Seq: pgtype.Int4{Int32: 0, Valid: true}, RoleCode: text("dayDutyLeader"), EmployeeName: text("Alice"), Phone: text("111")},
		{RecordID: 1, DutyDate: day, ShiftType: 0, Seq: pgtype.Int4{Int32: 1, Valid: true}, RoleCode: text("dayShiftManager"), EmployeeName: text("Bob"), Phone: text("")},
		{RecordID: 2, DutyDate: day, ShiftType: 1},
		{RecordID: 3, DutyDate: day.AddDate(0, 0, 1), ShiftType: 1, RoleCode: text("nightSafetyOfficer"), EmployeeName: text("Carol"), Phone: text("333")},
	}

	want := []roster.RawAssignment{
		{DutyDate: "2024-01-15", ShiftType: 0, Employees: []roster.Employee{
			{RoleCode: "dayDutyLeader", EmployeeName: "Alice", Phone: "111"},
			{RoleCode: "dayShiftManager", EmployeeName: "Bob"},
		}},
		{DutyDate: "2024-01-15", ShiftType: 1, Employees: []roster.Employee{}},
		{DutyDate: "2024-01-16", ShiftType: 1, Employees: []roster.Employee{
			{RoleCode: "nightSafetyOfficer", EmployeeName: "Carol", Phone: "333"},
		}},
	}

	if diff := cmp.Diff(want, persistence.ToDomainAssignments(rows)); diff != "" {
		t.Errorf("ToDomainAssignments() mismatch (-want +got):\n%s", diff)
	}
}

func TestToDomainAssignments_Empty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, persistence.ToDomainAssignments(nil))
}

func TestCachedWindowRoundTrip(t *testing.T) {
	t.Parallel()

	in := []roster.RawAssignment{
		{DutyDate: "2024-01-15", ShiftType: 1, Employees: []roster.Employee{
			{RoleCode: "dayDutyLeader", EmployeeName: "Alice", Phone: "111"},
		}},
		{DutyDate: "2024-01-16", ShiftType: 0, Employees: []roster.Employee{}},
	}
	window := persistence.ToCachedWindow("2024-01-15", "2024-01-21", in)
	assert.Equal(t, "2024-01-15", window.Start)
	assert.Equal(t, "2024-01-21", window.End)

	if diff := cmp.Diff(in, persistence.ToDomainCachedWindow(window)); diff != "" {
		t.Errorf("cached window mismatch (-want +got):\n%s", diff)
	}
}
