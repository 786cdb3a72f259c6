package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"github.com/jacksonlee411/safety-console/modules/roster/domain/roster"
	"github.com/jacksonlee411/safety-console/pkg/composables"
)

var assignmentColumns = []string{"id", "duty_date", "shift_type", "seq", "role_code", "employee_name", "phone"}

func newMockDB(t *testing.T) (pgxmock.PgxPoolIface, context.Context) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, composables.WithDB(context.Background(), mock)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDutyAssignmentRepository_FetchAssignments(t *testing.T) {
	mock, ctx := newMockDB(t)

	rows := mock.NewRows(assignmentColumns).
		AddRow(int64(7), day(2024, 1, 15), int16(0), int64(0), "dayDutyLeader", "Alice", "111").
		AddRow(int64(7), day(2024, 1, 15), int16(0), int64(1), "dayShiftManager", "Bob", "222").
		AddRow(int64(9), day(2024, 1, 15), int16(1), nil, nil, nil, nil).
		AddRow(int64(11), day(2024, 1, 16), int16(1), int64(0), "nightDutyLeader", "Carol", nil)
	mock.ExpectQuery("FROM duty_records r").
		WithArgs("2024-01-15", "2024-01-21").
		WillReturnRows(rows)

	got, err := NewDutyAssignmentRepository().FetchAssignments(ctx, "2024-01-15", "2024-01-21T08:00:00")
	require.NoError(t, err)
	require.Equal(t, []roster.RawAssignment{
		{DutyDate: "2024-01-15", ShiftType: 0, Employees: []roster.Employee{
			{RoleCode: "dayDutyLeader", EmployeeName: "Alice", Phone: "111"},
			{RoleCode: "dayShiftManager", EmployeeName: "Bob", Phone: "222"},
		}},
		{DutyDate: "2024-01-15", ShiftType: 1, Employees: []roster.Employee{}},
		{DutyDate: "2024-01-16", ShiftType: 1, Employees: []roster.Employee{
			{RoleCode: "nightDutyLeader", EmployeeName: "Carol"},
		}},
	}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDutyAssignmentRepository_FetchAssignments_Errors(t *testing.T) {
	mock, ctx := newMockDB(t)
	repo := NewDutyAssignmentRepository()

	_, err := repo.FetchAssignments(ctx, "2024-01-21", "2024-01-15")
	require.ErrorIs(t, err, roster.ErrInvalidDate)

	mock.ExpectQuery("FROM duty_records r").WillReturnError(errors.New("connection reset"))
	_, err = repo.FetchAssignments(ctx, "2024-01-15", "2024-01-21")
	require.ErrorContains(t, err, "query duty assignments")

	_, err = repo.FetchAssignments(context.Background(), "2024-01-15", "2024-01-21")
	require.ErrorIs(t, err, composables.ErrNoPool)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDutyAssignmentRepository_Save(t *testing.T) {
	mock, ctx := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO duty_records").
		WithArgs(day(2024, 1, 15), int16(roster.ShiftCodeNight)).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectExec("INSERT INTO duty_record_employees").
		WithArgs(int64(1), 0, "nightDutyLeader", "Carol", "333").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("INSERT INTO duty_records").
		WithArgs(day(2024, 1, 16), int16(roster.ShiftCodeDay)).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int64(2)))
	mock.ExpectCommit()

	saved, err := NewDutyAssignmentRepository().Save(ctx, []roster.RawAssignment{
		{DutyDate: "2024-01-15", ShiftType: 1, Employees: []roster.Employee{
			{RoleCode: " nightDutyLeader ", EmployeeName: "Carol", Phone: "333"},
		}},
		{DutyDate: "2024-01-16T22:00:00", ShiftType: 65537},
	})
	require.NoError(t, err)
	require.Equal(t, 2, saved)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDutyAssignmentRepository_Save_RollsBack(t *testing.T) {
	mock, ctx := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO duty_records").
		WithArgs(day(2024, 1, 15), int16(roster.ShiftCodeDay)).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectRollback()

	saved, err := NewDutyAssignmentRepository().Save(ctx, []roster.RawAssignment{
		{DutyDate: "2024-01-15"},
		{DutyDate: "someday"},
	})
	require.ErrorIs(t, err, roster.ErrInvalidDate)
	require.ErrorContains(t, err, "assignment 1")
	require.Zero(t, saved)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDutyAssignmentRepository_Save_InsertFailure(t *testing.T) {
	mock, ctx := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO duty_records").
		WillReturnError(errors.New("duplicate key"))
	mock.ExpectRollback()

	_, err := NewDutyAssignmentRepository().Save(ctx, []roster.RawAssignment{{DutyDate: "2024-01-15"}})
	require.ErrorContains(t, err, "insert duty record")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoredShiftCode(t *testing.T) {
	require.Equal(t, int16(roster.ShiftCodeNight), storedShiftCode(roster.ShiftCodeNight))
	for _, code := range []int{0, 2, -1, 65537, 1 << 20} {
		require.Equal(t, int16(roster.ShiftCodeDay), storedShiftCode(code), code)
	}
}
