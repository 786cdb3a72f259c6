package roster

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func emp(role RoleCode, name, phone string) Employee {
	return Employee{RoleCode: string(role), EmployeeName: name, Phone: phone}
}

func TestAggregate_MergesDayAndNight(t *testing.T) {
	records := []RawAssignment{
		{DutyDate: "2025-03-03", ShiftType: ShiftCodeDay, Employees: []Employee{emp(RoleDayDutyLeader, "A", "111")}},
		{DutyDate: "2025-03-03", ShiftType: ShiftCodeNight, Employees: []Employee{emp(RoleNightDutyLeader, "B", "222")}},
	}

	agg := Aggregate(records)
	require.Empty(t, agg.Warnings)
	want := []AggregatedRow{{
		DutyDate:      "2025-03-03",
		Weekday:       time.Monday,
		Position:      PositionDutyLeader,
		DayPerson:     "A",
		DayPhone:      "111",
		NightPerson:   "B",
		NightPhone:    "222",
		NightPosition: PositionDutyLeader,
	}}
	if diff := cmp.Diff(want, agg.Rows()); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregate_NoOccupantLost(t *testing.T) {
	records := []RawAssignment{
		{DutyDate: "2025-03-04", ShiftType: ShiftCodeDay, Employees: []Employee{
			emp(RoleDayDutyLeader, "dl", "1"),
			emp(RoleDayShiftManager, "sm", "2"),
			emp(RoleDaySafetyOfficer, "so", "3"),
		}},
		{DutyDate: "2025-03-04", ShiftType: ShiftCodeNight, Employees: []Employee{
			emp(RoleNightSafetyOfficer, "nso", "4"),
		}},
		{DutyDate: "2025-03-05", ShiftType: ShiftCodeNight, Employees: []Employee{
			emp(RoleNightDutyLeader, "ndl", "5"),
		}},
	}

	agg := Aggregate(records)
	require.Equal(t, 4, agg.Len())

	for _, rec := range records {
		for _, e := range rec.Employees {
			row, ok := agg.Get(rec.DutyDate, RoleCode(e.RoleCode).Position())
			require.True(t, ok, "missing row for %s/%s", rec.DutyDate, e.RoleCode)
			if ShiftKeyFromCode(rec.ShiftType) == ShiftNight {
				require.Equal(t, e.EmployeeName, row.NightPerson)
				require.Equal(t, e.Phone, row.NightPhone)
			} else {
				require.Equal(t, e.EmployeeName, row.DayPerson)
				require.Equal(t, e.Phone, row.DayPhone)
			}
		}
	}

	so, ok := agg.Get("2025-03-04", PositionSafetyOfficer)
	require.True(t, ok)
	require.Equal(t, "so", so.DayPerson)
	require.Equal(t, "nso", so.NightPerson)
	require.Equal(t, PositionSafetyOfficer, so.NightPosition)
}

func TestAggregate_LastEmployeeWins(t *testing.T) {
	records := []RawAssignment{
		{DutyDate: "2025-03-03", ShiftType: ShiftCodeDay, Employees: []Employee{
			emp(RoleDaySafetyOfficer, "first", "1"),
			emp(RoleDaySecurityOfficer, "second", "2"),
		}},
		{DutyDate: "2025-03-03", ShiftType: ShiftCodeDay, Employees: []Employee{
			emp(RoleDaySafetyOfficer, "third", "3"),
		}},
	}

	agg := Aggregate(records)
	require.Equal(t, 1, agg.Len())
	row, ok := agg.Get("2025-03-03", PositionSafetyOfficer)
	require.True(t, ok)
	require.Equal(t, "third", row.DayPerson)
	require.Equal(t, "3", row.DayPhone)
}

func TestAggregate_SkipsEmptyAndMalformed(t *testing.T) {
	records := []RawAssignment{
		{DutyDate: "2025-03-03", ShiftType: ShiftCodeDay},
		{DutyDate: "03/03/2025", ShiftType: ShiftCodeDay, Employees: []Employee{emp(RoleDayDutyLeader, "x", "0")}},
		{DutyDate: "2025-03-03", ShiftType: ShiftCodeDay, Employees: []Employee{emp(RoleDayDutyLeader, "ok", "9")}},
		{DutyDate: "", ShiftType: ShiftCodeNight},
	}

	agg := Aggregate(records)
	require.Equal(t, 1, agg.Len())
	require.Len(t, agg.Warnings, 2)

	require.Equal(t, 1, agg.Warnings[0].Index)
	require.Equal(t, "03/03/2025", agg.Warnings[0].DutyDate)
	require.True(t, errors.Is(agg.Warnings[0].Err, ErrInvalidDate))
	require.Contains(t, agg.Warnings[0].Error(), "record 1 skipped")

	require.Equal(t, 3, agg.Warnings[1].Index)
}

func TestAggregate_UnknownRoleAndShift(t *testing.T) {
	records := []RawAssignment{
		{DutyDate: "2025-03-06", ShiftType: 7, Employees: []Employee{emp("canteen", "cook", "8")}},
	}

	rows := Aggregate(records).Rows()
	require.Len(t, rows, 1)
	require.Equal(t, PositionUnknown, rows[0].Position)
	require.Equal(t, "cook", rows[0].DayPerson)
	require.False(t, rows[0].HasNight())
	require.Equal(t, time.Thursday, rows[0].Weekday)
}

func TestAggregate_NormalizesTimestampDates(t *testing.T) {
	records := []RawAssignment{
		{DutyDate: "2025-03-07T08:00:00+08:00", ShiftType: ShiftCodeDay, Employees: []Employee{emp(RoleDayDutyLeader, "a", "1")}},
		{DutyDate: " 2025-03-07 ", ShiftType: ShiftCodeNight, Employees: []Employee{emp(RoleNightDutyLeader, "b", "2")}},
	}

	rows := Aggregate(records).Rows()
	require.Len(t, rows, 1)
	require.Equal(t, "2025-03-07", rows[0].DutyDate)
	require.Equal(t, "a", rows[0].DayPerson)
	require.Equal(t, "b", rows[0].NightPerson)
}

func TestAggregate_RowsIsACopy(t *testing.T) {
	agg := Aggregate([]RawAssignment{
		{DutyDate: "2025-03-03", ShiftType: ShiftCodeDay, Employees: []Employee{emp(RoleDayDutyLeader, "a", "1")}},
	})
	rows := agg.Rows()
	rows[0].DayPerson = "mutated"

	row, ok := agg.Get("2025-03-03", PositionDutyLeader)
	require.True(t, ok)
	require.Equal(t, "a", row.DayPerson)

	_, ok = agg.Get("not a date", PositionDutyLeader)
	require.False(t, ok)
}
