package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jacksonlee411/safety-console/modules/roster/domain/roster"
	"github.com/jacksonlee411/safety-console/modules/roster/presentation/viewmodels"
	"github.com/jacksonlee411/safety-console/pkg/application"
)

const recordsJSON = `[
  {"dutyDate": "2024-01-15", "shiftType": 0, "employees": [
    {"roleCode": "dayDutyLeader", "employeeName": "Alice", "phone": "111"},
    {"roleCode": "daySafetyManager", "employeeName": "Sam", "phone": "999"}
  ]},
  {"dutyDate": "2024-01-15", "shiftType": 1, "employees": [
    {"roleCode": "nightDutyLeader", "employeeName": "Carol", "phone": "333"}
  ]},
  {"dutyDate": "2024-01-22", "shiftType": 0, "employees": [
    {"roleCode": "daySecurityOfficer", "employeeName": "Dan", "phone": "444"}
  ]},
  {"dutyDate": "someday", "shiftType": 0, "employees": [
    {"roleCode": "dayDutyLeader", "employeeName": "Eve", "phone": ""}
  ]}
]`

func writeInput(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(p, []byte(recordsJSON), 0o600))
	return p
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestWeekCmd_JSONFromFile(t *testing.T) {
	out, err := run(t, "week", "--input", writeInput(t), "--anchor", "2024-01-17", "--weeks", "2", "--format", "json")
	require.NoError(t, err)

	var weeks []viewmodels.WeekRoster
	require.NoError(t, json.Unmarshal([]byte(out), &weeks))
	require.Len(t, weeks, 2)

	require.Equal(t, "2024-01-15", weeks[0].Range.Start)
	require.Len(t, weeks[0].Rows, 2)
	require.Equal(t, "DUTY_LEADER", weeks[0].Rows[0].Position)
	require.Equal(t, "SAFETY_MANAGER", weeks[0].Rows[1].Position)
	require.Len(t, weeks[0].Warnings, 1)

	require.Equal(t, "2024-01-22", weeks[1].Range.Start)
	require.Len(t, weeks[1].Rows, 1)
	require.Equal(t, "Safety officer", weeks[1].Rows[0].PositionLabel)
}

func TestWeekCmd_TableInChinese(t *testing.T) {
	out, err := run(t, "week", "--input", writeInput(t), "--anchor", "2024-01-15", "--lang", "zh")
	require.NoError(t, err)
	require.Contains(t, out, "值班表")
	require.Contains(t, out, "值班领导")
	require.Contains(t, out, "Alice")
	require.Contains(t, out, "Carol")
	require.Contains(t, out, `("someday")`)
}

func TestWeekCmd_XLSXToFile(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "roster.xlsx")
	_, err := run(t, "week", "--input", writeInput(t), "--anchor", "2024-01-15", "--format", "xlsx", "--out", dst)
	require.NoError(t, err)

	f, err := excelize.OpenFile(dst)
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue("2024-01-15", "D2")
	require.NoError(t, err)
	require.Equal(t, "Alice", v)
}

func TestWeekCmd_RejectsBadFlags(t *testing.T) {
	_, err := run(t, "week", "--input", writeInput(t), "--format", "yaml")
	require.ErrorContains(t, err, "invalid --format")

	_, err = run(t, "week", "--input", writeInput(t), "--weeks", "0")
	require.ErrorContains(t, err, "--weeks must be positive")

	_, err = run(t, "week", "--input", writeInput(t), "--anchor", "15/01/2024")
	require.ErrorIs(t, err, roster.ErrInvalidDate)
}

func TestImportCmd_DryRun(t *testing.T) {
	p := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(p, []byte(`[
	  {"dutyDate": "2024-01-15", "shiftType": 0, "employees": [{"roleCode": "dayDutyLeader", "employeeName": "Alice", "phone": "1"}]},
	  {"dutyDate": "2024-01-16", "shiftType": 1, "employees": []}
	]`), 0o600))

	out, err := run(t, "import", "--input", p, "--dry-run")
	require.NoError(t, err)

	var got importOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.True(t, got.DryRun)
	require.Equal(t, 2, got.Records)
	require.Equal(t, 1, got.Employees)
	require.Zero(t, got.Saved)
}

func TestImportCmd_RejectsBadDates(t *testing.T) {
	_, err := run(t, "import", "--input", writeInput(t), "--dry-run")
	require.ErrorContains(t, err, "record 3")
}

func TestReadRecords_Workbook(t *testing.T) {
	f := excelize.NewFile()
	row := []interface{}{"2024-01-15", "1", "nightSafetyOfficer", "Nia", "555"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &row))
	p := filepath.Join(t.TempDir(), "records.xlsx")
	require.NoError(t, f.SaveAs(p))
	require.NoError(t, f.Close())

	records, err := readRecords(p)
	require.NoError(t, err)
	require.Equal(t, []roster.RawAssignment{{
		DutyDate:  "2024-01-15",
		ShiftType: 1,
		Employees: []roster.Employee{{RoleCode: "nightSafetyOfficer", EmployeeName: "Nia", Phone: "555"}},
	}}, records)
}

func TestReadRecords_SniffsContent(t *testing.T) {
	f := excelize.NewFile()
	row := []interface{}{"2024-01-15", "0", "dayDutyLeader", "Alice", "111"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &row))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())
	workbook := filepath.Join(t.TempDir(), "upload.bin")
	require.NoError(t, os.WriteFile(workbook, buf.Bytes(), 0o600))

	records, err := readRecords(workbook)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Alice", records[0].Employees[0].EmployeeName)

	misnamed := filepath.Join(t.TempDir(), "records.xlsx")
	require.NoError(t, os.WriteFile(misnamed, []byte(recordsJSON), 0o600))
	records, err = readRecords(misnamed)
	require.NoError(t, err)
	require.Len(t, records, 4)

	garbage := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(garbage, []byte("duty notes"), 0o600))
	_, err = readRecords(garbage)
	require.ErrorContains(t, err, "text/plain")
}

func TestWriteMigrationStatus(t *testing.T) {
	var buf bytes.Buffer
	err := writeMigrationStatus(&buf, []application.MigrationStatus{
		{Version: 1, Source: "00001_roster_schema.sql", Applied: true, AppliedAt: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)},
		{Version: 2, Source: "00002_next.sql"},
	})
	require.NoError(t, err)
	out := buf.String()
	require.Contains(t, out, "00001")
	require.Contains(t, out, "2024-01-01T08:00:00Z")
	require.True(t, strings.Contains(out, "00002_next.sql"))
}
