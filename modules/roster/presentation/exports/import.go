package exports

import (
	"io"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"

	"github.com/jacksonlee411/safety-console/modules/roster/domain/roster"
)

// ImportColumns is the header expected by ReadAssignmentsWorkbook.
var ImportColumns = []string{"dutyDate", "shiftType", "roleCode", "employeeName", "phone"}

// ReadAssignmentsWorkbook reads the first sheet of an xlsx file laid out as
// one employee per row. Consecutive rows with the same date and shift form
// one assignment. Dates may be text or Excel date serials.
func ReadAssignmentsWorkbook(r io.Reader) ([]roster.RawAssignment, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "open workbook")
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrap(err, "read rows")
	}
	if len(rows) == 0 {
		return nil, nil
	}

	start := 0
	if len(rows[0]) > 0 && strings.EqualFold(strings.TrimSpace(rows[0][0]), ImportColumns[0]) {
		start = 1
	}

	var out []roster.RawAssignment
	for i := start; i < len(rows); i++ {
		cells := rows[i]
		if blank(cells) {
			continue
		}
		date := cellDate(cell(cells, 0))
		shift, err := strconv.Atoi(strings.TrimSpace(cell(cells, 1)))
		if err != nil && strings.TrimSpace(cell(cells, 1)) != "" {
			return nil, errors.Wrapf(err, "row %d: shiftType", i+1)
		}
		emp := roster.Employee{
			RoleCode:     strings.TrimSpace(cell(cells, 2)),
			EmployeeName: strings.TrimSpace(cell(cells, 3)),
			Phone:        strings.TrimSpace(cell(cells, 4)),
		}

		if n := len(out); n > 0 && out[n-1].DutyDate == date && out[n-1].ShiftType == shift {
			out[n-1].Employees = append(out[n-1].Employees, emp)
			continue
		}
		out = append(out, roster.RawAssignment{
			DutyDate:  date,
			ShiftType: shift,
			Employees: []roster.Employee{emp},
		})
	}
	return out, nil
}

func cell(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// cellDate turns an Excel serial into YYYY-MM-DD and leaves text untouched.
func cellDate(v string) string {
	v = strings.TrimSpace(v)
	if serial, err := strconv.ParseFloat(v, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return roster.FormatDate(t)
		}
	}
	return v
}
