package exports

import (
	"fmt"
	"io"

	"github.com/go-faster/errors"
	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/xuri/excelize/v2"

	"github.com/jacksonlee411/safety-console/modules/roster/presentation/viewmodels"
	"github.com/jacksonlee411/safety-console/pkg/intl"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var columns = []struct {
	key      string
	fallback string
	width    float64
}{
	{"Roster.Columns.Date", "Date", 12},
	{"Roster.Columns.Weekday", "Weekday", 12},
	{"Roster.Columns.Position", "Position", 18},
	{"Roster.Columns.DayPerson", "Day shift", 20},
	{"Roster.Columns.DayPhone", "Day phone", 16},
	{"Roster.Columns.NightPerson", "Night shift", 20},
	{"Roster.Columns.NightPhone", "Night phone", 16},
}

// SheetName names the sheet of one week after its first day.
func SheetName(week *viewmodels.WeekRoster) string {
	return week.Range.Start
}

// WriteWeekWorkbook renders one sheet per week and writes the xlsx to w.
func WriteWeekWorkbook(w io.Writer, l *i18n.Localizer, weeks ...*viewmodels.WeekRoster) error {
	if len(weeks) == 0 {
		return errors.New("no weeks to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E0E7EF"}},
	})
	if err != nil {
		return errors.Wrap(err, "header style")
	}

	header := make([]interface{}, 0, len(columns))
	for _, c := range columns {
		header = append(header, intl.T(l, c.key, c.fallback))
	}
	lastCol, err := excelize.ColumnNumberToName(len(columns))
	if err != nil {
		return err
	}

	renamed := false
	for _, week := range weeks {
		if week == nil {
			continue
		}
		sheet := SheetName(week)
		if !renamed {
			renamed = true
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return errors.Wrap(err, "rename sheet")
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return errors.Wrapf(err, "new sheet %s", sheet)
		}

		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return errors.Wrap(err, "write header")
		}
		if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
			return errors.Wrap(err, "style header")
		}
		for col, c := range columns {
			name, _ := excelize.ColumnNumberToName(col + 1)
			if err := f.SetColWidth(sheet, name, name, c.width); err != nil {
				return err
			}
		}

		for r, row := range week.Rows {
			cell := fmt.Sprintf("A%d", r+2)
			values := []interface{}{
				row.DutyDate,
				row.WeekdayLabel,
				row.PositionLabel,
				row.DayPerson,
				row.DayPhone,
				row.NightPerson,
				row.NightPhone,
			}
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return errors.Wrapf(err, "write row %d", r)
			}
		}
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "write workbook")
	}
	return nil
}
