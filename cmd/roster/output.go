package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/iota-uz/go-i18n/v2/i18n"

	"github.com/jacksonlee411/safety-console/modules/roster/presentation/viewmodels"
	"github.com/jacksonlee411/safety-console/pkg/application"
	"github.com/jacksonlee411/safety-console/pkg/intl"

	rostermodule "github.com/jacksonlee411/safety-console/modules/roster"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newLocalizer(lang string) *i18n.Localizer {
	bundle := application.LoadBundle()
	app := application.New(&application.ApplicationOptions{Bundle: bundle})
	app.RegisterLocaleFiles(&rostermodule.LocaleFiles)
	return i18n.NewLocalizer(bundle, lang)
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func weekTable(l *i18n.Localizer, week *viewmodels.WeekRoster) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(
			intl.T(l, "Roster.Columns.Date", "Date"),
			intl.T(l, "Roster.Columns.Weekday", "Weekday"),
			intl.T(l, "Roster.Columns.Position", "Position"),
			intl.T(l, "Roster.Columns.DayPerson", "Day shift"),
			intl.T(l, "Roster.Columns.DayPhone", "Day phone"),
			intl.T(l, "Roster.Columns.NightPerson", "Night shift"),
			intl.T(l, "Roster.Columns.NightPhone", "Night phone"),
		).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, row := range week.Rows {
		t.Row(row.DutyDate, row.WeekdayLabel, row.PositionLabel, row.DayPerson, row.DayPhone, row.NightPerson, row.NightPhone)
	}
	return t
}

func writeTables(w io.Writer, l *i18n.Localizer, weeks []*viewmodels.WeekRoster) error {
	for i, week := range weeks {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		title := fmt.Sprintf("%s %s..%s (W%02d)", intl.T(l, "Roster.Title", "Duty roster"), week.Range.Start, week.Range.End, week.Range.ISOWeek)
		if _, err := fmt.Fprintln(w, headerStyle.Render(title)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, weekTable(l, week).Render()); err != nil {
			return err
		}
		for _, warning := range week.Warnings {
			if _, err := fmt.Fprintf(w, "skipped record %d (%q): %s\n", warning.Index, warning.DutyDate, warning.Message); err != nil {
				return err
			}
		}
	}
	return nil
}
