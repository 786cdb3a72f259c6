package mappers

import (
	"time"

	"github.com/iota-uz/go-i18n/v2/i18n"

	"github.com/jacksonlee411/safety-console/modules/roster/domain/roster"
	"github.com/jacksonlee411/safety-console/modules/roster/presentation/viewmodels"
	"github.com/jacksonlee411/safety-console/modules/roster/services"
	"github.com/jacksonlee411/safety-console/pkg/intl"
)

func WeekdayLabel(l *i18n.Localizer, day time.Weekday) string {
	return intl.T(l, "Roster.Weekday."+day.String(), day.String())
}

func PositionLabel(l *i18n.Localizer, p roster.Position) string {
	return intl.T(l, "Roster.Position."+string(p), string(p))
}

func RowToViewModel(l *i18n.Localizer, row roster.AggregatedRow) *viewmodels.Row {
	return &viewmodels.Row{
		DutyDate:      row.DutyDate,
		Weekday:       int(row.Weekday),
		WeekdayLabel:  WeekdayLabel(l, row.Weekday),
		Position:      string(row.Position),
		PositionLabel: PositionLabel(l, row.Position),
		DayPerson:     row.DayPerson,
		DayPhone:      row.DayPhone,
		NightPerson:   row.NightPerson,
		NightPhone:    row.NightPhone,
		NightPosition: string(row.NightPosition),
	}
}

func WeekRangeToViewModel(w roster.WeekRange) viewmodels.WeekRange {
	year, week := w.ISOWeek()
	return viewmodels.WeekRange{
		Start:   w.StartDate(),
		End:     w.EndDate(),
		Year:    year,
		ISOWeek: week,
	}
}

func WeekRosterToViewModel(l *i18n.Localizer, wr *services.WeekRoster) *viewmodels.WeekRoster {
	if wr == nil {
		return nil
	}

	rows := make([]*viewmodels.Row, 0, len(wr.Rows))
	for _, row := range wr.Rows {
		rows = append(rows, RowToViewModel(l, row))
	}

	days := make([]*viewmodels.Day, 0, len(wr.Days))
	for _, d := range wr.Days {
		dayRows := make([]*viewmodels.Row, 0, len(d.Rows))
		for _, row := range d.Rows {
			dayRows = append(dayRows, RowToViewModel(l, row))
		}
		days = append(days, &viewmodels.Day{
			DutyDate:     d.DutyDate,
			Weekday:      int(d.Weekday),
			WeekdayLabel: WeekdayLabel(l, d.Weekday),
			Rows:         dayRows,
		})
	}

	warnings := make([]*viewmodels.Warning, 0, len(wr.Warnings))
	for _, w := range wr.Warnings {
		msg := ""
		if w.Err != nil {
			msg = w.Err.Error()
		}
		warnings = append(warnings, &viewmodels.Warning{
			Index:    w.Index,
			DutyDate: w.DutyDate,
			Message:  msg,
		})
	}

	return &viewmodels.WeekRoster{
		Range:    WeekRangeToViewModel(wr.Range),
		Rows:     rows,
		Days:     days,
		Warnings: warnings,
	}
}

func WeekRostersToViewModels(l *i18n.Localizer, weeks []*services.WeekRoster) []*viewmodels.WeekRoster {
	out := make([]*viewmodels.WeekRoster, 0, len(weeks))
	for _, wr := range weeks {
		out = append(out, WeekRosterToViewModel(l, wr))
	}
	return out
}
