package persistence

import (
	"github.com/jacksonlee411/safety-console/modules/roster/domain/roster"
	"github.com/jacksonlee411/safety-console/modules/roster/infrastructure/persistence/models"
)

// ToDomainAssignments folds joined rows back into one assignment per record.
// Rows must arrive ordered by record; employee order follows row order.
func ToDomainAssignments(rows []models.DutyEmployeeRow) []roster.RawAssignment {
	out := make([]roster.RawAssignment, 0, len(rows))
	var current int64
	for i, row := range rows {
		if i == 0 || row.RecordID != current {
			current = row.RecordID
			out = append(out, roster.RawAssignment{
				DutyDate:  roster.FormatDate(row.DutyDate),
				ShiftType: int(row.ShiftType),
				Employees: []roster.Employee{},
			})
		}
		if !row.RoleCode.Valid {
			continue
		}
		last := &out[len(out)-1]
		last.Employees = append(last.Employees, roster.Employee{
			RoleCode:     row.RoleCode.String,
			EmployeeName: row.EmployeeName.String,
			Phone:        row.Phone.String,
		})
	}
	return out
}

func ToCachedWindow(start, end string, assignments []roster.RawAssignment) models.CachedWindow {
	out := models.CachedWindow{
		Start:       start,
		End:         end,
		Assignments: make([]models.CachedAssignment, 0, len(assignments)),
	}
	for _, a := range assignments {
		employees := make([]models.CachedEmployee, 0, len(a.Employees))
		for _, e := range a.Employees {
			employees = append(employees, models.CachedEmployee{
				RoleCode:     e.RoleCode,
				EmployeeName: e.EmployeeName,
				Phone:        e.Phone,
			})
		}
		out.Assignments = append(out.Assignments, models.CachedAssignment{
			DutyDate:  a.DutyDate,
			ShiftType: a.ShiftType,
			Employees: employees,
		})
	}
	return out
}

func ToDomainCachedWindow(window models.CachedWindow) []roster.RawAssignment {
	out := make([]roster.RawAssignment, 0, len(window.Assignments))
	for _, a := range window.Assignments {
		employees := make([]roster.Employee, 0, len(a.Employees))
		for _, e := range a.Employees {
			employees = append(employees, roster.Employee{
				RoleCode:     e.RoleCode,
				EmployeeName: e.EmployeeName,
				Phone:        e.Phone,
			})
		}
		out = append(out, roster.RawAssignment{
			DutyDate:  a.DutyDate,
			ShiftType: a.ShiftType,
			Employees: employees,
		})
	}
	return out
}
