package persistence

import (
	"context"
	"strings"

	"github.com/go-faster/errors"

	"github.com/jacksonlee411/safety-console/modules/roster/domain/roster"
	"github.com/jacksonlee411/safety-console/modules/roster/infrastructure/persistence/models"
	"github.com/jacksonlee411/safety-console/pkg/composables"
)

const selectAssignmentsSQL = `
SELECT
	r.id,
	r.duty_date,
	r.shift_type,
	e.seq,
	e.role_code,
	e.employee_name,
	e.phone
FROM duty_records r
LEFT JOIN duty_record_employees e
	ON e.record_id = r.id
WHERE r.duty_date BETWEEN $1 AND $2
ORDER BY r.duty_date ASC, r.id ASC, e.seq ASC
`

const insertRecordSQL = `
INSERT INTO duty_records (duty_date, shift_type)
VALUES ($1, $2)
RETURNING id
`

const insertEmployeeSQL = `
INSERT INTO duty_record_employees (record_id, seq, role_code, employee_name, phone)
VALUES ($1, $2, $3, $4, $5)
`

type DutyAssignmentRepository struct{}

func NewDutyAssignmentRepository() *DutyAssignmentRepository {
	return &DutyAssignmentRepository{}
}

// ValidateWindow parses both bounds and checks start <= end.
func ValidateWindow(startDate, endDate string) (string, string, error) {
	start, err := roster.ParseDate(startDate)
	if err != nil {
		return "", "", err
	}
	end, err := roster.ParseDate(endDate)
	if err != nil {
		return "", "", err
	}
	if end.Before(start) {
		return "", "", &roster.InvalidDateError{
			Value: endDate,
			Err:   errors.Errorf("end date %s is before start date %s", roster.FormatDate(end), roster.FormatDate(start)),
		}
	}
	return roster.FormatDate(start), roster.FormatDate(end), nil
}

func (r *DutyAssignmentRepository) FetchAssignments(ctx context.Context, startDate, endDate string) ([]roster.RawAssignment, error) {
	start, end, err := ValidateWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}

	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, selectAssignmentsSQL, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "query duty assignments")
	}
	defer rows.Close()

	out := make([]models.DutyEmployeeRow, 0, 64)
	for rows.Next() {
		var row models.DutyEmployeeRow
		if err := rows.Scan(
			&row.RecordID,
			&row.DutyDate,
			&row.ShiftType,
			&row.Seq,
			&row.RoleCode,
			&row.EmployeeName,
			&row.Phone,
		); err != nil {
			return nil, errors.Wrap(err, "scan duty assignment")
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "read duty assignments")
	}
	return ToDomainAssignments(out), nil
}

// Save stores assignments in one transaction. Dates are normalized to their
// calendar day; an unreadable date aborts the whole batch.
func (r *DutyAssignmentRepository) Save(ctx context.Context, assignments []roster.RawAssignment) (int, error) {
	saved := 0
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		tx, err := composables.UseTx(txCtx)
		if err != nil {
			return err
		}
		for i, a := range assignments {
			day, err := roster.ParseDate(a.DutyDate)
			if err != nil {
				return errors.Wrapf(err, "assignment %d", i)
			}
			var id int64
			if err := tx.QueryRow(txCtx, insertRecordSQL, day, storedShiftCode(a.ShiftType)).Scan(&id); err != nil {
				return errors.Wrap(err, "insert duty record")
			}
			for seq, e := range a.Employees {
				if _, err := tx.Exec(txCtx, insertEmployeeSQL, id, seq, strings.TrimSpace(e.RoleCode), e.EmployeeName, e.Phone); err != nil {
					return errors.Wrap(err, "insert duty employee")
				}
			}
			saved++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return saved, nil
}

// storedShiftCode folds every code other than night onto the day code so
// the smallint column never wraps.
func storedShiftCode(code int) int16 {
	if roster.ShiftKeyFromCode(code) == roster.ShiftNight {
		return roster.ShiftCodeNight
	}
	return roster.ShiftCodeDay
}
