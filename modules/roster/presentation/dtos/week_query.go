package dtos

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"

	"github.com/jacksonlee411/safety-console/modules/roster/domain/roster"
	"github.com/jacksonlee411/safety-console/pkg/composables"
	"github.com/jacksonlee411/safety-console/pkg/constants"
	"github.com/jacksonlee411/safety-console/pkg/intl"
	"github.com/jacksonlee411/safety-console/pkg/serrors"
)

type WeekQuery struct {
	Anchor string `form:"anchor" validate:"required"`
	Count  int    `form:"count" validate:"min=1,max=53"`
}

// WeekQueryFromRequest decodes anchor and count from the query string. A
// missing anchor falls back to today, a missing count to one week. A count
// that is not a number is kept as zero so validation reports it.
func WeekQueryFromRequest(r *http.Request, today func() string) (*WeekQuery, error) {
	q, err := composables.UseQuery(&WeekQuery{Count: 1}, r)
	if err != nil {
		var decodeErrs form.DecodeErrors
		if !errors.As(err, &decodeErrs) {
			return nil, err
		}
		q.Count = 0
	}
	q.Anchor = strings.TrimSpace(q.Anchor)
	if q.Anchor == "" && today != nil {
		q.Anchor = today()
	}
	return q, nil
}

// Validate returns the field errors of q, or nil.
func (q *WeekQuery) Validate() serrors.ValidationErrors {
	err := constants.Validate.Struct(q)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return serrors.ValidationErrors{"Anchor": serrors.NewFieldRequiredError("Anchor", "Roster.Fields.Anchor")}
	}
	return serrors.ProcessValidatorErrors(errs, func(field string) string {
		return "Roster.Fields." + field
	})
}

// Ok localizes the validation result with the request localizer.
func (q *WeekQuery) Ok(ctx context.Context) (map[string]string, bool) {
	errs := q.Validate()
	if len(errs) == 0 {
		return map[string]string{}, true
	}
	l, _ := intl.UseLocalizer(ctx)
	return serrors.LocalizeValidationErrors(errs, l), false
}

var nowUTC = func() time.Time { return time.Now().UTC() }

// Today renders the current UTC date in the duty date layout.
func Today() string {
	return roster.FormatDate(roster.CalendarDay(nowUTC()))
}
