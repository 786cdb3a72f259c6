package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jacksonlee411/safety-console/modules/roster/domain/roster"
	"github.com/jacksonlee411/safety-console/modules/roster/presentation/dtos"
	"github.com/jacksonlee411/safety-console/modules/roster/presentation/exports"
	"github.com/jacksonlee411/safety-console/modules/roster/presentation/mappers"
	"github.com/jacksonlee411/safety-console/modules/roster/services"
	"github.com/jacksonlee411/safety-console/pkg/application"
	"github.com/jacksonlee411/safety-console/pkg/composables"
	"github.com/jacksonlee411/safety-console/pkg/httpapi"
	"github.com/jacksonlee411/safety-console/pkg/intl"
)

const maxPreviewBody = 1 << 20

type RosterAPIController struct {
	app       application.Application
	roster    *services.RosterService
	apiPrefix string
	today     func() string
}

func NewRosterAPIController(app application.Application) application.Controller {
	return &RosterAPIController{
		app:       app,
		roster:    app.Service(services.RosterService{}).(*services.RosterService),
		apiPrefix: "/roster/api",
		today:     dtos.Today,
	}
}

func (c *RosterAPIController) Key() string {
	return c.apiPrefix
}

func (c *RosterAPIController) Register(r *mux.Router) {
	api := r.PathPrefix(c.apiPrefix).Subrouter()

	api.HandleFunc("/week", c.instrumentAPI("roster.week", c.GetWeek)).Methods(http.MethodGet)
	api.HandleFunc("/weeks", c.instrumentAPI("roster.weeks", c.GetWeeks)).Methods(http.MethodGet)
	api.HandleFunc("/week.xlsx", c.instrumentAPI("roster.week_xlsx", c.GetWeekWorkbook)).Methods(http.MethodGet)
	api.HandleFunc("/preview", c.instrumentAPI("roster.preview", c.Preview)).Methods(http.MethodPost)
}

func (c *RosterAPIController) query(w http.ResponseWriter, r *http.Request) (*dtos.WeekQuery, bool) {
	q, err := dtos.WeekQueryFromRequest(r, c.today)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "ROSTER_INVALID_QUERY", "query is invalid", map[string]string{
			"request_id": composables.UseRequestID(r.Context()),
		})
		return nil, false
	}
	if errs, ok := q.Ok(r.Context()); !ok {
		meta := map[string]string{"request_id": composables.UseRequestID(r.Context())}
		for field, msg := range errs {
			meta[field] = msg
		}
		_ = httpapi.WriteError(w, http.StatusBadRequest, "ROSTER_INVALID_QUERY", "query is invalid", meta)
		return nil, false
	}
	return q, true
}

func (c *RosterAPIController) fail(w http.ResponseWriter, r *http.Request, err error) {
	requestID := composables.UseRequestID(r.Context())
	var svcErr *services.ServiceError
	if !errors.As(err, &svcErr) || svcErr.Status >= http.StatusInternalServerError {
		if logger, lErr := composables.TryUseLogger(r.Context()); lErr == nil {
			logger.WithError(err).Error("roster request failed")
		}
	}
	_ = httpapi.WriteServiceError(w, requestID, "ROSTER_INTERNAL", err)
}

func (c *RosterAPIController) GetWeek(w http.ResponseWriter, r *http.Request) {
	q, ok := c.query(w, r)
	if !ok {
		return
	}
	wr, err := c.roster.Week(r.Context(), q.Anchor)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	l, _ := intl.UseLocalizer(r.Context())
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.WeekRosterToViewModel(l, wr))
}

func (c *RosterAPIController) GetWeeks(w http.ResponseWriter, r *http.Request) {
	q, ok := c.query(w, r)
	if !ok {
		return
	}
	weeks, err := c.roster.Weeks(r.Context(), q.Anchor, q.Count)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	l, _ := intl.UseLocalizer(r.Context())
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.WeekRostersToViewModels(l, weeks))
}

func (c *RosterAPIController) GetWeekWorkbook(w http.ResponseWriter, r *http.Request) {
	q, ok := c.query(w, r)
	if !ok {
		return
	}
	weeks, err := c.roster.Weeks(r.Context(), q.Anchor, q.Count)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	l, _ := intl.UseLocalizer(r.Context())
	vms := mappers.WeekRostersToViewModels(l, weeks)

	var buf bytes.Buffer
	if err := exports.WriteWeekWorkbook(&buf, l, vms...); err != nil {
		c.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", exports.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="roster-%s.xlsx"`, vms[0].Range.Start))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (c *RosterAPIController) Preview(w http.ResponseWriter, r *http.Request) {
	q, ok := c.query(w, r)
	if !ok {
		return
	}
	var records []roster.RawAssignment
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPreviewBody))
	if err := decodeSingle(dec, &records); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "ROSTER_INVALID_BODY", "body must be a JSON array of duty records", map[string]string{
			"request_id": composables.UseRequestID(r.Context()),
		})
		return
	}
	wr, err := c.roster.Preview(r.Context(), q.Anchor, records)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	l, _ := intl.UseLocalizer(r.Context())
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.WeekRosterToViewModel(l, wr))
}

// decodeSingle decodes one JSON value and rejects anything after it.
func decodeSingle(dec *json.Decoder, v any) error {
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("unexpected data after JSON value")
	}
	return nil
}
