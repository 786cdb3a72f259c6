package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/jacksonlee411/safety-console/modules/roster/domain/roster"
	"github.com/jacksonlee411/safety-console/pkg/application"
)

type RosterEventsHandler struct {
	logger logrus.FieldLogger
}

func NewRosterEventsHandler(logger logrus.FieldLogger) *RosterEventsHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &RosterEventsHandler{logger: logger.WithField("component", "roster.events")}
}

func RegisterRosterEventHandlers(app application.Application) *RosterEventsHandler {
	handler := NewRosterEventsHandler(app.Logger())
	app.EventPublisher().Subscribe(handler.OnMalformedRecord)
	app.EventPublisher().Subscribe(handler.OnWeekBuilt)
	return handler
}

// OnWeekBuilt logs a summary of every assembled week. Weeks that skipped
// records are reported at info level, the rest at debug.
func (h *RosterEventsHandler) OnWeekBuilt(ev *roster.WeekBuiltEvent) {
	if h == nil || ev == nil {
		return
	}
	entry := h.logger.WithFields(logrus.Fields{
		"week_start": ev.Range.StartDate(),
		"week_end":   ev.Range.EndDate(),
		"source":     ev.Source,
		"records":    ev.Records,
		"rows":       ev.Rows,
		"skipped":    ev.Skipped,
		"duration":   ev.Duration.String(),
	})
	if ev.Skipped > 0 {
		entry.Info("roster week built with skipped records")
		return
	}
	entry.Debug("roster week built")
}

func (h *RosterEventsHandler) OnMalformedRecord(ev *roster.MalformedRecordEvent) {
	if h == nil || ev == nil {
		return
	}
	h.logger.WithError(ev.Warning.Err).WithFields(logrus.Fields{
		"week_start":   ev.Range.StartDate(),
		"record_index": ev.Warning.Index,
		"duty_date":    ev.Warning.DutyDate,
	}).Warn("skipped malformed duty record")
}
