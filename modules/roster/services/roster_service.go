package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/jacksonlee411/safety-console/modules/roster/domain/roster"
	"github.com/jacksonlee411/safety-console/pkg/composables"
	"github.com/jacksonlee411/safety-console/pkg/eventbus"
)

const (
	SourceDatabase = "database"
	SourcePreview  = "preview"

	// DefaultMaxWeeks bounds Weeks when the service is built without a limit.
	DefaultMaxWeeks = 8

	weeksConcurrency = 4
)

// WeekRoster is the display-ready roster of one week.
type WeekRoster struct {
	Range    roster.WeekRange
	Rows     []roster.AggregatedRow
	Days     []roster.DayGroup
	Warnings []roster.MalformedRecordWarning
}

type RosterService struct {
	repo      roster.Repository
	publisher eventbus.EventBus
	logger    *logrus.Logger
	maxWeeks  int
}

func NewRosterService(repo roster.Repository, publisher eventbus.EventBus, logger *logrus.Logger, maxWeeks int) *RosterService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if maxWeeks <= 0 {
		maxWeeks = DefaultMaxWeeks
	}
	return &RosterService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		maxWeeks:  maxWeeks,
	}
}

func (s *RosterService) MaxWeeks() int {
	return s.maxWeeks
}

// Week builds the roster of the ISO week containing anchor from the
// repository.
func (s *RosterService) Week(ctx context.Context, anchor string) (*WeekRoster, error) {
	w, err := roster.ParseWeek(anchor)
	if err != nil {
		return nil, invalidDate(err)
	}
	return s.week(ctx, w)
}

// Weeks builds count consecutive weeks starting with the week of anchor.
// The result is in week order.
func (s *RosterService) Weeks(ctx context.Context, anchor string, count int) ([]*WeekRoster, error) {
	if count < 1 || count > s.maxWeeks {
		return nil, newServiceError(
			http.StatusBadRequest,
			CodeInvalidCount,
			fmt.Sprintf("count must be within 1..%d", s.maxWeeks),
			nil,
		)
	}
	first, err := roster.ParseWeek(anchor)
	if err != nil {
		return nil, invalidDate(err)
	}

	out := make([]*WeekRoster, count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(weeksConcurrency)
	next := first
	for i := 0; i < count; i++ {
		i, wk := i, next
		g.Go(func() error {
			wr, err := s.week(gctx, wk)
			if err != nil {
				return err
			}
			out[i] = wr
			return nil
		})
		next = next.Next()
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Preview builds the anchor week from caller supplied records. Records dated
// outside the week are ignored.
func (s *RosterService) Preview(ctx context.Context, anchor string, records []roster.RawAssignment) (*WeekRoster, error) {
	w, err := roster.ParseWeek(anchor)
	if err != nil {
		return nil, invalidDate(err)
	}
	return s.build(ctx, w, roster.InWeek(records, w), SourcePreview), nil
}

func (s *RosterService) week(ctx context.Context, w roster.WeekRange) (*WeekRoster, error) {
	records, err := s.repo.FetchAssignments(ctx, w.StartDate(), w.EndDate())
	if err != nil {
		if errors.Is(err, roster.ErrInvalidDate) {
			return nil, invalidDate(err)
		}
		return nil, newServiceError(
			http.StatusBadGateway,
			CodeSourceUnavailable,
			"duty assignments are unavailable",
			errors.Wrapf(err, "fetch assignments %s..%s", w.StartDate(), w.EndDate()),
		)
	}
	return s.build(ctx, w, records, SourceDatabase), nil
}

func (s *RosterService) build(ctx context.Context, w roster.WeekRange, records []roster.RawAssignment, source string) *WeekRoster {
	start := time.Now()
	result := roster.Build(records)
	elapsed := time.Since(start)
	recordBuild(source, elapsed.Seconds(), len(result.Rows), len(result.Warnings))

	logger := s.entry(ctx).WithFields(logrus.Fields{
		"week_start": w.StartDate(),
		"week_end":   w.EndDate(),
		"source":     source,
	})
	for _, warning := range result.Warnings {
		if s.publisher == nil {
			logger.WithError(warning.Err).
				WithField("record_index", warning.Index).
				WithField("duty_date", warning.DutyDate).
				Warn("skipped malformed duty record")
			continue
		}
		s.publisher.Publish(&roster.MalformedRecordEvent{Range: w, Warning: warning})
	}
	if unknown := countUnknownRoles(records); unknown > 0 {
		logger.WithField("employees", unknown).Debug("duty employees with unrecognised role codes")
	}

	s.publish(&roster.WeekBuiltEvent{
		Range:    w,
		Source:   source,
		Records:  len(records),
		Rows:     len(result.Rows),
		Skipped:  len(result.Warnings),
		Duration: elapsed,
	})

	return &WeekRoster{
		Range:    w,
		Rows:     result.Rows,
		Days:     result.Days(),
		Warnings: result.Warnings,
	}
}

func (s *RosterService) entry(ctx context.Context) *logrus.Entry {
	if entry, err := composables.TryUseLogger(ctx); err == nil {
		return entry
	}
	return logrus.NewEntry(s.logger)
}

func (s *RosterService) publish(event interface{}) {
	if s.publisher != nil {
		s.publisher.Publish(event)
	}
}

func countUnknownRoles(records []roster.RawAssignment) int {
	n := 0
	for _, rec := range records {
		for _, e := range rec.Employees {
			if !roster.RoleCode(e.RoleCode).Position().Known() {
				n++
			}
		}
	}
	return n
}
