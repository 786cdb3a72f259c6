package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jacksonlee411/safety-console/modules/roster/domain/roster"
	"github.com/jacksonlee411/safety-console/modules/roster/infrastructure/persistence"
	"github.com/jacksonlee411/safety-console/modules/roster/presentation/dtos"
	"github.com/jacksonlee411/safety-console/modules/roster/presentation/exports"
	"github.com/jacksonlee411/safety-console/modules/roster/presentation/mappers"
	"github.com/jacksonlee411/safety-console/modules/roster/services"
	"github.com/jacksonlee411/safety-console/pkg/composables"
	"github.com/jacksonlee411/safety-console/pkg/configuration"
)

const (
	formatJSON  = "json"
	formatTable = "table"
	formatXLSX  = "xlsx"
)

type weekOptions struct {
	anchor string
	weeks  int
	input  string
	format string
	out    string
	lang   string
}

func (o *weekOptions) validate() error {
	switch o.format {
	case formatJSON, formatTable, formatXLSX:
	default:
		return fmt.Errorf("invalid --format %q (json, table or xlsx)", o.format)
	}
	if o.weeks < 1 {
		return fmt.Errorf("--weeks must be positive, got %d", o.weeks)
	}
	return nil
}

func newWeekCmd(root *rootOptions) *cobra.Command {
	opts := &weekOptions{}
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Print the duty roster of the week containing --anchor",
		Long: "Builds the roster from --input (a JSON array or xlsx workbook of duty records) " +
			"or, without --input, from the database configured by DB_* variables.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			logger := root.logger()

			var (
				weeks []*services.WeekRoster
				err   error
			)
			if opts.input != "" {
				weeks, err = weeksFromFile(cmd.Context(), logger, opts)
			} else {
				weeks, err = weeksFromDatabase(cmd.Context(), logger, opts)
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.out != "" {
				f, err := os.Create(opts.out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return renderWeeks(w, opts, weeks)
		},
	}

	cmd.Flags().StringVar(&opts.anchor, "anchor", dtos.Today(), "Any date inside the wanted week (YYYY-MM-DD)")
	cmd.Flags().IntVar(&opts.weeks, "weeks", 1, "Number of consecutive weeks")
	cmd.Flags().StringVar(&opts.input, "input", "", "Read duty records from a .json or .xlsx file instead of the database")
	cmd.Flags().StringVar(&opts.format, "format", formatTable, "Output format: json, table or xlsx")
	cmd.Flags().StringVar(&opts.out, "out", "", "Write output to this file instead of stdout")
	cmd.Flags().StringVar(&opts.lang, "lang", "en", "Label language (en, zh)")
	return cmd
}

func weeksFromFile(ctx context.Context, logger *logrus.Logger, opts *weekOptions) ([]*services.WeekRoster, error) {
	records, err := readRecords(opts.input)
	if err != nil {
		return nil, err
	}
	w, err := roster.ParseWeek(opts.anchor)
	if err != nil {
		return nil, err
	}

	svc := services.NewRosterService(nil, nil, logger, opts.weeks)
	out := make([]*services.WeekRoster, 0, opts.weeks)
	for i := 0; i < opts.weeks; i++ {
		wr, err := svc.Preview(ctx, w.StartDate(), records)
		if err != nil {
			return nil, err
		}
		out = append(out, wr)
		w = w.Next()
	}
	return out, nil
}

func weeksFromDatabase(ctx context.Context, logger *logrus.Logger, opts *weekOptions) ([]*services.WeekRoster, error) {
	conf := configuration.Use()
	pool, err := connectDB(ctx, conf)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	svc := services.NewRosterService(persistence.NewDutyAssignmentRepository(), nil, logger, conf.Roster.MaxWeeks)
	return svc.Weeks(composables.WithPool(ctx, pool), opts.anchor, opts.weeks)
}

func renderWeeks(w io.Writer, opts *weekOptions, weeks []*services.WeekRoster) error {
	l := newLocalizer(strings.TrimSpace(opts.lang))
	vms := mappers.WeekRostersToViewModels(l, weeks)

	switch opts.format {
	case formatJSON:
		return writeJSON(w, vms)
	case formatXLSX:
		return exports.WriteWeekWorkbook(w, l, vms...)
	default:
		return writeTables(w, l, vms)
	}
}
