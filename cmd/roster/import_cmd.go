package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jacksonlee411/safety-console/modules/roster/domain/roster"
	"github.com/jacksonlee411/safety-console/modules/roster/infrastructure/persistence"
	"github.com/jacksonlee411/safety-console/pkg/composables"
	"github.com/jacksonlee411/safety-console/pkg/configuration"
)

type importOutput struct {
	Command    string `json:"command"`
	DryRun     bool   `json:"dry_run"`
	Records    int    `json:"records"`
	Employees  int    `json:"employees"`
	Saved      int    `json:"saved"`
	DurationMS int64  `json:"duration_ms"`
}

func newImportCmd(root *rootOptions) *cobra.Command {
	var (
		input  string
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load duty records from a .json or .xlsx file into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := readRecords(input)
			if err != nil {
				return err
			}
			for i, rec := range records {
				if _, err := roster.ParseDate(rec.DutyDate); err != nil {
					return fmt.Errorf("record %d: %w", i, err)
				}
			}

			out := importOutput{
				Command:   "import",
				DryRun:    dryRun,
				Records:   len(records),
				Employees: countEmployees(records),
			}
			start := time.Now()
			if !dryRun {
				conf := configuration.Use()
				pool, err := connectDB(cmd.Context(), conf)
				if err != nil {
					return err
				}
				defer pool.Close()

				saved, err := persistence.NewDutyAssignmentRepository().Save(composables.WithPool(cmd.Context(), pool), records)
				if err != nil {
					return err
				}
				out.Saved = saved
				root.logger().WithField("records", saved).Info("duty records imported")
			}
			out.DurationMS = time.Since(start).Milliseconds()
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "Path to a .json or .xlsx file (required)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the file without writing")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func countEmployees(records []roster.RawAssignment) int {
	n := 0
	for _, rec := range records {
		n += len(rec.Employees)
	}
	return n
}
