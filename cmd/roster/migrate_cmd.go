package main

import (
	"fmt"
	"io"
	"path"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	rostermodule "github.com/jacksonlee411/safety-console/modules/roster"
	"github.com/jacksonlee411/safety-console/pkg/application"
	"github.com/jacksonlee411/safety-console/pkg/configuration"
)

func newMigrateCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply, roll back or inspect the roster schema",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := configuration.Use()
			pool, err := connectDB(cmd.Context(), conf)
			if err != nil {
				return err
			}
			defer pool.Close()

			app := application.New(&application.ApplicationOptions{Pool: pool, Logger: root.logger()})
			app.Migrations().RegisterSchema(&rostermodule.MigrationFiles)

			switch args[0] {
			case "up":
				return app.Migrations().Run(cmd.Context())
			case "down":
				return app.Migrations().Rollback(cmd.Context())
			default:
				statuses, err := app.Migrations().Status(cmd.Context())
				if err != nil {
					return err
				}
				return writeMigrationStatus(cmd.OutOrStdout(), statuses)
			}
		},
	}
	return cmd
}

func writeMigrationStatus(w io.Writer, statuses []application.MigrationStatus) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Version", "File", "Applied", "Applied at")
	for _, s := range statuses {
		applied, at := "no", ""
		if s.Applied {
			applied = "yes"
			at = s.AppliedAt.UTC().Format(time.RFC3339)
		}
		t.Row(fmt.Sprintf("%05d", s.Version), path.Base(s.Source), applied, at)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
