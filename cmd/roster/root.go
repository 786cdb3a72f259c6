package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jacksonlee411/safety-console/pkg/logging"
)

type rootOptions struct {
	logLevel string
}

func (o *rootOptions) logger() *logrus.Logger {
	level, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	return logging.ConsoleLogger(level)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "roster",
		Short:         "Duty roster tools",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newWeekCmd(opts),
		newImportCmd(opts),
		newMigrateCmd(opts),
	)
	return cmd
}
