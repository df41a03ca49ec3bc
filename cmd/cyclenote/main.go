package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/cyclenote/internal/logger"
)

var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logger.Log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "cyclenote",
		Short: "Self-hosted cycle and symptom tracker",
		Long: `cyclenote stores daily symptom logs and derives cycle statistics,
period predictions and symptom patterns from them.

Running without a subcommand starts the HTTP server.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	root.AddCommand(newServeCommand())
	root.AddCommand(newResetPasswordCommand())
	root.AddCommand(newStatsCommand())
	root.AddCommand(newGenSecretCommand())
	return root
}
