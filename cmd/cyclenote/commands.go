package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/cyclenote/internal/cli"
	"github.com/terraincognita07/cyclenote/internal/config"
	"github.com/terraincognita07/cyclenote/internal/logger"
	"github.com/terraincognita07/cyclenote/internal/security"
)

const generatedSecretLength = 48

func newResetPasswordCommand() *cobra.Command {
	var email string
	var prompt bool
	var dbPath string

	command := &cobra.Command{
		Use:   "reset-password",
		Short: "Reset a user's password",
		Long: `Reset a user's password directly in the database.

Without --prompt a temporary password is generated and printed.

Examples:
  cyclenote reset-password --email me@example.com
  cyclenote reset-password --email me@example.com --prompt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cli.RunResetPasswordCommand(resolveDBPath(dbPath), cli.ResetPasswordOptions{
				Email:    email,
				Prompt:   prompt,
				Terminal: os.Stdin,
				Out:      cmd.OutOrStdout(),
			})
		},
	}
	command.Flags().StringVar(&email, "email", "", "account email")
	command.Flags().BoolVar(&prompt, "prompt", false, "read the new password from the terminal")
	command.Flags().StringVar(&dbPath, "db", "", "database path (defaults to DB_PATH)")
	_ = command.MarkFlagRequired("email")
	return command
}

func newStatsCommand() *cobra.Command {
	var email string
	var dbPath string

	command := &cobra.Command{
		Use:   "stats",
		Short: "Print cycle statistics and symptom patterns for a user as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cli.RunStatsCommand(resolveDBPath(dbPath), email, localNow(time.Now()), cmd.OutOrStdout())
		},
	}
	command.Flags().StringVar(&email, "email", "", "account email")
	command.Flags().StringVar(&dbPath, "db", "", "database path (defaults to DB_PATH)")
	_ = command.MarkFlagRequired("email")
	return command
}

func newGenSecretCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gen-secret",
		Short: "Print a random value for SECRET_KEY",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := security.Secret(generatedSecretLength)
			if err != nil {
				return fmt.Errorf("generate secret: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), secret)
			return err
		},
	}
}

// localNow moves now into the configured TZ so "today" matches what the server reports.
func localNow(now time.Time) time.Time {
	location, err := config.TimeZoneLocation()
	if err != nil {
		logger.Log.WithError(err).Warn("falling back to UTC")
	}
	return now.In(location)
}

func resolveDBPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return config.DatabasePath()
}
