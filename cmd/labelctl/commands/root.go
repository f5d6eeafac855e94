// Package commands implements the labelctl subcommands.
package commands

import (
	"os"

	"github.com/spf13/cobra"
)

var databaseURL string

// Execute runs the root command with the process arguments.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "labelctl",
		Short:         "Parcel label classifier and unit catalog tooling",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"),
		"Postgres connection string (default $DATABASE_URL)")

	root.AddCommand(classifyCmd(), unitsCmd(), migrateCmd())
	return root
}
