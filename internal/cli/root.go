// Package cli wires the tablescope commands: loading a result set from a
// file, viewing it interactively or as text, and exporting the
// filtered/sorted rows as CSV.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Set once by setupLogging.

// NewRootCmd creates the root Cobra command for the tablescope CLI.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logResultHolder

	cmd := &cobra.Command{
		Use:     "tablescope",
		Short:   "Interactive viewer for tabular result sets",
		Long:    "tablescope: search, sort, paginate, and export tabular result sets from JSON or CSV files",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			result, err := setupLogging(cmd)
			if err != nil {
				return err
			}
			logResult = result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging to the console")
	cmd.PersistentFlags().String("config", "", "config file path (default $HOME/.tablescope/config.yaml)")

	cmd.AddCommand(newViewCmd(), newExportCmd())

	return cmd
}

const rootCmdExample = `  # Browse a JSON result set interactively
  tablescope view results.json

  # Print page 2 of a CSV, sorted by the amount column descending
  tablescope view data.csv --sort amount:desc --page 2

  # Show only rows matching a search term
  tablescope view data.csv --filter "eu-west"

  # Export the filtered, sorted rows to a CSV artifact
  tablescope export results.json --filter error --sort ts:desc --out errors.csv`
