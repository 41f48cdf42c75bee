package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/tablescope/tablescope/internal/cli/pagination"
	"github.com/tablescope/tablescope/internal/engine"
	"github.com/tablescope/tablescope/internal/ingest"
	"github.com/tablescope/tablescope/internal/logging"
)

// exportFlags collects the export command's flag values.
type exportFlags struct {
	filter    string
	sort      string
	out       string
	delimiter string
}

func newExportCmd() *cobra.Command {
	flags := exportFlags{}

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export the filtered, sorted rows as a CSV artifact",
		Long: "Export serializes the filtered and sorted rows of a result set as " +
			"delimited text with a header line, independent of any pagination.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.filter, "filter", "", "search term matched against every column")
	cmd.Flags().StringVar(&flags.sort, "sort", "", "sort expression: column or column:asc|desc")
	cmd.Flags().StringVar(&flags.out, "out", "", "output file (default tablescope-export-<timestamp>.csv)")
	cmd.Flags().StringVar(&flags.delimiter, "delimiter", "", "field separator (default from config)")

	return cmd
}

func runExport(cmd *cobra.Command, file string, flags exportFlags) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	cfg := configFromContext(ctx)

	column, dir, err := pagination.ParseSort(flags.sort)
	if err != nil {
		return err
	}

	opts := cfg.EngineOptions()
	if flags.delimiter != "" {
		if utf8.RuneCountInString(flags.delimiter) != 1 {
			return fmt.Errorf("delimiter must be a single character, got %q", flags.delimiter)
		}
		opts.Delimiter, _ = utf8.DecodeRuneInString(flags.delimiter)
	}

	set, err := ingest.LoadFile(ctx, file, 0)
	if err != nil {
		return err
	}

	view, err := engine.NewView(set, opts)
	if err != nil {
		return err
	}
	view.SetSearch(flags.filter)
	pagination.Params{Page: 1, SortColumn: column, SortDir: dir}.Apply(view)

	name, err := writeArtifact(view, flags.out)
	if err != nil {
		return err
	}

	rowCount := len(view.Sorted())
	log.Info().Ctx(ctx).
		Str("component", "cli").
		Str("operation", "export").
		Str("artifact", name).
		Int("rows", rowCount).
		Msg("exported result set")

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to %s\n", rowCount, name)
	return nil
}
