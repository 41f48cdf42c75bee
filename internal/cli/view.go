package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/tablescope/tablescope/internal/cli/pagination"
	"github.com/tablescope/tablescope/internal/config"
	"github.com/tablescope/tablescope/internal/engine"
	"github.com/tablescope/tablescope/internal/ingest"
	"github.com/tablescope/tablescope/internal/tui"
)

// Output format names accepted by --output.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputCSV   = "csv"
)

// viewFlags collects the view command's flag values.
type viewFlags struct {
	filter   string
	sort     string
	page     int
	pageSize int
	output   string
	plain    bool
}

func newViewCmd() *cobra.Command {
	flags := viewFlags{}

	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "View a result set with search, sort, and pagination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.filter, "filter", "", "search term matched against every column")
	cmd.Flags().StringVar(&flags.sort, "sort", "", "sort expression: column or column:asc|desc")
	cmd.Flags().IntVar(&flags.page, "page", pagination.DefaultPage, "1-based page number")
	cmd.Flags().IntVar(&flags.pageSize, "page-size", 0, "rows per page (default from config)")
	cmd.Flags().StringVar(&flags.output, "output", outputTable, "output format: table, json, or csv")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "force non-interactive plain output")

	return cmd
}

// buildView loads the file and constructs the engine view with the parsed
// filter, sort, and page selections applied.
func buildView(ctx context.Context, cfg config.Config, file string, flags viewFlags) (*engine.View, error) {
	column, dir, err := pagination.ParseSort(flags.sort)
	if err != nil {
		return nil, err
	}
	params := pagination.Params{
		Page:       flags.page,
		PageSize:   flags.pageSize,
		SortColumn: column,
		SortDir:    dir,
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	set, err := ingest.LoadFile(ctx, file, 0)
	if err != nil {
		return nil, err
	}

	opts := cfg.EngineOptions()
	if params.PageSize > 0 {
		opts.PageSize = params.PageSize
	}

	view, err := engine.NewView(set, opts)
	if err != nil {
		return nil, err
	}
	view.SetSearch(flags.filter)
	params.Apply(view)

	return view, nil
}

// rendererFromConfig builds a cell renderer for the configured locale.
func rendererFromConfig(cfg config.Config) *engine.Renderer {
	tag, err := language.Parse(cfg.View.Locale)
	if err != nil {
		return engine.DefaultRenderer()
	}
	return engine.NewRenderer(tag)
}

func runView(cmd *cobra.Command, file string, flags viewFlags) error {
	ctx := cmd.Context()
	cfg := configFromContext(ctx)

	view, err := buildView(ctx, cfg, file, flags)
	if err != nil {
		return err
	}
	renderer := rendererFromConfig(cfg)

	switch flags.output {
	case outputJSON:
		return renderJSON(cmd.OutOrStdout(), view)
	case outputCSV:
		return view.Export(cmd.OutOrStdout())
	case outputTable:
		// Handled below.
	default:
		return fmt.Errorf("unsupported output format: %s", flags.output)
	}

	switch tui.DetectOutputMode(flags.plain, false) {
	case tui.OutputModeInteractive:
		return runInteractiveView(ctx, view, renderer, file)
	case tui.OutputModeStyled:
		return tui.RenderStyledTable(cmd.OutOrStdout(), view, renderer)
	default:
		return renderPlainTable(cmd.OutOrStdout(), view, renderer)
	}
}

// runInteractiveView starts the Bubble Tea viewer. Export writes a
// timestamped artifact into the working directory; reload re-reads the
// source file.
func runInteractiveView(ctx context.Context, view *engine.View, renderer *engine.Renderer, file string) error {
	exportFn := func(v *engine.View) (string, error) {
		return writeArtifact(v, "")
	}
	reloadFn := func(ctx context.Context) (*engine.ResultSet, error) {
		return ingest.LoadFile(ctx, file, 0)
	}

	model := tui.NewResultViewModel(ctx, view, renderer, exportFn, reloadFn)
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running interactive viewer: %w", err)
	}
	if m, ok := final.(*tui.ResultViewModel); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

// writeArtifact exports a view to the named file, deriving a timestamped
// default when name is empty. The write is all-or-nothing: on error the
// partial file is removed.
func writeArtifact(v *engine.View, name string) (string, error) {
	if name == "" {
		name = engine.DefaultExportName(nowFunc())
	}

	f, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", name, err)
	}

	if err := v.Export(f); err != nil {
		f.Close()
		os.Remove(name)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("closing %s: %w", name, err)
	}
	return name, nil
}
