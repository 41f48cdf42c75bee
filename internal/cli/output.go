package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tablescope/tablescope/internal/engine"
)

// nowFunc is swapped in tests to pin export timestamps.
var nowFunc = time.Now //nolint:gochecknoglobals // Test seam.

// plainColumnWidthCap bounds column widths in plain table output.
const plainColumnWidthCap = 40

// renderPlainTable writes the current page as unstyled fixed-width text
// with a pagination footer.
func renderPlainTable(w io.Writer, v *engine.View, renderer *engine.Renderer) error {
	rows, meta := v.Page()
	columns := v.ResultSet().Columns()
	state := v.State()

	widths := make([]int, len(columns))
	titles := make([]string, len(columns))
	for i, col := range columns {
		title := col
		if col == state.SortColumn {
			title += " (" + state.SortDir.String() + ")"
		}
		titles[i] = title

		widths[i] = renderer.DisplayWidth(rows, col, plainColumnWidthCap)
		if len(title) > widths[i] {
			widths[i] = len(title)
		}
	}

	writeLine := func(cells []string) error {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%-*s", widths[i], engine.TruncateCell(cell, plainColumnWidthCap))
		}
		_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
		return err
	}

	if err := writeLine(titles); err != nil {
		return err
	}

	separators := make([]string, len(columns))
	for i := range separators {
		separators[i] = strings.Repeat("-", widths[i])
	}
	if err := writeLine(separators); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writeLine(renderer.FormatRow(row, columns)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\nPage %d/%d (%d rows", meta.CurrentPage, meta.TotalPages, meta.TotalRows)
	if err != nil {
		return err
	}
	if state.SearchTerm != "" {
		if _, err := fmt.Fprintf(w, ", filtered by %q", state.SearchTerm); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w, ")")
	return err
}

// jsonPage is the envelope for --output json.
type jsonPage struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
	Meta    engine.PageMeta  `json:"meta"`
}

// renderJSON writes the current page and its metadata as a JSON document,
// with cells in their natural types.
func renderJSON(w io.Writer, v *engine.View) error {
	rows, meta := v.Page()
	columns := v.ResultSet().Columns()

	out := jsonPage{
		Columns: columns,
		Rows:    make([]map[string]any, len(rows)),
		Meta:    meta,
	}
	for i, row := range rows {
		obj := make(map[string]any, len(columns))
		for _, col := range columns {
			obj[col] = row.Cell(col).Interface()
		}
		out.Rows[i] = obj
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
