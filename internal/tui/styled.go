package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/tablescope/tablescope/internal/engine"
)

// RenderStyledTable writes the current page as a lipgloss-styled table for
// terminals that cannot host the interactive viewer (piped stdin). Layout
// matches the plain renderer; only the styling differs.
func RenderStyledTable(w io.Writer, v *engine.View, renderer *engine.Renderer) error {
	rows, meta := v.Page()
	columns := v.ResultSet().Columns()
	state := v.State()

	widthCap := styledColumnCap(len(columns))
	widths := make([]int, len(columns))
	titles := make([]string, len(columns))
	for i, col := range columns {
		title := col
		if col == state.SortColumn {
			title += sortMarker(state.SortDir)
		}
		titles[i] = title

		widths[i] = renderer.DisplayWidth(rows, col, widthCap)
		if w := len([]rune(title)); w > widths[i] {
			widths[i] = w
		}
	}

	headers := make([]string, len(columns))
	for i, col := range columns {
		cell := fmt.Sprintf("%-*s", widths[i], titles[i])
		if col == state.SortColumn {
			headers[i] = SortMarkerStyle.Render(cell)
		} else {
			headers[i] = TableHeaderStyle.Render(cell)
		}
	}
	if _, err := fmt.Fprintln(w, strings.Join(headers, "  ")); err != nil {
		return err
	}

	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			value := engine.TruncateCell(renderer.FormatCell(row.Cell(col)), widthCap)
			cells[i] = styledCell(fmt.Sprintf("%-*s", widths[i], value))
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, "  ")); err != nil {
			return err
		}
	}

	footer := fmt.Sprintf("\nPage %d/%d (%d rows", meta.CurrentPage, meta.TotalPages, meta.TotalRows)
	if state.SearchTerm != "" {
		footer += fmt.Sprintf(", filtered by %q", state.SearchTerm)
	}
	footer += ")"
	_, err := fmt.Fprintln(w, SubtleStyle.Render(footer))
	return err
}

// styledColumnCap divides the terminal width among columns, bounded by the
// interactive table's column limits.
func styledColumnCap(columns int) int {
	if columns == 0 {
		return maxColumnWidth
	}
	width := (TerminalWidth() - 2*columns) / columns
	if width < minColumnWidth {
		return minColumnWidth
	}
	if width > maxColumnWidth {
		return maxColumnWidth
	}
	return width
}

// styledCell styles one padded cell by its rendered content.
func styledCell(cell string) string {
	switch strings.TrimRight(cell, " ") {
	case engine.NullMarker:
		return NullStyle.Render(cell)
	case "true", "false":
		return BoolStyle.Render(cell)
	default:
		return ValueStyle.Render(cell)
	}
}
