package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/tablescope/tablescope/internal/engine"
)

// Column layout bounds for the result table.
const (
	maxColumnWidth = 30
	minColumnWidth = 4
	tableChrome    = 6
)

// sortMarker returns the header suffix for the active sort column.
func sortMarker(dir engine.Direction) string {
	if dir == engine.Descending {
		return " v"
	}
	return " ^"
}

// rebuildTable reconstructs the bubbles table from the current page.
func (m *ResultViewModel) rebuildTable() {
	pageRows, _ := m.view.Page()
	columns := m.view.ResultSet().Columns()
	state := m.view.State()

	cols := make([]table.Column, len(columns))
	for i, col := range columns {
		title := col
		if col == state.SortColumn {
			title += sortMarker(state.SortDir)
		}
		if i == m.colCursor {
			title = "[" + title + "]"
		}

		width := m.renderer.DisplayWidth(pageRows, col, maxColumnWidth)
		if w := len([]rune(title)); w > width {
			width = w
		}
		if width < minColumnWidth {
			width = minColumnWidth
		}
		cols[i] = table.Column{Title: title, Width: width}
	}

	rows := make([]table.Row, len(pageRows))
	for i, row := range pageRows {
		cells := make(table.Row, len(columns))
		for j, col := range columns {
			cells[j] = engine.TruncateCell(m.renderer.FormatCell(row.Cell(col)), maxColumnWidth)
		}
		rows[i] = cells
	}

	height := m.height - tableChrome
	if height < minHeight {
		height = minHeight
	}
	if height > len(rows)+1 {
		height = len(rows) + 1
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	m.table = t
}

// View implements tea.Model.
func (m *ResultViewModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateError:
		return ErrorStyle.Render(fmt.Sprintf("Error: %v\n", m.err))
	case ViewStateDetail:
		return m.renderDetailView()
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

// renderListView draws the paginated table screen.
func (m *ResultViewModel) renderListView() string {
	_, meta := m.view.Page()

	title := HeaderStyle.Render("RESULTS")
	counts := SubtleStyle.Render(fmt.Sprintf("  %d rows", meta.TotalRows))
	if term := m.view.State().SearchTerm; term != "" {
		counts += SubtleStyle.Render(fmt.Sprintf("  (filtered by %q)", term))
	}

	footer := SubtleStyle.Render(fmt.Sprintf("Page %d/%d", meta.CurrentPage, meta.TotalPages))
	switch {
	case m.loading != nil:
		footer += "  " + m.loading.View()
	case m.status != "":
		footer += "  " + m.status
	}

	help := SubtleStyle.Render(
		"[/] Search  [[/]] Column  [s] Sort  [n/p] Page  [Enter] Detail  [e] Export  [r] Reload  [q] Quit",
	)

	sections := []string{title + counts, m.table.View(), footer}
	if m.showFilter {
		sections = append(sections, "Search: "+m.textInput.View())
	}
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderDetailView draws the one-row, one-line-per-column screen.
func (m *ResultViewModel) renderDetailView() string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("ROW DETAIL"))
	sb.WriteString("\n\n")
	if m.detail != nil {
		sb.WriteString(m.detail.View())
	}
	sb.WriteString("\n\n")
	sb.WriteString(SubtleStyle.Render("[j/k] Scroll  [Esc] Back  [q] Quit"))
	return sb.String()
}

// detailColumnWidth aligns detail labels.
const detailColumnWidth = 24

// renderDetailLine formats one column/value pair for the detail list.
func renderDetailLine(line detailLine, selected bool) string {
	label := engine.TruncateCell(line.column, detailColumnWidth)

	rendered := LabelStyle.Render(fmt.Sprintf("%-*s", detailColumnWidth, label)) +
		" " + renderDetailValue(line.value)
	if selected {
		return TableSelectedStyle.Render(fmt.Sprintf("%-*s %s", detailColumnWidth, label, line.value))
	}
	return rendered
}

// renderDetailValue styles null markers and booleans distinctly.
func renderDetailValue(value string) string {
	switch value {
	case engine.NullMarker:
		return NullStyle.Render(value)
	case "true", "false":
		return BoolStyle.Render(value)
	default:
		return ValueStyle.Render(value)
	}
}
