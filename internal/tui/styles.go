// Package tui implements the interactive terminal viewer for tablescope
// result sets: a Bubble Tea model wiring the engine's filter, sort,
// pagination, and export stages to keyboard interaction.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Shared lipgloss styles. Kept as package globals so every view renders
// consistently.
//
//nolint:gochecknoglobals // Style palette is intentionally package-wide.
var (
	// HeaderStyle renders section headings.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	// LabelStyle renders field labels in detail views.
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	// ValueStyle renders field values in detail views.
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// SubtleStyle renders help lines and footers.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	// NullStyle renders the null cell marker dimmed, so empties stand
	// apart from real values.
	NullStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")).
			Italic(true)

	// BoolStyle gives booleans a visual distinction from strings.
	BoolStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("141"))

	// ErrorStyle renders failures.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	// StatusStyle renders transient status messages (export results).
	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	// TableHeaderStyle styles the column header row.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240")).
				BorderBottom(true)

	// TableSelectedStyle styles the selected table row.
	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				Bold(false)

	// SortMarkerStyle highlights the active sort column header.
	SortMarkerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))
)

// defaultTerminalWidth is assumed when the terminal size is unknown.
const defaultTerminalWidth = 120

// TerminalWidth returns the current terminal width, or a default when
// stdout is not a terminal.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultTerminalWidth
	}
	return w
}
