package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are presented.
type OutputMode int

const (
	// OutputModePlain is unstyled text for pipes and files.
	OutputModePlain OutputMode = iota
	// OutputModeStyled is colored, non-interactive output.
	OutputModeStyled
	// OutputModeInteractive is the full-screen Bubble Tea viewer.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// DetectOutputMode picks the presentation mode. plain forces unstyled
// output, as does a non-terminal stdout or noColor. A terminal on stdout
// with piped stdin gets styled text, since the session cannot take
// keyboard input; a terminal on both ends gets the interactive viewer.
func DetectOutputMode(plain, noColor bool) OutputMode {
	if plain {
		return OutputModePlain
	}
	if !isTerminal(os.Stdout) {
		return OutputModePlain
	}
	if noColor {
		return OutputModePlain
	}
	if !isTerminal(os.Stdin) {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
