package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDetectOutputMode_PlainWins verifies the explicit plain flag always
// wins.
func TestDetectOutputMode_PlainWins(t *testing.T) {
	assert.Equal(t, OutputModePlain, DetectOutputMode(true, false))
	assert.Equal(t, OutputModePlain, DetectOutputMode(true, true))
}

// TestDetectOutputMode_NonTerminal verifies piped output never goes
// interactive. The test binary's stdio is not a terminal.
func TestDetectOutputMode_NonTerminal(t *testing.T) {
	assert.Equal(t, OutputModePlain, DetectOutputMode(false, false))
}

// TestOutputModeString verifies the mode names.
func TestOutputModeString(t *testing.T) {
	assert.Equal(t, "plain", OutputModePlain.String())
	assert.Equal(t, "styled", OutputModeStyled.String())
	assert.Equal(t, "interactive", OutputModeInteractive.String())
	assert.Equal(t, "unknown", OutputMode(99).String())
}
