package tui

// ViewState identifies the active screen of the viewer.
type ViewState int

const (
	// ViewStateList shows the paginated result table.
	ViewStateList ViewState = iota
	// ViewStateDetail shows a single row, one line per column.
	ViewStateDetail
	// ViewStateQuitting ends the program.
	ViewStateQuitting
	// ViewStateError shows a fatal viewer error.
	ViewStateError
)

// Key strings handled by the viewer models.
const (
	keyQuit      = "q"
	keyCtrlC     = "ctrl+c"
	keyEnter     = "enter"
	keyEsc       = "esc"
	keySlash     = "/"
	keySort      = "s"
	keyExport    = "e"
	keyReload    = "r"
	keyNextCol   = "]"
	keyPrevCol   = "["
	keyPgDown    = "pgdown"
	keyPgUp      = "pgup"
	keyNextPageN = "n"
	keyPrevPageN = "p"
)

// Shared layout defaults.
const (
	defaultWidth  = 120
	defaultHeight = 30
	minHeight     = 5

	filterInputCharLimit = 128
	filterInputWidth     = 40
)
