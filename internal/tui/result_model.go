package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tablescope/tablescope/internal/engine"
	"github.com/tablescope/tablescope/internal/logging"
	listview "github.com/tablescope/tablescope/internal/tui/list"
)

// ExportFunc writes the view's current filtered/sorted rows to an artifact
// and returns its name. Supplied by the CLI so the model stays free of file
// system concerns.
type ExportFunc func(v *engine.View) (string, error)

// ReloadFunc re-runs the source query and returns a fresh snapshot. The
// viewer treats it as opaque; it only forwards the invocation.
type ReloadFunc func(ctx context.Context) (*engine.ResultSet, error)

// reloadMsg carries the result of a reload invocation.
type reloadMsg struct {
	set *engine.ResultSet
	err error
}

// detailLine is one column/value pair in the row detail view.
type detailLine struct {
	column string
	value  string
}

// ResultViewModel is the Bubble Tea model for the interactive result viewer.
// All data operations delegate to the engine view; the model only holds
// screen state.
type ResultViewModel struct {
	ctx      context.Context
	view     *engine.View
	renderer *engine.Renderer

	state      ViewState
	table      table.Model
	textInput  textinput.Model
	detail     *listview.Model[detailLine]
	loading    *LoadingState
	showFilter bool

	// colCursor selects the column that keySort toggles, mimicking a
	// column-header click.
	colCursor int

	width  int
	height int
	status string
	err    error

	exportFn ExportFunc
	reloadFn ReloadFunc
}

// NewResultViewModel creates the viewer over an engine view. exportFn and
// reloadFn may each be nil when the capability is unavailable; the matching
// keys then report a status message instead. A nil view or renderer puts
// the model in its error state, which renders once and exits on any key.
func NewResultViewModel(
	ctx context.Context,
	view *engine.View,
	renderer *engine.Renderer,
	exportFn ExportFunc,
	reloadFn ReloadFunc,
) *ResultViewModel {
	m := &ResultViewModel{
		ctx:       ctx,
		view:      view,
		renderer:  renderer,
		state:     ViewStateList,
		textInput: newFilterInput(),
		width:     defaultWidth,
		height:    defaultHeight,
		exportFn:  exportFn,
		reloadFn:  reloadFn,
	}
	if view == nil || renderer == nil {
		m.fail(fmt.Errorf("viewer requires a result view and a renderer"))
		return m
	}
	m.rebuildTable()
	return m
}

// fail moves the model to the terminal error screen.
func (m *ResultViewModel) fail(err error) {
	m.err = err
	m.state = ViewStateError
}

// newFilterInput creates the search term input.
func newFilterInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search all columns..."
	ti.CharLimit = filterInputCharLimit
	ti.Width = filterInputWidth
	return ti
}

// Init implements tea.Model.
func (m *ResultViewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *ResultViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.rebuildTable()
		return m, nil
	}

	if rlMsg, ok := msg.(reloadMsg); ok {
		return m.handleReloaded(rlMsg)
	}

	if tickMsg, ok := msg.(spinner.TickMsg); ok {
		if m.loading == nil {
			return m, nil
		}
		return m, m.loading.Update(tickMsg)
	}

	if m.showFilter {
		return m.handleFilterInput(msg)
	}

	switch m.state {
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	case ViewStateQuitting, ViewStateError:
		return m.handleQuitUpdate(msg)
	default:
		return m, nil
	}
}

func (m *ResultViewModel) handleReloaded(msg reloadMsg) (tea.Model, tea.Cmd) {
	m.loading = nil
	if msg.err != nil {
		m.status = ErrorStyle.Render(fmt.Sprintf("Reload failed: %v", msg.err))
		return m, nil
	}
	if err := m.view.Replace(msg.set); err != nil {
		m.status = ErrorStyle.Render(fmt.Sprintf("Reload failed: %v", err))
		return m, nil
	}
	m.status = StatusStyle.Render(fmt.Sprintf("Reloaded %d rows", msg.set.Len()))
	m.rebuildTable()
	return m, nil
}

func (m *ResultViewModel) handleFilterInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter, keyEsc:
			m.showFilter = false
			m.textInput.Blur()
			m.applyFilter()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	// Live filtering: every keystroke re-derives the page.
	m.applyFilter()
	return m, cmd
}

//nolint:gocognit // Key dispatch is inherently branchy.
func (m *ResultViewModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit

	case keySlash:
		m.showFilter = true
		m.status = ""
		m.textInput.Focus()
		return m, textinput.Blink

	case keyEsc:
		if m.textInput.Value() != "" {
			m.textInput.SetValue("")
			m.applyFilter()
		}
		return m, nil

	case keyNextCol:
		m.moveColumnCursor(1)
		return m, nil

	case keyPrevCol:
		m.moveColumnCursor(-1)
		return m, nil

	case keySort:
		m.toggleSort()
		return m, nil

	case keyPgDown, keyNextPageN:
		m.view.NextPage()
		m.rebuildTable()
		return m, nil

	case keyPgUp, keyPrevPageN:
		m.view.PrevPage()
		m.rebuildTable()
		return m, nil

	case keyExport:
		m.runExport()
		return m, nil

	case keyReload:
		return m, m.runReload()

	case keyEnter:
		m.openDetail()
		return m, nil

	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(keyMsg)
		return m, cmd
	}
}

func (m *ResultViewModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEsc:
			m.state = ViewStateList
			m.table.Focus()
			return m, nil
		}
	}

	if m.detail != nil {
		updated, cmd := m.detail.Update(msg)
		if d, ok := updated.(*listview.Model[detailLine]); ok {
			m.detail = d
		}
		return m, cmd
	}
	return m, nil
}

func (m *ResultViewModel) handleQuitUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC, keyEnter, keyEsc:
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
	}
	return m, nil
}

// applyFilter pushes the input value into the engine view and re-derives.
func (m *ResultViewModel) applyFilter() {
	m.view.SetSearch(m.textInput.Value())
	m.rebuildTable()
}

// moveColumnCursor shifts the sort target column.
func (m *ResultViewModel) moveColumnCursor(delta int) {
	columns := m.view.ResultSet().Columns()
	if len(columns) == 0 {
		return
	}
	m.colCursor = (m.colCursor + delta + len(columns)) % len(columns)
	m.rebuildTable()
}

// toggleSort activates the cursor column, flipping direction when it is
// already active.
func (m *ResultViewModel) toggleSort() {
	columns := m.view.ResultSet().Columns()
	if m.colCursor >= len(columns) {
		return
	}
	m.view.ToggleSort(columns[m.colCursor])
	m.rebuildTable()
}

// runExport invokes the export callback and reports the outcome in the
// status line. Pagination state is untouched either way.
func (m *ResultViewModel) runExport() {
	if m.exportFn == nil {
		m.status = SubtleStyle.Render("No export sink configured")
		return
	}

	log := logging.FromContext(m.ctx)

	name, err := m.exportFn(m.view)
	if err != nil {
		log.Error().Ctx(m.ctx).
			Str("component", "tui").
			Str("operation", "export").
			Err(err).
			Msg("export failed")
		m.status = ErrorStyle.Render(fmt.Sprintf("Export failed: %v", err))
		return
	}

	log.Info().Ctx(m.ctx).
		Str("component", "tui").
		Str("operation", "export").
		Str("artifact", name).
		Int("rows", len(m.view.Sorted())).
		Msg("exported result set")
	m.status = StatusStyle.Render(fmt.Sprintf("Exported to %s", name))
}

// runReload kicks off the opaque source re-run, when one was supplied. The
// status line shows a spinner until the reload message lands.
func (m *ResultViewModel) runReload() tea.Cmd {
	if m.reloadFn == nil {
		m.status = SubtleStyle.Render("No source to re-run")
		return nil
	}
	m.status = ""
	m.loading = NewLoadingState("Reloading...")
	reload := func() tea.Msg {
		set, err := m.reloadFn(m.ctx)
		return reloadMsg{set: set, err: err}
	}
	return tea.Batch(m.loading.Init(), reload)
}

// openDetail switches to the detail view for the selected row.
func (m *ResultViewModel) openDetail() {
	rows, _ := m.view.Page()
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(rows) {
		return
	}

	columns := m.view.ResultSet().Columns()
	lines := make([]detailLine, len(columns))
	for i, col := range columns {
		lines[i] = detailLine{
			column: col,
			value:  m.renderer.FormatCell(rows[cursor].Cell(col)),
		}
	}

	m.detail = listview.New(lines, m.detailHeight(), m.width, renderDetailLine)
	m.state = ViewStateDetail
}

// detailHeight leaves room for the heading and help line.
func (m *ResultViewModel) detailHeight() int {
	h := m.height - 4
	if h < minHeight {
		h = minHeight
	}
	return h
}

// Err returns the fatal viewer error, if any.
func (m *ResultViewModel) Err() error {
	return m.err
}
