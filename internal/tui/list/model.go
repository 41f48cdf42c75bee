package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one item; selected marks the cursor line.
type RenderFunc[T any] func(item T, selected bool) string

// Model is a scrolling list over a fixed item slice. Only the lines inside
// the viewport are rendered, so wide rows with hundreds of columns stay
// cheap to draw.
type Model[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	selected int
	offset   int
	height   int
	width    int
}

// New creates a list over items with the given viewport size.
func New[T any](items []T, height, width int, renderFunc RenderFunc[T]) *Model[T] {
	if height < 1 {
		height = 1
	}
	return &Model[T]{
		items:      items,
		renderFunc: renderFunc,
		height:     height,
		width:      width,
	}
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation and resize messages.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
		m.scrollIntoView()
	}
	return m, nil
}

//nolint:exhaustive // Only navigation keys are meaningful here.
func (m *Model[T]) handleKey(msg tea.KeyMsg) {
	if len(m.items) == 0 {
		return
	}

	switch msg.Type {
	case tea.KeyUp:
		m.Move(-1)
	case tea.KeyDown:
		m.Move(1)
	case tea.KeyPgUp:
		m.Move(-m.height)
	case tea.KeyPgDown:
		m.Move(m.height)
	case tea.KeyHome:
		m.SetSelected(0)
	case tea.KeyEnd:
		m.SetSelected(len(m.items) - 1)
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return
		}
		switch msg.Runes[0] {
		case 'j':
			m.Move(1)
		case 'k':
			m.Move(-1)
		case 'g':
			m.SetSelected(0)
		case 'G':
			m.SetSelected(len(m.items) - 1)
		}
	default:
	}
}

// Move shifts the cursor by delta, clamped to the item range.
func (m *Model[T]) Move(delta int) {
	m.SetSelected(m.selected + delta)
}

// SetSelected places the cursor on index, clamped to the item range, and
// scrolls the viewport to keep it visible.
func (m *Model[T]) SetSelected(index int) {
	if len(m.items) == 0 {
		m.selected = 0
		m.offset = 0
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(m.items) {
		index = len(m.items) - 1
	}
	m.selected = index
	m.scrollIntoView()
}

// scrollIntoView adjusts the window offset so the cursor stays visible.
func (m *Model[T]) scrollIntoView() {
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+m.height {
		m.offset = m.selected - m.height + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// View renders the visible window.
func (m *Model[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	end := m.offset + m.height
	if end > len(m.items) {
		end = len(m.items)
	}

	var sb strings.Builder
	for i := m.offset; i < end; i++ {
		if i > m.offset {
			sb.WriteString("\n")
		}
		sb.WriteString(m.renderFunc(m.items[i], i == m.selected))
	}
	return sb.String()
}

// Selected returns the cursor index.
func (m *Model[T]) Selected() int {
	return m.selected
}

// SelectedItem returns the item under the cursor, or nil when empty.
func (m *Model[T]) SelectedItem() *T {
	if len(m.items) == 0 {
		return nil
	}
	return &m.items[m.selected]
}

// Len returns the item count.
func (m *Model[T]) Len() int {
	return len(m.items)
}
