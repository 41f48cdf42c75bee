package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablescope/tablescope/internal/engine"
)

// TestRenderStyledTable verifies the styled fallback renders the page with
// headers, sort marker, null marker, and the pagination footer.
func TestRenderStyledTable(t *testing.T) {
	set, err := engine.NewResultSet([]string{"name", "age"}, []engine.Row{
		{"name": engine.String("alice"), "age": engine.Number(30)},
		{"name": engine.String("bob"), "age": engine.Null()},
	})
	require.NoError(t, err)

	view, err := engine.NewView(set, engine.Options{PageSize: 10})
	require.NoError(t, err)
	view.ToggleSort("age")

	var buf bytes.Buffer
	require.NoError(t, RenderStyledTable(&buf, view, engine.DefaultRenderer()))
	out := buf.String()

	assert.Contains(t, out, "name")
	assert.Contains(t, out, "age ^", "active sort column carries the marker")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, engine.NullMarker)
	assert.Contains(t, out, "Page 1/1 (2 rows)")
}

// TestRenderStyledTable_Filtered verifies the footer reports the term.
func TestRenderStyledTable_Filtered(t *testing.T) {
	set, err := engine.NewResultSet([]string{"name"}, []engine.Row{
		{"name": engine.String("alice")},
		{"name": engine.String("bob")},
	})
	require.NoError(t, err)

	view, err := engine.NewView(set, engine.Options{PageSize: 10})
	require.NoError(t, err)
	view.SetSearch("ali")

	var buf bytes.Buffer
	require.NoError(t, RenderStyledTable(&buf, view, engine.DefaultRenderer()))

	assert.Contains(t, buf.String(), `filtered by "ali"`)
	assert.NotContains(t, buf.String(), "bob")
}

// TestStyledColumnCap verifies the per-column width bounds.
func TestStyledColumnCap(t *testing.T) {
	assert.Equal(t, maxColumnWidth, styledColumnCap(0))
	assert.Equal(t, maxColumnWidth, styledColumnCap(1), "one column caps at the table max")
	assert.Equal(t, minColumnWidth, styledColumnCap(1000), "many columns floor at the table min")
}
