package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablescope/tablescope/internal/engine"
)

// TestParseSort covers the "column[:order]" grammar.
func TestParseSort(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		wantCol string
		wantDir engine.Direction
		wantErr bool
	}{
		{"empty means unsorted", "", "", engine.Ascending, false},
		{"column only defaults asc", "age", "age", engine.Ascending, false},
		{"explicit asc", "age:asc", "age", engine.Ascending, false},
		{"explicit desc", "age:desc", "age", engine.Descending, false},
		{"case-insensitive order", "age:DESC", "age", engine.Descending, false},
		{"whitespace tolerated", " age : desc ", "age", engine.Descending, false},
		{"bad order", "age:up", "", engine.Ascending, true},
		{"too many colons", "a:b:c", "", engine.Ascending, true},
		{"empty column", ":desc", "", engine.Ascending, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, dir, err := ParseSort(tt.expr)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCol, col)
			assert.Equal(t, tt.wantDir, dir)
		})
	}
}

// TestParamsValidate checks flag range enforcement.
func TestParamsValidate(t *testing.T) {
	assert.NoError(t, Params{Page: 1}.Validate())
	assert.NoError(t, Params{Page: 3, PageSize: 100}.Validate())
	assert.Error(t, Params{Page: 0}.Validate())
	assert.Error(t, Params{Page: 1, PageSize: -5}.Validate())
	assert.Error(t, Params{Page: 1, PageSize: MaxPageSize + 1}.Validate())
}

// TestParamsApply verifies sort and page land on the view in order.
func TestParamsApply(t *testing.T) {
	rows := []engine.Row{
		{"n": engine.Number(2)},
		{"n": engine.Number(10)},
		{"n": engine.Number(1)},
	}
	set, err := engine.NewResultSet([]string{"n"}, rows)
	require.NoError(t, err)
	v, err := engine.NewView(set, engine.Options{PageSize: 2})
	require.NoError(t, err)

	Params{Page: 2, SortColumn: "n", SortDir: engine.Descending}.Apply(v)

	assert.Equal(t, "n", v.State().SortColumn)
	assert.Equal(t, engine.Descending, v.State().SortDir)

	page, meta := v.Page()
	assert.Equal(t, 2, meta.CurrentPage)
	require.Len(t, page, 1)
	assert.Equal(t, "1", page[0].Cell("n").String())
}
