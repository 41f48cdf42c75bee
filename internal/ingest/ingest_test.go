package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablescope/tablescope/internal/engine"
)

// TestParseJSON_ColumnOrder verifies columns follow first-seen key order
// across rows, not map iteration order.
func TestParseJSON_ColumnOrder(t *testing.T) {
	input := `[
		{"zeta": 1, "alpha": 2},
		{"alpha": 3, "mid": 4}
	]`

	set, err := ParseJSON(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, set.Columns())
	assert.Equal(t, 2, set.Len())
}

// TestParseJSON_Types verifies scalar sniffing and nested opacity.
func TestParseJSON_Types(t *testing.T) {
	input := `[{"s": "x", "n": 2.5, "i": 10, "b": true, "z": null, "o": {"a": 1}, "l": [1, 2]}]`

	set, err := ParseJSON(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())

	row := set.Rows()[0]
	assert.Equal(t, engine.KindString, row.Cell("s").Kind())
	assert.Equal(t, engine.KindNumber, row.Cell("n").Kind())
	assert.Equal(t, "10", row.Cell("i").String())
	assert.Equal(t, engine.KindBool, row.Cell("b").Kind())
	assert.True(t, row.Cell("z").IsNull())
	assert.Equal(t, `{"a":1}`, row.Cell("o").String(), "nested object stays opaque JSON")
	assert.Equal(t, "[1,2]", row.Cell("l").String())
}

// TestParseJSON_Errors verifies malformed documents are rejected.
func TestParseJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not an array", `{"a": 1}`},
		{"array of scalars", `[1, 2]`},
		{"truncated", `[{"a": 1}`},
		{"empty input", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON(context.Background(), strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

// TestParseJSON_EmptyArray verifies an empty result set is valid.
func TestParseJSON_EmptyArray(t *testing.T) {
	set, err := ParseJSON(context.Background(), strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Zero(t, set.Len())
	assert.Empty(t, set.Columns())
}

// TestParseCSV_Sniffing verifies header order and field typing.
func TestParseCSV_Sniffing(t *testing.T) {
	input := "name,age,active,note\nAlice,30,true,\nBob,25.5,false,hello\n"

	set, err := ParseCSV(context.Background(), strings.NewReader(input), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "age", "active", "note"}, set.Columns())
	require.Equal(t, 2, set.Len())

	alice := set.Rows()[0]
	assert.Equal(t, engine.KindString, alice.Cell("name").Kind())
	assert.Equal(t, engine.KindNumber, alice.Cell("age").Kind())
	assert.Equal(t, engine.KindBool, alice.Cell("active").Kind())
	assert.True(t, alice.Cell("note").IsNull(), "empty field is null")

	bob := set.Rows()[1]
	assert.Equal(t, "25.5", bob.Cell("age").String())
}

// TestParseCSV_RaggedRows verifies short rows leave trailing columns null.
func TestParseCSV_RaggedRows(t *testing.T) {
	input := "a,b,c\n1,2\n"

	set, err := ParseCSV(context.Background(), strings.NewReader(input), 0)
	require.NoError(t, err)
	row := set.Rows()[0]
	assert.Equal(t, "1", row.Cell("a").String())
	assert.True(t, row.Cell("c").IsNull())
}

// TestParseCSV_DuplicateHeader verifies duplicate column names are rejected
// at ingest.
func TestParseCSV_DuplicateHeader(t *testing.T) {
	_, err := ParseCSV(context.Background(), strings.NewReader("a,a\n1,2\n"), 0)
	assert.Error(t, err)
}

// TestParseCSV_Empty verifies empty input is an error.
func TestParseCSV_Empty(t *testing.T) {
	_, err := ParseCSV(context.Background(), strings.NewReader(""), 0)
	assert.Error(t, err)
}

// TestLoadFile verifies extension dispatch.
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	jsonPath := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"a": 1}]`), 0600))
	set, err := LoadFile(ctx, jsonPath, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())

	tsvPath := filepath.Join(dir, "data.tsv")
	require.NoError(t, os.WriteFile(tsvPath, []byte("a\tb\n1\t2\n"), 0600))
	set, err = LoadFile(ctx, tsvPath, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, set.Columns())

	_, err = LoadFile(ctx, filepath.Join(dir, "data.xml"), 0)
	assert.Error(t, err)

	_, err = LoadFile(ctx, filepath.Join(dir, "missing.json"), 0)
	assert.Error(t, err)
}
