package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tablescope/tablescope/internal/engine"
)

// LoadFile reads a result set from path, dispatching on the file extension:
// .json for JSON arrays of objects, .csv/.tsv for delimited text. TSV files
// force a tab delimiter; CSV files use the given delimiter (0 means comma).
func LoadFile(ctx context.Context, path string, delimiter rune) (*engine.ResultSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: opening %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(ctx, f)
	case ".csv":
		return ParseCSV(ctx, f, delimiter)
	case ".tsv":
		return ParseCSV(ctx, f, '\t')
	default:
		return nil, fmt.Errorf("ingest: unsupported file type %q (want .json, .csv, or .tsv)", filepath.Ext(path))
	}
}
