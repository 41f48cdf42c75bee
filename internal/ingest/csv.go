package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/tablescope/tablescope/internal/engine"
	"github.com/tablescope/tablescope/internal/logging"
)

// ParseCSV reads delimited text into a ResultSet. The first record is the
// header; its order becomes the column order. Each field is sniffed into a
// typed cell: empty fields become null, "true"/"false" become booleans,
// decimal numbers become numeric, and everything else stays a string.
func ParseCSV(ctx context.Context, r io.Reader, delimiter rune) (*engine.ResultSet, error) {
	log := logging.FromContext(ctx)

	cr := csv.NewReader(r)
	if delimiter != 0 {
		cr.Comma = delimiter
	}
	// Imports in the wild have ragged rows; missing cells become nulls.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("ingest: empty CSV input")
	}
	if err != nil {
		return nil, fmt.Errorf("ingest: reading CSV header: %w", err)
	}

	var rows []engine.Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: reading CSV row %d: %w", len(rows)+1, err)
		}

		row := make(engine.Row, len(header))
		for i, col := range header {
			if i >= len(record) {
				break
			}
			row[col] = sniffField(record[i])
		}
		rows = append(rows, row)
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "parse_csv").
		Int("rows", len(rows)).
		Int("columns", len(header)).
		Msg("parsed CSV result set")

	return engine.NewResultSet(header, rows)
}

// sniffField converts one raw CSV field into a typed cell.
func sniffField(field string) engine.Value {
	switch field {
	case "":
		return engine.Null()
	case "true":
		return engine.Bool(true)
	case "false":
		return engine.Bool(false)
	}
	if n, err := strconv.ParseFloat(field, 64); err == nil {
		return engine.Number(n)
	}
	return engine.String(field)
}
