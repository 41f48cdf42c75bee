// Package ingest materializes result sets for the viewer engine from the
// external collaborators that produce them: JSON documents (ad-hoc query
// output) and CSV files (imports). It is the only place that sniffs raw
// text or loosely-typed values into engine cell values.
package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/tablescope/tablescope/internal/engine"
	"github.com/tablescope/tablescope/internal/logging"
)

// ParseJSON reads a JSON array of objects into a ResultSet. Column order is
// the first-seen key order across all rows, which a plain map decode would
// lose, so objects are walked token by token.
//
// Scalar values map onto the engine's cell kinds; nested objects and arrays
// are kept as opaque JSON text for display and export.
func ParseJSON(ctx context.Context, r io.Reader) (*engine.ResultSet, error) {
	log := logging.FromContext(ctx)

	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("ingest: reading JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("ingest: expected a JSON array of objects, got %v", tok)
	}

	var columns []string
	seen := make(map[string]struct{})
	var rows []engine.Row

	for dec.More() {
		row, keys, err := decodeObject(dec)
		if err != nil {
			return nil, fmt.Errorf("ingest: row %d: %w", len(rows), err)
		}
		for _, k := range keys {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				columns = append(columns, k)
			}
		}
		rows = append(rows, row)
	}

	// Consume the closing bracket.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("ingest: reading JSON: %w", err)
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "parse_json").
		Int("rows", len(rows)).
		Int("columns", len(columns)).
		Msg("parsed JSON result set")

	return engine.NewResultSet(columns, rows)
}

// decodeObject decodes a single JSON object into a row, returning the keys
// in document order.
func decodeObject(dec *json.Decoder) (engine.Row, []string, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("expected an object, got %v", tok)
	}

	row := engine.Row{}
	var keys []string

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("expected an object key, got %v", keyTok)
		}

		var raw any
		if err := dec.Decode(&raw); err != nil {
			return nil, nil, fmt.Errorf("column %q: %w", key, err)
		}

		row[key] = cellValue(raw)
		keys = append(keys, key)
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}

	return row, keys, nil
}

// cellValue converts a decoded JSON value into a cell. Nested structures
// are re-encoded as compact JSON text rather than failing.
func cellValue(raw any) engine.Value {
	switch raw.(type) {
	case map[string]any, []any:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(raw); err == nil {
			return engine.String(string(bytes.TrimRight(buf.Bytes(), "\n")))
		}
		return engine.String(fmt.Sprintf("%v", raw))
	default:
		return engine.From(raw)
	}
}
