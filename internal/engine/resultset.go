package engine

import "fmt"

// Row is one record of a tabular result, keyed by column name. A column
// absent from the map is treated as null.
type Row map[string]Value

// Cell returns the value for the named column, or the null Value when the
// column is absent from the row.
func (r Row) Cell(column string) Value {
	if v, ok := r[column]; ok {
		return v
	}
	return Null()
}

// ResultSet is an immutable snapshot of a materialized query or import
// result: an ordered column list plus an ordered sequence of rows. The
// engine never writes back into it; every derivation copies before
// reordering.
type ResultSet struct {
	columns []string
	rows    []Row
}

// NewResultSet builds a snapshot from the caller-supplied column order and
// rows. Duplicate column names are rejected: the map-based row
// representation would silently collapse them, so there is no sensible merge
// policy to apply.
func NewResultSet(columns []string, rows []Row) (*ResultSet, error) {
	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("duplicate column name %q", c)
		}
		seen[c] = struct{}{}
	}

	cols := make([]string, len(columns))
	copy(cols, columns)

	return &ResultSet{columns: cols, rows: rows}, nil
}

// Columns returns the column names in ingest order.
func (rs *ResultSet) Columns() []string {
	cols := make([]string, len(rs.columns))
	copy(cols, rs.columns)
	return cols
}

// Rows returns the ingested rows in order. Callers must treat the returned
// slice and its rows as read-only.
func (rs *ResultSet) Rows() []Row {
	return rs.rows
}

// Len returns the number of rows in the snapshot.
func (rs *ResultSet) Len() int {
	return len(rs.rows)
}
