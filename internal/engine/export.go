package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// ExportTimeFormat is the timestamp layout used in default export names.
const ExportTimeFormat = "20060102-150405"

// DefaultExportName returns the timestamped default artifact name used when
// the caller does not supply one.
func DefaultExportName(now time.Time) string {
	return fmt.Sprintf("tablescope-export-%s.csv", now.Format(ExportTimeFormat))
}

// Export serializes the view's filtered and sorted rows (never the paginated
// slice) as delimited text: one header line with the ingest column order,
// then one line per row. Fields containing the delimiter, a quote, or a line
// break are wrapped in double quotes with embedded quotes doubled, so
// parsing the output recovers the coerced string form of every cell.
//
// Export is all-or-nothing against the in-memory rows: a sink failure is
// surfaced as a single error and the caller may simply re-invoke, since the
// derivation from the unchanged snapshot is idempotent. Pagination state is
// untouched.
func (v *View) Export(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = v.opts.Delimiter

	if err := cw.Write(v.set.Columns()); err != nil {
		return fmt.Errorf("export: writing header: %w", err)
	}

	columns := v.set.Columns()
	for _, row := range v.Sorted() {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = row.Cell(col).String()
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export: writing row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}
	return nil
}
