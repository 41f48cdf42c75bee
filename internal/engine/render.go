package engine

import (
	"time"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NullMarker is the rendered form of a null cell, visually distinct from an
// empty string.
const NullMarker = "(null)"

// isoDatePrefixLen is the length of the "YYYY-MM-DD" prefix that marks a
// string as date-like.
const isoDatePrefixLen = 10

// dateLayouts are tried in order when rendering a date-like string.
var dateLayouts = []string{ //nolint:gochecknoglobals // Static parse table.
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Renderer formats single cell values for display. Rendering is purely
// presentational: filtering, sorting, and export always operate on the raw
// coerced forms, never on rendered text, so locale settings cannot change
// match or order semantics.
type Renderer struct {
	printer *message.Printer
}

// NewRenderer returns a Renderer formatting numbers for the given locale.
func NewRenderer(tag language.Tag) *Renderer {
	return &Renderer{printer: message.NewPrinter(tag)}
}

// DefaultRenderer returns a Renderer for the English locale.
func DefaultRenderer() *Renderer {
	return NewRenderer(language.English)
}

// FormatCell returns the display form of a cell value:
//   - null renders as the NullMarker
//   - booleans render as literal "true"/"false"
//   - numbers render with digit grouping
//   - ISO-8601 date-like strings render as a localized date or timestamp,
//     silently falling back to the plain string when unparseable
//   - everything else renders as its plain string form
func (r *Renderer) FormatCell(v Value) string {
	switch v.Kind() {
	case KindNull:
		return NullMarker
	case KindBool:
		return v.String()
	case KindNumber:
		n, _ := v.Number()
		if n == float64(int64(n)) {
			return r.printer.Sprintf("%d", int64(n))
		}
		return r.printer.Sprintf("%v", n)
	case KindString:
		s := v.String()
		if isDateLike(s) {
			if formatted, ok := r.formatDate(s); ok {
				return formatted
			}
		}
		return s
	default:
		return v.String()
	}
}

// isDateLike reports whether s starts with a YYYY-MM-DD prefix.
func isDateLike(s string) bool {
	if len(s) < isoDatePrefixLen {
		return false
	}
	for i, r := range s[:isoDatePrefixLen] {
		if i == 4 || i == 7 {
			if r != '-' {
				return false
			}
			continue
		}
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// formatDate renders a date-like string as a localized date or timestamp.
// A parse failure is not an error; the caller falls back to the raw string.
func (r *Renderer) formatDate(s string) (string, bool) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if layout == "2006-01-02" || !hasClock(t) {
			return t.Format("Jan 2, 2006"), true
		}
		return t.Format("Jan 2, 2006 15:04"), true
	}
	return "", false
}

// hasClock reports whether t carries a non-midnight time component.
func hasClock(t time.Time) bool {
	return t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0
}

// FormatRow renders every cell of a row in the given column order.
func (r *Renderer) FormatRow(row Row, columns []string) []string {
	out := make([]string, len(columns))
	for i, col := range columns {
		out[i] = r.FormatCell(row.Cell(col))
	}
	return out
}

// TruncateCell shortens a rendered cell to width runes, appending "..." when
// content is dropped. Widths below the suffix length degrade to a plain cut.
func TruncateCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	const suffix = "..."
	if width <= len(suffix) {
		return string(runes[:width])
	}
	return string(runes[:width-len(suffix)]) + suffix
}

// DisplayWidth returns the widest rendered width of a column across the
// given rows, including the header, capped at maxWidth.
func (r *Renderer) DisplayWidth(rows []Row, column string, maxWidth int) int {
	width := len([]rune(column))
	for _, row := range rows {
		if w := len([]rune(r.FormatCell(row.Cell(column)))); w > width {
			width = w
		}
	}
	if maxWidth > 0 && width > maxWidth {
		return maxWidth
	}
	return width
}
