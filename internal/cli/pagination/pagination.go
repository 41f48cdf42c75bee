// Package pagination holds the shared CLI flag parsing and validation for
// paginated, sorted result output, keeping the view and export commands
// consistent.
package pagination

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tablescope/tablescope/internal/engine"
)

// Flag bounds and defaults.
const (
	DefaultPage = 1
	MinPage     = 1
	MinPageSize = 1
	MaxPageSize = 1000
)

// Common validation errors.
var (
	ErrInvalidPage      = errors.New("page must be >= 1")
	ErrInvalidPageSize  = errors.New("page-size must be between 1 and 1000")
	ErrInvalidSortOrder = errors.New("sort order must be 'asc' or 'desc'")
	ErrEmptySortColumn  = errors.New("sort column cannot be empty")
	ErrInvalidSortExpr  = errors.New("invalid sort format: use 'column' or 'column:order' (e.g., 'age:desc')")
)

// Params holds the pagination and sort selections parsed from CLI flags.
type Params struct {
	// Page is the 1-based page number.
	Page int

	// PageSize is the number of rows per page; 0 means use the configured
	// default.
	PageSize int

	// SortColumn is the active sort column; empty means unsorted.
	SortColumn string

	// SortDir is the sort direction for SortColumn.
	SortDir engine.Direction
}

// Validate checks flag values for range errors.
func (p Params) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize != 0 && (p.PageSize < MinPageSize || p.PageSize > MaxPageSize) {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	return nil
}

// sortPartsMax is the maximum number of parts in a sort expression.
const sortPartsMax = 2

// ParseSort parses a sort expression in "column" or "column:order" form.
// The order defaults to ascending when omitted.
func ParseSort(expr string) (string, engine.Direction, error) {
	if strings.TrimSpace(expr) == "" {
		return "", engine.Ascending, nil
	}

	parts := strings.SplitN(expr, ":", sortPartsMax+1)
	if len(parts) > sortPartsMax {
		return "", engine.Ascending, fmt.Errorf("%w: %q", ErrInvalidSortExpr, expr)
	}

	column := strings.TrimSpace(parts[0])
	if column == "" {
		return "", engine.Ascending, ErrEmptySortColumn
	}

	if len(parts) == 1 {
		return column, engine.Ascending, nil
	}

	switch strings.ToLower(strings.TrimSpace(parts[1])) {
	case "asc":
		return column, engine.Ascending, nil
	case "desc":
		return column, engine.Descending, nil
	default:
		return "", engine.Ascending, fmt.Errorf("%w: got %q", ErrInvalidSortOrder, parts[1])
	}
}

// Apply carries the parsed selections onto a view: sort first, then page,
// so the page clamp sees the final row order.
func (p Params) Apply(v *engine.View) {
	if p.SortColumn != "" {
		v.ToggleSort(p.SortColumn)
		if p.SortDir == engine.Descending {
			v.ToggleSort(p.SortColumn)
		}
	}
	v.SetPage(p.Page)
}
