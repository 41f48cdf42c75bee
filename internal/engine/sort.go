package engine

import "sort"

// Direction is the sort direction for the active column.
type Direction int

const (
	// Ascending sorts smallest-first, nulls first.
	Ascending Direction = iota
	// Descending sorts largest-first, nulls last.
	Descending
)

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Toggle flips the direction.
func (d Direction) Toggle() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// Sort returns a new slice of rows ordered by the named column. The input
// slice is untouched and the sort is stable: rows whose cells compare equal
// keep their original relative order in both directions.
//
// An empty column name is the identity: the original slice is returned
// unchanged. Nulls anchor at the ascending extreme, so descending output is
// the non-null values largest-first followed by the nulls, not a plain
// reversal of the ascending output.
func Sort(rows []Row, column string, dir Direction) []Row {
	if column == "" {
		return rows
	}

	sorted := make([]Row, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		// Swapping the operands for descending keeps equal rows in their
		// original order, unlike negating the predicate.
		if dir == Descending {
			i, j = j, i
		}
		return lessValue(sorted[i].Cell(column), sorted[j].Cell(column))
	})

	return sorted
}
