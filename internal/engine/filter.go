package engine

import "strings"

// Filter returns the subsequence of rows where at least one cell's coerced
// string form contains term as a case-insensitive substring. An empty term
// matches every row. The input slice is never modified and relative row
// order is preserved.
//
// Null cells coerce to the empty string, so a row with only null cells can
// match only the empty term. Complexity is O(rows x columns); row sets here
// are interactive-display sized, bounded upstream by query limits.
func Filter(rows []Row, term string) []Row {
	if term == "" {
		return rows
	}

	query := strings.ToLower(term)
	var filtered []Row
	for _, row := range rows {
		if rowMatches(row, query) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// rowMatches reports whether any cell of row contains the already-lowercased
// query.
func rowMatches(row Row, query string) bool {
	for _, v := range row {
		if strings.Contains(strings.ToLower(v.String()), query) {
			return true
		}
	}
	return false
}
