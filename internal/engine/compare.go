package engine

import "strings"

// CompareValues orders two cell values for ascending sort.
// Returns a negative number when a sorts before b, zero when they are equal,
// and a positive number when a sorts after b.
//
// Ordering rules:
//   - Two nulls compare equal.
//   - A null sorts before any defined value.
//   - Two numbers compare numerically (avoids "10" < "2" lexicographic bugs).
//   - Anything else compares by lowercase string form; ties return 0 so a
//     stable sort preserves the original relative order.
func CompareValues(a, b Value) int {
	switch {
	case a.IsNull() && b.IsNull():
		return 0
	case a.IsNull():
		return -1
	case b.IsNull():
		return 1
	}

	an, aok := a.Number()
	bn, bok := b.Number()
	if aok && bok {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}

	// Mixed-type columns fall back to string comparison whenever either
	// operand is non-numeric.
	return strings.Compare(
		strings.ToLower(a.String()),
		strings.ToLower(b.String()),
	)
}

// lessValue is the ascending less-than predicate over CompareValues.
func lessValue(a, b Value) bool {
	return CompareValues(a, b) < 0
}
