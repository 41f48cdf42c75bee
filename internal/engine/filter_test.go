package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func filterFixture() []Row {
	return []Row{
		{"name": String("Alice"), "age": Number(30), "active": Bool(true)},
		{"name": String("Bob"), "age": Number(25), "active": Bool(false)},
		{"name": String("carol"), "age": Number(41), "active": Bool(true)},
		{"name": Null(), "age": Null(), "active": Null()},
	}
}

// TestFilter_EmptyTerm verifies an empty term is a no-op.
func TestFilter_EmptyTerm(t *testing.T) {
	rows := filterFixture()
	assert.Equal(t, rows, Filter(rows, ""))
	assert.Empty(t, Filter(nil, ""))
}

// TestFilter_CaseInsensitive verifies matching ignores case on both sides.
func TestFilter_CaseInsensitive(t *testing.T) {
	rows := filterFixture()

	got := Filter(rows, "ALICE")
	assert.Len(t, got, 1)
	assert.Equal(t, "Alice", got[0].Cell("name").String())

	got = Filter(rows, "Carol")
	assert.Len(t, got, 1)
}

// TestFilter_CoercedValues verifies numbers and booleans match on their
// string forms.
func TestFilter_CoercedValues(t *testing.T) {
	rows := filterFixture()

	got := Filter(rows, "25")
	assert.Len(t, got, 1)
	assert.Equal(t, "Bob", got[0].Cell("name").String())

	// "true" matches the two active rows.
	got = Filter(rows, "true")
	assert.Len(t, got, 2)
}

// TestFilter_NullOnlyRow verifies a row with only null cells matches nothing
// but the empty term.
func TestFilter_NullOnlyRow(t *testing.T) {
	rows := []Row{{"a": Null(), "b": Null()}}
	assert.Empty(t, Filter(rows, "x"))
	assert.Len(t, Filter(rows, ""), 1)
}

// TestFilter_Idempotent verifies filtering an already-filtered set with the
// same term yields the same set.
func TestFilter_Idempotent(t *testing.T) {
	rows := filterFixture()
	once := Filter(rows, "a")
	twice := Filter(once, "a")
	assert.Equal(t, once, twice)
}

// TestFilter_Monotonic verifies that a longer term containing a shorter one
// yields a subset of the shorter term's matches.
func TestFilter_Monotonic(t *testing.T) {
	rows := filterFixture()
	broad := Filter(rows, "a")
	narrow := Filter(rows, "al")

	assert.LessOrEqual(t, len(narrow), len(broad))
	for _, row := range narrow {
		assert.Contains(t, broad, row)
	}
}

// TestFilter_PreservesOrder verifies the result is an order-preserving
// subsequence of the input.
func TestFilter_PreservesOrder(t *testing.T) {
	rows := filterFixture()
	got := Filter(rows, "a")

	// Every input row whose cells contain "a" appears, in input order.
	var want []Row
	for _, row := range rows {
		if rowMatches(row, "a") {
			want = append(want, row)
		}
	}
	assert.Equal(t, want, got)
}
