package engine

import "fmt"

// DefaultPageSize is the number of rows per page when no explicit option is
// supplied.
const DefaultPageSize = 50

// DefaultDelimiter is the export field separator when no explicit option is
// supplied.
const DefaultDelimiter = ','

// Options is the explicit engine configuration: a fixed, predictable
// chunking and escaping policy passed in at construction rather than read
// from a hidden global.
type Options struct {
	// PageSize is the number of rows per page. Must be positive.
	PageSize int

	// Delimiter is the export field separator.
	Delimiter rune
}

// DefaultOptions returns the default engine configuration.
func DefaultOptions() Options {
	return Options{
		PageSize:  DefaultPageSize,
		Delimiter: DefaultDelimiter,
	}
}

// ViewState is the ephemeral interaction state of a single viewer instance:
// the search term, the active sort column and direction, and the current
// page. It has no lifecycle beyond its View.
type ViewState struct {
	SearchTerm string
	SortColumn string
	SortDir    Direction
	Page       int
}

// View binds an immutable ResultSet snapshot to a ViewState and re-derives
// the filtered, sorted, and paginated row sets on demand. Derivations are
// pure functions of (snapshot, state); nothing is cached, so the output can
// never go stale against the latest interaction.
//
// A View is not safe for concurrent use; concurrent viewers over the same
// snapshot should each hold their own View, which requires no coordination
// since the snapshot is never mutated.
type View struct {
	set   *ResultSet
	opts  Options
	state ViewState
}

// NewView creates a View over the snapshot with the given options.
func NewView(set *ResultSet, opts Options) (*View, error) {
	if set == nil {
		return nil, fmt.Errorf("nil result set")
	}
	if opts.PageSize < 1 {
		return nil, fmt.Errorf("page size must be positive, got %d", opts.PageSize)
	}
	if opts.Delimiter == 0 {
		opts.Delimiter = DefaultDelimiter
	}

	return &View{
		set:   set,
		opts:  opts,
		state: ViewState{Page: 1},
	}, nil
}

// State returns the current interaction state.
func (v *View) State() ViewState {
	return v.state
}

// Options returns the engine configuration the view was built with.
func (v *View) Options() Options {
	return v.opts
}

// ResultSet returns the underlying snapshot.
func (v *View) ResultSet() *ResultSet {
	return v.set
}

// Replace swaps in a new snapshot, keeping search and sort selections. The
// current page is clamped against the new row count rather than reset.
func (v *View) Replace(set *ResultSet) error {
	if set == nil {
		return fmt.Errorf("nil result set")
	}
	v.set = set
	v.state.Page = ClampPage(v.state.Page, len(v.Sorted()), v.opts.PageSize)
	return nil
}

// SetSearch updates the free-text search term. The current page is not
// reset; Page clamps it lazily if the match count shrank.
func (v *View) SetSearch(term string) {
	v.state.SearchTerm = term
}

// ToggleSort activates the named column for sorting. Selecting the column
// that is already active flips the direction; selecting a different column
// activates it ascending.
func (v *View) ToggleSort(column string) {
	if v.state.SortColumn == column {
		v.state.SortDir = v.state.SortDir.Toggle()
		return
	}
	v.state.SortColumn = column
	v.state.SortDir = Ascending
}

// ClearSort deactivates sorting, restoring filtered order.
func (v *View) ClearSort() {
	v.state.SortColumn = ""
	v.state.SortDir = Ascending
}

// SetPage moves to the given 1-based page, clamped into the valid range for
// the current filtered row count.
func (v *View) SetPage(page int) {
	v.state.Page = ClampPage(page, len(v.Filtered()), v.opts.PageSize)
}

// NextPage advances one page, stopping at the last page.
func (v *View) NextPage() {
	v.SetPage(v.state.Page + 1)
}

// PrevPage moves back one page, stopping at page 1.
func (v *View) PrevPage() {
	v.SetPage(v.state.Page - 1)
}

// Filtered returns the rows matching the current search term, in snapshot
// order.
func (v *View) Filtered() []Row {
	return Filter(v.set.Rows(), v.state.SearchTerm)
}

// Sorted returns the filtered rows ordered by the active sort column, or in
// filtered order when no column is active. Always a permutation of
// Filtered.
func (v *View) Sorted() []Row {
	return Sort(v.Filtered(), v.state.SortColumn, v.state.SortDir)
}

// Page returns the current page of sorted rows plus navigation metadata.
// The stored page number is clamped first, so the displayed page can never
// fall out of range after a filter or sort change shrinks the row count.
func (v *View) Page() ([]Row, PageMeta) {
	sorted := v.Sorted()
	v.state.Page = ClampPage(v.state.Page, len(sorted), v.opts.PageSize)
	return Paginate(sorted, v.state.Page, v.opts.PageSize)
}
