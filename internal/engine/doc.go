// Package engine implements the core data-manipulation pipeline behind the
// tablescope result viewer: ingest of a heterogeneous row set, free-text
// filtering, type-aware stable sorting, pagination, CSV export, and
// presentation-oriented cell formatting.
//
// The pipeline stages are pure functions over an immutable ResultSet
// snapshot:
//
//	Filter -> Sort -> Paginate
//
// Export operates on the filtered and sorted subset independently of
// pagination. A View ties the stages to ephemeral interaction state (search
// term, sort column and direction, current page) and re-derives its output on
// demand; no derived set is cached or independently mutable.
package engine
