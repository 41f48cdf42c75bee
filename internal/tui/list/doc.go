// Package listview provides a generic scrolling list model for Bubble Tea
// views that show more lines than fit the viewport, such as the per-column
// detail view of a wide result row.
package listview
