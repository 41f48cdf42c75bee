package engine

// PageMeta describes the navigation metadata for one page of results.
type PageMeta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalRows   int  `json:"total_rows"   yaml:"total_rows"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// Paginate slices rows into the 1-based page of pageSize rows and reports
// page metadata. TotalPages is at least 1 even for an empty input, so page 1
// always exists as a (possibly empty) page.
//
// An out-of-range page is not an error: the slice is empty and the metadata
// still reflects the true totals. Navigation bounds are enforced by the
// caller, not silently rewritten here; use ClampPage for display clamping.
func Paginate(rows []Row, page, pageSize int) ([]Row, PageMeta) {
	if pageSize < 1 {
		pageSize = 1
	}

	totalRows := len(rows)
	totalPages := (totalRows + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	meta := PageMeta{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalRows:   totalRows,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}

	if page < 1 || page > totalPages {
		return nil, meta
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > totalRows {
		start = totalRows
	}
	if end > totalRows {
		end = totalRows
	}

	return rows[start:end], meta
}

// ClampPage clamps a 1-based page number into the valid range for the given
// row count and page size. The clamp is idempotent: clamping an already
// valid page returns it unchanged.
func ClampPage(page, totalRows, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	maxPage := (totalRows + pageSize - 1) / pageSize
	if maxPage < 1 {
		maxPage = 1
	}
	if page < 1 {
		return 1
	}
	if page > maxPage {
		return maxPage
	}
	return page
}
