package service

const (
	defaultPageSize = 20
	maxPageSize     = 200
)

// clampPage applies the default page size and the upper bound, and moves
// page numbers below one to the first page
func clampPage(page, pageSize int) (int, int) {
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	if page < 1 {
		page = 1
	}
	return page, pageSize
}

// pageOf returns the records on the given page and the total page count.
// A page past the end is empty.
func pageOf[T any](records []T, page, pageSize int) ([]T, int) {
	total := len(records)
	totalPages := (total + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	if start >= total {
		return []T{}, totalPages
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return records[start:end], totalPages
}
