package table

// Paginate returns the half-open window [page*rowsPerPage, (page+1)*rowsPerPage)
// of items, clipped to its bounds. Out-of-range pages and non-positive page
// sizes yield an empty slice.
func Paginate[T any](items []T, page, rowsPerPage int) []T {
	if page < 0 || rowsPerPage <= 0 || page >= PageCount(len(items), rowsPerPage) {
		return []T{}
	}

	start := page * rowsPerPage
	if start >= len(items) {
		return []T{}
	}
	end := start + rowsPerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// PageCount returns how many pages total items span. An empty collection
// still has one (empty) page.
func PageCount(total, rowsPerPage int) int {
	if rowsPerPage <= 0 || total <= 0 {
		return 1
	}
	return (total + rowsPerPage - 1) / rowsPerPage
}

// EmptyRows returns how many blank rows pad the given page to a full page
// height.
func EmptyRows(page, rowsPerPage, total int) int {
	if page < 0 || rowsPerPage <= 0 {
		return 0
	}
	// Past the last page the whole page is blank; skip the multiply.
	if page >= PageCount(total, rowsPerPage) {
		return rowsPerPage
	}
	n := (page+1)*rowsPerPage - total
	if n < 0 {
		return 0
	}
	if n > rowsPerPage {
		return rowsPerPage
	}
	return n
}
