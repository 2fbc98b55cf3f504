package service

// clampPage normalizes a requested page number into [1, totalPages] so the
// reported page always matches the window actually served.
func clampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
