// Package paging maps logical page numbers onto windows over an ordered
// sequence. Both the attempt view and the result review page through their
// question lists with it; per-question state is always keyed by the
// dataset-wide index (Window.Start + local index), never the page-relative
// one.
package paging

// Window is one page cut from a larger ordered sequence.
type Window[T any] struct {
	// Start is the dataset-wide index of Items[0].
	Start      int
	Items      []T
	TotalPages int
}

// Page slices items down to the requested page. TotalPages is at least 1
// even for an empty sequence; pageNumber and pageSize are clamped to sane
// bounds rather than failing.
func Page[T any](items []T, pageNumber, pageSize int) Window[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageNumber > totalPages {
		pageNumber = totalPages
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Window[T]{
		Start:      start,
		Items:      items[start:end],
		TotalPages: totalPages,
	}
}
