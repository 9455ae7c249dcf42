package question

import "strconv"

// Paginate returns the 1-based page of items, QuestionsPerPage long at most.
// Out-of-range pages yield an empty, non-nil slice.
func Paginate[T any](page int, items []T) []T {
	// compare against the page count first; (page-1)*QuestionsPerPage can overflow
	pages := (len(items) + QuestionsPerPage - 1) / QuestionsPerPage
	if page < 1 || page > pages {
		return []T{}
	}
	start := (page - 1) * QuestionsPerPage
	end := start + QuestionsPerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// ParsePage reads the page query parameter. Absent, non-numeric and
// non-positive values all mean page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
