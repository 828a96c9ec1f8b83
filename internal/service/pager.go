package service

import "github.com/Sayed24/Employee-Management-System/internal/domain"

// maxPageButtons bounds the window of direct page-number buttons.
const maxPageButtons = 7

// PageResult is one page of a filtered view plus the navigation facts the
// presentation layer needs.
type PageResult struct {
	Items      []domain.Employee
	PageNumber int
	PageSize   int
	TotalPages int
	TotalItems int
}

func (p PageResult) HasPrev() bool { return p.PageNumber > 1 }
func (p PageResult) HasNext() bool { return p.PageNumber < p.TotalPages }

// Page slices filtered into the requested page. totalPages is never below 1,
// and an out-of-range page number is clamped rather than rejected, so the
// returned slice is empty only when the filtered view itself is empty.
func Page(filtered []domain.Employee, pageNumber, pageSize int) PageResult {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := (len(filtered) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if pageNumber > totalPages {
		pageNumber = totalPages
	}
	if pageNumber < 1 {
		pageNumber = 1
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return PageResult{
		Items:      filtered[start:end],
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: len(filtered),
	}
}

// PageWindow returns the direct page-number buttons to show: at most seven,
// centered on current, clamped to [1, total].
func PageWindow(current, total int) []int {
	if total < 1 {
		total = 1
	}
	if current > total {
		current = total
	}
	if current < 1 {
		current = 1
	}

	count := maxPageButtons
	if total < count {
		count = total
	}

	start := current - count/2
	if start < 1 {
		start = 1
	}
	if start+count-1 > total {
		start = total - count + 1
	}

	window := make([]int, count)
	for i := range window {
		window[i] = start + i
	}
	return window
}
