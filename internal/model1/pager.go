// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package model1

// DefaultPageSize is used when no positive page size is configured.
const DefaultPageSize = 10

// DefaultPageSizes are the page sizes offered by the page-size selector.
var DefaultPageSizes = []int{10, 20, 50, 100}

// Page represents one slice of a paginated row set.
type Page[R any] struct {
	Rows       []R
	StartIndex int
	EndIndex   int
	TotalPages int
	TotalItems int
	Current    int
}

// HasPrev returns true if a previous page exists.
func (p Page[R]) HasPrev() bool {
	return p.Current > 1
}

// HasNext returns true if a following page exists.
func (p Page[R]) HasNext() bool {
	return p.Current < p.TotalPages
}

// Empty returns true if the page holds no rows.
func (p Page[R]) Empty() bool {
	return len(p.Rows) == 0
}

// TotalPages returns ceil(total/perPage), never less than 1.
func TotalPages(total, perPage int) int {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	pages := (total + perPage - 1) / perPage
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate slices rows for the given page. The returned slice shares no
// backing array with rows.
func Paginate[R any](rows []R, perPage, page int) Page[R] {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	total := len(rows)
	start := max(0, min((page-1)*perPage, total))
	end := min(start+perPage, total)

	var slice []R
	if start < end {
		slice = make([]R, end-start)
		copy(slice, rows[start:end])
	}

	return Page[R]{
		Rows:       slice,
		StartIndex: start,
		EndIndex:   end,
		TotalPages: TotalPages(total, perPage),
		TotalItems: total,
		Current:    page,
	}
}

// PageState tracks the current page and page size.
type PageState struct {
	CurrentPage  int
	ItemsPerPage int
}

// NewPageState returns a state positioned on page 1.
func NewPageState(perPage int) PageState {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	return PageState{CurrentPage: 1, ItemsPerPage: perPage}
}

// GoTo moves to page n, clamped into [1, totalPages].
func (p *PageState) GoTo(n, totalPages int) {
	if totalPages < 1 {
		totalPages = 1
	}
	p.CurrentPage = max(1, min(n, totalPages))
}

// SetPerPage changes the page size and rewinds to page 1.
func (p *PageState) SetPerPage(n int) {
	if n <= 0 {
		n = DefaultPageSize
	}
	p.ItemsPerPage = n
	p.CurrentPage = 1
}

// Reset rewinds to page 1.
func (p *PageState) Reset() {
	p.CurrentPage = 1
}

// Clamp pulls the current page back within range for total rows.
func (p *PageState) Clamp(total int) {
	p.GoTo(p.CurrentPage, TotalPages(total, p.ItemsPerPage))
}
