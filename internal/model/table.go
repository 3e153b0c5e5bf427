// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package model

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/text/language"

	"github.com/lendr/lendr/internal/model1"
)

// Options configures a data table instance.
type Options[R any] struct {
	Searchable        bool
	SearchPlaceholder string
	SearchKeys        []model1.Accessor[R]
	Paginated         bool
	PageSize          int
	PageSizes         []int
	Selectable        bool
	RowID             model1.RowIDFunc[R]
	EmptyText         string
	EmptyDescription  string
	Locale            language.Tag
}

// Table owns the query, page and selection state of one data view.
type Table[R any] struct {
	cols        model1.Columns[R]
	opts        Options[R]
	pipeline    model1.Pipeline[R]
	rows        []R
	query       model1.QueryState
	page        model1.PageState
	selection   *model1.Selection[R]
	listeners   []TableListener[R]
	selectionFn func([]R)
	rowClickFn  func(R)
	mx          sync.RWMutex
}

// NewTable returns a new data table over the given columns.
func NewTable[R any](cols model1.Columns[R], opts Options[R]) (*Table[R], error) {
	if err := cols.Validate(); err != nil {
		return nil, err
	}
	if opts.RowID == nil {
		return nil, errors.New("row id accessor is required")
	}
	if opts.PageSize <= 0 {
		opts.PageSize = model1.DefaultPageSize
	}
	if len(opts.PageSizes) == 0 {
		opts.PageSizes = model1.DefaultPageSizes
	}
	if !slices.Contains(opts.PageSizes, opts.PageSize) {
		return nil, fmt.Errorf("page size %d is not one of %v", opts.PageSize, opts.PageSizes)
	}

	return &Table[R]{
		cols:      cols,
		opts:      opts,
		pipeline:  model1.NewPipeline(cols, opts.SearchKeys, opts.Locale),
		page:      model1.NewPageState(opts.PageSize),
		selection: model1.NewSelection(opts.RowID),
	}, nil
}

// Columns returns the column descriptors.
func (t *Table[R]) Columns() model1.Columns[R] {
	return t.cols
}

// Options returns the table options.
func (t *Table[R]) Options() Options[R] {
	return t.opts
}

// RowID returns the identity of a row.
func (t *Table[R]) RowID(r R) string {
	return t.opts.RowID(r)
}

// AddListener registers a view listener.
func (t *Table[R]) AddListener(l TableListener[R]) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.listeners = append(t.listeners, l)
}

// RemoveListener unregisters a view listener.
func (t *Table[R]) RemoveListener(l TableListener[R]) {
	t.mx.Lock()
	defer t.mx.Unlock()

	for i, listener := range t.listeners {
		if listener == l {
			t.listeners = append(t.listeners[:i], t.listeners[i+1:]...)
			return
		}
	}
}

// SetOnSelectionChange registers the selection callback.
func (t *Table[R]) SetOnSelectionChange(fn func([]R)) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.selectionFn = fn
}

// SetOnRowClick registers the row activation callback.
func (t *Table[R]) SetOnRowClick(fn func(R)) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.rowClickFn = fn
}

// SetRows replaces the dataset. The slice is treated as read-only.
func (t *Table[R]) SetRows(rows []R) {
	t.mx.Lock()
	t.rows = rows
	t.page.Clamp(len(t.filteredLocked()))
	t.mx.Unlock()

	t.fireChanged()
}

// Rows returns the full unfiltered dataset.
func (t *Table[R]) Rows() []R {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.rows
}

// Filtered returns the searched and sorted rows, across all pages.
func (t *Table[R]) Filtered() []R {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.filteredLocked()
}

func (t *Table[R]) filteredLocked() []R {
	return t.pipeline.Apply(t.rows, t.query)
}

// Query returns the current query state.
func (t *Table[R]) Query() model1.QueryState {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.query
}

// PageState returns the current page state.
func (t *Table[R]) PageState() model1.PageState {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.page
}

// SetSearch changes the search text and rewinds to page 1.
func (t *Table[R]) SetSearch(text string) {
	t.mx.Lock()
	if !t.opts.Searchable || t.query.SearchText == text {
		t.mx.Unlock()
		return
	}
	t.query.SearchText = text
	t.page.Reset()
	t.mx.Unlock()

	t.fireChanged()
}

// ToggleSort advances the sort on a sortable column and rewinds to page 1.
func (t *Table[R]) ToggleSort(key string) {
	t.mx.Lock()
	if c, ok := t.cols.Get(key); !ok || !c.Sortable {
		t.mx.Unlock()
		return
	}
	t.query = t.query.ToggleSort(key)
	t.page.Reset()
	t.mx.Unlock()

	t.fireChanged()
}

// SetSort sets the sort explicitly and rewinds to page 1.
func (t *Table[R]) SetSort(key string, dir model1.SortDirection) {
	t.mx.Lock()
	if key != "" {
		if c, ok := t.cols.Get(key); !ok || !c.Sortable {
			t.mx.Unlock()
			return
		}
	}
	t.query = t.query.WithSort(key, dir)
	t.page.Reset()
	t.mx.Unlock()

	t.fireChanged()
}

// GoToPage moves to page n, clamped into range.
func (t *Table[R]) GoToPage(n int) {
	t.mx.Lock()
	t.page.GoTo(n, model1.TotalPages(len(t.filteredLocked()), t.page.ItemsPerPage))
	t.mx.Unlock()

	t.fireChanged()
}

// NextPage moves one page forward.
func (t *Table[R]) NextPage() {
	t.GoToPage(t.PageState().CurrentPage + 1)
}

// PrevPage moves one page back.
func (t *Table[R]) PrevPage() {
	t.GoToPage(t.PageState().CurrentPage - 1)
}

// FirstPage moves to page 1.
func (t *Table[R]) FirstPage() {
	t.GoToPage(1)
}

// LastPage moves to the last page.
func (t *Table[R]) LastPage() {
	t.mx.RLock()
	last := model1.TotalPages(len(t.filteredLocked()), t.page.ItemsPerPage)
	t.mx.RUnlock()
	t.GoToPage(last)
}

// SetPerPage changes the page size and rewinds to page 1.
func (t *Table[R]) SetPerPage(n int) {
	t.mx.Lock()
	t.page.SetPerPage(n)
	t.mx.Unlock()

	t.fireChanged()
}

// CyclePageSize steps through the configured page sizes.
func (t *Table[R]) CyclePageSize(step int) {
	t.mx.RLock()
	sizes := t.opts.PageSizes
	idx := slices.Index(sizes, t.page.ItemsPerPage)
	t.mx.RUnlock()

	idx = ((idx+step)%len(sizes) + len(sizes)) % len(sizes)
	t.SetPerPage(sizes[idx])
}

// ToggleRow checks or unchecks one row.
func (t *Table[R]) ToggleRow(r R, checked bool) {
	t.mutateSelection(func(s *model1.Selection[R], _ []R) {
		s.Toggle(r, checked)
	})
}

// ToggleRowAt flips the checkbox of the i-th row of the current page.
func (t *Table[R]) ToggleRowAt(i int) {
	t.mutateSelection(func(s *model1.Selection[R], visible []R) {
		if i < 0 || i >= len(visible) {
			return
		}
		s.Toggle(visible[i], !s.IsSelected(visible[i]))
	})
}

// SelectAllVisible selects exactly the rows of the current page.
func (t *Table[R]) SelectAllVisible() {
	t.mutateSelection(func(s *model1.Selection[R], visible []R) {
		s.SelectAll(visible)
	})
}

// DeselectAll clears the selection.
func (t *Table[R]) DeselectAll() {
	t.mutateSelection(func(s *model1.Selection[R], _ []R) {
		s.DeselectAll()
	})
}

// ToggleAllVisible acts like the header checkbox: a fully selected page
// is cleared, anything else selects the page.
func (t *Table[R]) ToggleAllVisible() {
	t.mutateSelection(func(s *model1.Selection[R], visible []R) {
		if s.IsAllSelected(visible) {
			s.DeselectAll()
			return
		}
		s.SelectAll(visible)
	})
}

// Selected returns the selected rows of the full dataset.
func (t *Table[R]) Selected() []R {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.selection.Materialize(t.rows)
}

func (t *Table[R]) mutateSelection(fn func(*model1.Selection[R], []R)) {
	t.mx.Lock()
	if !t.opts.Selectable {
		t.mx.Unlock()
		return
	}
	fn(t.selection, t.visibleLocked())
	selected := t.selection.Materialize(t.rows)
	cb := t.selectionFn
	t.mx.Unlock()

	if cb != nil {
		cb(selected)
	}
	t.fireChanged()
}

// ClickRow activates the i-th row of the current page.
func (t *Table[R]) ClickRow(i int) {
	t.mx.RLock()
	visible := t.visibleLocked()
	cb := t.rowClickFn
	t.mx.RUnlock()

	if cb == nil || i < 0 || i >= len(visible) {
		return
	}
	cb(visible[i])
}

// RowAt returns the i-th row of the current page.
func (t *Table[R]) RowAt(i int) (R, bool) {
	t.mx.RLock()
	defer t.mx.RUnlock()

	var zero R
	visible := t.visibleLocked()
	if i < 0 || i >= len(visible) {
		return zero, false
	}
	return visible[i], true
}

func (t *Table[R]) visibleLocked() []R {
	return t.pageLocked().Rows
}

func (t *Table[R]) pageLocked() model1.Page[R] {
	filtered := t.filteredLocked()
	if !t.opts.Paginated {
		return model1.Paginate(filtered, max(len(filtered), 1), 1)
	}
	return model1.Paginate(filtered, t.page.ItemsPerPage, t.page.CurrentPage)
}

// View derives the render-ready state.
func (t *Table[R]) View() View[R] {
	t.mx.RLock()
	defer t.mx.RUnlock()

	p := t.pageLocked()
	sel := make([]bool, len(p.Rows))
	for i, r := range p.Rows {
		sel[i] = t.selection.IsSelected(r)
	}

	return View[R]{
		Query:        t.query,
		Page:         p,
		PageSize:     t.page.ItemsPerPage,
		PageSizes:    t.opts.PageSizes,
		Paginated:    t.opts.Paginated,
		Selectable:   t.opts.Selectable,
		Searchable:   t.opts.Searchable,
		Selected:     sel,
		AllSelected:  t.selection.IsAllSelected(p.Rows),
		SomeSelected: t.selection.IsSomeSelected(p.Rows),
		SelectedN:    t.selection.Len(),
		FullCount:    len(t.rows),
	}
}

// Refresh re-notifies listeners with the current view.
func (t *Table[R]) Refresh() {
	t.fireChanged()
}

func (t *Table[R]) fireChanged() {
	t.mx.RLock()
	listeners := make([]TableListener[R], len(t.listeners))
	copy(listeners, t.listeners)
	t.mx.RUnlock()

	if len(listeners) == 0 {
		return
	}
	v := t.View()
	for _, l := range listeners {
		l.TableChanged(v)
	}
}
