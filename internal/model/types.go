// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package model

import (
	"github.com/lendr/lendr/internal/model1"
)

// TableListener represents a data view listener.
type TableListener[R any] interface {
	// TableChanged notifies the derived view changed.
	TableChanged(View[R])
}

// LoadListener represents a data loader listener.
type LoadListener interface {
	// LoadFailed notifies the load failed.
	LoadFailed(error)

	// LoadSucceeded notifies a load completed with n rows.
	LoadSucceeded(n int)
}

// View is the derived, render-ready state of a table.
type View[R any] struct {
	Query        model1.QueryState
	Page         model1.Page[R]
	PageSize     int
	PageSizes    []int
	Paginated    bool
	Selectable   bool
	Searchable   bool
	Selected     []bool
	AllSelected  bool
	SomeSelected bool
	SelectedN    int
	FullCount    int
}

// IsSelected returns the checkbox state of the i-th page row.
func (v View[R]) IsSelected(i int) bool {
	if i < 0 || i >= len(v.Selected) {
		return false
	}
	return v.Selected[i]
}

// FirstItem returns the 1-based index of the first row shown, 0 when empty.
func (v View[R]) FirstItem() int {
	if v.Page.TotalItems == 0 || v.Page.Empty() {
		return 0
	}
	return v.Page.StartIndex + 1
}
