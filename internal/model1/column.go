// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package model1

import (
	"fmt"
)

// Accessor extracts one value from a row.
type Accessor[R any] func(R) any

// Column describes how one table column renders and sorts.
type Column[R any] struct {
	// Key identifies the column and doubles as its sort key.
	Key string

	// Header is the resolved display label.
	Header string

	// Sortable enables the header sort toggle.
	Sortable bool

	// Render formats a row cell. Falls back to the string form of Value.
	Render func(R) string

	// Value returns the raw value used for sorting.
	Value Accessor[R]

	// ClassName is a free-form presentation hint (e.g. "status", "numeric").
	ClassName string

	Attrs
}

// Attrs represents column presentation attributes.
type Attrs struct {
	Align int  // tview alignment
	Wide  bool // Hidden in narrow view
}

// Cell returns the display text of the column for row r.
func (c Column[R]) Cell(r R) string {
	if c.Render != nil {
		return c.Render(r)
	}
	if c.Value == nil {
		return ""
	}
	v := c.Value(r)
	if isNil(v) {
		return ""
	}
	return fmt.Sprint(v)
}

// Columns represents an ordered set of column descriptors.
type Columns[R any] []Column[R]

// Validate checks column keys are present and unique.
func (cc Columns[R]) Validate() error {
	seen := make(map[string]struct{}, len(cc))
	for i, c := range cc {
		if c.Key == "" {
			return fmt.Errorf("column %d has no key", i)
		}
		if _, ok := seen[c.Key]; ok {
			return fmt.Errorf("duplicate column key %q", c.Key)
		}
		seen[c.Key] = struct{}{}
	}
	return nil
}

// IndexOf returns the position of the column with the given key.
func (cc Columns[R]) IndexOf(key string, includeWide bool) (int, bool) {
	for i, c := range cc {
		if c.Wide && !includeWide {
			continue
		}
		if c.Key == key {
			return i, true
		}
	}
	return -1, false
}

// Get returns the column with the given key.
func (cc Columns[R]) Get(key string) (Column[R], bool) {
	idx, ok := cc.IndexOf(key, true)
	if !ok {
		return Column[R]{}, false
	}
	return cc[idx], true
}

// Visible returns the columns shown in the current width mode.
func (cc Columns[R]) Visible(wide bool) Columns[R] {
	out := make(Columns[R], 0, len(cc))
	for _, c := range cc {
		if c.Wide && !wide {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Keys returns column keys in order.
func (cc Columns[R]) Keys() []string {
	kk := make([]string, 0, len(cc))
	for _, c := range cc {
		kk = append(kk, c.Key)
	}
	return kk
}

// Headers returns column headers in order.
func (cc Columns[R]) Headers() []string {
	hh := make([]string, 0, len(cc))
	for _, c := range cc {
		hh = append(hh, c.Header)
	}
	return hh
}

// SortValue returns the sort accessor for the given key, if the column is sortable.
func (cc Columns[R]) SortValue(key string) (Accessor[R], bool) {
	c, ok := cc.Get(key)
	if !ok || !c.Sortable {
		return nil, false
	}
	if c.Value != nil {
		return c.Value, true
	}
	if c.Render != nil {
		render := c.Render
		return func(r R) any { return render(r) }, true
	}
	return nil, false
}
