// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package model1

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// SortDirection represents a column sort order.
type SortDirection int

const (
	// SortNone leaves rows in source order.
	SortNone SortDirection = iota
	// SortAsc sorts ascending.
	SortAsc
	// SortDesc sorts descending.
	SortDesc
)

func (d SortDirection) String() string {
	switch d {
	case SortAsc:
		return "asc"
	case SortDesc:
		return "desc"
	default:
		return "none"
	}
}

// ParseSortDirection maps "asc"/"desc" (any case) to a direction.
func ParseSortDirection(s string) SortDirection {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return SortAsc
	case "desc", "descending":
		return SortDesc
	default:
		return SortNone
	}
}

// QueryState tracks search text and sort order.
// SortDir is SortNone if and only if SortKey is empty.
type QueryState struct {
	SearchText string
	SortKey    string
	SortDir    SortDirection
}

// Sorted returns true if a sort is in effect.
func (q QueryState) Sorted() bool {
	return q.SortKey != "" && q.SortDir != SortNone
}

// WithSort returns a copy of q sorted by key in dir, keeping the key/direction invariant.
func (q QueryState) WithSort(key string, dir SortDirection) QueryState {
	if key == "" || dir == SortNone {
		q.SortKey, q.SortDir = "", SortNone
		return q
	}
	q.SortKey, q.SortDir = key, dir
	return q
}

// ToggleSort advances the sort for key: asc, then desc, then cleared.
// A different key always starts ascending.
func (q QueryState) ToggleSort(key string) QueryState {
	if q.SortKey != key {
		return q.WithSort(key, SortAsc)
	}
	switch q.SortDir {
	case SortAsc:
		return q.WithSort(key, SortDesc)
	case SortDesc:
		return q.WithSort("", SortNone)
	default:
		return q.WithSort(key, SortAsc)
	}
}

// Filter returns the rows for which any search key value contains text,
// case-insensitively. An empty text or key set passes every row.
func Filter[R any](rows []R, text string, keys []Accessor[R]) []R {
	if text == "" || len(keys) == 0 {
		return slices.Clone(rows)
	}
	needle := strings.ToLower(text)
	out := make([]R, 0, len(rows))
	for _, r := range rows {
		if matches(r, needle, keys) {
			out = append(out, r)
		}
	}
	return out
}

func matches[R any](r R, needle string, keys []Accessor[R]) bool {
	for _, k := range keys {
		if k == nil {
			continue
		}
		s, ok := searchText(k(r))
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

// Sort returns a stably sorted copy of rows ordered by value in dir.
// Nil values always land last.
func Sort[R any](rows []R, value Accessor[R], dir SortDirection, cmp *Comparer) []R {
	out := slices.Clone(rows)
	if value == nil || dir == SortNone {
		return out
	}
	if cmp == nil {
		cmp = NewComparer(language.Und)
	}
	slices.SortStableFunc(out, func(a, b R) int {
		va, vb := value(a), value(b)
		an, bn := isNil(va), isNil(vb)
		switch {
		case an && bn:
			return 0
		case an:
			return 1
		case bn:
			return -1
		}
		res := cmp.Compare(va, vb)
		if dir == SortDesc {
			return -res
		}
		return res
	})
	return out
}

// Pipeline derives the visible row set from rows and a query state.
type Pipeline[R any] struct {
	Columns    Columns[R]
	SearchKeys []Accessor[R]
	Comparer   *Comparer
}

// NewPipeline returns a pipeline collating for the given locale.
func NewPipeline[R any](cols Columns[R], keys []Accessor[R], tag language.Tag) Pipeline[R] {
	return Pipeline[R]{
		Columns:    cols,
		SearchKeys: keys,
		Comparer:   NewComparer(tag),
	}
}

// Apply filters then sorts rows. The input slice is never modified.
func (p Pipeline[R]) Apply(rows []R, q QueryState) []R {
	out := Filter(rows, q.SearchText, p.SearchKeys)
	if !q.Sorted() {
		return out
	}
	value, ok := p.Columns.SortValue(q.SortKey)
	if !ok {
		return out
	}
	return Sort(out, value, q.SortDir, p.Comparer)
}
