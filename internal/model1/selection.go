// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package model1

// RowIDFunc returns the identity of a row.
type RowIDFunc[R any] func(R) string

// Selection tracks selected row ids across page and query changes.
type Selection[R any] struct {
	id    RowIDFunc[R]
	marks map[string]struct{}
}

// NewSelection returns an empty selection keyed by id.
func NewSelection[R any](id RowIDFunc[R]) *Selection[R] {
	return &Selection[R]{
		id:    id,
		marks: make(map[string]struct{}),
	}
}

// SelectAll replaces the selection with exactly the ids of visible.
func (s *Selection[R]) SelectAll(visible []R) {
	s.marks = make(map[string]struct{}, len(visible))
	for _, r := range visible {
		s.marks[s.id(r)] = struct{}{}
	}
}

// DeselectAll empties the selection.
func (s *Selection[R]) DeselectAll() {
	s.marks = make(map[string]struct{})
}

// Toggle adds or removes one row.
func (s *Selection[R]) Toggle(r R, checked bool) {
	if checked {
		s.marks[s.id(r)] = struct{}{}
		return
	}
	delete(s.marks, s.id(r))
}

// IsSelected checks if a row is selected.
func (s *Selection[R]) IsSelected(r R) bool {
	_, ok := s.marks[s.id(r)]
	return ok
}

// Has checks if an id is selected.
func (s *Selection[R]) Has(id string) bool {
	_, ok := s.marks[id]
	return ok
}

// Len returns the number of selected ids.
func (s *Selection[R]) Len() int {
	return len(s.marks)
}

// IsAllSelected returns true if visible is non-empty and fully selected.
func (s *Selection[R]) IsAllSelected(visible []R) bool {
	if len(visible) == 0 {
		return false
	}
	return s.countIn(visible) == len(visible)
}

// IsSomeSelected returns true if some, but not all, of visible is selected.
func (s *Selection[R]) IsSomeSelected(visible []R) bool {
	n := s.countIn(visible)
	return n > 0 && n < len(visible)
}

func (s *Selection[R]) countIn(visible []R) int {
	var n int
	for _, r := range visible {
		if s.IsSelected(r) {
			n++
		}
	}
	return n
}

// Materialize returns the selected rows of the full dataset, in dataset order.
func (s *Selection[R]) Materialize(all []R) []R {
	out := make([]R, 0, len(s.marks))
	for _, r := range all {
		if s.IsSelected(r) {
			out = append(out, r)
		}
	}
	return out
}

// IDs returns the selected ids in no particular order.
func (s *Selection[R]) IDs() []string {
	ids := make([]string, 0, len(s.marks))
	for id := range s.marks {
		ids = append(ids, id)
	}
	return ids
}
