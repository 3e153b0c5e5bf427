// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package render

import (
	"github.com/lendr/lendr/internal/dao"
	"github.com/lendr/lendr/internal/model1"
)

// Renderer describes how one record type shows up in a data table.
type Renderer[R any] struct {
	// Title is the resolved resource title.
	Title string

	// Columns are the table columns, headers resolved.
	Columns model1.Columns[R]

	// SearchKeys are the values free text search matches against.
	SearchKeys []model1.Accessor[R]

	// RowID returns the identity of a row.
	RowID model1.RowIDFunc[R]

	// Colorer picks a row color.
	Colorer model1.ColorerFunc[R]
}

// Cells renders one row as display strings.
func (r Renderer[R]) Cells(row R, wide bool) []string {
	cols := r.Columns.Visible(wide)
	cells := make([]string, 0, len(cols))
	for _, c := range cols {
		cells = append(cells, c.Cell(row))
	}
	return cells
}

// Headers returns the visible column headers.
func (r Renderer[R]) Headers(wide bool) []string {
	return r.Columns.Visible(wide).Headers()
}

// ColorerFunc returns the row colorer, defaulting to change-kind colors.
func (r Renderer[R]) ColorerFunc() model1.ColorerFunc[R] {
	if r.Colorer == nil {
		return model1.DefaultColorer[R]
	}
	return r.Colorer
}

func objectID[R dao.Object](o R) string {
	return o.GetID()
}

func str[R any](fn func(R) string) model1.Accessor[R] {
	return func(r R) any { return fn(r) }
}
