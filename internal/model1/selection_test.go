package model1

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionToggle(t *testing.T) {
	s := NewSelection(itemID)
	a, b := item{id: "a"}, item{id: "b"}

	s.Toggle(a, true)
	s.Toggle(b, true)
	s.Toggle(a, false)

	assert.False(t, s.IsSelected(a))
	assert.True(t, s.IsSelected(b))
	assert.Equal(t, 1, s.Len())
}

func TestSelectionSelectAllScopedToVisible(t *testing.T) {
	rows := makeItems(23)
	s := NewSelection(itemID)
	s.Toggle(rows[22], true)

	page1 := Paginate(rows, 10, 1).Rows
	s.SelectAll(page1)

	assert.Equal(t, 10, s.Len())
	assert.False(t, s.IsSelected(rows[22]), "select all replaces the previous set")
	assert.True(t, s.IsAllSelected(page1))

	page2 := Paginate(rows, 10, 2).Rows
	assert.False(t, s.IsAllSelected(page2))
	assert.False(t, s.IsSomeSelected(page2))

	got := s.IDs()
	sort.Strings(got)
	assert.Equal(t, ids(page1), got)
}

func TestSelectionSurvivesPaging(t *testing.T) {
	rows := makeItems(23)
	s := NewSelection(itemID)

	s.Toggle(Paginate(rows, 10, 1).Rows[4], true)
	_ = Paginate(rows, 10, 2)
	back := Paginate(rows, 10, 1).Rows

	assert.True(t, s.IsSelected(back[4]))
	assert.True(t, s.IsSomeSelected(back))
}

func TestSelectionAllAndSomeOnEmpty(t *testing.T) {
	s := NewSelection(itemID)

	assert.False(t, s.IsAllSelected(nil))
	assert.False(t, s.IsSomeSelected(nil))
}

func TestSelectionMaterializeUsesFullDataset(t *testing.T) {
	rows := makeItems(23)
	s := NewSelection(itemID)
	s.Toggle(rows[21], true)
	s.Toggle(rows[2], true)
	s.Toggle(item{id: "gone"}, true)

	out := s.Materialize(rows)

	assert.Equal(t, []string{"r03", "r22"}, ids(out))
}

func TestSelectionDeselectAll(t *testing.T) {
	rows := makeItems(3)
	s := NewSelection(itemID)
	s.SelectAll(rows)

	s.DeselectAll()

	assert.Zero(t, s.Len())
	assert.False(t, s.Has("r01"))
}
