package model1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnsValidate(t *testing.T) {
	ok := Columns[item]{{Key: "a"}, {Key: "b"}}
	assert.NoError(t, ok.Validate())

	dup := Columns[item]{{Key: "a"}, {Key: "a"}}
	assert.ErrorContains(t, dup.Validate(), `duplicate column key "a"`)

	blank := Columns[item]{{Header: "x"}}
	assert.Error(t, blank.Validate())
}

func TestColumnCell(t *testing.T) {
	c := Column[item]{Key: "qty", Value: byQty}
	assert.Equal(t, "4", c.Cell(item{qty: 4}))

	c.Render = func(i item) string { return "#" + i.id }
	assert.Equal(t, "#a", c.Cell(item{id: "a"}))

	assert.Equal(t, "", Column[item]{Key: "p", Value: byPrice}.Cell(item{}))
}

func TestColumnsVisible(t *testing.T) {
	cc := Columns[item]{{Key: "a"}, {Key: "b", Attrs: Attrs{Wide: true}}}

	assert.Equal(t, []string{"a"}, cc.Visible(false).Keys())
	assert.Equal(t, []string{"a", "b"}, cc.Visible(true).Keys())
	_, ok := cc.IndexOf("b", false)
	assert.False(t, ok)
}

func TestColumnsSortValue(t *testing.T) {
	cc := Columns[item]{
		{Key: "name", Sortable: true, Render: func(i item) string { return i.name }},
		{Key: "qty", Value: byQty},
	}

	v, ok := cc.SortValue("name")
	assert.True(t, ok)
	assert.Equal(t, "x", v(item{name: "x"}))

	_, ok = cc.SortValue("qty")
	assert.False(t, ok)
	_, ok = cc.SortValue("missing")
	assert.False(t, ok)
}
