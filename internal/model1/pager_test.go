package model1

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems(n int) []item {
	rows := make([]item, 0, n)
	for i := range n {
		rows = append(rows, item{id: fmt.Sprintf("r%02d", i+1), qty: i})
	}
	return rows
}

func TestPaginateLastPartialPage(t *testing.T) {
	rows := makeItems(23)

	p := Paginate(rows, 10, 3)

	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 23, p.TotalItems)
	assert.Equal(t, 20, p.StartIndex)
	assert.Equal(t, 23, p.EndIndex)
	require.Len(t, p.Rows, 3)
	assert.Equal(t, []string{"r21", "r22", "r23"}, ids(p.Rows))
	assert.True(t, p.HasPrev())
	assert.False(t, p.HasNext())
}

func TestPaginateEmpty(t *testing.T) {
	p := Paginate([]item{}, 10, 1)

	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, 0, p.TotalItems)
	assert.True(t, p.Empty())
	assert.False(t, p.HasNext())
}

func TestPaginatePastLastPage(t *testing.T) {
	p := Paginate(makeItems(23), 10, 5)

	assert.Equal(t, 23, p.StartIndex)
	assert.Equal(t, 23, p.EndIndex)
	assert.LessOrEqual(t, p.StartIndex, p.EndIndex)
	assert.True(t, p.Empty())
	assert.Equal(t, 3, p.TotalPages)
}

func TestPaginateSliceIsCopy(t *testing.T) {
	rows := makeItems(5)
	p := Paginate(rows, 2, 1)
	p.Rows[0].id = "changed"

	assert.Equal(t, "r01", rows[0].id)
}

func TestTotalPages(t *testing.T) {
	uu := map[string]struct {
		total, per, want int
	}{
		"empty":   {0, 10, 1},
		"exact":   {20, 10, 2},
		"partial": {21, 10, 3},
		"single":  {1, 50, 1},
		"one-per": {7, 1, 7},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.want, TotalPages(u.total, u.per))
		})
	}
}

func TestPageStateGoToClamps(t *testing.T) {
	ps := NewPageState(10)

	for _, n := range []int{-5, 0, 1, 2, 3, 4, 1000} {
		ps.GoTo(n, 3)
		assert.GreaterOrEqual(t, ps.CurrentPage, 1)
		assert.LessOrEqual(t, ps.CurrentPage, 3)
	}
	ps.GoTo(0, 3)
	assert.Equal(t, 1, ps.CurrentPage)
	ps.GoTo(99, 3)
	assert.Equal(t, 3, ps.CurrentPage)
	ps.GoTo(2, 0)
	assert.Equal(t, 1, ps.CurrentPage)
}

func TestPageStateSetPerPageResets(t *testing.T) {
	ps := NewPageState(10)
	ps.GoTo(3, 3)

	ps.SetPerPage(20)

	assert.Equal(t, PageState{CurrentPage: 1, ItemsPerPage: 20}, ps)
}

func TestPageStateClamp(t *testing.T) {
	ps := NewPageState(10)
	ps.GoTo(3, 3)

	ps.Clamp(12)

	assert.Equal(t, 2, ps.CurrentPage)
}

func TestNewPageStateDefaults(t *testing.T) {
	assert.Equal(t, DefaultPageSize, NewPageState(0).ItemsPerPage)
}
