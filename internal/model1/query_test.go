package model1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

type item struct {
	id    string
	name  string
	qty   int
	price *float64
	tags  []string
}

func itemID(i item) string { return i.id }

var (
	byName  Accessor[item] = func(i item) any { return i.name }
	byQty   Accessor[item] = func(i item) any { return i.qty }
	byPrice Accessor[item] = func(i item) any {
		if i.price == nil {
			return nil
		}
		return *i.price
	}
	byTags Accessor[item] = func(i item) any { return i.tags }
)

func ids(rr []item) []string {
	out := make([]string, 0, len(rr))
	for _, r := range rr {
		out = append(out, r.id)
	}
	return out
}

func price(f float64) *float64 { return &f }

func TestFilterEmptyTextPassesAll(t *testing.T) {
	rows := []item{{id: "a", name: "Laptop"}, {id: "b", name: "Desktop"}}

	assert.Equal(t, []string{"a", "b"}, ids(Filter(rows, "", []Accessor[item]{byName})))
	assert.Equal(t, []string{"a", "b"}, ids(Filter(rows, "lap", nil)))
}

func TestFilterCaseInsensitiveSubstring(t *testing.T) {
	rows := []item{{id: "a", name: "Laptop Pro"}, {id: "b", name: "Desktop"}}

	out := Filter(rows, "lap", []Accessor[item]{byName})

	assert.Equal(t, []string{"a"}, ids(out))
	assert.Equal(t, []string{"a"}, ids(Filter(rows, "LAP", []Accessor[item]{byName})))
}

func TestFilterNumbersMatchDecimalForm(t *testing.T) {
	rows := []item{{id: "a", qty: 120}, {id: "b", qty: 7}, {id: "c", price: price(2.5)}}
	keys := []Accessor[item]{byQty, byPrice}

	assert.Equal(t, []string{"a"}, ids(Filter(rows, "12", keys)))
	assert.Equal(t, []string{"c"}, ids(Filter(rows, "2.5", keys)))
}

func TestFilterOtherTypesNeverMatch(t *testing.T) {
	rows := []item{{id: "a", tags: []string{"lap"}}, {id: "b"}}

	assert.Empty(t, Filter(rows, "lap", []Accessor[item]{byTags, byPrice}))
}

func TestFilterIdempotent(t *testing.T) {
	rows := []item{
		{id: "a", name: "Laptop Pro"},
		{id: "b", name: "Desktop"},
		{id: "c", name: "lapdesk"},
	}
	keys := []Accessor[item]{byName}

	once := Filter(rows, "lap", keys)
	twice := Filter(once, "lap", keys)

	assert.Equal(t, ids(once), ids(twice))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	rows := []item{{id: "a", name: "x"}, {id: "b", name: "y"}}
	out := Filter(rows, "", []Accessor[item]{byName})
	out[0].id = "z"

	assert.Equal(t, "a", rows[0].id)
}

func TestSortLocaleAware(t *testing.T) {
	rows := []item{{id: "a", name: "Zeta"}, {id: "b", name: "alpha"}}

	out := Sort(rows, byName, SortAsc, NewComparer(language.English))

	assert.Equal(t, []string{"b", "a"}, ids(out))
	assert.Equal(t, []string{"a", "b"}, ids(rows))
}

func TestSortNumbers(t *testing.T) {
	rows := []item{{id: "a", qty: 10}, {id: "b", qty: 9}, {id: "c", qty: 100}}

	assert.Equal(t, []string{"b", "a", "c"}, ids(Sort(rows, byQty, SortAsc, nil)))
	assert.Equal(t, []string{"c", "a", "b"}, ids(Sort(rows, byQty, SortDesc, nil)))
}

func TestSortNilAlwaysLast(t *testing.T) {
	rows := []item{{id: "a"}, {id: "b", price: price(3)}, {id: "c", price: price(1)}}

	assert.Equal(t, []string{"c", "b", "a"}, ids(Sort(rows, byPrice, SortAsc, nil)))
	assert.Equal(t, []string{"b", "c", "a"}, ids(Sort(rows, byPrice, SortDesc, nil)))
}

func TestSortReverseAndIdempotent(t *testing.T) {
	rows := []item{
		{id: "a", name: "mouse"},
		{id: "b", name: "Keyboard"},
		{id: "c", name: "dock"},
		{id: "d", name: "Webcam"},
	}
	cmp := NewComparer(language.English)

	asc := Sort(rows, byName, SortAsc, cmp)
	desc := Sort(rows, byName, SortDesc, cmp)

	assert.Equal(t, ids(asc), ids(Sort(asc, byName, SortAsc, cmp)))
	reversed := ids(desc)
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	assert.Equal(t, ids(asc), reversed)
}

func TestSortStableOnTies(t *testing.T) {
	rows := []item{{id: "a", qty: 1}, {id: "b", qty: 1}, {id: "c", qty: 0}}

	assert.Equal(t, []string{"c", "a", "b"}, ids(Sort(rows, byQty, SortAsc, nil)))
}

func TestSortNoneKeepsOrder(t *testing.T) {
	rows := []item{{id: "b", qty: 2}, {id: "a", qty: 1}}

	assert.Equal(t, []string{"b", "a"}, ids(Sort(rows, byQty, SortNone, nil)))
}

func TestCompareMixedTypes(t *testing.T) {
	cmp := NewComparer(language.English)

	assert.Equal(t, 0, cmp.Compare(3, 3))
	assert.Less(t, cmp.Compare(2, 3.5), 0)
	assert.Less(t, cmp.Compare(10, "9"), 0, "mixed types compare as text")
	assert.Equal(t, 1, cmp.Compare(nil, "a"))
	assert.Equal(t, -1, cmp.Compare("a", nil))
	assert.NotPanics(t, func() { cmp.Compare([]int{1}, []int{1}) })
}

func TestToggleSortCycle(t *testing.T) {
	var q QueryState

	q = q.ToggleSort("name")
	assert.Equal(t, QueryState{SortKey: "name", SortDir: SortAsc}, q)
	q = q.ToggleSort("name")
	assert.Equal(t, SortDesc, q.SortDir)
	q = q.ToggleSort("name")
	assert.Equal(t, QueryState{}, q)
	assert.False(t, q.Sorted())

	q = q.ToggleSort("name").ToggleSort("qty")
	assert.Equal(t, QueryState{SortKey: "qty", SortDir: SortAsc}, q)
}

func TestWithSortKeepsInvariant(t *testing.T) {
	q := QueryState{}.WithSort("name", SortNone)
	assert.Equal(t, "", q.SortKey)

	q = QueryState{}.WithSort("", SortDesc)
	assert.Equal(t, SortNone, q.SortDir)
}

func TestPipelineApply(t *testing.T) {
	cols := Columns[item]{
		{Key: "name", Header: "Name", Sortable: true, Value: byName},
		{Key: "qty", Header: "Qty", Value: byQty},
	}
	rows := []item{
		{id: "a", name: "Laptop Pro", qty: 3},
		{id: "b", name: "Desktop", qty: 1},
		{id: "c", name: "laptop Air", qty: 2},
	}
	p := NewPipeline(cols, []Accessor[item]{byName}, language.English)

	out := p.Apply(rows, QueryState{SearchText: "laptop", SortKey: "name", SortDir: SortAsc})
	assert.Equal(t, []string{"c", "a"}, ids(out))

	out = p.Apply(rows, QueryState{SortKey: "qty", SortDir: SortAsc})
	assert.Equal(t, []string{"a", "b", "c"}, ids(out), "unsortable columns leave order alone")
}

func TestParseSortDirection(t *testing.T) {
	assert.Equal(t, SortAsc, ParseSortDirection("ASC"))
	assert.Equal(t, SortDesc, ParseSortDirection(" descending "))
	assert.Equal(t, SortNone, ParseSortDirection("sideways"))
}
