package output

import (
	"bytes"
	"testing"

	"github.com/derailed/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendr/lendr/internal/model1"
)

type gadget struct {
	Name string `json:"name" yaml:"name"`
	Qty  int    `json:"qty" yaml:"qty"`
	Note string `json:"note,omitempty" yaml:"note,omitempty"`
}

var gadgetCols = model1.Columns[gadget]{
	{Key: "name", Header: "Name", Value: func(g gadget) any { return g.Name }},
	{Key: "qty", Header: "Qty", Value: func(g gadget) any { return g.Qty }},
	{Key: "note", Header: "Note", Value: func(g gadget) any { return g.Note }, Attrs: model1.Attrs{Wide: true}},
}

var gadgets = []gadget{{Name: "Laptop", Qty: 2, Note: "new"}, {Name: "Dock", Qty: 10}}

func render(t *testing.T, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	opts.Color = ColorNever
	require.NoError(t, Print(NewPrinter(&buf, opts), gadgetCols, gadgets, nil))
	return buf.String()
}

func TestParseFormat(t *testing.T) {
	uu := map[string]struct {
		in  string
		e   Format
		err bool
	}{
		"empty": {in: "", e: FormatTable},
		"json":  {in: " JSON ", e: FormatJSON},
		"wide":  {in: "wide", e: FormatWide},
		"bad":   {in: "xml", err: true},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			f, err := ParseFormat(u.in)
			if u.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, u.e, f)
		})
	}
}

func TestPrintTable(t *testing.T) {
	assert.Equal(t, "NAME    QTY\nLaptop  2\nDock    10\n", render(t, Options{Format: FormatTable}))
	assert.Equal(t, "NAME    QTY  NOTE\nLaptop  2    new\nDock    10\n", render(t, Options{Format: FormatWide}))
}

func TestPrintTableColorer(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, Options{Color: ColorNever})
	colorer := func(g gadget, _ model1.ResEvent) tcell.Color { return model1.ErrColor }

	require.NoError(t, Print(p, gadgetCols, gadgets, colorer))
	assert.Equal(t, "NAME    QTY\nLaptop  2\nDock    10\n", buf.String())
}

func TestPrintJSONAndYAML(t *testing.T) {
	assert.JSONEq(t, `[{"name":"Laptop","qty":2,"note":"new"},{"name":"Dock","qty":10}]`, render(t, Options{Format: FormatJSON}))
	assert.Equal(t, "- name: Laptop\n  qty: 2\n  note: new\n- name: Dock\n  qty: 10\n", render(t, Options{Format: FormatYAML}))
}

func TestPrintCSV(t *testing.T) {
	assert.Equal(t, "Name,Qty,Note\nLaptop,2,new\nDock,10,\n", render(t, Options{Format: FormatCSV}))
}

func TestPrintEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(NewPrinter(&buf, Options{Format: FormatJSON}), gadgetCols, nil, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestPrintQuery(t *testing.T) {
	assert.Equal(t, "\"Laptop\"\n\"Dock\"\n", render(t, Options{Query: ".[].name"}))
	assert.Equal(t, "12\n", render(t, Options{Query: "map(.qty) | add"}))

	var buf bytes.Buffer
	err := Print(NewPrinter(&buf, Options{Query: ".[", Color: ColorNever}), gadgetCols, gadgets, nil)
	assert.Error(t, err)
}

func TestPrintJSONPath(t *testing.T) {
	assert.Equal(t, "\"Dock\"\n", render(t, Options{JSONPath: "$[1].name"}))
	assert.Equal(t, "\"Dock\"\n", render(t, Options{JSONPath: "[1].name"}))
	assert.Equal(t, "[\n  2,\n  10\n]\n", render(t, Options{JSONPath: "$[*].qty"}))
}
