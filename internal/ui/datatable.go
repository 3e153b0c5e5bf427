// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/lendr/lendr/internal/model"
	"github.com/lendr/lendr/internal/model1"
)

const (
	// TitleFmt formats the table title with resource and filtered count.
	TitleFmt = " <%s>[%d] "

	// SearchTitleFmt formats the table title while a search is active.
	SearchTitleFmt = " <%s>[%d] </%s> "

	// SortAscGlyph marks an ascending sort column.
	SortAscGlyph = "▲"

	// SortDescGlyph marks a descending sort column.
	SortDescGlyph = "▼"

	// SortNoneGlyph marks a sortable column that is not sorted.
	SortNoneGlyph = "⇅"

	// EmptyGlyph heads the empty state block.
	EmptyGlyph = "∅"
)

// Checkbox texts, escaped so tview does not read them as style tags.
var (
	CheckboxOn    = tview.Escape("[x]")
	CheckboxOff   = tview.Escape("[ ]")
	CheckboxMixed = tview.Escape("[-]")
)

// KindFunc reports how a row changed since the previous load.
type KindFunc func(id string) model1.ResEvent

// DataTable renders a model.Table as a search line, a body and a pager footer.
type DataTable[R any] struct {
	*tview.Flex

	name    string
	title   string
	model   *model.Table[R]
	labels  Labeler
	search  *tview.TextView
	body    *tview.Table
	footer  *tview.TextView
	actions *KeyActions
	colorer model1.ColorerFunc[R]
	kindFn  KindFunc
	wide    bool
	view    model.View[R]
	mx      sync.RWMutex
}

// NewDataTable returns a data table named name, bound to m.
func NewDataTable[R any](name, title string, m *model.Table[R], labels Labeler) *DataTable[R] {
	return &DataTable[R]{
		Flex:    tview.NewFlex(),
		name:    name,
		title:   title,
		model:   m,
		labels:  labels,
		search:  tview.NewTextView(),
		body:    tview.NewTable(),
		footer:  tview.NewTextView(),
		actions: NewKeyActions(),
		colorer: model1.DefaultColorer[R],
	}
}

// Init initializes the table component.
func (t *DataTable[R]) Init(context.Context) error {
	t.SetDirection(tview.FlexRow)
	t.SetBorder(true)
	t.SetBorderAttributes(tcell.AttrBold)
	t.SetBorderPadding(0, 0, 1, 1)
	t.SetBorderColor(tcell.ColorAqua)
	t.SetBackgroundColor(tcell.ColorDefault)

	for _, tv := range []*tview.TextView{t.search, t.footer} {
		tv.SetDynamicColors(true)
		tv.SetWrap(false)
		tv.SetBackgroundColor(tcell.ColorDefault)
	}

	t.body.SetFixed(1, 0)
	t.body.SetSelectable(true, false)
	t.body.SetBackgroundColor(tcell.ColorDefault)
	t.body.SetInputCapture(t.keyboard)

	opts := t.model.Options()
	if opts.Searchable {
		t.AddItem(t.search, 1, 0, false)
	}
	t.AddItem(t.body, 0, 1, true)
	t.AddItem(t.footer, 1, 0, false)

	t.bindKeys()
	t.model.AddListener(t)
	t.render(t.model.View())

	return nil
}

// Start is a lifecycle hook.
func (*DataTable[R]) Start() {}

// Stop is a lifecycle hook.
func (*DataTable[R]) Stop() {}

// Name returns the component name.
func (t *DataTable[R]) Name() string {
	return t.name
}

// Model returns the bound table state.
func (t *DataTable[R]) Model() *model.Table[R] {
	return t.model
}

// Body returns the rows widget.
func (t *DataTable[R]) Body() *tview.Table {
	return t.body
}

// Actions returns the key actions.
func (t *DataTable[R]) Actions() *KeyActions {
	return t.actions
}

// Hints returns menu hints for key bindings.
func (t *DataTable[R]) Hints() MenuHints {
	return t.actions.Hints()
}

// SetColorer sets the row colorer.
func (t *DataTable[R]) SetColorer(c model1.ColorerFunc[R]) {
	t.mx.Lock()
	defer t.mx.Unlock()

	if c == nil {
		c = model1.DefaultColorer[R]
	}
	t.colorer = c
}

// SetKindFn sets the change kind lookup used for row colors.
func (t *DataTable[R]) SetKindFn(fn KindFunc) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.kindFn = fn
}

// SetFilter changes the search text.
func (t *DataTable[R]) SetFilter(text string) {
	t.model.SetSearch(text)
}

// Filter returns the current search text.
func (t *DataTable[R]) Filter() string {
	return t.model.Query().SearchText
}

// ToggleWide flips between narrow and wide columns.
func (t *DataTable[R]) ToggleWide() {
	t.mx.Lock()
	t.wide = !t.wide
	t.mx.Unlock()

	t.model.Refresh()
}

// SetWide sets the column width mode.
func (t *DataTable[R]) SetWide(wide bool) {
	t.mx.Lock()
	t.wide = wide
	t.mx.Unlock()
}

// IsWide returns true if wide columns are shown.
func (t *DataTable[R]) IsWide() bool {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.wide
}

// SelectedRow returns the row under the cursor.
func (t *DataTable[R]) SelectedRow() (R, bool) {
	row, _ := t.body.GetSelection()
	return t.model.RowAt(row - 1)
}

// CurrentView returns the last rendered view.
func (t *DataTable[R]) CurrentView() model.View[R] {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.view
}

// TableChanged implements model.TableListener.
func (t *DataTable[R]) TableChanged(v model.View[R]) {
	t.render(v)
}

// Click dispatches a pointer gesture on page row row and display column col.
// The checkbox column toggles the row, anything else activates it.
func (t *DataTable[R]) Click(row, col int) {
	if t.model.Options().Selectable && col == 0 {
		t.model.ToggleRowAt(row)
		return
	}
	t.model.ClickRow(row)
}

// ClickHeader dispatches a pointer gesture on the header of display column col.
func (t *DataTable[R]) ClickHeader(col int) {
	opts := t.model.Options()
	if opts.Selectable {
		if col == 0 {
			t.model.ToggleAllVisible()
			return
		}
		col--
	}
	cols := t.visibleColumns()
	if col < 0 || col >= len(cols) {
		return
	}
	t.model.ToggleSort(cols[col].Key)
}

// headerClicked routes a mouse click on a header cell to ClickHeader.
// The cursor stays put since the body is redrawn.
func (t *DataTable[R]) headerClicked(col int) func() bool {
	return func() bool {
		t.ClickHeader(col)
		return true
	}
}

// rowClicked routes a mouse click on a body cell to Click. Activation also
// moves the cursor onto the row, a checkbox toggle does not.
func (t *DataTable[R]) rowClicked(row, col int) func() bool {
	return func() bool {
		t.Click(row, col)
		return t.model.Options().Selectable && col == 0
	}
}

// SortColumn toggles the sort of the n-th (1-based) visible data column.
func (t *DataTable[R]) SortColumn(n int) {
	cols := t.visibleColumns()
	if n < 1 || n > len(cols) {
		return
	}
	t.model.ToggleSort(cols[n-1].Key)
}

func (t *DataTable[R]) visibleColumns() model1.Columns[R] {
	return t.model.Columns().Visible(t.IsWide())
}

func (t *DataTable[R]) bindKeys() {
	t.actions.Bulk(KeyMap{
		tcell.KeyEnter: NewKeyAction("Open", t.activateCmd, true),
		KeyLeftBrack:   NewKeyAction("Prev Page", t.pageCmd(t.model.PrevPage), true),
		KeyRightBrack:  NewKeyAction("Next Page", t.pageCmd(t.model.NextPage), true),
		KeyLeftBrace:   NewKeyAction("First Page", t.pageCmd(t.model.FirstPage), false),
		KeyRightBrace:  NewKeyAction("Last Page", t.pageCmd(t.model.LastPage), false),
		KeyZ:           NewKeyAction("Page Size", t.pageSizeCmd(1), true),
		KeyShiftZ:      NewKeyAction("Page Size Back", t.pageSizeCmd(-1), false),
		KeyW:           NewKeyAction("Wide", t.wideCmd, true),
		tcell.KeyCtrlS: NewKeyAction("Clear Sort", t.clearSortCmd, false),
	})

	if t.model.Options().Selectable {
		t.actions.Bulk(KeyMap{
			KeySpace: NewKeyAction("Mark", t.markCmd, true),
			KeyA:     NewKeyAction("Mark Page", t.markAllCmd, true),
		})
	}

	for n, k := range NumKeys {
		t.actions.Add(k, NewKeyAction("Sort "+strconv.Itoa(n), func(*tcell.EventKey) *tcell.EventKey {
			t.SortColumn(n)
			return nil
		}, false))
	}
}

// keyboard handles table keyboard input.
func (t *DataTable[R]) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	row, col := t.body.GetSelection()
	rowCount := t.body.GetRowCount()

	if evt.Key() == tcell.KeyRune {
		switch evt.Rune() {
		case 'j':
			if row < rowCount-1 {
				t.body.Select(row+1, col)
			}
			return nil
		case 'k':
			if row > 1 {
				t.body.Select(row-1, col)
			}
			return nil
		case 'g':
			if rowCount > 1 {
				t.body.Select(1, col)
			}
			return nil
		case 'G':
			if rowCount > 1 {
				t.body.Select(rowCount-1, col)
			}
			return nil
		}
	}

	if a, ok := t.actions.Get(AsKey(evt)); ok {
		return a.Action(evt)
	}

	return evt
}

func (t *DataTable[R]) activateCmd(*tcell.EventKey) *tcell.EventKey {
	row, _ := t.body.GetSelection()
	t.model.ClickRow(row - 1)
	return nil
}

func (t *DataTable[R]) markCmd(*tcell.EventKey) *tcell.EventKey {
	row, col := t.body.GetSelection()
	t.model.ToggleRowAt(row - 1)
	if row < t.body.GetRowCount()-1 {
		t.body.Select(row+1, col)
	}
	return nil
}

func (t *DataTable[R]) markAllCmd(*tcell.EventKey) *tcell.EventKey {
	t.model.ToggleAllVisible()
	return nil
}

func (t *DataTable[R]) pageCmd(fn func()) ActionHandler {
	return func(*tcell.EventKey) *tcell.EventKey {
		fn()
		t.body.Select(1, 0)
		return nil
	}
}

func (t *DataTable[R]) pageSizeCmd(step int) ActionHandler {
	return func(*tcell.EventKey) *tcell.EventKey {
		if t.model.Options().Paginated {
			t.model.CyclePageSize(step)
		}
		return nil
	}
}

func (t *DataTable[R]) wideCmd(*tcell.EventKey) *tcell.EventKey {
	t.ToggleWide()
	return nil
}

func (t *DataTable[R]) clearSortCmd(*tcell.EventKey) *tcell.EventKey {
	t.model.SetSort("", model1.SortNone)
	return nil
}

func (t *DataTable[R]) render(v model.View[R]) {
	t.mx.Lock()
	t.view = v
	wide, colorer, kindFn := t.wide, t.colorer, t.kindFn
	t.mx.Unlock()

	cols := t.model.Columns().Visible(wide)
	row, _ := t.body.GetSelection()

	t.body.Clear()
	offset := t.renderHeader(v, cols)
	if v.Page.Empty() {
		t.renderEmpty(len(cols) + offset)
	} else {
		for i, r := range v.Page.Rows {
			kind := model1.EventUnchanged
			if kindFn != nil {
				kind = kindFn(t.model.RowID(r))
			}
			t.renderRow(i+1, r, v.IsSelected(i), cols, offset, colorer(r, kind))
		}
	}
	t.body.Select(max(1, min(row, len(v.Page.Rows))), 0)

	t.renderSearch(v)
	t.renderFooter(v)
	t.renderTitle(v)
}

func (t *DataTable[R]) renderHeader(v model.View[R], cols model1.Columns[R]) int {
	var offset int
	if v.Selectable {
		box := CheckboxOff
		switch {
		case v.AllSelected:
			box = CheckboxOn
		case v.SomeSelected:
			box = CheckboxMixed
		}
		t.body.SetCell(0, 0, headerCell(box, tview.AlignLeft).SetClickedFunc(t.headerClicked(0)))
		offset = 1
	}

	for i, c := range cols {
		text := tview.Escape(c.Header)
		if c.Sortable {
			text += " " + SortGlyph(v.Query, c.Key)
		}
		cell := headerCell(text, c.Align).SetClickedFunc(t.headerClicked(i + offset))
		if v.Query.Sorted() && v.Query.SortKey == c.Key {
			cell.SetAttributes(tcell.AttrBold | tcell.AttrUnderline)
		}
		t.body.SetCell(0, i+offset, cell)
	}

	return offset
}

func (t *DataTable[R]) renderRow(idx int, r R, checked bool, cols model1.Columns[R], offset int, color tcell.Color) {
	if offset > 0 {
		box := CheckboxOff
		if checked {
			box = CheckboxOn
		}
		t.body.SetCell(idx, 0, tview.NewTableCell(box).
			SetTextColor(color).
			SetBackgroundColor(tcell.ColorDefault).
			SetClickedFunc(t.rowClicked(idx-1, 0)))
	}

	for i, c := range cols {
		cell := tview.NewTableCell(tview.Escape(c.Cell(r))).
			SetTextColor(color).
			SetBackgroundColor(tcell.ColorDefault).
			SetAlign(c.Align).
			SetExpansion(1).
			SetClickedFunc(t.rowClicked(idx-1, i+offset))
		if i == 0 {
			cell.SetReference(t.model.RowID(r))
		}
		t.body.SetCell(idx, i+offset, cell)
	}
}

func (t *DataTable[R]) renderEmpty(span int) {
	opts := t.model.Options()
	title, desc := opts.EmptyText, opts.EmptyDescription
	if title == "" {
		title = t.labels.T("empty.title")
	}
	if desc == "" {
		desc = t.labels.T("empty.description")
	}

	t.body.SetCell(1, 0, tview.NewTableCell(EmptyGlyph+" "+tview.Escape(title)).
		SetTextColor(tcell.ColorOrange).
		SetAttributes(tcell.AttrBold).
		SetSelectable(false))
	t.body.SetCell(2, 0, tview.NewTableCell(tview.Escape(desc)).
		SetTextColor(tcell.ColorGray).
		SetSelectable(false))
	for c := 1; c < span; c++ {
		t.body.SetCell(1, c, tview.NewTableCell("").SetSelectable(false))
	}
}

func (t *DataTable[R]) renderSearch(v model.View[R]) {
	t.search.Clear()
	if !v.Searchable {
		return
	}
	if v.Query.SearchText == "" {
		placeholder := t.model.Options().SearchPlaceholder
		if placeholder == "" {
			placeholder = t.labels.T("search.placeholder")
		}
		_, _ = fmt.Fprintf(t.search, "[gray::-]%s[-::-]", tview.Escape(placeholder))
		return
	}
	_, _ = fmt.Fprintf(t.search, "[aqua::b]/[-::-]%s", tview.Escape(v.Query.SearchText))
}

func (t *DataTable[R]) renderFooter(v model.View[R]) {
	t.footer.Clear()

	parts := make([]string, 0, 4)
	if v.Paginated {
		parts = append(parts, t.pageSizeSelector(v), t.pageControls(v))
	}
	parts = append(parts, t.labels.Tf("pager.showing", v.FirstItem(), v.Page.EndIndex, v.Page.TotalItems))
	if v.Selectable && v.SelectedN > 0 {
		parts = append(parts, "[orange::]"+t.labels.Tf("selection.count", v.SelectedN)+"[-::]")
	}

	_, _ = fmt.Fprint(t.footer, strings.Join(parts, " │ "))
}

func (t *DataTable[R]) pageSizeSelector(v model.View[R]) string {
	var b strings.Builder
	b.WriteString(t.labels.T("pager.perPage"))
	b.WriteString(":")
	for _, n := range v.PageSizes {
		if n == v.PageSize {
			fmt.Fprintf(&b, " [black:aqua:b]%d[-:-:-]", n)
			continue
		}
		fmt.Fprintf(&b, " %d", n)
	}
	return b.String()
}

func (t *DataTable[R]) pageControls(v model.View[R]) string {
	control := func(key, glyph string, enabled bool, before bool) string {
		label := t.labels.T(key)
		if before {
			label = glyph + " " + label
		} else {
			label = label + " " + glyph
		}
		if !enabled {
			return "[gray::d]" + label + "[-::-]"
		}
		return label
	}

	return strings.Join([]string{
		control("pager.first", "«", v.Page.HasPrev(), true),
		control("pager.prev", "‹", v.Page.HasPrev(), true),
		t.labels.Tf("pager.page", v.Page.Current, v.Page.TotalPages),
		control("pager.next", "›", v.Page.HasNext(), false),
		control("pager.last", "»", v.Page.HasNext(), false),
	}, " ")
}

func (t *DataTable[R]) renderTitle(v model.View[R]) {
	if v.Query.SearchText != "" {
		t.SetTitle(fmt.Sprintf(SearchTitleFmt, t.title, v.Page.TotalItems, tview.Escape(v.Query.SearchText)))
		return
	}
	t.SetTitle(fmt.Sprintf(TitleFmt, t.title, v.Page.TotalItems))
}

// SortGlyph returns the header marker of a sortable column.
func SortGlyph(q model1.QueryState, key string) string {
	if !q.Sorted() || q.SortKey != key {
		return SortNoneGlyph
	}
	if q.SortDir == model1.SortDesc {
		return SortDescGlyph
	}
	return SortAscGlyph
}

func headerCell(text string, align int) *tview.TableCell {
	return tview.NewTableCell(text).
		SetTextColor(tcell.ColorYellow).
		SetBackgroundColor(tcell.ColorDefault).
		SetAlign(align).
		SetExpansion(1).
		SetSelectable(false)
}
