// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package view

import (
	"context"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/lendr/lendr/internal/config"
	"github.com/lendr/lendr/internal/ui"
)

const helpName = "help"

// HelpBind represents a single keybinding.
type HelpBind struct {
	Key  string
	Desc string
}

// Help displays the key bindings, the resource aliases and custom hotkeys.
type Help struct {
	*tview.Table

	aliases *config.Aliases
	hotkeys *config.HotKeys
	closeFn func()
}

// NewHelp creates a new help view.
func NewHelp(aliases *config.Aliases, hotkeys *config.HotKeys) *Help {
	return &Help{
		Table:   tview.NewTable(),
		aliases: aliases,
		hotkeys: hotkeys,
	}
}

// Init builds the help table.
func (h *Help) Init(context.Context) error {
	h.SetBorder(true)
	h.SetTitle(" Help ")
	h.SetTitleAlign(tview.AlignCenter)
	h.SetBorderColor(tcell.ColorYellow)
	h.SetBackgroundColor(tcell.ColorDefault)
	h.SetSelectable(false, false)
	h.SetInputCapture(h.keyboard)
	h.populate()

	return nil
}

// Start is a lifecycle hook.
func (*Help) Start() {}

// Stop is a lifecycle hook.
func (*Help) Stop() {}

// Name returns the view name.
func (*Help) Name() string {
	return helpName
}

// Hints returns the menu hints.
func (*Help) Hints() ui.MenuHints {
	return ui.MenuHints{{Mnemonic: "esc", Description: "Close", Visible: true}}
}

// SetCloseFn sets the callback when help is closed.
func (h *Help) SetCloseFn(fn func()) {
	h.closeFn = fn
}

func (h *Help) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	switch {
	case evt.Key() == tcell.KeyEsc, evt.Key() == tcell.KeyEnter,
		evt.Key() == tcell.KeyRune && (evt.Rune() == '?' || evt.Rune() == 'q'):
		if h.closeFn != nil {
			h.closeFn()
		}
		return nil
	}

	return evt
}

// Columns returns the help sections in display order.
func (h *Help) Columns() ([]string, [][]HelpBind) {
	general := []HelpBind{
		{"<:>", "Command"},
		{"</>", "Search"},
		{"<?>", "Help"},
		{"<esc>", "Back"},
		{"<q>", "Quit"},
		{"<ctrl-r>", "Refresh"},
	}
	table := []HelpBind{
		{"<j>/<k>", "Down/Up"},
		{"<g>/<G>", "Top/Bottom"},
		{"<enter>", "Open"},
		{"<space>", "Mark"},
		{"<a>", "Mark page"},
		{"<1-9>", "Sort column"},
		{"<ctrl-s>", "Clear sort"},
		{"<w>", "Wide"},
	}
	paging := []HelpBind{
		{"<[>/<]>", "Prev/Next page"},
		{"<{>/<}>", "First/Last page"},
		{"<z>/<Z>", "Page size"},
		{"<x>", "Export CSV"},
		{"<f>", "Favorite"},
		{"<y>/<J>", "YAML/JSON"},
	}

	var resources []HelpBind
	if h.aliases != nil {
		for _, name := range h.aliases.Names() {
			rid := h.aliases.Resolve(name)
			if short := h.aliases.ShortNames(rid); len(short) > 0 && short[0] != name {
				continue
			}
			resources = append(resources, HelpBind{":" + name, rid})
		}
	}
	if h.hotkeys != nil {
		for _, name := range h.hotkeys.Names() {
			hk := h.hotkeys.Get(name)
			if hk == nil {
				continue
			}
			resources = append(resources, HelpBind{"<" + hk.ShortCut + ">", hk.Description})
		}
	}

	return []string{"RESOURCES", "GENERAL", "TABLE", "PAGING"},
		[][]HelpBind{resources, general, table, paging}
}

func (h *Help) populate() {
	h.Clear()
	headers, columns := h.Columns()

	maxRows := 0
	for _, col := range columns {
		maxRows = max(maxRows, len(col))
	}

	// Each section spans a key, a description and a spacer column.
	const colWidth = 3
	for colIdx, col := range columns {
		baseCol := colIdx * colWidth
		h.SetCell(0, baseCol, tview.NewTableCell(headers[colIdx]).
			SetTextColor(tcell.ColorAqua).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false))

		for rowIdx, bind := range col {
			h.SetCell(rowIdx+1, baseCol, tview.NewTableCell(tview.Escape(bind.Key)).
				SetTextColor(tcell.ColorYellow).
				SetSelectable(false))
			h.SetCell(rowIdx+1, baseCol+1, tview.NewTableCell(bind.Desc).
				SetTextColor(tcell.ColorWhite).
				SetSelectable(false).
				SetExpansion(1))
		}

		if colIdx < len(columns)-1 {
			for row := 0; row <= maxRows; row++ {
				h.SetCell(row, baseCol+2, tview.NewTableCell("").
					SetSelectable(false).
					SetExpansion(1))
			}
		}
	}

	h.SetCell(maxRows+2, 0, tview.NewTableCell("<esc> to close").
		SetTextColor(tcell.ColorGray).
		SetSelectable(false))
}
