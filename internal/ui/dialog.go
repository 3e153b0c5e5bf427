// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package ui

import (
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

const (
	confirmPageID = "confirm-dialog"
	errorPageID   = "error-dialog"
	infoPageID    = "info-dialog"
)

// Dialog represents a modal dialog shown over a pages container.
type Dialog struct {
	*tview.Modal

	pages  *tview.Pages
	pageID string
	onDone func()
}

// NewDialog creates a new dialog.
func NewDialog(pages *tview.Pages, pageID string) *Dialog {
	d := &Dialog{
		Modal:  tview.NewModal(),
		pages:  pages,
		pageID: pageID,
	}
	d.SetBackgroundColor(tcell.ColorDefault)
	d.SetTextColor(tcell.ColorWhite)

	return d
}

// SetMessage sets the dialog message.
func (d *Dialog) SetMessage(msg string) *Dialog {
	d.Modal.SetText(msg)
	return d
}

// SetDoneCallback sets the callback for when dialog closes.
func (d *Dialog) SetDoneCallback(fn func()) *Dialog {
	d.onDone = fn
	return d
}

// SetButtonHandler installs labels and the button click handler.
func (d *Dialog) SetButtonHandler(labels []string, handler func(int, string)) *Dialog {
	d.AddButtons(labels)
	d.SetDoneFunc(func(idx int, label string) {
		d.Dismiss()
		if handler != nil {
			handler(idx, label)
		}
	})
	return d
}

// SetColors configures dialog colors.
func (d *Dialog) SetColors(text, btnBg, btnText tcell.Color) *Dialog {
	d.SetTextColor(text)
	d.SetButtonBackgroundColor(btnBg)
	d.SetButtonTextColor(btnText)
	return d
}

// Show displays the dialog as a modal overlay.
func (d *Dialog) Show() {
	if d.pages != nil {
		d.pages.AddPage(d.pageID, d, true, true)
	}
}

// Dismiss removes the dialog from display.
func (d *Dialog) Dismiss() {
	if d.pages != nil {
		d.pages.RemovePage(d.pageID)
	}
	if d.onDone != nil {
		d.onDone()
	}
}

// PageID returns the dialog's page identifier.
func (d *Dialog) PageID() string {
	return d.pageID
}

// ShowConfirm asks a yes/no question and calls ok on yes.
func ShowConfirm(pages *tview.Pages, msg string, ok func(), done func()) *Dialog {
	d := NewDialog(pages, confirmPageID).
		SetMessage(msg).
		SetColors(tcell.ColorWhite, tcell.ColorDarkCyan, tcell.ColorWhite).
		SetDoneCallback(done).
		SetButtonHandler([]string{"Yes", "No"}, func(idx int, _ string) {
			if idx == 0 && ok != nil {
				ok()
			}
		})
	d.Show()

	return d
}

// ShowError displays an error with a single OK button.
func ShowError(pages *tview.Pages, msg string, done func()) *Dialog {
	d := NewDialog(pages, errorPageID).
		SetMessage(msg).
		SetColors(tcell.ColorRed, tcell.ColorRed, tcell.ColorWhite).
		SetDoneCallback(done).
		SetButtonHandler([]string{"OK"}, nil)
	d.Show()

	return d
}

// ShowInfo displays a message with a single OK button.
func ShowInfo(pages *tview.Pages, msg string, done func()) *Dialog {
	d := NewDialog(pages, infoPageID).
		SetMessage(msg).
		SetDoneCallback(done).
		SetButtonHandler([]string{"OK"}, nil)
	d.Show()

	return d
}
