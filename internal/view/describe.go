// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package view

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/lendr/lendr/internal/dao"
	"github.com/lendr/lendr/internal/ui"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// ExtrasFunc renders resource specific sections shown above the record.
type ExtrasFunc func(ctx context.Context, id string) (string, error)

// Describe displays one record as YAML or JSON, with optional extra sections.
type Describe struct {
	*tview.TextView

	rid     *dao.ResourceID
	id      string
	factory dao.Factory
	extras  ExtrasFunc
	format  string
	actions *ui.KeyActions
	backFn  func()
	wrapOn  bool
}

// NewDescribe creates a detail view for record id of resource rid.
func NewDescribe(rid *dao.ResourceID, id string, f dao.Factory) *Describe {
	return &Describe{
		TextView: tview.NewTextView(),
		rid:      rid,
		id:       id,
		factory:  f,
		format:   formatYAML,
		actions:  ui.NewKeyActions(),
	}
}

// Init initializes the describe view.
func (d *Describe) Init(context.Context) error {
	d.SetDynamicColors(true)
	d.SetWrap(false)
	d.SetWordWrap(false)
	d.SetScrollable(true)
	d.SetBorder(true)
	d.SetBorderPadding(0, 0, 1, 1)
	d.SetBorderColor(tcell.ColorAqua)
	d.SetBackgroundColor(tcell.ColorDefault)

	d.bindKeys()
	d.SetInputCapture(d.keyboard)

	return nil
}

// Start renders the record.
func (d *Describe) Start() {
	d.Refresh()
}

// Stop is a lifecycle hook.
func (*Describe) Stop() {}

// Name returns the view name.
func (d *Describe) Name() string {
	return d.rid.Resource + ":" + d.id
}

// Hints returns the menu hints for this view.
func (d *Describe) Hints() ui.MenuHints {
	return d.actions.Hints()
}

// SetExtras sets the extra sections renderer.
func (d *Describe) SetExtras(fn ExtrasFunc) {
	d.extras = fn
}

// SetBackFn sets the callback for back navigation.
func (d *Describe) SetBackFn(fn func()) {
	d.backFn = fn
}

// Refresh reloads the record content.
func (d *Describe) Refresh() {
	d.Clear()
	d.SetText(d.content(context.Background()))
	d.updateTitle()
	d.ScrollToBeginning()
}

func (d *Describe) content(ctx context.Context) string {
	raw, err := d.fetch(ctx)
	if err != nil {
		return fmt.Sprintf("[red::]%s[-::]", tview.Escape(err.Error()))
	}

	var b strings.Builder
	if d.extras != nil {
		extra, err := d.extras(ctx, d.id)
		if err != nil {
			fmt.Fprintf(&b, "[red::]%s[-::]\n\n", tview.Escape(err.Error()))
		} else if extra != "" {
			b.WriteString(extra)
			b.WriteString("\n")
		}
	}
	if d.format == formatJSON {
		b.WriteString(tview.Escape(raw))
		return b.String()
	}
	b.WriteString(highlightYAML(raw))

	return b.String()
}

func (d *Describe) fetch(ctx context.Context) (string, error) {
	acc, err := dao.AccessorFor(d.factory, d.rid)
	if err != nil {
		return "", err
	}
	desc, ok := acc.(dao.Describer)
	if !ok {
		return "", fmt.Errorf("%s records cannot be described", d.rid)
	}
	if d.format == formatJSON {
		return desc.ToJSON(ctx, d.id)
	}
	return desc.Describe(ctx, d.id)
}

func (d *Describe) bindKeys() {
	d.actions.Bulk(ui.KeyMap{
		ui.KeyY:      ui.NewKeyAction("YAML", d.formatCmd(formatYAML), true),
		ui.KeyShiftJ: ui.NewKeyAction("JSON", d.formatCmd(formatJSON), true),
		ui.KeyW:      ui.NewKeyAction("Wrap", d.toggleWrap, true),
		tcell.KeyEsc: ui.NewKeyAction("Back", d.backCmd, true),
		ui.KeyQ:      ui.NewSharedKeyAction("Back", d.backCmd, false),
	})
}

func (d *Describe) toggleWrap(*tcell.EventKey) *tcell.EventKey {
	d.wrapOn = !d.wrapOn
	d.SetWrap(d.wrapOn)
	d.SetWordWrap(d.wrapOn)
	return nil
}

// keyboard runs bound actions and leaves scrolling to the text view.
func (d *Describe) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	if a, ok := d.actions.Get(ui.AsKey(evt)); ok {
		return a.Action(evt)
	}

	return evt
}

func (d *Describe) formatCmd(format string) ui.ActionHandler {
	return func(*tcell.EventKey) *tcell.EventKey {
		d.format = format
		d.Refresh()
		return nil
	}
}

func (d *Describe) backCmd(*tcell.EventKey) *tcell.EventKey {
	if d.backFn != nil {
		d.backFn()
	}
	return nil
}

func (d *Describe) updateTitle() {
	d.SetTitle(fmt.Sprintf(" %s/%s [%s] ", d.rid, d.id, strings.ToUpper(d.format)))
}

// highlightYAML colors keys and scalar values of a YAML document.
func highlightYAML(content string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		trimmed := strings.TrimLeft(line, " -")
		indent := line[:len(line)-len(trimmed)]

		key, value, ok := strings.Cut(trimmed, ":")
		if !ok || strings.ContainsAny(key, " \"'") {
			fmt.Fprintf(&b, "%s%s\n", indent, colorizeValue(tview.Escape(trimmed)))
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			fmt.Fprintf(&b, "%s[aqua::]%s:[-::]\n", indent, key)
			continue
		}
		fmt.Fprintf(&b, "%s[aqua::]%s:[-::] %s\n", indent, key, colorizeValue(tview.Escape(value)))
	}

	return b.String()
}

// colorizeValue applies color based on value type.
func colorizeValue(value string) string {
	trimmed := strings.Trim(value, "\"'")

	switch strings.ToLower(trimmed) {
	case "true":
		return "[green::]" + value + "[-::]"
	case "false":
		return "[red::]" + value + "[-::]"
	case "null", "~":
		return "[gray::]" + value + "[-::]"
	case dao.DeviceAvailable, dao.StatusApproved, dao.StatusActive, dao.StatusReturned:
		return "[green::]" + value + "[-::]"
	case dao.DeviceRetired, dao.StatusRejected:
		return "[red::]" + value + "[-::]"
	case dao.StatusPending, dao.DeviceMaintenance, dao.DeviceBorrowed:
		return "[yellow::]" + value + "[-::]"
	}
	if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return "[fuchsia::]" + value + "[-::]"
	}

	return value
}
