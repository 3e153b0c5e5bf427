// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package ui

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/fvbommel/sortorder"
)

// maxHistory caps the recalled command lines.
const maxHistory = 20

// IndicatorMode represents the current input mode.
type IndicatorMode int

const (
	// ModeNormal is the default navigation mode.
	ModeNormal IndicatorMode = iota
	// ModeCommand is for entering commands (: prefix).
	ModeCommand
	// ModeFilter is for searching rows (/ prefix).
	ModeFilter
)

var prompts = map[IndicatorMode]string{
	ModeNormal:  "📦>",
	ModeCommand: "📦:",
	ModeFilter:  "🔍/",
}

// CmdBar is the bordered input line above the content. In command mode it
// completes resource names, in filter mode it streams the search text.
type CmdBar struct {
	*tview.TextView

	mode        IndicatorMode
	text        []rune
	filter      string
	commands    []string
	suggestions []string
	pick        int
	history     []string
	recall      int
	cmdFn       func(string)
	filterFn    func(string)
	cancelFn    func()
	activeFn    func(bool)
	mx          sync.RWMutex
}

// NewCmdBar creates a new command bar.
func NewCmdBar() *CmdBar {
	c := CmdBar{TextView: tview.NewTextView()}
	c.SetBorder(true)
	c.SetBorderColor(tcell.ColorDarkCyan)
	c.SetBackgroundColor(tcell.ColorDefault)
	c.SetDynamicColors(true)
	c.SetWrap(false)
	c.SetInputCapture(c.keyboard)
	c.render()

	return &c
}

// SetCommandFn sets the callback for command execution.
func (c *CmdBar) SetCommandFn(fn func(string)) { c.cmdFn = fn }

// SetFilterFn sets the callback for search text changes.
func (c *CmdBar) SetFilterFn(fn func(string)) { c.filterFn = fn }

// SetCancelFn sets the callback for an aborted search.
func (c *CmdBar) SetCancelFn(fn func()) { c.cancelFn = fn }

// SetActiveFn sets the callback for input mode changes.
func (c *CmdBar) SetActiveFn(fn func(bool)) { c.activeFn = fn }

// SetCommands sets the names offered as completions, in natural order.
func (c *CmdBar) SetCommands(cmds []string) {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.commands = slices.Clone(cmds)
	sort.Sort(sortorder.Natural(c.commands))
}

// IsActive returns whether the bar is accepting input.
func (c *CmdBar) IsActive() bool {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.mode != ModeNormal
}

// Mode returns the current mode.
func (c *CmdBar) Mode() IndicatorMode {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.mode
}

// GetText returns the current input.
func (c *CmdBar) GetText() string {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return string(c.text)
}

// SetText replaces the current input.
func (c *CmdBar) SetText(s string) {
	c.edit(func() { c.text = []rune(s) })
}

// GetFilterText returns the last confirmed search text.
func (c *CmdBar) GetFilterText() string {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.filter
}

// ClearFilter drops the confirmed search text and clears the search.
func (c *CmdBar) ClearFilter() {
	c.mx.Lock()
	c.filter = ""
	c.mx.Unlock()

	if c.filterFn != nil {
		c.filterFn("")
	}
}

// History returns the remembered command lines, oldest first.
func (c *CmdBar) History() []string {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return slices.Clone(c.history)
}

// Activate enters command or filter mode with an empty line.
func (c *CmdBar) Activate(mode IndicatorMode) {
	c.mx.Lock()
	c.mode, c.text, c.recall = mode, nil, len(c.history)
	c.suggestions, c.pick = nil, 0
	c.mx.Unlock()
	c.render()

	if c.activeFn != nil {
		c.activeFn(true)
	}
}

// Deactivate returns to normal mode.
func (c *CmdBar) Deactivate() {
	c.mx.Lock()
	c.mode, c.text = ModeNormal, nil
	c.suggestions, c.pick = nil, 0
	c.mx.Unlock()
	c.render()

	if c.activeFn != nil {
		c.activeFn(false)
	}
}

func (c *CmdBar) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	if !c.IsActive() {
		return evt
	}

	switch evt.Key() {
	case tcell.KeyEnter:
		c.submit()
	case tcell.KeyEsc:
		if c.Mode() == ModeFilter && c.cancelFn != nil {
			c.cancelFn()
		}
		c.Deactivate()
	case tcell.KeyTab, tcell.KeyRight:
		c.edit(func() {
			if s := c.suggestionLocked(); s != "" {
				c.text = []rune(s)
			}
		})
	case tcell.KeyUp:
		c.browse(-1)
	case tcell.KeyDown:
		c.browse(1)
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		c.edit(func() {
			if n := len(c.text); n > 0 {
				c.text = c.text[:n-1]
			}
		})
	case tcell.KeyCtrlU, tcell.KeyCtrlW:
		c.edit(func() { c.text = c.text[:0] })
	case tcell.KeyRune:
		c.edit(func() { c.text = append(c.text, evt.Rune()) })
	default:
		return evt
	}

	return nil
}

// edit applies fn to the line, then refreshes completions, display and search.
func (c *CmdBar) edit(fn func()) {
	c.mx.Lock()
	fn()
	c.suggestions, c.pick = nil, 0
	if c.mode == ModeCommand && len(c.text) > 0 {
		c.suggestions = c.matchLocked(strings.ToLower(string(c.text)))
	}
	mode, text := c.mode, string(c.text)
	c.mx.Unlock()
	c.render()

	if mode == ModeFilter && c.filterFn != nil {
		c.filterFn(text)
	}
}

// browse cycles through completions, or through past commands when none match.
func (c *CmdBar) browse(step int) {
	c.mx.Lock()
	switch {
	case len(c.suggestions) > 0:
		n := len(c.suggestions)
		c.pick = (c.pick + step + n) % n
	case c.mode == ModeCommand && len(c.history) > 0:
		c.recall = max(0, min(c.recall+step, len(c.history)))
		c.text = nil
		if c.recall < len(c.history) {
			c.text = []rune(c.history[c.recall])
		}
	}
	c.mx.Unlock()
	c.render()
}

func (c *CmdBar) submit() {
	c.mx.Lock()
	mode, text := c.mode, strings.TrimSpace(string(c.text))
	switch {
	case mode == ModeFilter:
		c.filter = text
	case text != "":
		if n := len(c.history); n == 0 || c.history[n-1] != text {
			c.history = append(c.history, text)
		}
		if len(c.history) > maxHistory {
			c.history = c.history[len(c.history)-maxHistory:]
		}
	}
	c.mx.Unlock()

	c.Deactivate()
	if mode == ModeCommand && text != "" && c.cmdFn != nil {
		c.cmdFn(":" + text)
	}
}

func (c *CmdBar) matchLocked(prefix string) []string {
	var mm []string
	for _, cmd := range c.commands {
		if strings.HasPrefix(cmd, prefix) {
			mm = append(mm, cmd)
		}
	}
	return mm
}

func (c *CmdBar) suggestionLocked() string {
	if len(c.suggestions) == 0 {
		return ""
	}
	return c.suggestions[c.pick]
}

// render draws the prompt, the typed text and the remainder of the
// current completion in gray.
func (c *CmdBar) render() {
	c.mx.RLock()
	prompt, text, hint := prompts[c.mode], string(c.text), c.suggestionLocked()
	c.mx.RUnlock()

	var ghost string
	if rest, ok := strings.CutPrefix(hint, text); ok {
		ghost = rest
	}

	c.Clear()
	_, _ = fmt.Fprintf(c.TextView, "%s [::b]%s[gray::-]%s[-::]", prompt, tview.Escape(text), tview.Escape(ghost))
}
