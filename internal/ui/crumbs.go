// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package ui

import (
	"fmt"
	"strings"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/lendr/lendr/internal/model"
)

// Crumbs represents user breadcrumbs.
type Crumbs struct {
	*tview.TextView

	stack *model.Stack
}

// NewCrumbs returns a new breadcrumb view.
func NewCrumbs() *Crumbs {
	c := &Crumbs{
		stack:    model.NewStack(),
		TextView: tview.NewTextView(),
	}
	c.SetBackgroundColor(tcell.ColorDefault)
	c.SetTextAlign(tview.AlignLeft)
	c.SetBorderPadding(0, 0, 1, 1)
	c.SetDynamicColors(true)

	return c
}

// StackPushed indicates a new item was added.
func (c *Crumbs) StackPushed(comp model.Component) {
	c.stack.Push(crumb(comp.Name()))
	c.refresh(c.stack.Flatten())
}

// StackPopped indicates an item was deleted.
func (c *Crumbs) StackPopped(_, _ model.Component) {
	c.stack.Pop()
	c.refresh(c.stack.Flatten())
}

// StackTop indicates the top of the stack.
func (*Crumbs) StackTop(model.Component) {}

// Crumbs returns the current trail.
func (c *Crumbs) Crumbs() []string {
	return c.stack.Flatten()
}

func (c *Crumbs) refresh(crumbs []string) {
	c.Clear()
	last := len(crumbs) - 1

	for i, name := range crumbs {
		name = strings.ReplaceAll(strings.ToLower(name), " ", "")
		if i == last {
			_, _ = fmt.Fprintf(c, "[black:aqua:b] <%s> [-:-:-] ", name)
			continue
		}
		_, _ = fmt.Fprintf(c, "[gray::-] <%s> [-:-:-] ", name)
	}
}

// crumb is a stack entry that only carries a name.
type crumb string

func (c crumb) Name() string { return string(c) }
func (crumb) Stop()          {}
