// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package ui

import (
	"github.com/derailed/tview"

	"github.com/lendr/lendr/internal/model"
)

// Pages shows the top of a component stack.
type Pages struct {
	*tview.Pages
	*model.Stack
}

// NewPages returns a new pages manager listening to its own stack.
func NewPages() *Pages {
	p := &Pages{
		Pages: tview.NewPages(),
		Stack: model.NewStack(),
	}
	p.Stack.AddListener(p)

	return p
}

// Current returns the top component, if any.
func (p *Pages) Current() Component {
	c, ok := p.Top().(Component)
	if !ok {
		return nil
	}
	return c
}

// StackPushed notifies a new component was pushed.
func (p *Pages) StackPushed(c model.Component) {
	if prim, ok := c.(tview.Primitive); ok {
		p.AddPage(componentID(c), prim, true, true)
	}
}

// StackPopped notifies a component was removed.
func (p *Pages) StackPopped(old, _ model.Component) {
	p.RemovePage(componentID(old))
}

// StackTop notifies a new top component.
func (p *Pages) StackTop(top model.Component) {
	if top == nil {
		return
	}
	p.SwitchToPage(componentID(top))
}

func componentID(c model.Component) string {
	return c.Name()
}
