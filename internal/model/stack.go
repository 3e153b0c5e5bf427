// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package model

import (
	"slices"
	"sync"
)

// Component represents a stacked view.
type Component interface {
	Name() string
	Stop()
}

// StackListener listens to stack events.
type StackListener interface {
	// StackPushed indicates a new item was added.
	StackPushed(Component)

	// StackPopped indicates an item was removed. top is nil when the stack is empty.
	StackPopped(old, top Component)

	// StackTop indicates the top of the stack.
	StackTop(Component)
}

// Stack tracks the navigation history of views.
type Stack struct {
	components []Component
	listeners  []StackListener
	mx         sync.RWMutex
}

// NewStack returns a new stack.
func NewStack() *Stack {
	return &Stack{}
}

// AddListener registers a stack listener and reports the current top.
func (s *Stack) AddListener(l StackListener) {
	s.mx.Lock()
	s.listeners = append(s.listeners, l)
	s.mx.Unlock()

	if top := s.Top(); top != nil {
		l.StackTop(top)
	}
}

// RemoveListener unregisters a stack listener.
func (s *Stack) RemoveListener(l StackListener) {
	s.mx.Lock()
	defer s.mx.Unlock()

	if i := slices.Index(s.listeners, l); i >= 0 {
		s.listeners = slices.Delete(s.listeners, i, i+1)
	}
}

// Push stops the current top and adds c.
func (s *Stack) Push(c Component) {
	if top := s.Top(); top != nil {
		top.Stop()
	}

	s.mx.Lock()
	s.components = append(s.components, c)
	s.mx.Unlock()

	for _, l := range s.snapshotListeners() {
		l.StackPushed(c)
		l.StackTop(c)
	}
}

// Pop stops and removes the top component.
func (s *Stack) Pop() (Component, bool) {
	s.mx.Lock()
	if len(s.components) == 0 {
		s.mx.Unlock()
		return nil, false
	}
	c := s.components[len(s.components)-1]
	s.components = s.components[:len(s.components)-1]
	s.mx.Unlock()

	c.Stop()
	top := s.Top()
	for _, l := range s.snapshotListeners() {
		l.StackPopped(c, top)
		if top != nil {
			l.StackTop(top)
		}
	}

	return c, true
}

// Reset pops every component but the first one.
func (s *Stack) Reset() {
	for s.Len() > 1 {
		s.Pop()
	}
}

// Top returns the top component or nil if the stack is empty.
func (s *Stack) Top() Component {
	s.mx.RLock()
	defer s.mx.RUnlock()

	if len(s.components) == 0 {
		return nil
	}
	return s.components[len(s.components)-1]
}

// Empty checks if stack is empty.
func (s *Stack) Empty() bool {
	return s.Len() == 0
}

// Len returns the stack depth.
func (s *Stack) Len() int {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return len(s.components)
}

// IsLast indicates if stack only has one item left.
func (s *Stack) IsLast() bool {
	return s.Len() == 1
}

// Flatten returns all component names, bottom first.
func (s *Stack) Flatten() []string {
	s.mx.RLock()
	defer s.mx.RUnlock()

	ss := make([]string, len(s.components))
	for i, c := range s.components {
		ss[i] = c.Name()
	}
	return ss
}

func (s *Stack) snapshotListeners() []StackListener {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return slices.Clone(s.listeners)
}
