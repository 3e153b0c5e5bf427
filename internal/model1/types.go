// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package model1

import "github.com/derailed/tcell/v2"

// NAValue is rendered for missing cells.
const NAValue = "n/a"

// ResEvent represents a row change since the previous load.
type ResEvent int

const (
	EventUnchanged ResEvent = 1 << iota
	EventAdd
	EventUpdate
	EventDelete
	EventClear
)

// DecoratorFunc decorates a string
type DecoratorFunc func(string) string

// ColorerFunc represents a row colorer.
type ColorerFunc[R any] func(r R, kind ResEvent) tcell.Color
