// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package model1

import "github.com/derailed/tcell/v2"

var (
	// ModColor row modified color
	ModColor tcell.Color = tcell.ColorYellow

	// AddColor row added color
	AddColor tcell.Color = tcell.ColorBlue

	// PendingColor row pending color
	PendingColor tcell.Color = tcell.ColorDarkCyan

	// ErrColor row error color
	ErrColor tcell.Color = tcell.ColorRed

	// StdColor row default color
	StdColor tcell.Color = tcell.ColorWhite

	// HighlightColor row highlight color
	HighlightColor tcell.Color = tcell.ColorAqua

	// KillColor row deleted/retired color
	KillColor tcell.Color = tcell.ColorGray

	// CompletedColor row completed color
	CompletedColor tcell.Color = tcell.ColorGreen
)

// EventColor maps a change kind to its row color.
func EventColor(kind ResEvent) tcell.Color {
	switch kind {
	case EventAdd:
		return AddColor
	case EventUpdate:
		return ModColor
	case EventDelete:
		return KillColor
	default:
		return StdColor
	}
}

// DefaultColorer colors rows by change kind only.
func DefaultColorer[R any](_ R, kind ResEvent) tcell.Color {
	return EventColor(kind)
}
