// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package render

const (
	// Display values
	MissingValue = "<none>"
	NAValue      = "n/a"
	UnknownValue = "<unknown>"
	Blank        = ""

	// Row markers
	FavoriteMark = "★"
	UnreadMark   = "●"
)

// Translate resolves a label key to display text.
type Translate func(key string) string

// Identity returns label keys untranslated.
func Identity(key string) string {
	return key
}
