// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package ui

import (
	"sort"
	"sync"

	"github.com/derailed/tcell/v2"
)

// Defines char keystrokes.
const (
	KeyA tcell.Key = iota + 97
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

// Defines numeric keys for sort columns.
const (
	Key0 tcell.Key = iota + 48
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

// Defines special keys.
const (
	KeySpace      tcell.Key = 32
	KeySlash      tcell.Key = 47
	KeyColon      tcell.Key = 58
	KeyQuestion   tcell.Key = 63
	KeyLeftBrack  tcell.Key = 91
	KeyRightBrack tcell.Key = 93
	KeyLeftBrace  tcell.Key = 123
	KeyRightBrace tcell.Key = 125
	KeyShiftG     tcell.Key = 71
	KeyShiftJ     tcell.Key = 74
	KeyShiftZ     tcell.Key = 90
)

// NumKeys maps a 1-based column index to its numeric key.
var NumKeys = map[int]tcell.Key{
	1: Key1, 2: Key2, 3: Key3, 4: Key4, 5: Key5,
	6: Key6, 7: Key7, 8: Key8, 9: Key9,
}

// ActionHandler handles a keyboard command.
type ActionHandler func(*tcell.EventKey) *tcell.EventKey

// ActionOpts tracks various action options.
type ActionOpts struct {
	Visible   bool
	Shared    bool
	Dangerous bool
}

// KeyAction represents a keyboard action.
type KeyAction struct {
	Description string
	Action      ActionHandler
	Opts        ActionOpts
}

// KeyMap tracks key to action mappings.
type KeyMap map[tcell.Key]KeyAction

// KeyActions tracks mappings between keystrokes and actions.
type KeyActions struct {
	actions KeyMap
	mx      sync.RWMutex
}

// NewKeyAction returns a new keyboard action.
func NewKeyAction(d string, a ActionHandler, display bool) KeyAction {
	return NewKeyActionWithOpts(d, a, ActionOpts{Visible: display})
}

// NewSharedKeyAction returns an action that survives view specific resets.
func NewSharedKeyAction(d string, a ActionHandler, display bool) KeyAction {
	return NewKeyActionWithOpts(d, a, ActionOpts{Visible: display, Shared: true})
}

// NewKeyActionWithOpts returns a new keyboard action.
func NewKeyActionWithOpts(d string, a ActionHandler, opts ActionOpts) KeyAction {
	return KeyAction{
		Description: d,
		Action:      a,
		Opts:        opts,
	}
}

// NewKeyActions returns a new instance.
func NewKeyActions() *KeyActions {
	return &KeyActions{
		actions: make(KeyMap),
	}
}

// Get fetches an action given a key.
func (a *KeyActions) Get(key tcell.Key) (KeyAction, bool) {
	a.mx.RLock()
	defer a.mx.RUnlock()

	v, ok := a.actions[key]
	return v, ok
}

// Len returns the number of actions.
func (a *KeyActions) Len() int {
	a.mx.RLock()
	defer a.mx.RUnlock()

	return len(a.actions)
}

// Add adds a new key action.
func (a *KeyActions) Add(k tcell.Key, ka KeyAction) {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.actions[k] = ka
}

// Bulk adds multiple actions.
func (a *KeyActions) Bulk(aa KeyMap) {
	a.mx.Lock()
	defer a.mx.Unlock()

	for k, v := range aa {
		a.actions[k] = v
	}
}

// Delete deletes actions by the given keys.
func (a *KeyActions) Delete(kk ...tcell.Key) {
	a.mx.Lock()
	defer a.mx.Unlock()

	for _, k := range kk {
		delete(a.actions, k)
	}
}

// ClearLocal removes all non shared actions.
func (a *KeyActions) ClearLocal() {
	a.mx.Lock()
	defer a.mx.Unlock()

	for k, v := range a.actions {
		if !v.Opts.Shared {
			delete(a.actions, k)
		}
	}
}

// Hints returns a collection of hints.
func (a *KeyActions) Hints() MenuHints {
	a.mx.RLock()
	defer a.mx.RUnlock()

	kk := make([]int, 0, len(a.actions))
	for k := range a.actions {
		kk = append(kk, int(k))
	}
	sort.Ints(kk)

	hh := make(MenuHints, 0, len(kk))
	for _, k := range kk {
		name, ok := KeyName(tcell.Key(k))
		if !ok {
			continue
		}
		hh = append(hh, MenuHint{
			Mnemonic:    name,
			Description: a.actions[tcell.Key(k)].Description,
			Visible:     a.actions[tcell.Key(k)].Opts.Visible,
		})
	}

	return hh
}

// KeyName returns the display name of a key.
func KeyName(k tcell.Key) (string, bool) {
	if name, ok := tcell.KeyNames[k]; ok {
		return name, true
	}
	if k == KeySpace {
		return "Space", true
	}
	if k >= 32 && k < 127 {
		return string(rune(k)), true
	}
	return "", false
}

// AsKey maps a key event to an action key, folding runes into the key space.
func AsKey(evt *tcell.EventKey) tcell.Key {
	if evt.Key() != tcell.KeyRune {
		return evt.Key()
	}
	return tcell.Key(evt.Rune())
}
