// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/fvbommel/sortorder"

	"github.com/lendr/lendr/internal/config/data"
)

// Aliases maps short command names to resource ids.
type Aliases struct {
	Alias map[string]string `yaml:"aliases"`
	mx    sync.RWMutex
}

// DefaultAliases are the built-in aliases for lendr resources.
var DefaultAliases = map[string]string{
	"dev":     "catalog/device",
	"device":  "catalog/device",
	"devices": "catalog/device",

	"fav":       "catalog/favorite",
	"favorite":  "catalog/favorite",
	"favorites": "catalog/favorite",

	"req":      "lending/request",
	"request":  "lending/request",
	"requests": "lending/request",

	"usr":   "people/user",
	"user":  "people/user",
	"users": "people/user",

	"inbox":         "inbox/notification",
	"notification":  "inbox/notification",
	"notifications": "inbox/notification",
}

// NewAliases creates an Aliases with default aliases loaded.
func NewAliases() *Aliases {
	return &Aliases{
		Alias: maps.Clone(DefaultAliases),
	}
}

// Load loads aliases from the default config file.
func (a *Aliases) Load() error {
	return a.LoadFrom(AppAliasesFile)
}

// LoadFrom merges aliases from path over the current set.
// A missing file leaves the current set untouched.
func (a *Aliases) LoadFrom(path string) error {
	a.mx.Lock()
	defer a.mx.Unlock()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	var loaded struct {
		Alias map[string]string `yaml:"aliases"`
	}
	if err := data.LoadYAML(path, &loaded); err != nil {
		return err
	}
	for k, v := range loaded.Alias {
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k == "" || v == "" {
			return fmt.Errorf("invalid alias %q -> %q in %s", k, v, path)
		}
		a.Alias[k] = v
	}

	return nil
}

// SaveTo saves aliases to a specific file path.
func (a *Aliases) SaveTo(path string) error {
	a.mx.RLock()
	defer a.mx.RUnlock()

	return data.SaveYAML(path, a)
}

// Resolve returns the resource id for an alias, or the input if none matches.
func (a *Aliases) Resolve(alias string) string {
	a.mx.RLock()
	defer a.mx.RUnlock()

	if rid, ok := a.Alias[strings.ToLower(alias)]; ok {
		return rid
	}
	return alias
}

// Set sets an alias.
func (a *Aliases) Set(alias, rid string) {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.Alias[alias] = rid
}

// Names returns all alias names in natural order.
func (a *Aliases) Names() []string {
	a.mx.RLock()
	defer a.mx.RUnlock()

	names := make([]string, 0, len(a.Alias))
	for name := range a.Alias {
		names = append(names, name)
	}
	sort.Sort(sortorder.Natural(names))

	return names
}

// ShortNames returns the aliases pointing at rid, shortest first.
func (a *Aliases) ShortNames(rid string) []string {
	a.mx.RLock()
	defer a.mx.RUnlock()

	var names []string
	for k, v := range a.Alias {
		if v == rid {
			names = append(names, k)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) < len(names[j])
		}
		return names[i] < names[j]
	})

	return names
}
