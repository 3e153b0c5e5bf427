// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package dao

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fvbommel/sortorder"
	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

type favoritesFile struct {
	Devices []string `yaml:"devices"`
}

// FavoriteStore is the persisted set of favorite device ids.
// An empty path keeps the set in memory only.
type FavoriteStore struct {
	path string
	ids  map[string]struct{}
	mx   sync.RWMutex
}

// NewFavoriteStore returns an empty store backed by path.
func NewFavoriteStore(path string) *FavoriteStore {
	return &FavoriteStore{
		path: path,
		ids:  make(map[string]struct{}),
	}
}

// LoadFavorites reads a store from path. A missing file yields an empty store.
func LoadFavorites(path string) (*FavoriteStore, error) {
	s := NewFavoriteStore(path)
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read favorites %s: %w", path, err)
	}

	var f favoritesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to decode favorites %s: %w", path, err)
	}
	for _, id := range f.Devices {
		s.ids[id] = struct{}{}
	}

	return s, nil
}

// Has checks if a device is a favorite.
func (s *FavoriteStore) Has(id string) bool {
	s.mx.RLock()
	defer s.mx.RUnlock()

	_, ok := s.ids[id]
	return ok
}

// Toggle flips a device's favorite state and returns the new state.
func (s *FavoriteStore) Toggle(id string) bool {
	s.mx.Lock()
	defer s.mx.Unlock()

	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// IDs returns the favorite ids in natural order.
func (s *FavoriteStore) IDs() []string {
	s.mx.RLock()
	defer s.mx.RUnlock()

	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Sort(sortorder.Natural(ids))

	return ids
}

// Save writes the store atomically.
func (s *FavoriteStore) Save() error {
	if s.path == "" {
		return nil
	}
	raw, err := yaml.Marshal(favoritesFile{Devices: s.IDs()})
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create favorites dir: %w", err)
	}
	if err := atomic.WriteFile(s.path, bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("failed to write favorites %s: %w", s.path, err)
	}

	return nil
}
