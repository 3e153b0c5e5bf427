// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package dao

import (
	"context"
	"log/slog"
)

// LendrFactory implements the Factory interface over a dataset source.
type LendrFactory struct {
	source    Source
	cache     *DatasetCache
	favorites *FavoriteStore
}

// NewFactory creates a new factory. A nil favorites store yields an in-memory one.
func NewFactory(src Source, cache *DatasetCache, favs *FavoriteStore) *LendrFactory {
	if cache == nil {
		cache = NewDatasetCache(DefaultCacheTTL)
	}
	if favs == nil {
		favs = NewFavoriteStore("")
	}
	return &LendrFactory{
		source:    src,
		cache:     cache,
		favorites: favs,
	}
}

// Source returns the dataset source.
func (f *LendrFactory) Source() Source {
	return f.source
}

// Favorites returns the favorites store.
func (f *LendrFactory) Favorites() *FavoriteStore {
	return f.favorites
}

// Dataset returns the cached dataset or loads a fresh one.
func (f *LendrFactory) Dataset(ctx context.Context) (*Dataset, error) {
	if f.source == nil {
		return nil, ErrNoSource
	}
	if ds := f.cache.Get(f.source.Name()); ds != nil {
		return ds, nil
	}

	ds, err := f.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	slog.Debug("Dataset loaded",
		"source", f.source.Name(),
		"devices", len(ds.Devices),
		"requests", len(ds.Requests),
		"users", len(ds.Users),
		"notifications", len(ds.Notifications),
	)
	f.cache.Set(f.source.Name(), ds)

	return ds, nil
}

// Invalidate drops the cached dataset.
func (f *LendrFactory) Invalidate() {
	if f.source != nil {
		f.cache.Invalidate(f.source.Name())
	}
}
