// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package dao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// Resource is the base struct that all specific DAOs embed.
// It provides factory access and resource identification.
type Resource struct {
	Factory
	rid *ResourceID
	mx  sync.RWMutex
}

// Init initializes the Resource with factory and resource ID.
func (r *Resource) Init(f Factory, rid *ResourceID) {
	r.mx.Lock()
	defer r.mx.Unlock()
	r.Factory = f
	r.rid = rid
}

// ResourceID returns the resource identifier.
func (r *Resource) ResourceID() *ResourceID {
	r.mx.RLock()
	defer r.mx.RUnlock()
	return r.rid
}

// getFactory returns the factory in a thread-safe manner.
func (r *Resource) getFactory() Factory {
	r.mx.RLock()
	defer r.mx.RUnlock()
	return r.Factory
}

// dataset fetches the dataset through the factory.
func (r *Resource) dataset(ctx context.Context) (*Dataset, error) {
	f := r.getFactory()
	if f == nil {
		return nil, errors.New("factory not initialized")
	}
	return f.Dataset(ctx)
}

// describe renders a record as YAML.
func describe(o Object) (string, error) {
	raw, err := yaml.Marshal(o)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", o.GetID(), err)
	}
	return string(raw), nil
}

// toJSON renders a record as indented JSON.
func toJSON(o Object) (string, error) {
	raw, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", o.GetID(), err)
	}
	return string(raw), nil
}

// objects widens a typed slice to Objects.
func objects[T Object](ts []T) []Object {
	oo := make([]Object, 0, len(ts))
	for _, t := range ts {
		oo = append(oo, t)
	}
	return oo
}
