// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package dao

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/fvbommel/sortorder"
)

// Accessors maps resource ID strings to their accessor implementations.
type Accessors map[string]Accessor

// accessors holds all registered DAOs.
var accessors = make(Accessors)

// RegisterAccessor adds an accessor to the global registry.
func RegisterAccessor(rid *ResourceID, accessor Accessor) {
	accessors[rid.String()] = accessor
}

// AccessorFor returns a new initialized accessor instance for the given resource ID.
func AccessorFor(f Factory, rid *ResourceID) (Accessor, error) {
	accessor, ok := accessors[rid.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResource, rid)
	}

	accessorType := reflect.TypeOf(accessor)
	if accessorType.Kind() == reflect.Ptr {
		accessorType = accessorType.Elem()
	}
	acc, ok := reflect.New(accessorType).Interface().(Accessor)
	if !ok {
		return nil, fmt.Errorf("failed to create accessor for: %s", rid)
	}
	acc.Init(f, rid)

	return acc, nil
}

// ListAccessors returns all registered resource IDs in natural order.
func ListAccessors() []*ResourceID {
	keys := make([]string, 0, len(accessors))
	for key := range accessors {
		keys = append(keys, key)
	}
	sort.Sort(sortorder.Natural(keys))

	rids := make([]*ResourceID, 0, len(keys))
	for _, key := range keys {
		rid := &ResourceID{}
		if err := rid.Parse(key); err == nil {
			rids = append(rids, rid)
		}
	}
	return rids
}
