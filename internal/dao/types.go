// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package dao

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ResourceID identifies a lendr resource type.
type ResourceID struct {
	Group    string // e.g., "catalog", "lending", "people", "inbox"
	Resource string // e.g., "device", "request", "user"
}

// String returns a string representation in the form "group/resource".
func (r ResourceID) String() string {
	return fmt.Sprintf("%s/%s", r.Group, r.Resource)
}

// Parse parses a string in the form "group/resource" into a ResourceID.
func (r *ResourceID) Parse(s string) error {
	group, resource, ok := strings.Cut(s, "/")
	if !ok || group == "" || resource == "" {
		return fmt.Errorf("invalid resource ID format: %s (expected group/resource)", s)
	}
	r.Group = group
	r.Resource = resource
	return nil
}

// Predefined ResourceID variables for lendr resources.
var (
	DeviceRID       = ResourceID{Group: "catalog", Resource: "device"}
	FavoriteRID     = ResourceID{Group: "catalog", Resource: "favorite"}
	RequestRID      = ResourceID{Group: "lending", Resource: "request"}
	UserRID         = ResourceID{Group: "people", Resource: "user"}
	NotificationRID = ResourceID{Group: "inbox", Resource: "notification"}
)

// Object represents a generic lendr record with common metadata.
type Object interface {
	GetID() string
	GetName() string
	GetCreatedAt() *time.Time
}

// Factory provides access to the dataset and per-user state.
type Factory interface {
	// Dataset returns the current dataset, possibly cached.
	Dataset(ctx context.Context) (*Dataset, error)

	// Source returns the dataset source.
	Source() Source

	// Favorites returns the favorites store.
	Favorites() *FavoriteStore

	// Invalidate drops any cached dataset.
	Invalidate()
}

// Getter retrieves a single record by id.
type Getter interface {
	Get(ctx context.Context, id string) (Object, error)
}

// Lister retrieves all records of a resource.
type Lister interface {
	List(ctx context.Context) ([]Object, error)
}

// Accessor combines getting and listing capabilities with initialization.
type Accessor interface {
	Getter
	Lister
	Init(Factory, *ResourceID)
	ResourceID() *ResourceID
}

// Describer provides formatted descriptions of records.
type Describer interface {
	Describe(ctx context.Context, id string) (string, error)
	ToJSON(ctx context.Context, id string) (string, error)
}
