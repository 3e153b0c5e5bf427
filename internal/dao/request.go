// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package dao

import (
	"context"
)

func init() {
	RegisterAccessor(&RequestRID, &Requests{})
}

// Requests is the DAO for lending requests.
type Requests struct {
	Resource
}

// ListRequests returns all requests, newest first.
func (r *Requests) ListRequests(ctx context.Context) ([]*Request, error) {
	ds, err := r.dataset(ctx)
	if err != nil {
		return nil, err
	}
	return ds.Requests, nil
}

// List returns all requests.
func (r *Requests) List(ctx context.Context) ([]Object, error) {
	rr, err := r.ListRequests(ctx)
	if err != nil {
		return nil, err
	}
	return objects(rr), nil
}

// Get retrieves a single request by id.
func (r *Requests) Get(ctx context.Context, id string) (Object, error) {
	ds, err := r.dataset(ctx)
	if err != nil {
		return nil, err
	}
	o, err := ds.Request(id)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Describe returns the request as YAML.
func (r *Requests) Describe(ctx context.Context, id string) (string, error) {
	o, err := r.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return describe(o)
}

// ToJSON returns the request as JSON.
func (r *Requests) ToJSON(ctx context.Context, id string) (string, error) {
	o, err := r.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return toJSON(o)
}

// Availability returns the availability calculator over all requests.
func (r *Requests) Availability(ctx context.Context) (*Availability, error) {
	rr, err := r.ListRequests(ctx)
	if err != nil {
		return nil, err
	}
	return NewAvailability(rr), nil
}
