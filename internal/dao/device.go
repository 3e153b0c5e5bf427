// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package dao

import (
	"context"
)

func init() {
	RegisterAccessor(&DeviceRID, &Devices{})
	RegisterAccessor(&FavoriteRID, &FavoriteDevices{})
}

// Devices is the DAO for catalog devices.
type Devices struct {
	Resource
}

// ListDevices returns all devices in natural asset-tag order.
func (d *Devices) ListDevices(ctx context.Context) ([]*Device, error) {
	ds, err := d.dataset(ctx)
	if err != nil {
		return nil, err
	}
	return ds.Devices, nil
}

// List returns all devices.
func (d *Devices) List(ctx context.Context) ([]Object, error) {
	dd, err := d.ListDevices(ctx)
	if err != nil {
		return nil, err
	}
	return objects(dd), nil
}

// Get retrieves a single device by id.
func (d *Devices) Get(ctx context.Context, id string) (Object, error) {
	ds, err := d.dataset(ctx)
	if err != nil {
		return nil, err
	}
	o, err := ds.Device(id)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Describe returns the device as YAML.
func (d *Devices) Describe(ctx context.Context, id string) (string, error) {
	o, err := d.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return describe(o)
}

// ToJSON returns the device as JSON.
func (d *Devices) ToJSON(ctx context.Context, id string) (string, error) {
	o, err := d.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return toJSON(o)
}

// FavoriteDevices is the DAO for the user's favorite devices.
type FavoriteDevices struct {
	Devices
}

// ListDevices returns the favorite devices in catalog order.
func (f *FavoriteDevices) ListDevices(ctx context.Context) ([]*Device, error) {
	all, err := f.Devices.ListDevices(ctx)
	if err != nil {
		return nil, err
	}
	favs := f.getFactory().Favorites()
	out := make([]*Device, 0, len(all))
	for _, d := range all {
		if favs.Has(d.ID) {
			out = append(out, d)
		}
	}

	return out, nil
}

// List returns the favorite devices.
func (f *FavoriteDevices) List(ctx context.Context) ([]Object, error) {
	dd, err := f.ListDevices(ctx)
	if err != nil {
		return nil, err
	}
	return objects(dd), nil
}
