// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package dao

import (
	"context"
)

func init() {
	RegisterAccessor(&UserRID, &Users{})
}

// Users is the DAO for users.
type Users struct {
	Resource
}

// ListUsers returns all users by name.
func (u *Users) ListUsers(ctx context.Context) ([]*User, error) {
	ds, err := u.dataset(ctx)
	if err != nil {
		return nil, err
	}
	return ds.Users, nil
}

// List returns all users.
func (u *Users) List(ctx context.Context) ([]Object, error) {
	uu, err := u.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return objects(uu), nil
}

// Get retrieves a single user by id.
func (u *Users) Get(ctx context.Context, id string) (Object, error) {
	ds, err := u.dataset(ctx)
	if err != nil {
		return nil, err
	}
	o, err := ds.User(id)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Describe returns the user as YAML.
func (u *Users) Describe(ctx context.Context, id string) (string, error) {
	o, err := u.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return describe(o)
}

// ToJSON returns the user as JSON.
func (u *Users) ToJSON(ctx context.Context, id string) (string, error) {
	o, err := u.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return toJSON(o)
}
