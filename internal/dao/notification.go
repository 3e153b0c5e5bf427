// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package dao

import (
	"context"
	"slices"
	"strings"
)

func init() {
	RegisterAccessor(&NotificationRID, &Notifications{})
}

// Notifications is the DAO for inbox notifications.
type Notifications struct {
	Resource
}

// ListNotifications returns the deduplicated inbox, newest first.
func (n *Notifications) ListNotifications(ctx context.Context) ([]*Notification, error) {
	ds, err := n.dataset(ctx)
	if err != nil {
		return nil, err
	}
	return DedupeNotifications(ds.Notifications), nil
}

// List returns the deduplicated notifications.
func (n *Notifications) List(ctx context.Context) ([]Object, error) {
	nn, err := n.ListNotifications(ctx)
	if err != nil {
		return nil, err
	}
	return objects(nn), nil
}

// Get retrieves a single notification by id.
func (n *Notifications) Get(ctx context.Context, id string) (Object, error) {
	ds, err := n.dataset(ctx)
	if err != nil {
		return nil, err
	}
	o, err := ds.Notification(id)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Describe returns the notification as YAML.
func (n *Notifications) Describe(ctx context.Context, id string) (string, error) {
	o, err := n.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return describe(o)
}

// ToJSON returns the notification as JSON.
func (n *Notifications) ToJSON(ctx context.Context, id string) (string, error) {
	o, err := n.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return toJSON(o)
}

// DedupeNotifications keeps only the newest notification per kind and
// subject, returned newest first. Ties keep the earlier entry.
func DedupeNotifications(nn []*Notification) []*Notification {
	sorted := slices.Clone(nn)
	slices.SortStableFunc(sorted, func(a, b *Notification) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	seen := make(map[string]struct{}, len(sorted))
	out := make([]*Notification, 0, len(sorted))
	for _, n := range sorted {
		key := strings.Join([]string{n.Kind, n.Subject}, "\x00")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, n)
	}

	return out
}

// Unread counts unread notifications.
func Unread(nn []*Notification) int {
	var count int
	for _, n := range nn {
		if !n.Read {
			count++
		}
	}
	return count
}
