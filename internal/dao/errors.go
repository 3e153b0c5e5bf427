// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package dao

import "errors"

var (
	// ErrNotFound is returned when a record id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnknownResource is returned for an unregistered resource id.
	ErrUnknownResource = errors.New("unknown resource")

	// ErrNoSource is returned when no dataset source is configured.
	ErrNoSource = errors.New("no data source configured")

	// ErrInvalidTransition is returned for a disallowed request status change.
	ErrInvalidTransition = errors.New("invalid status transition")
)
