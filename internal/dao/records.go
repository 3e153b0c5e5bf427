// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package dao

import (
	"fmt"
	"time"
)

// Device statuses.
const (
	DeviceAvailable   = "available"
	DeviceBorrowed    = "borrowed"
	DeviceMaintenance = "maintenance"
	DeviceRetired     = "retired"
)

// Request kinds.
const (
	KindBorrow  = "borrow"
	KindReturn  = "return"
	KindRenewal = "renewal"
)

// Request statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusActive   = "active"
	StatusReturned = "returned"
)

// User roles.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Device is a borrowable catalog item.
type Device struct {
	ID            string    `json:"id" yaml:"id"`
	AssetTag      string    `json:"assetTag" yaml:"assetTag"`
	Name          string    `json:"name" yaml:"name"`
	Category      string    `json:"category" yaml:"category"`
	Model         string    `json:"model,omitempty" yaml:"model,omitempty"`
	Location      string    `json:"location,omitempty" yaml:"location,omitempty"`
	Status        string    `json:"status" yaml:"status"`
	Quantity      int       `json:"quantity" yaml:"quantity"`
	PurchasePrice *float64  `json:"purchasePrice,omitempty" yaml:"purchasePrice,omitempty"`
	Tags          []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	CreatedAt     time.Time `json:"createdAt" yaml:"createdAt"`
}

// GetID returns the device id.
func (d *Device) GetID() string { return d.ID }

// GetName returns the device name.
func (d *Device) GetName() string { return d.Name }

// GetCreatedAt returns the creation time.
func (d *Device) GetCreatedAt() *time.Time { return &d.CreatedAt }

// StatusChange records one step of a request's lifecycle.
type StatusChange struct {
	Status string    `json:"status" yaml:"status"`
	At     time.Time `json:"at" yaml:"at"`
	By     string    `json:"by,omitempty" yaml:"by,omitempty"`
	Note   string    `json:"note,omitempty" yaml:"note,omitempty"`
}

// Request is a borrow, return or renewal request for one device.
type Request struct {
	ID        string         `json:"id" yaml:"id"`
	Kind      string         `json:"kind" yaml:"kind"`
	Status    string         `json:"status" yaml:"status"`
	DeviceID  string         `json:"deviceId" yaml:"deviceId"`
	UserID    string         `json:"userId" yaml:"userId"`
	StartDate time.Time      `json:"startDate" yaml:"startDate"`
	EndDate   time.Time      `json:"endDate" yaml:"endDate"`
	Reason    string         `json:"reason,omitempty" yaml:"reason,omitempty"`
	History   []StatusChange `json:"history,omitempty" yaml:"history,omitempty"`
	CreatedAt time.Time      `json:"createdAt" yaml:"createdAt"`
}

// GetID returns the request id.
func (r *Request) GetID() string { return r.ID }

// GetName returns a short label for the request.
func (r *Request) GetName() string { return r.Kind + " " + r.DeviceID }

// GetCreatedAt returns the creation time.
func (r *Request) GetCreatedAt() *time.Time { return &r.CreatedAt }

var transitions = map[string][]string{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusActive, StatusRejected},
	StatusActive:   {StatusReturned},
}

// CanTransition checks if a request may move from one status to another.
func CanTransition(from, to string) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition moves the request to a new status and records it in the history.
func (r *Request) Transition(to string, at time.Time, by, note string) error {
	if !CanTransition(r.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, to)
	}
	r.Status = to
	r.History = append(r.History, StatusChange{Status: to, At: at, By: by, Note: note})

	return nil
}

// ChangedAt returns when the request reached a status, if it did.
func (r *Request) ChangedAt(status string) (time.Time, bool) {
	for _, h := range r.History {
		if h.Status == status {
			return h.At, true
		}
	}
	if status == StatusPending {
		return r.CreatedAt, true
	}
	return time.Time{}, false
}

// User is a person who borrows or approves devices.
type User struct {
	ID         string    `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	Email      string    `json:"email" yaml:"email"`
	Role       string    `json:"role" yaml:"role"`
	Department string    `json:"department,omitempty" yaml:"department,omitempty"`
	Active     bool      `json:"active" yaml:"active"`
	CreatedAt  time.Time `json:"createdAt" yaml:"createdAt"`
}

// GetID returns the user id.
func (u *User) GetID() string { return u.ID }

// GetName returns the user name.
func (u *User) GetName() string { return u.Name }

// GetCreatedAt returns the creation time.
func (u *User) GetCreatedAt() *time.Time { return &u.CreatedAt }

// Notification is an inbox message about a request or device.
type Notification struct {
	ID        string    `json:"id" yaml:"id"`
	Kind      string    `json:"kind" yaml:"kind"`
	Subject   string    `json:"subject" yaml:"subject"`
	UserID    string    `json:"userId" yaml:"userId"`
	Title     string    `json:"title" yaml:"title"`
	Message   string    `json:"message,omitempty" yaml:"message,omitempty"`
	Read      bool      `json:"read" yaml:"read"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// GetID returns the notification id.
func (n *Notification) GetID() string { return n.ID }

// GetName returns the notification title.
func (n *Notification) GetName() string { return n.Title }

// GetCreatedAt returns the creation time.
func (n *Notification) GetCreatedAt() *time.Time { return &n.CreatedAt }

// Dataset is the full catalog loaded from a source.
type Dataset struct {
	SchemaVersion string          `json:"schemaVersion,omitempty" yaml:"schemaVersion,omitempty" toml:"schemaVersion,omitempty"`
	Devices       []*Device       `json:"devices" yaml:"devices"`
	Requests      []*Request      `json:"requests" yaml:"requests"`
	Users         []*User         `json:"users" yaml:"users"`
	Notifications []*Notification `json:"notifications" yaml:"notifications"`
}

// Device looks up a device by id.
func (d *Dataset) Device(id string) (*Device, error) {
	for _, dev := range d.Devices {
		if dev.ID == id {
			return dev, nil
		}
	}
	return nil, fmt.Errorf("device %q: %w", id, ErrNotFound)
}

// Request looks up a request by id.
func (d *Dataset) Request(id string) (*Request, error) {
	for _, r := range d.Requests {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("request %q: %w", id, ErrNotFound)
}

// User looks up a user by id.
func (d *Dataset) User(id string) (*User, error) {
	for _, u := range d.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", id, ErrNotFound)
}

// Notification looks up a notification by id.
func (d *Dataset) Notification(id string) (*Notification, error) {
	for _, n := range d.Notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, fmt.Errorf("notification %q: %w", id, ErrNotFound)
}
