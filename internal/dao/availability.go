// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package dao

import (
	"slices"
	"time"
)

// Booking is a time range during which a device is out.
type Booking struct {
	RequestID string
	Start     time.Time
	End       time.Time
}

// Overlaps checks if the booking intersects [from, to).
func (b Booking) Overlaps(from, to time.Time) bool {
	return b.Start.Before(to) && from.Before(b.End)
}

// Availability computes device availability from approved and active
// borrow or renewal requests.
type Availability struct {
	bookings map[string][]Booking
}

// NewAvailability indexes the blocking requests per device.
func NewAvailability(rr []*Request) *Availability {
	a := Availability{bookings: make(map[string][]Booking)}
	for _, r := range rr {
		if !blocks(r) {
			continue
		}
		a.bookings[r.DeviceID] = append(a.bookings[r.DeviceID], Booking{
			RequestID: r.ID,
			Start:     r.StartDate,
			End:       r.EndDate,
		})
	}
	for id := range a.bookings {
		slices.SortFunc(a.bookings[id], func(x, y Booking) int {
			return x.Start.Compare(y.Start)
		})
	}

	return &a
}

func blocks(r *Request) bool {
	if r.Kind == KindReturn {
		return false
	}
	return r.Status == StatusApproved || r.Status == StatusActive
}

// Bookings returns a device's bookings by start time.
func (a *Availability) Bookings(deviceID string) []Booking {
	return slices.Clone(a.bookings[deviceID])
}

// IsAvailable checks that no booking intersects [from, to).
func (a *Availability) IsAvailable(deviceID string, from, to time.Time) bool {
	for _, b := range a.bookings[deviceID] {
		if b.Overlaps(from, to) {
			return false
		}
	}
	return true
}

// NextAvailable returns the earliest start at or after from where the device
// is free for the whole length.
func (a *Availability) NextAvailable(deviceID string, from time.Time, length time.Duration) time.Time {
	start := from
	for _, b := range a.bookings[deviceID] {
		if !b.End.After(start) {
			continue
		}
		if !b.Start.Before(start.Add(length)) {
			break
		}
		start = b.End
	}
	return start
}
