// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package dao

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

var seedNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://lendr.dev/seed"))

// StableID derives a deterministic id for seeded records.
func StableID(kind string, n int) string {
	return uuid.NewSHA1(seedNamespace, []byte(fmt.Sprintf("%s/%d", kind, n))).String()
}

var seedDevices = []struct {
	name, category, model string
	price                 float64
}{
	{"Laptop Pro 14", "laptop", "LP14-2024", 2199},
	{"Laptop Air 13", "laptop", "LA13-2023", 1299},
	{"Developer Workstation", "laptop", "DW16", 3499},
	{"UltraWide Monitor", "monitor", "UW34", 749},
	{"4K Monitor 27", "monitor", "K27", 529},
	{"Portable Monitor", "monitor", "PM15", 0},
	{"Phone X", "phone", "PX-128", 999},
	{"Phone Mini", "phone", "PM-64", 599},
	{"Android Test Phone", "phone", "ATP-9", 449},
	{"Tablet 11", "tablet", "T11", 799},
	{"Tablet Mini", "tablet", "TM8", 499},
	{"Mirrorless Camera", "camera", "MC-A7", 1899},
	{"Action Camera", "camera", "AC-12", 399},
	{"Conference Speaker", "accessory", "CS-2", 249},
	{"USB-C Dock", "accessory", "DK-4", 0},
	{"Wireless Keyboard", "accessory", "WK-1", 99},
}

var seedUsers = []struct {
	name, email, role, dept string
	active                  bool
}{
	{"Ada Byron", "ada@lendr.dev", RoleAdmin, "IT", true},
	{"Alan Turing", "alan@lendr.dev", RoleMember, "Research", true},
	{"Grace Hopper", "grace@lendr.dev", RoleAdmin, "Engineering", true},
	{"Ken Thompson", "ken@lendr.dev", RoleMember, "Engineering", true},
	{"Barbara Liskov", "barbara@lendr.dev", RoleMember, "Research", true},
	{"Dennis Ritchie", "dennis@lendr.dev", RoleMember, "Engineering", false},
	{"Margaret Hamilton", "margaret@lendr.dev", RoleMember, "Design", true},
	{"Radia Perlman", "radia@lendr.dev", RoleMember, "Networking", true},
}

var seedLocations = []string{"HQ-1", "HQ-2", "Lab", "Remote"}

// Seed builds a deterministic sample dataset anchored at now.
func Seed(now time.Time, devices int) *Dataset {
	now = now.UTC().Truncate(time.Hour)
	ds := Dataset{SchemaVersion: SchemaVersion}

	for i, u := range seedUsers {
		ds.Users = append(ds.Users, &User{
			ID:         StableID("user", i),
			Name:       u.name,
			Email:      u.email,
			Role:       u.role,
			Department: u.dept,
			Active:     u.active,
			CreatedAt:  now.AddDate(0, -12+i, 0),
		})
	}

	for i := range devices {
		tmpl := seedDevices[i%len(seedDevices)]
		d := Device{
			ID:        StableID("device", i),
			AssetTag:  fmt.Sprintf("LND-%d", i+1),
			Name:      tmpl.name,
			Category:  tmpl.category,
			Model:     tmpl.model,
			Location:  seedLocations[i%len(seedLocations)],
			Status:    DeviceAvailable,
			Quantity:  1 + i%3,
			Tags:      []string{tmpl.category},
			CreatedAt: now.AddDate(0, 0, -i*7),
		}
		if i >= len(seedDevices) {
			d.Name = fmt.Sprintf("%s #%d", tmpl.name, i/len(seedDevices)+1)
		}
		if tmpl.price > 0 {
			price := tmpl.price
			d.PurchasePrice = &price
		}
		switch i % 11 {
		case 7:
			d.Status = DeviceMaintenance
		case 10:
			d.Status = DeviceRetired
		}
		ds.Devices = append(ds.Devices, &d)
	}

	// Lifecycle targets cycle through every reachable status.
	targets := []string{StatusPending, StatusApproved, StatusActive, StatusReturned, StatusRejected}
	kinds := []string{KindBorrow, KindBorrow, KindRenewal, KindReturn}
	for i := range len(ds.Devices) * 3 / 4 {
		dev := ds.Devices[i]
		user := ds.Users[i%len(ds.Users)]
		admin := ds.Users[(i%2)*2]
		created := now.AddDate(0, 0, -20+i%15)
		r := Request{
			ID:        StableID("request", i),
			Kind:      kinds[i%len(kinds)],
			Status:    StatusPending,
			DeviceID:  dev.ID,
			UserID:    user.ID,
			StartDate: created.AddDate(0, 0, 2),
			EndDate:   created.AddDate(0, 0, 9+i%5),
			Reason:    fmt.Sprintf("Needed for %s work", user.Department),
			CreatedAt: created,
		}
		target := targets[i%len(targets)]
		if r.Kind == KindReturn && target == StatusActive {
			target = StatusApproved
		}
		advance(&r, target, admin.Name)
		if r.Status == StatusActive {
			dev.Status = DeviceBorrowed
		}
		ds.Requests = append(ds.Requests, &r)

		ds.Notifications = append(ds.Notifications, &Notification{
			ID:        StableID("notification", 2*i),
			Kind:      "request." + StatusPending,
			Subject:   r.ID,
			UserID:    admin.ID,
			Title:     fmt.Sprintf("%s requested %s", user.Name, dev.Name),
			Message:   r.Reason,
			Read:      i%3 == 0,
			CreatedAt: created,
		})
		if r.Status != StatusPending {
			last := r.History[len(r.History)-1]
			ds.Notifications = append(ds.Notifications, &Notification{
				ID:        StableID("notification", 2*i+1),
				Kind:      "request." + last.Status,
				Subject:   r.ID,
				UserID:    user.ID,
				Title:     fmt.Sprintf("Your %s request for %s is %s", r.Kind, dev.Name, last.Status),
				CreatedAt: last.At,
			})
		}
	}
	// Reminders repeat; only the newest one per request should surface.
	for i, r := range ds.Requests {
		if r.Status != StatusActive {
			continue
		}
		for k := range 2 {
			ds.Notifications = append(ds.Notifications, &Notification{
				ID:        StableID("reminder", 2*i+k),
				Kind:      "request.due",
				Subject:   r.ID,
				UserID:    r.UserID,
				Title:     fmt.Sprintf("Due back on %s", r.EndDate.Format(time.DateOnly)),
				CreatedAt: r.EndDate.AddDate(0, 0, -2+k),
			})
		}
	}
	ds.Normalize()

	return &ds
}

func advance(r *Request, target, by string) {
	path := []string{StatusApproved, StatusActive, StatusReturned}
	if target == StatusRejected {
		path = []string{StatusRejected}
	}
	at := r.CreatedAt
	for _, s := range path {
		if r.Status == target {
			return
		}
		at = at.Add(26 * time.Hour)
		if err := r.Transition(s, at, by, ""); err != nil {
			return
		}
	}
}
