package dao

import (
	"context"
	"errors"
	"time"
)

var t0 = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type memSource struct {
	ds    *Dataset
	err   error
	loads int
}

func (m *memSource) Name() string { return "mem" }

func (m *memSource) Load(context.Context) (*Dataset, error) {
	m.loads++
	if m.err != nil {
		return nil, m.err
	}
	return m.ds, nil
}

var errBoom = errors.New("boom")

func sampleDataset() *Dataset {
	return &Dataset{
		Devices: []*Device{
			{ID: "d1", AssetTag: "LND-10", Name: "Laptop Pro", Category: "laptop", Status: DeviceAvailable},
			{ID: "d2", AssetTag: "LND-2", Name: "Monitor", Category: "monitor", Status: DeviceBorrowed},
			{ID: "d3", AssetTag: "LND-1", Name: "Phone", Category: "phone", Status: DeviceAvailable},
		},
		Users: []*User{
			{ID: "u1", Name: "Grace", Email: "grace@lendr.dev", Role: RoleAdmin, Active: true},
			{ID: "u2", Name: "Ada", Email: "ada@lendr.dev", Role: RoleMember, Active: true},
		},
		Requests: []*Request{
			{ID: "r1", Kind: KindBorrow, Status: StatusPending, DeviceID: "d1", UserID: "u2", CreatedAt: t0},
		},
		Notifications: []*Notification{
			{ID: "n1", Kind: "request.pending", Subject: "r1", UserID: "u1", Title: "New", CreatedAt: t0},
		},
	}
}
