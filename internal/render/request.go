// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package render

import (
	"sync"

	"github.com/derailed/tcell/v2"

	"github.com/lendr/lendr/internal/dao"
	"github.com/lendr/lendr/internal/model1"
)

// Lookup resolves device and user names for request rows.
// Copies share the same index, so a Reset is seen by every renderer holding one.
type Lookup struct {
	idx *lookupIndex
}

type lookupIndex struct {
	devices map[string]string
	users   map[string]string
	mx      sync.RWMutex
}

// NewLookup indexes a dataset. A nil dataset resolves nothing.
func NewLookup(ds *dao.Dataset) Lookup {
	l := Lookup{idx: &lookupIndex{}}
	l.Reset(ds)

	return l
}

// Reset reindexes the lookup from ds.
func (l Lookup) Reset(ds *dao.Dataset) {
	devices, users := make(map[string]string), make(map[string]string)
	if ds != nil {
		for _, d := range ds.Devices {
			devices[d.ID] = d.Name
		}
		for _, u := range ds.Users {
			users[u.ID] = u.Name
		}
	}

	l.idx.mx.Lock()
	defer l.idx.mx.Unlock()
	l.idx.devices, l.idx.users = devices, users
}

func (l Lookup) resolve(pick func(*lookupIndex) map[string]string, id string) string {
	if l.idx != nil {
		l.idx.mx.RLock()
		n, ok := pick(l.idx)[id]
		l.idx.mx.RUnlock()
		if ok {
			return n
		}
	}
	return ShortID(id)
}

// Device returns a device name, falling back to its short id.
func (l Lookup) Device(id string) string {
	return l.resolve(func(i *lookupIndex) map[string]string { return i.devices }, id)
}

// User returns a user name, falling back to its short id.
func (l Lookup) User(id string) string {
	return l.resolve(func(i *lookupIndex) map[string]string { return i.users }, id)
}

// Requests renders lending requests.
func Requests(tr Translate, l Lookup) Renderer[*dao.Request] {
	device := func(r *dao.Request) string { return l.Device(r.DeviceID) }
	user := func(r *dao.Request) string { return l.User(r.UserID) }

	return Renderer[*dao.Request]{
		Title: tr("resource.requests"),
		Columns: model1.Columns[*dao.Request]{
			{
				Key: "id", Header: tr("col.id"),
				Render: func(r *dao.Request) string { return ShortID(r.ID) },
				Attrs:  model1.Attrs{Wide: true},
			},
			{
				Key: "kind", Header: tr("col.kind"), Sortable: true,
				Value:  str(func(r *dao.Request) string { return r.Kind }),
				Render: func(r *dao.Request) string { return tr("kind." + r.Kind) },
			},
			{
				Key: "status", Header: tr("col.status"), Sortable: true, ClassName: "status",
				Value:  str(func(r *dao.Request) string { return r.Status }),
				Render: func(r *dao.Request) string { return tr("status." + r.Status) },
			},
			{Key: "device", Header: tr("col.device"), Sortable: true, Value: str(device)},
			{Key: "user", Header: tr("col.user"), Sortable: true, Value: str(user)},
			{
				Key: "start", Header: tr("col.start"), Sortable: true,
				Value:  func(r *dao.Request) any { return r.StartDate.Unix() },
				Render: func(r *dao.Request) string { return ToDate(r.StartDate) },
			},
			{
				Key: "end", Header: tr("col.end"), Sortable: true,
				Value:  func(r *dao.Request) any { return r.EndDate.Unix() },
				Render: func(r *dao.Request) string { return ToDate(r.EndDate) },
			},
			{
				Key: "reason", Header: tr("col.reason"),
				Render: func(r *dao.Request) string { return Truncate(r.Reason, 40) },
				Attrs:  model1.Attrs{Wide: true},
			},
			{
				Key: "age", Header: tr("col.age"), Sortable: true,
				Value:  func(r *dao.Request) any { return r.CreatedAt.Unix() },
				Render: func(r *dao.Request) string { return ToAge(r.CreatedAt) },
			},
		},
		SearchKeys: []model1.Accessor[*dao.Request]{
			str(device),
			str(user),
			str(func(r *dao.Request) string { return r.Kind }),
			str(func(r *dao.Request) string { return r.Status }),
			str(func(r *dao.Request) string { return r.Reason }),
		},
		RowID:   objectID[*dao.Request],
		Colorer: requestColorer,
	}
}

func requestColorer(r *dao.Request, kind model1.ResEvent) tcell.Color {
	if kind == model1.EventAdd || kind == model1.EventUpdate {
		return model1.EventColor(kind)
	}
	switch r.Status {
	case dao.StatusPending:
		return model1.PendingColor
	case dao.StatusApproved:
		return model1.HighlightColor
	case dao.StatusActive:
		return model1.CompletedColor
	case dao.StatusRejected:
		return model1.ErrColor
	case dao.StatusReturned:
		return model1.KillColor
	default:
		return model1.StdColor
	}
}
