package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/lendr/lendr/internal/dao"
	"github.com/lendr/lendr/internal/model1"
)

func price(f float64) *float64 {
	return &f
}

func devices() []*dao.Device {
	return []*dao.Device{
		{ID: "d1", AssetTag: "LND-1", Name: "Laptop Pro", Category: "laptop", Status: dao.DeviceAvailable, Quantity: 2, PurchasePrice: price(2199), Tags: []string{"mac", "dev"}},
		{ID: "d2", AssetTag: "LND-2", Name: "Dock", Category: "accessory", Status: dao.DeviceRetired, Quantity: 5},
		{ID: "d3", AssetTag: "LND-3", Name: "Monitor", Category: "monitor", Status: dao.DeviceBorrowed, Quantity: 1, PurchasePrice: price(529)},
	}
}

func TestDevicesColumns(t *testing.T) {
	r := Devices(Identity, nil)

	require.NoError(t, r.Columns.Validate())
	assert.Equal(t, "resource.devices", r.Title)
	assert.Equal(t, []string{FavoriteMark, "col.asset", "col.name", "col.category", "col.location", "col.status", "col.quantity", "col.age"}, r.Headers(false))
	assert.Len(t, r.Headers(true), 11)
	assert.Equal(t, "d1", r.RowID(devices()[0]))
}

func TestDevicesCells(t *testing.T) {
	favs := dao.NewFavoriteStore("")
	favs.Toggle("d1")
	r := Devices(Identity, favs)
	dd := devices()

	cells := r.Cells(dd[0], true)
	assert.Equal(t, FavoriteMark, cells[0])
	assert.Equal(t, "LND-1", cells[1])
	assert.Equal(t, MissingValue, cells[4])
	assert.Equal(t, "status.available", cells[6])
	assert.Equal(t, "2", cells[7])
	assert.Equal(t, "2199.00", cells[8])
	assert.Equal(t, "mac,dev", cells[9])

	assert.Equal(t, Blank, r.Cells(dd[1], false)[0])
	assert.Equal(t, NAValue, r.Cells(dd[1], true)[8])
}

func TestDevicesSortAndSearch(t *testing.T) {
	r := Devices(Identity, nil)
	p := model1.NewPipeline(r.Columns, r.SearchKeys, language.English)
	dd := devices()

	out := p.Apply(dd, model1.QueryState{SortKey: "price", SortDir: model1.SortDesc})
	assert.Equal(t, []string{"d1", "d3", "d2"}, []string{out[0].ID, out[1].ID, out[2].ID})

	out = p.Apply(dd, model1.QueryState{SortKey: "price", SortDir: model1.SortAsc})
	assert.Equal(t, []string{"d3", "d1", "d2"}, []string{out[0].ID, out[1].ID, out[2].ID})

	out = p.Apply(dd, model1.QueryState{SearchText: "DEV"})
	require.Len(t, out, 1)
	assert.Equal(t, "d1", out[0].ID)
}

func TestDeviceColorer(t *testing.T) {
	c := Devices(Identity, nil).ColorerFunc()
	dd := devices()

	assert.Equal(t, model1.StdColor, c(dd[0], model1.EventUnchanged))
	assert.Equal(t, model1.KillColor, c(dd[1], model1.EventUnchanged))
	assert.Equal(t, model1.PendingColor, c(dd[2], model1.EventUnchanged))
	assert.Equal(t, model1.AddColor, c(dd[2], model1.EventAdd))
}

func TestRequests(t *testing.T) {
	ds := &dao.Dataset{
		Devices: devices(),
		Users:   []*dao.User{{ID: "u1", Name: "Grace"}},
	}
	r := Requests(Identity, NewLookup(ds))
	require.NoError(t, r.Columns.Validate())

	rq := &dao.Request{
		ID: "6ba7b810-9dad-11d1-80b4-00c04fd430c8", Kind: dao.KindBorrow, Status: dao.StatusRejected,
		DeviceID: "d3", UserID: "gone-user",
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	cells := r.Cells(rq, true)
	assert.Equal(t, "6ba7b810", cells[0])
	assert.Equal(t, "kind.borrow", cells[1])
	assert.Equal(t, "status.rejected", cells[2])
	assert.Equal(t, "Monitor", cells[3])
	assert.Equal(t, "gone", cells[4])
	assert.Equal(t, "2025-03-01", cells[5])
	assert.Equal(t, MissingValue, cells[6])

	p := model1.NewPipeline(r.Columns, r.SearchKeys, language.English)
	assert.Len(t, p.Apply([]*dao.Request{rq}, model1.QueryState{SearchText: "monitor"}), 1)
	assert.Equal(t, model1.ErrColor, r.ColorerFunc()(rq, model1.EventUnchanged))
}

func TestUsersAndNotifications(t *testing.T) {
	u := Users(Identity)
	require.NoError(t, u.Columns.Validate())
	inactive := &dao.User{ID: "u1", Name: "Dennis", Role: dao.RoleMember}
	cells := u.Cells(inactive, false)
	assert.Equal(t, []string{"Dennis", "", "role.member", NAValue, "No"}, cells)
	assert.Equal(t, model1.KillColor, u.ColorerFunc()(inactive, model1.EventUnchanged))

	n := Notifications(Identity)
	require.NoError(t, n.Columns.Validate())
	unread := &dao.Notification{ID: "n1", Kind: "request.due", Title: "Due"}
	assert.Equal(t, UnreadMark, n.Cells(unread, false)[0])
	assert.Equal(t, model1.HighlightColor, n.ColorerFunc()(unread, model1.EventUnchanged))
	unread.Read = true
	assert.Equal(t, model1.StdColor, n.ColorerFunc()(unread, model1.EventUnchanged))
}

func TestLookupReset(t *testing.T) {
	l := NewLookup(nil)
	shared := l
	assert.Equal(t, "u1", l.User("u1"))

	l.Reset(&dao.Dataset{Users: []*dao.User{{ID: "u1", Name: "Grace"}}})

	assert.Equal(t, "Grace", shared.User("u1"))
	assert.Equal(t, "Grace", Lookup{}.User("Grace"))
}
