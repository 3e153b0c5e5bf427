// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package render

import (
	"strings"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/lendr/lendr/internal/dao"
	"github.com/lendr/lendr/internal/model1"
)

// Devices renders catalog devices. favs may be nil.
func Devices(tr Translate, favs *dao.FavoriteStore) Renderer[*dao.Device] {
	isFav := func(d *dao.Device) bool {
		return favs != nil && favs.Has(d.ID)
	}

	return Renderer[*dao.Device]{
		Title: tr("resource.devices"),
		Columns: model1.Columns[*dao.Device]{
			{
				Key:    "fav",
				Header: FavoriteMark,
				Render: func(d *dao.Device) string {
					if isFav(d) {
						return FavoriteMark
					}
					return Blank
				},
			},
			{Key: "asset", Header: tr("col.asset"), Sortable: true, Value: str(func(d *dao.Device) string { return d.AssetTag })},
			{Key: "name", Header: tr("col.name"), Sortable: true, Value: str(func(d *dao.Device) string { return d.Name })},
			{Key: "category", Header: tr("col.category"), Sortable: true, Value: str(func(d *dao.Device) string { return d.Category })},
			{
				Key: "model", Header: tr("col.model"), Sortable: true,
				Value:  str(func(d *dao.Device) string { return d.Model }),
				Render: func(d *dao.Device) string { return Missing(d.Model) },
				Attrs:  model1.Attrs{Wide: true},
			},
			{Key: "location", Header: tr("col.location"), Sortable: true, Value: str(func(d *dao.Device) string { return d.Location })},
			{
				Key: "status", Header: tr("col.status"), Sortable: true, ClassName: "status",
				Value:  str(func(d *dao.Device) string { return d.Status }),
				Render: func(d *dao.Device) string { return tr("status." + d.Status) },
			},
			{
				Key: "qty", Header: tr("col.quantity"), Sortable: true, ClassName: "numeric",
				Value: func(d *dao.Device) any { return d.Quantity },
				Attrs: model1.Attrs{Align: tview.AlignRight},
			},
			{
				Key: "price", Header: tr("col.price"), Sortable: true, ClassName: "numeric",
				Value: func(d *dao.Device) any {
					if d.PurchasePrice == nil {
						return nil
					}
					return *d.PurchasePrice
				},
				Render: func(d *dao.Device) string { return FormatPrice(d.PurchasePrice) },
				Attrs:  model1.Attrs{Align: tview.AlignRight, Wide: true},
			},
			{
				Key: "tags", Header: tr("col.tags"),
				Render: func(d *dao.Device) string { return strings.Join(d.Tags, ",") },
				Attrs:  model1.Attrs{Wide: true},
			},
			{
				Key: "age", Header: tr("col.age"), Sortable: true,
				Value:  func(d *dao.Device) any { return d.CreatedAt.Unix() },
				Render: func(d *dao.Device) string { return ToAge(d.CreatedAt) },
			},
		},
		SearchKeys: []model1.Accessor[*dao.Device]{
			str(func(d *dao.Device) string { return d.AssetTag }),
			str(func(d *dao.Device) string { return d.Name }),
			str(func(d *dao.Device) string { return d.Category }),
			str(func(d *dao.Device) string { return d.Model }),
			str(func(d *dao.Device) string { return d.Location }),
			str(func(d *dao.Device) string { return strings.Join(d.Tags, " ") }),
		},
		RowID:   objectID[*dao.Device],
		Colorer: deviceColorer,
	}
}

func deviceColorer(d *dao.Device, kind model1.ResEvent) tcell.Color {
	if kind == model1.EventAdd || kind == model1.EventUpdate {
		return model1.EventColor(kind)
	}
	switch d.Status {
	case dao.DeviceBorrowed:
		return model1.PendingColor
	case dao.DeviceMaintenance:
		return model1.ErrColor
	case dao.DeviceRetired:
		return model1.KillColor
	default:
		return model1.StdColor
	}
}
