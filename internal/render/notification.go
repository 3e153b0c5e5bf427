// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package render

import (
	"github.com/derailed/tcell/v2"

	"github.com/lendr/lendr/internal/dao"
	"github.com/lendr/lendr/internal/model1"
)

// Notifications renders inbox notifications.
func Notifications(tr Translate) Renderer[*dao.Notification] {
	return Renderer[*dao.Notification]{
		Title: tr("resource.notifications"),
		Columns: model1.Columns[*dao.Notification]{
			{
				Key: "read", Header: UnreadMark,
				Render: func(n *dao.Notification) string {
					if n.Read {
						return Blank
					}
					return UnreadMark
				},
			},
			{Key: "kind", Header: tr("col.kind"), Sortable: true, Value: str(func(n *dao.Notification) string { return n.Kind })},
			{Key: "title", Header: tr("col.title"), Sortable: true, Value: str(func(n *dao.Notification) string { return n.Title })},
			{
				Key: "message", Header: tr("col.message"),
				Render: func(n *dao.Notification) string { return Truncate(n.Message, 50) },
				Attrs:  model1.Attrs{Wide: true},
			},
			{
				Key: "age", Header: tr("col.age"), Sortable: true,
				Value:  func(n *dao.Notification) any { return n.CreatedAt.Unix() },
				Render: func(n *dao.Notification) string { return ToAge(n.CreatedAt) },
			},
		},
		SearchKeys: []model1.Accessor[*dao.Notification]{
			str(func(n *dao.Notification) string { return n.Title }),
			str(func(n *dao.Notification) string { return n.Message }),
			str(func(n *dao.Notification) string { return n.Kind }),
		},
		RowID: objectID[*dao.Notification],
		Colorer: func(n *dao.Notification, kind model1.ResEvent) tcell.Color {
			if !n.Read {
				return model1.HighlightColor
			}
			return model1.EventColor(kind)
		},
	}
}
