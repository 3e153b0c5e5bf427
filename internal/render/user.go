// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package render

import (
	"github.com/derailed/tcell/v2"

	"github.com/lendr/lendr/internal/dao"
	"github.com/lendr/lendr/internal/model1"
)

// Users renders users.
func Users(tr Translate) Renderer[*dao.User] {
	return Renderer[*dao.User]{
		Title: tr("resource.users"),
		Columns: model1.Columns[*dao.User]{
			{Key: "name", Header: tr("col.name"), Sortable: true, Value: str(func(u *dao.User) string { return u.Name })},
			{Key: "email", Header: tr("col.email"), Sortable: true, Value: str(func(u *dao.User) string { return u.Email })},
			{
				Key: "role", Header: tr("col.role"), Sortable: true,
				Value:  str(func(u *dao.User) string { return u.Role }),
				Render: func(u *dao.User) string { return tr("role." + u.Role) },
			},
			{
				Key: "department", Header: tr("col.department"), Sortable: true,
				Value:  str(func(u *dao.User) string { return u.Department }),
				Render: func(u *dao.User) string { return NA(u.Department) },
			},
			{
				Key: "active", Header: tr("col.active"),
				Render: func(u *dao.User) string { return BoolToYesNo(u.Active) },
			},
			{
				Key: "age", Header: tr("col.age"), Sortable: true,
				Value:  func(u *dao.User) any { return u.CreatedAt.Unix() },
				Render: func(u *dao.User) string { return ToAge(u.CreatedAt) },
				Attrs:  model1.Attrs{Wide: true},
			},
		},
		SearchKeys: []model1.Accessor[*dao.User]{
			str(func(u *dao.User) string { return u.Name }),
			str(func(u *dao.User) string { return u.Email }),
			str(func(u *dao.User) string { return u.Department }),
		},
		RowID: objectID[*dao.User],
		Colorer: func(u *dao.User, kind model1.ResEvent) tcell.Color {
			if !u.Active {
				return model1.KillColor
			}
			return model1.EventColor(kind)
		},
	}
}
