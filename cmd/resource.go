// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/lendr/lendr/internal/config"
	"github.com/lendr/lendr/internal/dao"
	"github.com/lendr/lendr/internal/i18n"
	"github.com/lendr/lendr/internal/model1"
	"github.com/lendr/lendr/internal/render"
)

// query narrows and orders the rows of a headless listing.
type query struct {
	search  string
	sortKey string
	desc    bool
	page    int
	perPage int
}

func (q *query) bind(fs *pflag.FlagSet) {
	fs.StringVar(&q.search, "search", "", "Only keep rows matching this text")
	fs.StringVar(&q.sortKey, "sort", "", "Column key to sort by")
	fs.BoolVar(&q.desc, "desc", false, "Sort descending")
	fs.IntVar(&q.page, "page", 0, "Page to keep, 1-based. 0 keeps every row")
	fs.IntVar(&q.perPage, "per-page", model1.DefaultPageSize, "Rows per page when --page is set")
}

func (q query) state() model1.QueryState {
	if q.sortKey == "" {
		return model1.QueryState{SearchText: q.search}
	}
	dir := model1.SortAsc
	if q.desc {
		dir = model1.SortDesc
	}
	return model1.QueryState{SearchText: q.search, SortKey: q.sortKey, SortDir: dir}
}

// resolveResource maps an alias or group/resource name to a resource id.
func resolveResource(name string) (*dao.ResourceID, error) {
	aliases := config.NewAliases()
	if err := aliases.Load(); err != nil {
		return nil, err
	}
	var rid dao.ResourceID
	if err := rid.Parse(aliases.Resolve(name)); err != nil {
		return nil, fmt.Errorf("%w: %s", dao.ErrUnknownResource, name)
	}

	return &rid, nil
}

// rowVisitor receives the rows of one resource along with their renderer.
type rowVisitor struct {
	devices       func(render.Renderer[*dao.Device], []*dao.Device) error
	requests      func(render.Renderer[*dao.Request], []*dao.Request) error
	users         func(render.Renderer[*dao.User], []*dao.User) error
	notifications func(render.Renderer[*dao.Notification], []*dao.Notification) error
}

// visitResource lists rid through the query and hands the rows to v.
func visitResource(ctx context.Context, f dao.Factory, l *i18n.Labels, rid *dao.ResourceID, q query, v rowVisitor) error {
	switch *rid {
	case dao.DeviceRID, dao.FavoriteRID:
		r := render.Devices(l.T, f.Favorites())
		rows, err := collect(ctx, f, rid, r, q, l)
		if err != nil {
			return err
		}
		return v.devices(r, rows)
	case dao.RequestRID:
		ds, err := f.Dataset(ctx)
		if err != nil {
			return err
		}
		r := render.Requests(l.T, render.NewLookup(ds))
		rows, err := collect(ctx, f, rid, r, q, l)
		if err != nil {
			return err
		}
		return v.requests(r, rows)
	case dao.UserRID:
		r := render.Users(l.T)
		rows, err := collect(ctx, f, rid, r, q, l)
		if err != nil {
			return err
		}
		return v.users(r, rows)
	case dao.NotificationRID:
		r := render.Notifications(l.T)
		rows, err := collect(ctx, f, rid, r, q, l)
		if err != nil {
			return err
		}
		return v.notifications(r, rows)
	default:
		return fmt.Errorf("%w: %s", dao.ErrUnknownResource, rid)
	}
}

// collect lists a resource, then searches, sorts and pages it like the TUI does.
func collect[R dao.Object](ctx context.Context, f dao.Factory, rid *dao.ResourceID, r render.Renderer[R], q query, l *i18n.Labels) ([]R, error) {
	if q.sortKey != "" {
		c, ok := r.Columns.Get(q.sortKey)
		if !ok || !c.Sortable {
			return nil, fmt.Errorf("cannot sort %s by %q (sortable: %v)", rid, q.sortKey, sortableKeys(r.Columns))
		}
	}

	acc, err := dao.AccessorFor(f, rid)
	if err != nil {
		return nil, err
	}
	oo, err := acc.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]R, 0, len(oo))
	for _, o := range oo {
		row, ok := o.(R)
		if !ok {
			return nil, fmt.Errorf("unexpected %s record %T", rid, o)
		}
		rows = append(rows, row)
	}

	rows = model1.NewPipeline(r.Columns, r.SearchKeys, l.Tag()).Apply(rows, q.state())
	if q.page > 0 {
		rows = model1.Paginate(rows, q.perPage, q.page).Rows
	}

	return rows, nil
}

func sortableKeys[R any](cols model1.Columns[R]) []string {
	var keys []string
	for _, c := range cols {
		if c.Sortable {
			keys = append(keys, c.Key)
		}
	}
	return keys
}
