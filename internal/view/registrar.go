// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package view

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/fvbommel/sortorder"

	"github.com/lendr/lendr/internal/dao"
	"github.com/lendr/lendr/internal/render"
	"github.com/lendr/lendr/internal/ui"
)

// availabilityWindow is the free stretch looked up for a device.
const availabilityWindow = 7 * 24 * time.Hour

// ViewerFunc builds the browser of one resource.
type ViewerFunc func(*App, *dao.ResourceID) (ui.Component, error)

// MetaViewers maps resource ids to their viewers.
type MetaViewers map[string]ViewerFunc

func loadViewers() MetaViewers {
	return MetaViewers{
		dao.DeviceRID.String():       deviceViewer,
		dao.FavoriteRID.String():     deviceViewer,
		dao.RequestRID.String():      requestViewer,
		dao.UserRID.String():         userViewer,
		dao.NotificationRID.String(): notificationViewer,
	}
}

// Names returns the registered resource ids in natural order.
func (m MetaViewers) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Sort(sortorder.Natural(names))

	return names
}

func deviceViewer(app *App, rid *dao.ResourceID) (ui.Component, error) {
	f := app.Factory()
	r := render.Devices(app.Labels().T, f.Favorites())
	if *rid == dao.FavoriteRID {
		r.Title = app.Labels().T("resource.favorites")
	}

	b, err := NewBrowser(app, rid, r, func(ctx context.Context) ([]*dao.Device, error) {
		return listAs[*dao.Device](ctx, f, rid)
	})
	if err != nil {
		return nil, err
	}
	b.SetExtras(func(ctx context.Context, id string) (string, error) {
		avail, err := availability(ctx, f)
		if err != nil {
			return "", err
		}
		return availabilitySection(app.Labels(), avail, id, time.Now()), nil
	})
	b.Actions().Add(ui.KeyF, ui.NewKeyAction("Favorite", func(*tcell.EventKey) *tcell.EventKey {
		if d, ok := b.SelectedRow(); ok {
			toggleFavorite(app, d)
			if *rid == dao.FavoriteRID {
				go func() { _ = b.Loader().Refresh(context.Background()) }()
			} else {
				b.Model().Refresh()
			}
		}
		return nil
	}, true))

	return b, nil
}

func toggleFavorite(app *App, d *dao.Device) {
	if app.Config().Lendr.IsReadOnly() {
		app.Flash().Warn(app.Labels().T("flash.readOnly"))
		return
	}
	favs := app.Factory().Favorites()
	key := "flash.unfavorited"
	if favs.Toggle(d.ID) {
		key = "flash.favorited"
	}
	if err := favs.Save(); err != nil {
		app.Flash().Err(err)
		return
	}
	app.Flash().Info(app.Labels().Tf(key, d.Name))
}

func requestViewer(app *App, rid *dao.ResourceID) (ui.Component, error) {
	f := app.Factory()
	lookup := render.NewLookup(nil)

	b, err := NewBrowser(app, rid, render.Requests(app.Labels().T, lookup), func(ctx context.Context) ([]*dao.Request, error) {
		ds, err := f.Dataset(ctx)
		if err != nil {
			return nil, err
		}
		lookup.Reset(ds)
		return listAs[*dao.Request](ctx, f, rid)
	})
	if err != nil {
		return nil, err
	}
	b.SetExtras(func(ctx context.Context, id string) (string, error) {
		ds, err := f.Dataset(ctx)
		if err != nil {
			return "", err
		}
		r, err := ds.Request(id)
		if err != nil {
			return "", err
		}
		return timelineSection(app.Labels(), r), nil
	})

	return b, nil
}

func userViewer(app *App, rid *dao.ResourceID) (ui.Component, error) {
	f := app.Factory()
	b, err := NewBrowser(app, rid, render.Users(app.Labels().T), func(ctx context.Context) ([]*dao.User, error) {
		return listAs[*dao.User](ctx, f, rid)
	})
	if err != nil {
		return nil, err
	}

	return b, nil
}

func notificationViewer(app *App, rid *dao.ResourceID) (ui.Component, error) {
	f := app.Factory()
	b, err := NewBrowser(app, rid, render.Notifications(app.Labels().T), func(ctx context.Context) ([]*dao.Notification, error) {
		return listAs[*dao.Notification](ctx, f, rid)
	})
	if err != nil {
		return nil, err
	}

	return b, nil
}

func availability(ctx context.Context, f dao.Factory) (*dao.Availability, error) {
	acc, err := dao.AccessorFor(f, &dao.RequestRID)
	if err != nil {
		return nil, err
	}
	rr, ok := acc.(*dao.Requests)
	if !ok {
		return nil, fmt.Errorf("unexpected request accessor %T", acc)
	}
	return rr.Availability(ctx)
}

// availabilitySection lists a device's bookings and its next free week.
func availabilitySection(l ui.Labeler, a *dao.Availability, id string, now time.Time) string {
	var b strings.Builder
	for _, bk := range a.Bookings(id) {
		if !bk.End.After(now) {
			continue
		}
		fmt.Fprintf(&b, "[yellow::]%s → %s[-::] %s\n",
			render.ToDate(bk.Start), render.ToDate(bk.End), render.ShortID(bk.RequestID))
	}
	next := a.NextAvailable(id, now, availabilityWindow)
	fmt.Fprintf(&b, "[green::]%s[-::]\n", l.Tf("detail.availability", render.ToDate(next)))

	return b.String()
}

// timelineSection draws a request's lifecycle, one step per line.
func timelineSection(l ui.Labeler, r *dao.Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[::b]%s[::-]\n", l.T("timeline.title"))
	for _, s := range dao.Timeline(r) {
		at := ""
		if s.At != nil {
			at = render.ToDate(*s.At)
		}
		fmt.Fprintf(&b, "  [%s::]%s[-::] %-10s %s %s\n",
			stepColor(s.State), stepGlyph(s.State), l.T("status."+s.Status), l.T("timeline."+s.State), at)
	}

	return b.String()
}

func stepGlyph(state string) string {
	switch state {
	case dao.StepDone:
		return "●"
	case dao.StepCurrent:
		return "◉"
	case dao.StepFailed:
		return "✗"
	default:
		return "○"
	}
}

func stepColor(state string) string {
	switch state {
	case dao.StepDone:
		return "green"
	case dao.StepCurrent:
		return "yellow"
	case dao.StepFailed:
		return "red"
	default:
		return "gray"
	}
}
