// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package view

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/derailed/tcell/v2"

	"github.com/lendr/lendr/internal/config"
	"github.com/lendr/lendr/internal/dao"
	"github.com/lendr/lendr/internal/export"
	"github.com/lendr/lendr/internal/model"
	"github.com/lendr/lendr/internal/render"
	"github.com/lendr/lendr/internal/ui"
)

// Browser lists the records of one resource in a paged, sortable, searchable table.
type Browser[R dao.Object] struct {
	*ui.DataTable[R]

	app      *App
	rid      *dao.ResourceID
	renderer render.Renderer[R]
	loader   *model.Loader[R]
	extras   ExtrasFunc
	cancelFn context.CancelFunc
}

// NewBrowser returns a browser for rid, fed by fetch and drawn by r.
func NewBrowser[R dao.Object](app *App, rid *dao.ResourceID, r render.Renderer[R], fetch model.FetchFunc[R]) (*Browser[R], error) {
	cfg := app.Config().Lendr
	labels := app.Labels()

	t, err := model.NewTable(r.Columns, model.Options[R]{
		Searchable:        true,
		SearchPlaceholder: labels.T("search.placeholder"),
		SearchKeys:        r.SearchKeys,
		Paginated:         true,
		PageSize:          cfg.Table.PageSize,
		PageSizes:         cfg.Table.PageSizes,
		Selectable:        true,
		RowID:             r.RowID,
		EmptyText:         labels.T("empty.title"),
		EmptyDescription:  labels.T("empty.description"),
		Locale:            labels.Tag(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build %s table: %w", rid, err)
	}

	refresh := time.Duration(float64(cfg.GetRefreshRate()) * float64(time.Second))
	b := Browser[R]{
		DataTable: ui.NewDataTable(rid.String(), r.Title, t, labels),
		app:       app,
		rid:       rid,
		renderer:  r,
		loader:    model.NewLoader(t, fetch, refresh),
	}

	return &b, nil
}

// Init initializes the browser component.
func (b *Browser[R]) Init(ctx context.Context) error {
	if err := b.DataTable.Init(ctx); err != nil {
		return err
	}
	b.SetColorer(b.renderer.ColorerFunc())
	b.SetKindFn(b.loader.Kind)
	b.SetWide(b.app.Config().Lendr.UI.Wide)
	b.Model().SetOnRowClick(b.describe)

	b.loader.SetDispatcher(b.app.QueueUpdateDraw)
	b.loader.AddListener(b)
	b.bindKeys()

	return nil
}

// Start loads the records and keeps them fresh.
func (b *Browser[R]) Start() {
	b.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	b.cancelFn = cancel
	if err := b.loader.Watch(ctx); err != nil {
		slog.Error("Browser load failed", "resource", b.rid.String(), "error", err)
	}
}

// Stop terminates the refresh loop.
func (b *Browser[R]) Stop() {
	if b.cancelFn != nil {
		b.cancelFn()
		b.cancelFn = nil
	}
	b.loader.Stop()
}

// ResourceID returns the browsed resource.
func (b *Browser[R]) ResourceID() *dao.ResourceID {
	return b.rid
}

// SetExtras sets the sections shown above a record's details.
func (b *Browser[R]) SetExtras(fn ExtrasFunc) {
	b.extras = fn
}

// Loader returns the browser's data loader.
func (b *Browser[R]) Loader() *model.Loader[R] {
	return b.loader
}

// LoadFailed notifies the load failed.
func (b *Browser[R]) LoadFailed(err error) {
	b.app.Flash().Errf(b.app.Labels().T("flash.loadFailed"), err)
}

// LoadSucceeded notifies a load completed with n rows.
func (b *Browser[R]) LoadSucceeded(n int) {
	slog.Debug("Browser loaded", "resource", b.rid.String(), "rows", n)
}

func (b *Browser[R]) bindKeys() {
	b.Actions().Bulk(ui.KeyMap{
		ui.KeyX:        ui.NewKeyAction("Export", b.exportCmd, true),
		ui.KeyD:        ui.NewKeyAction("Describe", b.describeCmd, true),
		tcell.KeyCtrlR: ui.NewKeyAction("Refresh", b.refreshCmd, false),
	})
}

func (b *Browser[R]) describeCmd(*tcell.EventKey) *tcell.EventKey {
	if r, ok := b.SelectedRow(); ok {
		b.describe(r)
	}
	return nil
}

func (b *Browser[R]) describe(r R) {
	d := NewDescribe(b.rid, r.GetID(), b.app.Factory())
	d.SetExtras(b.extras)
	d.SetBackFn(b.app.PrevCmd)
	if err := b.app.inject(d); err != nil {
		b.app.Flash().Err(err)
	}
}

func (b *Browser[R]) refreshCmd(*tcell.EventKey) *tcell.EventKey {
	b.app.Factory().Invalidate()
	go func() {
		if err := b.loader.Refresh(context.Background()); err == nil {
			b.app.Flash().Info(b.app.Labels().Tf("flash.loaded", len(b.Model().Rows())))
		}
	}()
	return nil
}

// exportCmd writes the marked rows, or every matching row after a confirmation.
func (b *Browser[R]) exportCmd(*tcell.EventKey) *tcell.EventKey {
	if b.app.Config().Lendr.IsReadOnly() {
		b.app.Flash().Warn(b.app.Labels().T("flash.readOnly"))
		return nil
	}
	rows := b.Model().Selected()
	if len(rows) > 0 {
		b.export(rows)
		return nil
	}

	rows = b.Model().Filtered()
	if len(rows) == 0 {
		b.app.Flash().Warn(b.app.Labels().T("flash.nothingSelected"))
		return nil
	}
	ui.ShowConfirm(b.app.Main, b.exportPrompt(len(rows)), func() { b.export(rows) }, func() { b.app.SetFocus(b) })

	return nil
}

func (b *Browser[R]) exportPrompt(n int) string {
	return b.app.Labels().Tf("confirm.exportAll", n, b.renderer.Title)
}

func (b *Browser[R]) export(rows []R) {
	path := export.Filename(config.AppExportDir, b.rid.Resource, time.Now())
	if err := export.SaveCSV(path, b.renderer.Columns, rows); err != nil {
		b.app.Flash().Err(err)
		return
	}
	slog.Info("Rows exported", "resource", b.rid.String(), "rows", len(rows), "path", path)
	b.app.Flash().Info(b.app.Labels().Tf("flash.exported", len(rows), path))
}

// listAs lists a resource and narrows its records to R.
func listAs[R dao.Object](ctx context.Context, f dao.Factory, rid *dao.ResourceID) ([]R, error) {
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
		r, ok := o.(R)
		if !ok {
			return nil, fmt.Errorf("unexpected %s record %T", rid, o)
		}
		rows = append(rows, r)
	}

	return rows, nil
}
