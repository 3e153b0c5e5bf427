// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package model

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/wI2L/jsondiff"

	"github.com/lendr/lendr/internal/model1"
)

// DefaultRefreshRate is used when no positive refresh rate is configured.
const DefaultRefreshRate = 5 * time.Second

// FetchFunc loads the full dataset for a table.
type FetchFunc[R any] func(context.Context) ([]R, error)

// Loader feeds a table from a fetch function, once or on a watch loop.
type Loader[R any] struct {
	table       *Table[R]
	fetch       FetchFunc[R]
	refreshRate time.Duration
	snapshots   map[string][]byte
	kinds       map[string]model1.ResEvent
	listeners   []LoadListener
	dispatch    func(func())
	cancelFn    context.CancelFunc
	mx          sync.RWMutex
}

// NewLoader creates a loader for the given table.
func NewLoader[R any](t *Table[R], fetch FetchFunc[R], refreshRate time.Duration) *Loader[R] {
	return &Loader[R]{
		table:       t,
		fetch:       fetch,
		refreshRate: refreshRate,
		kinds:       make(map[string]model1.ResEvent),
	}
}

// AddListener registers a load listener.
func (l *Loader[R]) AddListener(ll LoadListener) {
	l.mx.Lock()
	defer l.mx.Unlock()
	l.listeners = append(l.listeners, ll)
}

// SetDispatcher routes table updates through fn, typically onto the UI goroutine.
func (l *Loader[R]) SetDispatcher(fn func(func())) {
	l.mx.Lock()
	defer l.mx.Unlock()
	l.dispatch = fn
}

// Kind returns how a row changed during the last refresh.
func (l *Loader[R]) Kind(id string) model1.ResEvent {
	l.mx.RLock()
	defer l.mx.RUnlock()

	if k, ok := l.kinds[id]; ok {
		return k
	}
	return model1.EventUnchanged
}

// Watch loads once, then keeps refreshing until ctx is done or Stop is called.
func (l *Loader[R]) Watch(ctx context.Context) error {
	l.mx.Lock()
	if l.cancelFn != nil {
		l.cancelFn()
	}
	watchCtx, cancel := context.WithCancel(ctx)
	l.cancelFn = cancel
	l.mx.Unlock()

	if err := l.Refresh(watchCtx); err != nil {
		return err
	}

	go l.watchLoop(watchCtx)
	return nil
}

func (l *Loader[R]) watchLoop(ctx context.Context) {
	l.mx.RLock()
	refreshRate := l.refreshRate
	l.mx.RUnlock()

	if refreshRate <= 0 {
		refreshRate = DefaultRefreshRate
	}

	ticker := time.NewTicker(refreshRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = l.Refresh(ctx)
		}
	}
}

// Refresh fetches the dataset immediately and hands it to the table.
func (l *Loader[R]) Refresh(ctx context.Context) error {
	if l.fetch == nil {
		err := errors.New("no fetcher configured")
		l.notifyFailed(err)
		return err
	}

	rows, err := l.fetch(ctx)
	if err != nil {
		err = fmt.Errorf("failed to load rows: %w", err)
		l.notifyFailed(err)
		return err
	}

	l.track(rows)
	l.dispatchFn()(func() {
		l.table.SetRows(rows)
		l.notifySucceeded(len(rows))
	})

	return nil
}

// track diffs each row against its previous snapshot.
func (l *Loader[R]) track(rows []R) {
	snapshots := make(map[string][]byte, len(rows))
	kinds := make(map[string]model1.ResEvent, len(rows))

	l.mx.RLock()
	prev, first := l.snapshots, l.snapshots == nil
	l.mx.RUnlock()

	for _, r := range rows {
		id := l.table.RowID(r)
		raw, err := json.Marshal(r)
		if err != nil {
			slog.Debug("Row snapshot failed", "id", id, "error", err)
			continue
		}
		snapshots[id] = raw

		old, ok := prev[id]
		switch {
		case first:
			kinds[id] = model1.EventUnchanged
		case !ok:
			kinds[id] = model1.EventAdd
		default:
			patch, err := jsondiff.CompareJSON(old, raw)
			if err != nil || len(patch) == 0 {
				kinds[id] = model1.EventUnchanged
				continue
			}
			kinds[id] = model1.EventUpdate
			slog.Debug("Row changed", "id", id, "patch", patch.String())
		}
	}

	l.mx.Lock()
	l.snapshots, l.kinds = snapshots, kinds
	l.mx.Unlock()
}

// Stop stops the watch loop.
func (l *Loader[R]) Stop() {
	l.mx.Lock()
	defer l.mx.Unlock()

	if l.cancelFn != nil {
		l.cancelFn()
		l.cancelFn = nil
	}
}

func (l *Loader[R]) notifyFailed(err error) {
	for _, ll := range l.snapshotListeners() {
		ll.LoadFailed(err)
	}
}

func (l *Loader[R]) notifySucceeded(n int) {
	for _, ll := range l.snapshotListeners() {
		ll.LoadSucceeded(n)
	}
}

func (l *Loader[R]) dispatchFn() func(func()) {
	l.mx.RLock()
	defer l.mx.RUnlock()

	if l.dispatch == nil {
		return func(fn func()) { fn() }
	}
	return l.dispatch
}

func (l *Loader[R]) snapshotListeners() []LoadListener {
	l.mx.RLock()
	defer l.mx.RUnlock()

	listeners := make([]LoadListener, len(l.listeners))
	copy(listeners, l.listeners)
	return listeners
}
