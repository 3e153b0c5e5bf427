// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package view

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/lendr/lendr/internal/config"
	"github.com/lendr/lendr/internal/dao"
	"github.com/lendr/lendr/internal/i18n"
	"github.com/lendr/lendr/internal/ui"
)

const mainPage = "main"

const (
	// FlashDelay sets the flash auto-clear delay.
	FlashDelay = 5 * time.Second
)

// FlashLevel represents flash message severity.
type FlashLevel int

const (
	// FlashInfo represents an info message.
	FlashInfo FlashLevel = iota
	// FlashWarn represents a warning message.
	FlashWarn
	// FlashErr represents an error message.
	FlashErr
)

// Flash handles flash messages in the application.
type Flash struct {
	*tview.TextView
	app    *App
	cancel context.CancelFunc
	mx     sync.RWMutex
}

// NewFlash creates a new Flash instance.
func NewFlash(app *App) *Flash {
	f := &Flash{
		TextView: tview.NewTextView(),
		app:      app,
	}
	f.SetDynamicColors(true)
	f.SetTextAlign(tview.AlignLeft)
	f.SetBorderPadding(0, 0, 1, 1)
	return f
}

// Info displays an informational message.
func (f *Flash) Info(msg string) {
	f.setMessage(FlashInfo, msg)
}

// Infof displays a formatted informational message.
func (f *Flash) Infof(format string, args ...any) {
	f.Info(fmt.Sprintf(format, args...))
}

// Warn displays a warning message.
func (f *Flash) Warn(msg string) {
	f.setMessage(FlashWarn, msg)
}

// Warnf displays a formatted warning message.
func (f *Flash) Warnf(format string, args ...any) {
	f.Warn(fmt.Sprintf(format, args...))
}

// Err displays an error message.
func (f *Flash) Err(err error) {
	if err != nil {
		f.setMessage(FlashErr, err.Error())
	}
}

// Errf displays a formatted error message.
func (f *Flash) Errf(format string, args ...any) {
	f.setMessage(FlashErr, fmt.Sprintf(format, args...))
}

// Clear clears the flash message.
func (f *Flash) Clear() {
	f.mx.Lock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.mx.Unlock()

	if f.app != nil {
		f.app.QueueUpdateDraw(func() {
			f.TextView.Clear()
		})
	} else {
		f.TextView.Clear()
	}
}

func (f *Flash) setMessage(level FlashLevel, msg string) {
	f.mx.Lock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.mx.Unlock()

	if msg == "" {
		f.Clear()
		return
	}
	switch level {
	case FlashErr:
		slog.Error(msg)
	case FlashWarn:
		slog.Warn(msg)
	}

	updateFn := func() {
		f.TextView.Clear()
		f.SetTextColor(flashColor(level))
		fmt.Fprintf(f.TextView, "%s %s", flashPrefix(level), tview.Escape(msg))
	}

	if f.app != nil {
		f.app.QueueUpdateDraw(updateFn)
	} else {
		updateFn()
	}

	ctx, cancel := context.WithCancel(context.Background())
	f.mx.Lock()
	f.cancel = cancel
	f.mx.Unlock()

	go f.autoClear(ctx)
}

func (f *Flash) autoClear(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(FlashDelay):
		f.Clear()
	}
}

func flashColor(level FlashLevel) tcell.Color {
	switch level {
	case FlashWarn:
		return tcell.ColorYellow
	case FlashErr:
		return tcell.ColorRed
	default:
		return tcell.ColorGreen
	}
}

func flashPrefix(level FlashLevel) string {
	switch level {
	case FlashWarn:
		return "[WARN[]"
	case FlashErr:
		return "[ERROR[]"
	default:
		return "[INFO[]"
	}
}

// App represents the main application container.
type App struct {
	*tview.Application

	version string
	Main    *tview.Pages
	Content *ui.Pages
	command *Command
	config  *config.Config
	factory dao.Factory
	labels  *i18n.Labels
	aliases *config.Aliases
	hotkeys *config.HotKeys
	cmdBar  *ui.CmdBar
	menu    *ui.Menu
	crumbs  *ui.Crumbs
	flash   *Flash
	running bool
	mx      sync.RWMutex
}

// NewApp creates a new application instance.
func NewApp(cfg *config.Config, version string, f dao.Factory, labels *i18n.Labels) *App {
	app := App{
		Application: tview.NewApplication(),
		version:     version,
		Main:        tview.NewPages(),
		Content:     ui.NewPages(),
		config:      cfg,
		factory:     f,
		labels:      labels,
		aliases:     config.NewAliases(),
		hotkeys:     config.NewHotKeys(),
		menu:        ui.NewMenu(),
		crumbs:      ui.NewCrumbs(),
		cmdBar:      ui.NewCmdBar(),
	}
	app.flash = NewFlash(&app)

	return &app
}

// SetAliases sets the command aliases.
func (a *App) SetAliases(aa *config.Aliases) {
	a.aliases = aa
}

// SetHotKeys sets the custom hotkeys.
func (a *App) SetHotKeys(hh *config.HotKeys) {
	a.hotkeys = hh
}

// Init initializes and builds the application layout.
func (a *App) Init() error {
	a.command = NewCommand(a, a.aliases)
	a.cmdBar.SetCommands(a.command.Commands())

	a.Content.AddListener(a.menu)
	a.Content.AddListener(a.crumbs)

	a.cmdBar.SetActiveFn(func(active bool) {
		if active {
			a.SetFocus(a.cmdBar)
			return
		}
		a.focusCurrent()
	})
	a.cmdBar.SetCommandFn(a.runCommand)
	a.cmdBar.SetFilterFn(a.applyFilter)
	a.cmdBar.SetCancelFn(func() { a.applyFilter("") })

	a.Main.AddPage(mainPage, a.buildLayout(), true, true)
	a.SetRoot(a.Main, true)
	a.EnableMouse(a.config.Lendr.UI.EnableMouse)
	a.SetInputCapture(a.keyboard)

	return nil
}

// Run opens the startup view and runs the event loop.
func (a *App) Run() error {
	a.mx.Lock()
	a.running = true
	a.mx.Unlock()

	if err := a.command.Run(""); err != nil {
		a.flash.Errf("Failed to open %q: %v", a.config.Lendr.ActiveView(), err)
	}

	return a.Application.Run()
}

// Stop saves the configuration and stops the application.
func (a *App) Stop() {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.clearStack()
	if err := a.config.Save(false); err != nil {
		slog.Error("Config save failed", "error", err)
	}
	a.running = false
	a.Application.Stop()
}

// IsRunning returns whether the application is currently running.
func (a *App) IsRunning() bool {
	a.mx.RLock()
	defer a.mx.RUnlock()

	return a.running
}

// Flash returns the flash message handler.
func (a *App) Flash() *Flash {
	return a.flash
}

// Factory returns the data factory.
func (a *App) Factory() dao.Factory {
	return a.factory
}

// Config returns the application configuration.
func (a *App) Config() *config.Config {
	return a.config
}

// Labels returns the display labels.
func (a *App) Labels() *i18n.Labels {
	return a.labels
}

// Version returns the build version.
func (a *App) Version() string {
	return a.version
}

// QueueUpdateDraw queues a function to be executed on the UI thread.
func (a *App) QueueUpdateDraw(fn func()) {
	go a.Application.QueueUpdateDraw(fn)
}

// PrevCmd pops the top view and resumes the one below.
func (a *App) PrevCmd() {
	if a.Content.Len() <= 1 {
		return
	}
	a.Content.Pop()
	if top := a.Content.Current(); top != nil {
		top.Start()
	}
	a.focusCurrent()
}

// inject initializes c, pushes it and starts it.
func (a *App) inject(c ui.Component) error {
	if err := c.Init(context.Background()); err != nil {
		return fmt.Errorf("failed to initialize %s: %w", c.Name(), err)
	}
	a.Content.Push(c)
	c.Start()
	a.SetFocus(c)

	return nil
}

func (a *App) clearStack() {
	for !a.Content.Empty() {
		a.Content.Pop()
	}
}

func (a *App) focusCurrent() {
	if top := a.Content.Current(); top != nil {
		a.SetFocus(top)
	}
}

func (a *App) runCommand(cmd string) {
	err := a.command.Run(cmd)
	switch {
	case err == nil:
	case errors.Is(err, ErrQuit):
		a.Stop()
	default:
		a.flash.Err(err)
	}
}

// buildLayout stacks the command bar, the content and the status bars.
func (a *App) buildLayout() *tview.Flex {
	bottomBar := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.crumbs, 1, 0, false).
		AddItem(a.flash, 1, 0, false).
		AddItem(a.menu, 1, 0, false)

	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.cmdBar, 3, 0, false).
		AddItem(a.Content, 0, 1, true).
		AddItem(bottomBar, 3, 0, false)
}

// keyboard handles global keyboard events.
func (a *App) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	if name, _ := a.Main.GetFrontPage(); name != mainPage {
		return evt
	}
	if a.cmdBar.IsActive() {
		return evt
	}

	if evt.Key() == tcell.KeyRune {
		switch evt.Rune() {
		case ':':
			a.cmdBar.Activate(ui.ModeCommand)
			return nil
		case '/':
			a.cmdBar.Activate(ui.ModeFilter)
			return nil
		case '?':
			return a.helpCmd(evt)
		case 'q':
			if a.Content.Len() > 1 {
				a.PrevCmd()
				return nil
			}
			a.Stop()
			return nil
		}
	}

	switch evt.Key() {
	case tcell.KeyCtrlC:
		a.Stop()
		return nil
	case tcell.KeyEsc:
		if f, ok := a.Content.Current().(ui.Filterable); ok && f.Filter() != "" {
			a.cmdBar.ClearFilter()
			return nil
		}
		a.PrevCmd()
		return nil
	}

	if cmd, ok := a.hotKey(evt); ok {
		a.runCommand(cmd)
		return nil
	}

	return evt
}

// hotKey returns the command bound to evt, if any.
func (a *App) hotKey(evt *tcell.EventKey) (string, bool) {
	name, ok := ui.KeyName(ui.AsKey(evt))
	if !ok || a.hotkeys == nil {
		return "", false
	}
	for _, n := range a.hotkeys.Names() {
		hk := a.hotkeys.Get(n)
		if hk == nil {
			continue
		}
		if hk.ShortCut == name || (len(name) > 1 && strings.EqualFold(hk.ShortCut, name)) {
			return hk.Command, true
		}
	}

	return "", false
}

// applyFilter applies search text to the current view.
func (a *App) applyFilter(filter string) {
	if f, ok := a.Content.Current().(ui.Filterable); ok {
		f.SetFilter(filter)
	}
}

func (a *App) helpCmd(*tcell.EventKey) *tcell.EventKey {
	if top := a.Content.Current(); top != nil && top.Name() == helpName {
		return nil
	}
	h := NewHelp(a.aliases, a.hotkeys)
	h.SetCloseFn(a.PrevCmd)
	if err := a.inject(h); err != nil {
		a.flash.Err(err)
	}

	return nil
}
