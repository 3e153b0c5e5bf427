// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package config

import (
	"slices"

	"github.com/lendr/lendr/internal/config/data"
	"github.com/lendr/lendr/internal/model1"
)

// Lendr holds the application settings stored under the lendr key.
type Lendr struct {
	RefreshRate float32     `yaml:"refreshRate"`
	Source      string      `yaml:"source"`
	Locale      string      `yaml:"locale"`
	ReadOnly    bool        `yaml:"readOnly"`
	Table       data.Table  `yaml:"table"`
	View        data.View   `yaml:"view"`
	UI          data.UI     `yaml:"ui"`
	Logger      data.Logger `yaml:"logger"`

	manualRefreshRate float32
	manualReadOnly    *bool
	manualCommand     string
	manualSource      string
	manualLocale      string
}

// NewLendr returns settings with defaults applied.
func NewLendr() *Lendr {
	return &Lendr{
		RefreshRate: DefaultRefreshRate,
		Locale:      DefaultLocale,
		Table: data.Table{
			PageSize:  model1.DefaultPageSize,
			PageSizes: slices.Clone(model1.DefaultPageSizes),
		},
		View: data.NewView(),
		UI:   data.UI{EnableMouse: true},
		Logger: data.Logger{
			Level:  DefaultLogLevel,
			Format: "text",
		},
	}
}

// Validate fills in defaults for missing or invalid settings.
func (l *Lendr) Validate() {
	if l.RefreshRate <= 0 {
		l.RefreshRate = DefaultRefreshRate
	}
	if l.Locale == "" {
		l.Locale = DefaultLocale
	}
	if len(l.Table.PageSizes) == 0 {
		l.Table.PageSizes = slices.Clone(model1.DefaultPageSizes)
	}
	l.Table.PageSizes = slices.DeleteFunc(l.Table.PageSizes, func(n int) bool { return n <= 0 })
	if len(l.Table.PageSizes) == 0 {
		l.Table.PageSizes = slices.Clone(model1.DefaultPageSizes)
	}
	slices.Sort(l.Table.PageSizes)
	l.Table.PageSizes = slices.Compact(l.Table.PageSizes)
	if !slices.Contains(l.Table.PageSizes, l.Table.PageSize) {
		l.Table.PageSize = l.Table.PageSizes[0]
	}
	if l.Logger.Level == "" {
		l.Logger.Level = DefaultLogLevel
	}
	if l.Logger.Format == "" {
		l.Logger.Format = "text"
	}
	l.View.Validate()
}

// Override applies CLI flags on top of the file settings.
func (l *Lendr) Override(f *data.Flags) {
	if f == nil {
		return
	}
	if f.RefreshRate != nil && *f.RefreshRate > 0 {
		l.manualRefreshRate = *f.RefreshRate
	}
	if f.ReadOnly != nil && *f.ReadOnly {
		l.manualReadOnly = f.ReadOnly
	}
	if IsStringSet(f.Command) {
		l.manualCommand = *f.Command
	}
	if IsStringSet(f.Source) {
		l.manualSource = *f.Source
	}
	if IsStringSet(f.Locale) {
		l.manualLocale = *f.Locale
	}
	if IsStringSet(f.LogLevel) {
		l.Logger.Level = *f.LogLevel
	}
}

// GetRefreshRate returns the effective refresh rate in seconds.
func (l *Lendr) GetRefreshRate() float32 {
	if l.manualRefreshRate > 0 {
		return l.manualRefreshRate
	}
	return l.RefreshRate
}

// IsReadOnly returns true if favorites and exports are disabled.
func (l *Lendr) IsReadOnly() bool {
	if l.manualReadOnly != nil {
		return *l.manualReadOnly
	}
	return l.ReadOnly
}

// ActiveView returns the view to open at startup.
func (l *Lendr) ActiveView() string {
	if l.manualCommand != "" {
		return l.manualCommand
	}
	return l.View.Active
}

// SetActiveView records the last active view.
func (l *Lendr) SetActiveView(cmd string) {
	l.View.Active = cmd
	l.manualCommand = ""
}

// DataSource returns the dataset location, defaulting to the seeded data file.
func (l *Lendr) DataSource() string {
	switch {
	case l.manualSource != "":
		return l.manualSource
	case l.Source != "":
		return l.Source
	default:
		return AppDatasetFile
	}
}

// DisplayLocale returns the effective display locale.
func (l *Lendr) DisplayLocale() string {
	if l.manualLocale != "" {
		return l.manualLocale
	}
	return l.Locale
}
