// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package config

import (
	"github.com/spf13/pflag"

	"github.com/lendr/lendr/internal/config/data"
)

// DefaultRefreshRate is the default data refresh interval in seconds.
const DefaultRefreshRate = 5.0

// DefaultLogLevel is the default logging level.
const DefaultLogLevel = "info"

// DefaultLocale is the default display locale.
const DefaultLocale = "en"

// NewFlags creates a new Flags instance with default values set.
func NewFlags() *data.Flags {
	f := data.NewFlags()
	*f.RefreshRate = DefaultRefreshRate
	*f.LogLevel = DefaultLogLevel
	*f.LogFile = AppLogFile

	return f
}

// BindFlags registers the persistent CLI flags on fs.
func BindFlags(fs *pflag.FlagSet, f *data.Flags) {
	fs.Float32VarP(f.RefreshRate, "refresh", "r", *f.RefreshRate, "Refresh interval in seconds")
	fs.StringVarP(f.LogLevel, "logLevel", "l", *f.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(f.LogFile, "logFile", *f.LogFile, "Path to the log file")
	fs.StringVarP(f.Command, "command", "c", *f.Command, "Resource to show at startup")
	fs.BoolVar(f.ReadOnly, "readonly", *f.ReadOnly, "Disable favorites and exports")
	fs.StringVarP(f.Source, "source", "s", *f.Source, "Dataset file (.yaml, .json, .toml) or SQLite database")
	fs.StringVar(f.Locale, "locale", *f.Locale, "Display locale (en, es)")
}

// IsBoolSet returns true if a bool pointer is non-nil and true.
func IsBoolSet(b *bool) bool {
	return b != nil && *b
}

// IsStringSet returns true if a string pointer is non-nil and non-empty.
func IsStringSet(s *string) bool {
	return s != nil && *s != ""
}
