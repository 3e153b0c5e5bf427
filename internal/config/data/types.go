// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

// Package data provides configuration data types for the lendr application.
package data

// Flags represents CLI command-line flags for the lendr application.
type Flags struct {
	RefreshRate *float32 // Refresh rate in seconds
	LogLevel    *string  // Log level (e.g., debug, info, warn, error)
	LogFile     *string  // Path to log file
	Command     *string  // Command to open at startup
	ReadOnly    *bool    // Disable favorites and exports
	Source      *string  // Dataset file or SQLite database
	Locale      *string  // Display locale
}

// UI represents user interface configuration settings.
type UI struct {
	EnableMouse bool `yaml:"enableMouse"`
	Crumbsless  bool `yaml:"crumbsless"`
	Wide        bool `yaml:"wide"`
}

// Logger represents logging configuration settings.
type Logger struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Table represents data table settings.
type Table struct {
	PageSize  int   `yaml:"pageSize"`
	PageSizes []int `yaml:"pageSizes"`
}

// NewFlags creates a new Flags instance with all pointer fields initialized.
// All pointers are allocated but their values are not set.
func NewFlags() *Flags {
	return &Flags{
		RefreshRate: new(float32),
		LogLevel:    new(string),
		LogFile:     new(string),
		Command:     new(string),
		ReadOnly:    new(bool),
		Source:      new(string),
		Locale:      new(string),
	}
}
