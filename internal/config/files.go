// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const AppName = "lendr"

var (
	// AppConfigDir is ~/.config/lendr
	AppConfigDir string

	// AppDataDir is ~/.local/share/lendr
	AppDataDir string

	// AppStateDir is ~/.local/state/lendr
	AppStateDir string

	// AppConfigFile is ~/.config/lendr/lendr.yaml
	AppConfigFile string

	// AppHotkeysFile is ~/.config/lendr/hotkeys.yaml
	AppHotkeysFile string

	// AppAliasesFile is ~/.config/lendr/aliases.yaml
	AppAliasesFile string

	// AppLabelsFile is ~/.config/lendr/labels.ini
	AppLabelsFile string

	// AppFavoritesFile is ~/.local/share/lendr/favorites.yaml
	AppFavoritesFile string

	// AppDatasetFile is ~/.local/share/lendr/dataset.yaml
	AppDatasetFile string

	// AppLogFile is ~/.local/state/lendr/lendr.log
	AppLogFile string

	// AppExportDir is ~/.local/state/lendr/exports
	AppExportDir string
)

// InitLocs initializes all application directory paths.
// It respects XDG environment variables if set.
func InitLocs() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to resolve home directory: %w", err)
	}

	configHome := xdgDir("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	dataHome := xdgDir("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	stateHome := xdgDir("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))

	AppConfigDir = filepath.Join(configHome, AppName)
	AppDataDir = filepath.Join(dataHome, AppName)
	AppStateDir = filepath.Join(stateHome, AppName)

	AppConfigFile = filepath.Join(AppConfigDir, AppName+".yaml")
	AppHotkeysFile = filepath.Join(AppConfigDir, "hotkeys.yaml")
	AppAliasesFile = filepath.Join(AppConfigDir, "aliases.yaml")
	AppLabelsFile = filepath.Join(AppConfigDir, "labels.ini")

	AppFavoritesFile = filepath.Join(AppDataDir, "favorites.yaml")
	AppDatasetFile = filepath.Join(AppDataDir, "dataset.yaml")
	AppLogFile = filepath.Join(AppStateDir, AppName+".log")
	AppExportDir = filepath.Join(AppStateDir, "exports")

	for _, dir := range []string{AppConfigDir, AppDataDir, AppStateDir, AppExportDir} {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create %q: %w", dir, err)
		}
	}

	return nil
}

// InitLogLoc ensures the log directory exists
func InitLogLoc(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o700)
}

func xdgDir(env, fallback string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	return fallback
}
