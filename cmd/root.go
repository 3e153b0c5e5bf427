// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lendr/lendr/internal/config"
	"github.com/lendr/lendr/internal/config/data"
	"github.com/lendr/lendr/internal/dao"
	"github.com/lendr/lendr/internal/i18n"
	"github.com/lendr/lendr/internal/logging"
	"github.com/lendr/lendr/internal/view"
)

// seedDevices is the catalog size of a freshly seeded dataset.
const seedDevices = 40

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	lendrFlags *data.Flags
	rootCmd    = &cobra.Command{
		Use:           config.AppName,
		Short:         "A terminal UI for device lending",
		Long:          `lendr browses a device lending catalog, its requests, users and notifications from the terminal.`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	lendrFlags = config.NewFlags()
	config.BindFlags(rootCmd.PersistentFlags(), lendrFlags)
	rootCmd.AddCommand(newVersionCmd(), newListCmd(), newExportCmd(), newSeedCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// env holds what every command needs once the configuration is resolved.
type env struct {
	cfg     *config.Config
	factory *dao.LendrFactory
	labels  *i18n.Labels
	logFile io.Closer
}

func (e *env) Close() {
	if e.logFile != nil {
		_ = e.logFile.Close()
	}
}

// bootstrap resolves locations, configuration, logging, labels and the data source.
func bootstrap() (*env, error) {
	if err := config.InitLocs(); err != nil {
		return nil, fmt.Errorf("failed to initialize locations: %w", err)
	}
	if !config.IsStringSet(lendrFlags.LogFile) {
		*lendrFlags.LogFile = config.AppLogFile
	}
	if err := config.InitLogLoc(*lendrFlags.LogFile); err != nil {
		return nil, fmt.Errorf("failed to initialize log location: %w", err)
	}

	cfg := config.NewConfig(config.AppConfigFile)
	if err := cfg.Load(false); err != nil {
		return nil, err
	}
	if err := cfg.Refine(lendrFlags); err != nil {
		return nil, fmt.Errorf("failed to refine configuration: %w", err)
	}

	e := env{cfg: cfg}
	lf, err := logging.OpenFile(*lendrFlags.LogFile)
	if err != nil {
		return nil, err
	}
	e.logFile = lf
	level := cfg.Lendr.Logger.Level
	if rootCmd.PersistentFlags().Changed("logLevel") {
		level = *lendrFlags.LogLevel
	}
	format := logging.FormatText
	if strings.EqualFold(cfg.Lendr.Logger.Format, "json") {
		format = logging.FormatJSON
	}
	logging.Setup(logging.ParseLevel(level), lf, format)

	if e.labels, err = loadLabels(cfg.Lendr.DisplayLocale()); err != nil {
		e.Close()
		return nil, err
	}
	if e.factory, err = newFactory(cfg.Lendr.DataSource()); err != nil {
		e.Close()
		return nil, err
	}
	slog.Info("Lendr starting", "version", version, "source", cfg.Lendr.DataSource(), "locale", e.labels.Tag().String())

	return &e, nil
}

func loadLabels(locale string) (*i18n.Labels, error) {
	labels, err := i18n.Load(locale)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(config.AppLabelsFile); err == nil {
		if err := labels.Override(config.AppLabelsFile); err != nil {
			return nil, err
		}
	}

	return labels, nil
}

// newFactory opens the data source, seeding the default dataset on first run.
func newFactory(location string) (*dao.LendrFactory, error) {
	if location == config.AppDatasetFile {
		if _, err := os.Stat(location); errors.Is(err, os.ErrNotExist) {
			slog.Info("Seeding sample dataset", "path", location)
			if err := writeDataset(location, dao.Seed(time.Now(), seedDevices)); err != nil {
				return nil, err
			}
		}
	}

	src, err := dao.NewSource(location)
	if err != nil {
		return nil, err
	}
	favs, err := dao.LoadFavorites(config.AppFavoritesFile)
	if err != nil {
		return nil, err
	}

	return dao.NewFactory(src, nil, favs), nil
}

func run(*cobra.Command, []string) error {
	e, err := bootstrap()
	if err != nil {
		return err
	}
	defer e.Close()

	aliases := config.NewAliases()
	if err := aliases.Load(); err != nil {
		return err
	}
	hotkeys := config.NewHotKeys()
	if err := hotkeys.Load(); err != nil {
		return err
	}

	app := view.NewApp(e.cfg, version, e.factory, e.labels)
	app.SetAliases(aliases)
	app.SetHotKeys(hotkeys)
	if err := app.Init(); err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run()
}
