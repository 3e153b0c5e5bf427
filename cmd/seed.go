// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/lendr/lendr/internal/config"
	"github.com/lendr/lendr/internal/dao"
)

func newSeedCmd() *cobra.Command {
	var (
		devices int
		force   bool
	)

	cmd := cobra.Command{
		Use:   "seed [PATH]",
		Short: "Write a sample dataset (.yaml, .json, .toml or a SQLite .db)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.InitLocs(); err != nil {
				return err
			}
			path := config.AppDatasetFile
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to replace it", path)
			}
			if devices <= 0 {
				return errors.New("--devices must be positive")
			}

			ds := dao.Seed(time.Now(), devices)
			if err := writeDataset(path, ds); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d devices, %d requests, %d users into %s\n",
				len(ds.Devices), len(ds.Requests), len(ds.Users), path)

			return nil
		},
	}
	cmd.Flags().IntVarP(&devices, "devices", "n", seedDevices, "Number of catalog devices")
	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing dataset")

	return &cmd
}

// writeDataset stores ds at path, picking the encoding from the extension.
func writeDataset(path string, ds *dao.Dataset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create dataset dir: %w", err)
	}

	src, err := dao.NewSource(path)
	if err != nil {
		return err
	}
	if db, ok := src.(*dao.SQLiteSource); ok {
		return db.Save(context.Background(), ds)
	}

	raw, err := dao.EncodeDataset(ds, filepath.Ext(path))
	if err != nil {
		return err
	}
	if err := atomic.WriteFile(path, bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("failed to write dataset %s: %w", path, err)
	}

	return nil
}
