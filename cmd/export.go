// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lendr/lendr/internal/config"
	"github.com/lendr/lendr/internal/dao"
	"github.com/lendr/lendr/internal/export"
	"github.com/lendr/lendr/internal/model1"
	"github.com/lendr/lendr/internal/render"
)

func newExportCmd() *cobra.Command {
	var (
		q    query
		path string
	)

	cmd := cobra.Command{
		Use:   "export RESOURCE",
		Short: "Write the records of a resource to a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rid, err := resolveResource(args[0])
			if err != nil {
				return err
			}
			e, err := bootstrap()
			if err != nil {
				return err
			}
			defer e.Close()
			if e.cfg.Lendr.IsReadOnly() {
				return errors.New("exports are disabled in read-only mode")
			}
			if path == "" {
				path = export.Filename(config.AppExportDir, rid.Resource, time.Now())
			}

			var n int
			err = visitResource(cmd.Context(), e.factory, e.labels, rid, q, csvVisitor(path, &n))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.labels.Tf("flash.exported", n, path))

			return nil
		},
	}

	q.bind(cmd.Flags())
	cmd.Flags().StringVarP(&path, "file", "f", "", "Target CSV file (default: a timestamped file in the exports dir)")

	return &cmd
}

func csvVisitor(path string, n *int) rowVisitor {
	return rowVisitor{
		devices: func(r render.Renderer[*dao.Device], rows []*dao.Device) error {
			return saveCSV(path, r.Columns, rows, n)
		},
		requests: func(r render.Renderer[*dao.Request], rows []*dao.Request) error {
			return saveCSV(path, r.Columns, rows, n)
		},
		users: func(r render.Renderer[*dao.User], rows []*dao.User) error {
			return saveCSV(path, r.Columns, rows, n)
		},
		notifications: func(r render.Renderer[*dao.Notification], rows []*dao.Notification) error {
			return saveCSV(path, r.Columns, rows, n)
		},
	}
}

func saveCSV[R any](path string, cols model1.Columns[R], rows []R, n *int) error {
	*n = len(rows)
	return export.SaveCSV(path, cols, rows)
}
