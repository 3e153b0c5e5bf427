// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lendr/lendr/internal/dao"
	"github.com/lendr/lendr/internal/output"
	"github.com/lendr/lendr/internal/render"
)

func newListCmd() *cobra.Command {
	var (
		q        query
		format   string
		jq       string
		jsonPath string
		color    string
	)

	cmd := cobra.Command{
		Use:     "list RESOURCE",
		Aliases: []string{"ls", "get"},
		Short:   "Print the records of a resource",
		Example: `  lendr list devices --search laptop --sort name
  lendr list req -o json --jq '.[] | select(.status == "pending") | .id'
  lendr list users --jsonpath '$[*].email'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			mode, err := parseColor(color)
			if err != nil {
				return err
			}
			rid, err := resolveResource(args[0])
			if err != nil {
				return err
			}
			e, err := bootstrap()
			if err != nil {
				return err
			}
			defer e.Close()

			p := output.NewPrinter(cmd.OutOrStdout(), output.Options{
				Format:   f,
				Query:    jq,
				JSONPath: jsonPath,
				Color:    mode,
			})
			return visitResource(cmd.Context(), e.factory, e.labels, rid, q, printVisitor(p))
		},
	}

	q.bind(cmd.Flags())
	cmd.Flags().StringVarP(&format, "output", "o", "table", "Output format (table|wide|json|yaml|csv)")
	cmd.Flags().StringVar(&jq, "jq", "", "jq expression applied to the records, printed as JSON")
	cmd.Flags().StringVar(&jsonPath, "jsonpath", "", "JSON path applied to the records, printed as JSON")
	cmd.Flags().StringVar(&color, "color", "auto", "Colorize table output (auto|always|never)")
	cmd.MarkFlagsMutuallyExclusive("jq", "jsonpath")

	return &cmd
}

func printVisitor(p *output.Printer) rowVisitor {
	return rowVisitor{
		devices: func(r render.Renderer[*dao.Device], rows []*dao.Device) error {
			return output.Print(p, r.Columns, rows, r.ColorerFunc())
		},
		requests: func(r render.Renderer[*dao.Request], rows []*dao.Request) error {
			return output.Print(p, r.Columns, rows, r.ColorerFunc())
		},
		users: func(r render.Renderer[*dao.User], rows []*dao.User) error {
			return output.Print(p, r.Columns, rows, r.ColorerFunc())
		},
		notifications: func(r render.Renderer[*dao.Notification], rows []*dao.Notification) error {
			return output.Print(p, r.Columns, rows, r.ColorerFunc())
		},
	}
}

func parseColor(s string) (output.ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return output.ColorAuto, nil
	case "always":
		return output.ColorAlways, nil
	case "never":
		return output.ColorNever, nil
	default:
		return output.ColorAuto, fmt.Errorf("invalid --color %q (expected auto|always|never)", s)
	}
}
