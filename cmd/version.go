// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lendr/lendr/internal/config"
	"github.com/lendr/lendr/internal/dao"
)

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, version)
				return
			}
			fmt.Fprintf(out, "%s %s\n", config.AppName, version)
			fmt.Fprintf(out, "  commit:  %s\n", commit)
			fmt.Fprintf(out, "  date:    %s\n", date)
			fmt.Fprintf(out, "  schema:  %s\n", dao.SchemaVersion)
		},
	}
	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print the version only")

	return &cmd
}
