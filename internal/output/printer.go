// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

// Package output prints table rows outside the TUI.
package output

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/derailed/tcell/v2"
	"github.com/muesli/termenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/lendr/lendr/internal/export"
	"github.com/lendr/lendr/internal/model1"
)

// Format represents the output format type.
type Format string

const (
	// FormatTable is an aligned table of the narrow columns.
	FormatTable Format = "table"
	// FormatWide is an aligned table of every column.
	FormatWide Format = "wide"
	// FormatJSON is pretty-printed JSON of the raw records.
	FormatJSON Format = "json"
	// FormatYAML is YAML of the raw records.
	FormatYAML Format = "yaml"
	// FormatCSV is CSV of every column.
	FormatCSV Format = "csv"
)

// ParseFormat converts a string to a Format. Empty defaults to FormatTable.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatWide, FormatJSON, FormatYAML, FormatCSV:
		return f, nil
	default:
		return "", errors.New("invalid --output format (expected table|wide|json|yaml|csv)")
	}
}

// ColorMode determines when to use colored output.
type ColorMode int

const (
	// ColorAuto colors only terminals.
	ColorAuto ColorMode = iota
	// ColorAlways forces colors.
	ColorAlways
	// ColorNever disables colors.
	ColorNever
)

// Options configures a printer.
type Options struct {
	Format   Format
	Query    string
	JSONPath string
	Color    ColorMode
}

// Printer handles output formatting across different formats.
type Printer struct {
	w    io.Writer
	out  *termenv.Output
	opts Options
}

// NewPrinter creates a new Printer that writes to w.
// It respects the NO_COLOR environment variable.
func NewPrinter(w io.Writer, opts Options) *Printer {
	if opts.Format == "" {
		opts.Format = FormatTable
	}
	return &Printer{
		w:    w,
		out:  termenv.NewOutput(w, termenv.WithProfile(profileFor(w, opts.Color))),
		opts: opts,
	}
}

func profileFor(w io.Writer, mode ColorMode) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		mode = ColorNever
	}
	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		return termenv.TrueColor
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return termenv.EnvColorProfile()
	}
	return termenv.Ascii
}

// Print renders rows in the configured format. A jq query or JSON path, when
// set, is applied to the raw records and always prints JSON.
func Print[R any](p *Printer, cols model1.Columns[R], rows []R, colorer model1.ColorerFunc[R]) error {
	if rows == nil {
		rows = []R{}
	}
	switch {
	case p.opts.Query != "":
		return p.runQuery(rows)
	case p.opts.JSONPath != "":
		return p.runJSONPath(rows)
	}

	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(rows)
	case FormatYAML:
		return p.printYAML(rows)
	case FormatCSV:
		return export.WriteCSV(p.w, cols, rows)
	case FormatWide:
		return printTable(p, cols, rows, colorer)
	default:
		return printTable(p, cols.Visible(false), rows, colorer)
	}
}

func (p *Printer) printJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func (p *Printer) printYAML(data any) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}

// printTable aligns with tabwriter first, then styles whole lines so escape
// sequences never skew column widths.
func printTable[R any](p *Printer, cols model1.Columns[R], rows []R, colorer model1.ColorerFunc[R]) error {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(upper(cols.Headers()), "\t"))
	for _, r := range rows {
		cells := make([]string, 0, len(cols))
		for _, c := range cols {
			cells = append(cells, c.Cell(r))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	sc := bufio.NewScanner(&buf)
	for i := 0; sc.Scan(); i++ {
		line := strings.TrimRight(sc.Text(), " ")
		style := p.out.String(line)
		switch {
		case i == 0:
			style = style.Bold()
		case colorer != nil:
			if c := colorer(rows[i-1], model1.EventUnchanged); c != model1.StdColor {
				style = style.Foreground(p.toColor(c))
			}
		}
		if _, err := fmt.Fprintln(p.w, style.String()); err != nil {
			return err
		}
	}

	return sc.Err()
}

func (p *Printer) toColor(c tcell.Color) termenv.Color {
	return p.out.Color(fmt.Sprintf("#%06x", c.Hex()))
}

func upper(ss []string) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		out = append(out, strings.ToUpper(s))
	}
	return out
}
