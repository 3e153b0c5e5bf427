// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

// Package export writes table rows to CSV.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"github.com/lendr/lendr/internal/model1"
)

// WriteCSV writes a header line and one record per row, in column order.
func WriteCSV[R any](w io.Writer, cols model1.Columns[R], rows []R) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(cols.Headers()); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range rows {
		rec := make([]string, 0, len(cols))
		for _, c := range cols {
			rec = append(rec, c.Cell(r))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// SaveCSV atomically writes rows to path, creating its directory.
func SaveCSV[R any](path string, cols model1.Columns[R], rows []R) error {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, cols, rows); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create export dir: %w", err)
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// Filename builds a timestamped export file name for a resource.
func Filename(dir, resource string, now time.Time) string {
	name := strings.NewReplacer("/", "-", " ", "-").Replace(strings.ToLower(resource))
	return filepath.Join(dir, fmt.Sprintf("%s-%s.csv", name, now.Format("20060102-150405")))
}
