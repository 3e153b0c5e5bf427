// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package dao

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fvbommel/sortorder"
	"github.com/hashicorp/go-version"
	"gopkg.in/yaml.v3"
)

// Source loads a full dataset.
type Source interface {
	// Name identifies the source, e.g. its path.
	Name() string

	// Load reads the dataset.
	Load(ctx context.Context) (*Dataset, error)
}

// NewSource picks a source implementation from a location.
// Paths ending in .db, .sqlite or .sqlite3 use SQLite, anything else is a file.
func NewSource(location string) (Source, error) {
	if location == "" {
		return nil, ErrNoSource
	}
	switch strings.ToLower(filepath.Ext(location)) {
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteSource(location), nil
	default:
		return NewFileSource(location), nil
	}
}

// SchemaVersion is the dataset schema written by this build.
const SchemaVersion = "1.1"

// schemaConstraint lists the dataset schemas this build can read.
var schemaConstraint = version.MustConstraints(version.NewConstraint(">= 1.0, < 2.0"))

// FileSource reads a dataset from a YAML, JSON or TOML file.
type FileSource struct {
	path string
}

// NewFileSource returns a file backed source.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the file path.
func (f *FileSource) Name() string {
	return f.path
}

// Load reads and decodes the file.
func (f *FileSource) Load(ctx context.Context) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", f.path, err)
	}

	return DecodeDataset(raw, filepath.Ext(f.path))
}

// DecodeDataset decodes a dataset by file extension: .json, .toml, YAML otherwise.
func DecodeDataset(raw []byte, ext string) (*Dataset, error) {
	var ds Dataset
	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&ds); err != nil {
			return nil, fmt.Errorf("failed to decode json dataset: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(raw), &ds); err != nil {
			return nil, fmt.Errorf("failed to decode toml dataset: %w", err)
		}
	default:
		if err := yaml.Unmarshal(raw, &ds); err != nil {
			return nil, fmt.Errorf("failed to decode yaml dataset: %w", err)
		}
	}
	if err := checkSchema(ds.SchemaVersion); err != nil {
		return nil, err
	}
	ds.Normalize()

	return &ds, nil
}

// checkSchema accepts an unset schema or one within schemaConstraint.
func checkSchema(s string) error {
	if s == "" {
		return nil
	}
	v, err := version.NewVersion(s)
	if err != nil {
		return fmt.Errorf("invalid dataset schema %q: %w", s, err)
	}
	if !schemaConstraint.Check(v) {
		return fmt.Errorf("unsupported dataset schema %s (want %s)", v, schemaConstraint)
	}
	return nil
}

// EncodeDataset encodes a dataset by file extension: .json, .toml, YAML otherwise.
func EncodeDataset(ds *Dataset, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".json":
		return json.MarshalIndent(ds, "", "  ")
	case ".toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(ds); err != nil {
			return nil, fmt.Errorf("failed to encode toml dataset: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return yaml.Marshal(ds)
	}
}

// Normalize puts the dataset in its default order: devices by asset tag in
// natural order, everything else newest first.
func (d *Dataset) Normalize() {
	slices.SortStableFunc(d.Devices, func(a, b *Device) int {
		switch {
		case sortorder.NaturalLess(a.AssetTag, b.AssetTag):
			return -1
		case sortorder.NaturalLess(b.AssetTag, a.AssetTag):
			return 1
		default:
			return 0
		}
	})
	slices.SortStableFunc(d.Requests, func(a, b *Request) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	slices.SortStableFunc(d.Notifications, func(a, b *Notification) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	slices.SortStableFunc(d.Users, func(a, b *User) int {
		return strings.Compare(a.Name, b.Name)
	})
}
