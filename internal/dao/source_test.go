package dao

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlDataset = `
devices:
  - id: d1
    assetTag: LND-10
    name: Laptop Pro
    category: laptop
    status: available
    quantity: 2
    purchasePrice: 1999.5
  - id: d2
    assetTag: LND-9
    name: Dock
    category: accessory
    status: available
users:
  - id: u1
    name: Grace
    email: grace@lendr.dev
    role: admin
    active: true
requests:
  - id: old
    kind: borrow
    status: pending
    deviceId: d1
    userId: u1
    createdAt: 2025-01-01T00:00:00Z
  - id: new
    kind: borrow
    status: pending
    deviceId: d2
    userId: u1
    createdAt: 2025-02-01T00:00:00Z
`

func TestFileSourceYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lendr.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDataset), 0o600))

	ds, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, ds.Devices, 2)
	assert.Equal(t, "LND-9", ds.Devices[0].AssetTag)
	require.NotNil(t, ds.Devices[1].PurchasePrice)
	assert.InDelta(t, 1999.5, *ds.Devices[1].PurchasePrice, 0.001)
	assert.Nil(t, ds.Devices[0].PurchasePrice)
	assert.Equal(t, "new", ds.Requests[0].ID)
}

func TestFileSourceJSONRoundTrip(t *testing.T) {
	in := sampleDataset()
	raw, err := EncodeDataset(in, ".json")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "lendr.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	ds, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"d3", "d2", "d1"}, []string{ds.Devices[0].ID, ds.Devices[1].ID, ds.Devices[2].ID})
	assert.Equal(t, "Ada", ds.Users[0].Name)
}

func TestFileSourceErrors(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "missing.yaml")).Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = DecodeDataset([]byte(`{"bogus": 1}`), ".json")
	assert.Error(t, err)
}

func TestNewSource(t *testing.T) {
	_, err := NewSource("")
	assert.ErrorIs(t, err, ErrNoSource)

	s, err := NewSource("data/lendr.sqlite")
	require.NoError(t, err)
	assert.IsType(t, &SQLiteSource{}, s)

	s, err = NewSource("data/lendr.yaml")
	require.NoError(t, err)
	assert.IsType(t, &FileSource{}, s)
	assert.Equal(t, "data/lendr.yaml", s.Name())
}

func TestFileSourceTOMLRoundTrip(t *testing.T) {
	in := Seed(t0, 8)
	raw, err := EncodeDataset(in, ".toml")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "lendr.toml")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	ds, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, SchemaVersion, ds.SchemaVersion)
	require.Len(t, ds.Devices, 8)
	assert.Equal(t, in.Devices[0].AssetTag, ds.Devices[0].AssetTag)
	assert.Equal(t, in.Devices[0].PurchasePrice, ds.Devices[0].PurchasePrice)
	assert.Len(t, ds.Requests, len(in.Requests))
}

func TestDecodeDatasetSchema(t *testing.T) {
	uu := map[string]struct {
		doc string
		err bool
	}{
		"unset":   {doc: "devices: []"},
		"current": {doc: "schemaVersion: \"1.1\""},
		"older":   {doc: "schemaVersion: \"1.0\""},
		"newer":   {doc: "schemaVersion: \"2.0\"", err: true},
		"bogus":   {doc: "schemaVersion: \"one\"", err: true},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			_, err := DecodeDataset([]byte(u.doc), ".yaml")
			if u.err {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
