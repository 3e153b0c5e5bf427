package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendr/lendr/internal/dao"
	"github.com/lendr/lendr/internal/i18n"
	"github.com/lendr/lendr/internal/model1"
	"github.com/lendr/lendr/internal/output"
)

var t0 = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func testEnv(t *testing.T) (dao.Factory, *i18n.Labels) {
	path := filepath.Join(t.TempDir(), "dataset.yaml")
	require.NoError(t, writeDataset(path, dao.Seed(t0, 25)))
	src, err := dao.NewSource(path)
	require.NoError(t, err)
	l, err := i18n.Load("en")
	require.NoError(t, err)

	return dao.NewFactory(src, nil, nil), l
}

func TestQueryState(t *testing.T) {
	assert.Equal(t, model1.QueryState{SearchText: "lap"}, query{search: "lap", desc: true}.state())
	assert.Equal(t,
		model1.QueryState{SortKey: "name", SortDir: model1.SortDesc},
		query{sortKey: "name", desc: true}.state(),
	)
}

func TestParseColor(t *testing.T) {
	m, err := parseColor("ALWAYS")
	require.NoError(t, err)
	assert.Equal(t, output.ColorAlways, m)

	m, err = parseColor("")
	require.NoError(t, err)
	assert.Equal(t, output.ColorAuto, m)

	_, err = parseColor("rainbow")
	assert.Error(t, err)
}

func TestResolveResource(t *testing.T) {
	rid, err := resolveResource("dev")
	require.NoError(t, err)
	assert.Equal(t, dao.DeviceRID, *rid)

	rid, err = resolveResource("lending/request")
	require.NoError(t, err)
	assert.Equal(t, dao.RequestRID, *rid)

	_, err = resolveResource("bogus")
	assert.ErrorIs(t, err, dao.ErrUnknownResource)
}

func TestWriteDataset(t *testing.T) {
	ds := dao.Seed(t0, 12)

	for _, ext := range []string{".yaml", ".json", ".toml", ".db"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "dataset"+ext)
			require.NoError(t, writeDataset(path, ds))

			src, err := dao.NewSource(path)
			require.NoError(t, err)
			got, err := src.Load(context.Background())
			require.NoError(t, err)
			assert.Len(t, got.Devices, len(ds.Devices))
			assert.Len(t, got.Requests, len(ds.Requests))
		})
	}
}

func TestVisitResourceJSONPath(t *testing.T) {
	f, l := testEnv(t)

	var buf bytes.Buffer
	p := output.NewPrinter(&buf, output.Options{JSONPath: "$[*].assetTag"})
	q := query{sortKey: "asset", desc: true, page: 1, perPage: 3}
	require.NoError(t, visitResource(context.Background(), f, l, &dao.DeviceRID, q, printVisitor(p)))

	assert.JSONEq(t, `["LND-9","LND-8","LND-7"]`, buf.String())
}

func TestVisitResourceBadSort(t *testing.T) {
	f, l := testEnv(t)

	var buf bytes.Buffer
	p := output.NewPrinter(&buf, output.Options{Format: output.FormatJSON})
	err := visitResource(context.Background(), f, l, &dao.UserRID, query{sortKey: "nope"}, printVisitor(p))
	assert.ErrorContains(t, err, "cannot sort")

	err = visitResource(context.Background(), f, l, &dao.ResourceID{Group: "x", Resource: "y"}, query{}, printVisitor(p))
	assert.ErrorIs(t, err, dao.ErrUnknownResource)
}

func TestCSVVisitor(t *testing.T) {
	f, l := testEnv(t)
	path := filepath.Join(t.TempDir(), "out", "users.csv")

	var n int
	require.NoError(t, visitResource(context.Background(), f, l, &dao.UserRID, query{}, csvVisitor(path, &n)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Len(t, records, n+1)
}

func TestVersionCmd(t *testing.T) {
	cmd := newVersionCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--short"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, version+"\n", buf.String())
}
