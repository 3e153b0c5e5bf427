package dao

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteSourceRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := NewSQLiteSource(filepath.Join(t.TempDir(), "lendr.db"))
	in := Seed(t0, 20)

	require.NoError(t, src.Save(ctx, in))
	out, err := src.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, len(in.Devices), len(out.Devices))
	assert.Equal(t, len(in.Requests), len(out.Requests))
	assert.Equal(t, len(in.Users), len(out.Users))
	assert.Equal(t, len(in.Notifications), len(out.Notifications))

	for i := range in.Devices {
		assert.Equal(t, in.Devices[i].ID, out.Devices[i].ID)
		assert.Equal(t, in.Devices[i].PurchasePrice, out.Devices[i].PurchasePrice)
		assert.Equal(t, in.Devices[i].Tags, out.Devices[i].Tags)
		assert.True(t, in.Devices[i].CreatedAt.Equal(out.Devices[i].CreatedAt))
	}

	r, err := out.Request(in.Requests[0].ID)
	require.NoError(t, err)
	assert.Len(t, r.History, len(in.Requests[0].History))
}

func TestSQLiteSourceSaveReplaces(t *testing.T) {
	ctx := context.Background()
	src := NewSQLiteSource(filepath.Join(t.TempDir(), "lendr.db"))

	require.NoError(t, src.Save(ctx, Seed(t0, 20)))
	require.NoError(t, src.Save(ctx, sampleDataset()))
	out, err := src.Load(ctx)
	require.NoError(t, err)

	assert.Len(t, out.Devices, 3)
}
