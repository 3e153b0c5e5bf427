package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAccessors(t *testing.T) {
	rids := ListAccessors()

	ss := make([]string, 0, len(rids))
	for _, rid := range rids {
		ss = append(ss, rid.String())
	}
	assert.Equal(t, []string{
		"catalog/device",
		"catalog/favorite",
		"inbox/notification",
		"lending/request",
		"people/user",
	}, ss)
}

func TestAccessorFor(t *testing.T) {
	f := NewFactory(&memSource{ds: sampleDataset()}, nil, nil)
	ctx := context.Background()

	acc, err := AccessorFor(f, &DeviceRID)
	require.NoError(t, err)
	assert.Equal(t, &DeviceRID, acc.ResourceID())

	oo, err := acc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, oo, 3)

	o, err := acc.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "Laptop Pro", o.GetName())

	_, err = acc.Get(ctx, "zz")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = AccessorFor(f, &ResourceID{Group: "x", Resource: "y"})
	assert.ErrorIs(t, err, ErrUnknownResource)
}

func TestDescribe(t *testing.T) {
	f := NewFactory(&memSource{ds: sampleDataset()}, nil, nil)
	acc, err := AccessorFor(f, &UserRID)
	require.NoError(t, err)
	d, ok := acc.(Describer)
	require.True(t, ok)

	y, err := d.Describe(context.Background(), "u1")
	require.NoError(t, err)
	assert.Contains(t, y, "email: grace@lendr.dev")

	j, err := d.ToJSON(context.Background(), "u1")
	require.NoError(t, err)
	assert.Contains(t, j, `"email": "grace@lendr.dev"`)
}

func TestFavoriteDevices(t *testing.T) {
	favs := NewFavoriteStore("")
	favs.Toggle("d2")
	f := NewFactory(&memSource{ds: sampleDataset()}, nil, favs)

	acc, err := AccessorFor(f, &FavoriteRID)
	require.NoError(t, err)
	oo, err := acc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, oo, 1)
	assert.Equal(t, "d2", oo[0].GetID())
}
