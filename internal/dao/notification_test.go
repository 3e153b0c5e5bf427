package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupeNotifications(t *testing.T) {
	nn := []*Notification{
		{ID: "1", Kind: "request.due", Subject: "r1", CreatedAt: day(1)},
		{ID: "2", Kind: "request.due", Subject: "r1", CreatedAt: day(3)},
		{ID: "3", Kind: "request.approved", Subject: "r1", CreatedAt: day(2), Read: true},
		{ID: "4", Kind: "request.due", Subject: "r2", CreatedAt: day(0)},
		{ID: "5", Kind: "request.due", Subject: "r2", CreatedAt: day(0)},
	}

	out := DedupeNotifications(nn)

	ids := make([]string, 0, len(out))
	for _, n := range out {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"2", "3", "4"}, ids)
	assert.Equal(t, "1", nn[0].ID)
	assert.Equal(t, 2, Unread(out))
}

func TestNotificationsDAO(t *testing.T) {
	ds := sampleDataset()
	ds.Notifications = append(ds.Notifications,
		&Notification{ID: "n2", Kind: "request.pending", Subject: "r1", CreatedAt: day(1)},
	)
	f := NewFactory(&memSource{ds: ds}, nil, nil)
	acc, err := AccessorFor(f, &NotificationRID)
	require.NoError(t, err)

	oo, err := acc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, oo, 1)
	assert.Equal(t, "n2", oo[0].GetID())
}
