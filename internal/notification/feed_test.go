package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/RoomDesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestFeed(ttl time.Duration, capacity int) (*Feed, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)}
	f := NewFeed(ttl, capacity)
	f.now = clock.now
	return f, clock
}

func TestFeed_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	f, clock := newTestFeed(5*time.Second, 10)

	f.Notify(ctx, domain.Notification{ID: "1", Title: "Booking Approved"})
	clock.t = clock.t.Add(time.Second)
	f.Notify(ctx, domain.Notification{ID: "2", Title: "Room Added"})

	notes := f.List(ctx)

	require.Len(t, notes, 2)
	assert.Equal(t, "2", notes[0].ID)
	assert.Equal(t, "1", notes[1].ID)
	assert.Equal(t, notes[1].CreatedAt.Add(5*time.Second), notes[1].ExpiresAt)
}

func TestFeed_ExpiredHidden(t *testing.T) {
	ctx := context.Background()
	f, clock := newTestFeed(5*time.Second, 10)

	f.Notify(ctx, domain.Notification{ID: "1"})
	clock.t = clock.t.Add(3 * time.Second)
	f.Notify(ctx, domain.Notification{ID: "2"})
	clock.t = clock.t.Add(3 * time.Second)

	notes := f.List(ctx)

	require.Len(t, notes, 1)
	assert.Equal(t, "2", notes[0].ID)
}

func TestFeed_DismissExpired(t *testing.T) {
	ctx := context.Background()
	f, clock := newTestFeed(time.Second, 10)

	f.Notify(ctx, domain.Notification{ID: "1"})
	f.Notify(ctx, domain.Notification{ID: "2"})
	clock.t = clock.t.Add(2 * time.Second)
	f.Notify(ctx, domain.Notification{ID: "3"})

	dismissed, err := f.DismissExpired(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, dismissed)
	assert.Len(t, f.items, 1)
}

func TestFeed_DismissExpired_CancelledContext(t *testing.T) {
	f, _ := newTestFeed(time.Second, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.DismissExpired(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestFeed_CapacityDropsOldest(t *testing.T) {
	ctx := context.Background()
	f, _ := newTestFeed(time.Minute, 2)

	f.Notify(ctx, domain.Notification{ID: "1"})
	f.Notify(ctx, domain.Notification{ID: "2"})
	f.Notify(ctx, domain.Notification{ID: "3"})

	notes := f.List(ctx)

	require.Len(t, notes, 2)
	assert.Equal(t, "3", notes[0].ID)
	assert.Equal(t, "2", notes[1].ID)
}
