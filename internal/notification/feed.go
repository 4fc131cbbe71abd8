package notification

import (
	"context"
	"sync"
	"time"

	"github.com/stpnv0/RoomDesk/internal/domain"
)

// Feed holds the toasts currently shown on the dashboard. Each toast expires
// ttl after it was raised; at most capacity toasts are kept, the oldest are
// dropped first.
type Feed struct {
	mu       sync.Mutex
	items    []domain.Notification
	ttl      time.Duration
	capacity int
	now      func() time.Time
}

func NewFeed(ttl time.Duration, capacity int) *Feed {
	return &Feed{
		ttl:      ttl,
		capacity: capacity,
		now:      time.Now,
	}
}

func (f *Feed) Notify(_ context.Context, n domain.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if n.CreatedAt.IsZero() {
		n.CreatedAt = f.now().UTC()
	}
	if n.ExpiresAt.IsZero() {
		n.ExpiresAt = n.CreatedAt.Add(f.ttl)
	}

	f.items = append(f.items, n)
	if over := len(f.items) - f.capacity; f.capacity > 0 && over > 0 {
		f.items = append(f.items[:0:0], f.items[over:]...)
	}
}

// List returns the toasts that have not expired yet, newest first.
func (f *Feed) List(_ context.Context) []domain.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	res := make([]domain.Notification, 0, len(f.items))
	for i := len(f.items) - 1; i >= 0; i-- {
		if !f.items[i].Expired(now) {
			res = append(res, f.items[i])
		}
	}

	return res
}

// DismissExpired drops expired toasts and reports how many were dropped.
func (f *Feed) DismissExpired(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	kept := f.items[:0]
	for _, n := range f.items {
		if !n.Expired(now) {
			kept = append(kept, n)
		}
	}
	dismissed := len(f.items) - len(kept)
	f.items = kept

	return dismissed, nil
}
