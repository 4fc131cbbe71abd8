package notification

import (
	"context"

	"github.com/stpnv0/RoomDesk/internal/domain"
	"github.com/stpnv0/RoomDesk/internal/service/ports"
)

// Fanout hands every notification to each of its notifiers in order.
type Fanout []ports.Notifier

func (f Fanout) Notify(ctx context.Context, n domain.Notification) {
	for _, notifier := range f {
		notifier.Notify(ctx, n)
	}
}
