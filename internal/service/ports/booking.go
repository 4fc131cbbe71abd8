package ports

import (
	"context"

	"github.com/stpnv0/RoomDesk/internal/domain"
)

type BookingRepo interface {
	List(ctx context.Context) ([]*domain.BookingRequest, error)
	GetByID(ctx context.Context, id string) (*domain.BookingRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, onlyPending bool) (*domain.BookingRequest, error)
}
