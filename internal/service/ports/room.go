package ports

import (
	"context"

	"github.com/stpnv0/RoomDesk/internal/domain"
)

type RoomRepo interface {
	List(ctx context.Context) ([]*domain.Room, error)
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	Create(ctx context.Context, in domain.RoomInput) (*domain.Room, error)
	Update(ctx context.Context, id string, in domain.RoomInput) (*domain.Room, error)
	Delete(ctx context.Context, id string) error
}
