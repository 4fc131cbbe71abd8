package repository

import (
	"context"
	"testing"

	"github.com/stpnv0/RoomDesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var labD1 = domain.RoomInput{
	Name:     "Lab D1",
	Type:     domain.RoomTypeLab,
	Location: "Block D",
	Level:    "Level 1",
	Capacity: 20,
}

func TestRoomRepository_Create_NextIDAfterSeed(t *testing.T) {
	repo := NewRoomRepo(SeedRooms())

	room, err := repo.Create(context.Background(), labD1)

	require.NoError(t, err)
	assert.Equal(t, "R006", room.ID)

	rooms, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 6)
	assert.Equal(t, "R006", rooms[5].ID)
}

func TestRoomRepository_Create_NoReuseAfterDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewRoomRepo(SeedRooms())

	require.NoError(t, repo.Delete(ctx, "R002"))

	room, err := repo.Create(ctx, labD1)
	require.NoError(t, err)
	assert.Equal(t, "R006", room.ID)

	room, err = repo.Create(ctx, labD1)
	require.NoError(t, err)
	assert.Equal(t, "R007", room.ID)
}

func TestRoomRepository_Create_EmptyRegistry(t *testing.T) {
	repo := NewRoomRepo(nil)

	room, err := repo.Create(context.Background(), labD1)

	require.NoError(t, err)
	assert.Equal(t, "R001", room.ID)
}

func TestRoomRepository_Update_KeepsID(t *testing.T) {
	ctx := context.Background()
	repo := NewRoomRepo(SeedRooms())

	in := SeedRooms()[0].Input()
	in.Capacity = 35

	room, err := repo.Update(ctx, "R001", in)
	require.NoError(t, err)
	assert.Equal(t, "R001", room.ID)
	assert.Equal(t, 35, room.Capacity)

	stored, err := repo.GetByID(ctx, "R001")
	require.NoError(t, err)
	assert.Equal(t, 35, stored.Capacity)
}

func TestRoomRepository_Update_NotFound(t *testing.T) {
	repo := NewRoomRepo(SeedRooms())

	_, err := repo.Update(context.Background(), "R999", labD1)

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestRoomRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewRoomRepo(SeedRooms())

	require.NoError(t, repo.Delete(ctx, "R003"))

	_, err := repo.GetByID(ctx, "R003")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)

	rooms, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 4)
}

func TestRoomRepository_Delete_NotFoundLeavesRegistry(t *testing.T) {
	ctx := context.Background()
	repo := NewRoomRepo(SeedRooms())

	err := repo.Delete(ctx, "R999")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)

	rooms, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 5)
}

func TestRoomRepository_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewRoomRepo(SeedRooms())

	rooms, err := repo.List(ctx)
	require.NoError(t, err)
	rooms[0].Name = "changed"

	stored, err := repo.GetByID(ctx, "R001")
	require.NoError(t, err)
	assert.Equal(t, "Lab A1", stored.Name)
}
