package repository

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/stpnv0/RoomDesk/internal/domain"
)

// RoomRepository keeps the room registry in memory. Identifiers come from a
// counter stored next to the rooms, so a deleted id is never handed out again.
type RoomRepository struct {
	mu    sync.RWMutex
	rooms []domain.Room
	seq   int
}

func NewRoomRepo(seed []domain.Room) *RoomRepository {
	rooms := make([]domain.Room, len(seed))
	copy(rooms, seed)

	seq := len(rooms)
	for _, room := range rooms {
		if n, err := strconv.Atoi(strings.TrimPrefix(room.ID, "R")); err == nil && n > seq {
			seq = n
		}
	}

	return &RoomRepository{rooms: rooms, seq: seq}
}

func (r *RoomRepository) List(_ context.Context) ([]*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.Room, 0, len(r.rooms))
	for i := range r.rooms {
		room := r.rooms[i]
		res = append(res, &room)
	}

	return res, nil
}

func (r *RoomRepository) GetByID(_ context.Context, id string) (*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrRoomNotFound
	}
	room := r.rooms[i]

	return &room, nil
}

func (r *RoomRepository) Create(_ context.Context, in domain.RoomInput) (*domain.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	room := in.ToRoom(domain.FormatRoomID(r.seq))
	r.rooms = append(r.rooms, room)

	return &room, nil
}

func (r *RoomRepository) Update(_ context.Context, id string, in domain.RoomInput) (*domain.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrRoomNotFound
	}
	r.rooms[i] = in.ToRoom(id)
	room := r.rooms[i]

	return &room, nil
}

func (r *RoomRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrRoomNotFound
	}
	r.rooms = append(r.rooms[:i], r.rooms[i+1:]...)

	return nil
}

func (r *RoomRepository) indexOf(id string) int {
	for i := range r.rooms {
		if r.rooms[i].ID == id {
			return i
		}
	}
	return -1
}
