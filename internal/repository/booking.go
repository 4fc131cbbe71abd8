package repository

import (
	"context"
	"sync"

	"github.com/stpnv0/RoomDesk/internal/domain"
)

// BookingRepository keeps booking requests in memory in the order they were
// seeded.
type BookingRepository struct {
	mu       sync.RWMutex
	bookings []domain.BookingRequest
}

func NewBookingRepo(seed []domain.BookingRequest) *BookingRepository {
	bookings := make([]domain.BookingRequest, len(seed))
	copy(bookings, seed)
	return &BookingRepository{bookings: bookings}
}

func (r *BookingRepository) List(_ context.Context) ([]*domain.BookingRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.BookingRequest, 0, len(r.bookings))
	for i := range r.bookings {
		b := r.bookings[i]
		res = append(res, &b)
	}

	return res, nil
}

func (r *BookingRepository) GetByID(_ context.Context, id string) (*domain.BookingRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrBookingNotFound
	}
	b := r.bookings[i]

	return &b, nil
}

// UpdateStatus sets the status of one booking and leaves the others as they
// are. With onlyPending set, a booking that was already decided is refused.
func (r *BookingRepository) UpdateStatus(
	_ context.Context,
	id string,
	status domain.BookingStatus,
	onlyPending bool,
) (*domain.BookingRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrBookingNotFound
	}
	if onlyPending && !domain.CanTransition(r.bookings[i].Status, status) {
		return nil, domain.ErrBookingNotPending
	}

	r.bookings[i].Status = status
	b := r.bookings[i]

	return &b, nil
}

func (r *BookingRepository) indexOf(id string) int {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			return i
		}
	}
	return -1
}
