package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/RoomDesk/internal/domain"
	"github.com/stpnv0/RoomDesk/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	roomRepo    ports.RoomRepo
	notifier    ports.Notifier
	logger      logger.Logger
	strict      bool
}

// NewBookingService builds the approval queue. With strict set, only pending
// bookings can be approved or rejected; otherwise a decision simply
// overwrites the previous one.
func NewBookingService(
	bookingRepo ports.BookingRepo,
	roomRepo ports.RoomRepo,
	notifier ports.Notifier,
	logger logger.Logger,
	strict bool,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		notifier:    notifier,
		logger:      logger,
		strict:      strict,
	}
}

// List returns bookings in queue order. An empty status returns all of them.
func (s *BookingService) List(ctx context.Context, status domain.BookingStatus) ([]*domain.BookingRequest, error) {
	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if status == "" {
		return bookings, nil
	}

	res := make([]*domain.BookingRequest, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == status {
			res = append(res, b)
		}
	}

	return res, nil
}

func (s *BookingService) GetDetails(ctx context.Context, id string) (*domain.BookingDetails, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &domain.BookingDetails{Booking: *booking}
	if booking.RoomID == "" {
		return details, nil
	}

	room, err := s.roomRepo.GetByID(ctx, booking.RoomID)
	switch {
	case err == nil:
		details.Room = room
	case errors.Is(err, domain.ErrRoomNotFound):
		// room was removed from the registry, the snapshot is all we have
	default:
		return nil, fmt.Errorf("get room: %w", err)
	}

	return details, nil
}

func (s *BookingService) Approve(ctx context.Context, id string) (*domain.BookingRequest, error) {
	booking, err := s.decide(ctx, id, domain.BookingStatusApproved)
	if announced(err, domain.ErrBookingNotFound) {
		s.notifier.Notify(ctx, newNotification(
			"Booking Approved",
			"The booking request has been approved successfully.",
			domain.VariantDefault,
		))
	}
	if err != nil {
		return nil, fmt.Errorf("approve booking: %w", err)
	}

	return booking, nil
}

func (s *BookingService) Reject(ctx context.Context, id string) (*domain.BookingRequest, error) {
	booking, err := s.decide(ctx, id, domain.BookingStatusRejected)
	if announced(err, domain.ErrBookingNotFound) {
		s.notifier.Notify(ctx, newNotification(
			"Booking Rejected",
			"The booking request has been rejected.",
			domain.VariantDestructive,
		))
	}
	if err != nil {
		return nil, fmt.Errorf("reject booking: %w", err)
	}

	return booking, nil
}

func (s *BookingService) decide(ctx context.Context, id string, status domain.BookingStatus) (*domain.BookingRequest, error) {
	booking, err := s.bookingRepo.UpdateStatus(ctx, id, status, s.strict)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotPending) {
			s.notifier.Notify(ctx, errorNotification(
				fmt.Sprintf("Booking request %s has already been decided.", id),
			))
		}
		s.logger.Warn("booking decision refused",
			logger.String("booking_id", id),
			logger.String("status", string(status)),
			logger.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("booking decided",
		logger.String("booking_id", booking.ID),
		logger.String("room_id", booking.RoomID),
		logger.String("status", string(booking.Status)),
	)

	return booking, nil
}
