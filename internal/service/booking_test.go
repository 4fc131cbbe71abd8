package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/RoomDesk/internal/domain"
	"github.com/stpnv0/RoomDesk/internal/repository"
	"github.com/stpnv0/RoomDesk/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func titled(title string, variant domain.Variant) interface{} {
	return mock.MatchedBy(func(n domain.Notification) bool {
		return n.Title == title && n.Variant == variant && n.ID != ""
	})
}

func newBookingService(t *testing.T, strict bool) (*BookingService, *repository.BookingRepository, *repository.RoomRepository, *mocks.MockNotifier) {
	t.Helper()
	bookingRepo := repository.NewBookingRepo(repository.SeedBookings())
	roomRepo := repository.NewRoomRepo(repository.SeedRooms())
	notifier := mocks.NewMockNotifier(t)

	svc := NewBookingService(bookingRepo, roomRepo, notifier, newTestLogger(t), strict)

	return svc, bookingRepo, roomRepo, notifier
}

func TestBookingService_Approve_Success(t *testing.T) {
	svc, bookingRepo, _, notifier := newBookingService(t, false)

	notifier.EXPECT().Notify(mock.Anything, titled("Booking Approved", domain.VariantDefault)).Return().Once()

	booking, err := svc.Approve(context.Background(), "BR001")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApproved, booking.Status)

	all, err := bookingRepo.List(context.Background())
	require.NoError(t, err)
	seed := repository.SeedBookings()
	for i, b := range all[1:] {
		assert.Equal(t, seed[i+1], *b)
	}
}

func TestBookingService_Reject_Success(t *testing.T) {
	svc, _, _, notifier := newBookingService(t, false)

	notifier.EXPECT().Notify(mock.Anything, titled("Booking Rejected", domain.VariantDestructive)).Return().Once()

	booking, err := svc.Reject(context.Background(), "BR003")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusRejected, booking.Status)
}

func TestBookingService_ApproveAfterReject_Overwrites(t *testing.T) {
	svc, _, _, notifier := newBookingService(t, false)

	notifier.EXPECT().Notify(mock.Anything, titled("Booking Rejected", domain.VariantDestructive)).Return().Once()
	notifier.EXPECT().Notify(mock.Anything, titled("Booking Approved", domain.VariantDefault)).Return().Twice()

	_, err := svc.Reject(context.Background(), "BR002")
	require.NoError(t, err)

	booking, err := svc.Approve(context.Background(), "BR002")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApproved, booking.Status)

	booking, err = svc.Approve(context.Background(), "BR002")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApproved, booking.Status)
}

func TestBookingService_Strict_RefusesDecided(t *testing.T) {
	svc, bookingRepo, _, notifier := newBookingService(t, true)

	notifier.EXPECT().Notify(mock.Anything, titled("Booking Approved", domain.VariantDefault)).Return().Once()
	notifier.EXPECT().Notify(mock.Anything, titled("Error", domain.VariantDestructive)).Return().Once()

	_, err := svc.Approve(context.Background(), "BR001")
	require.NoError(t, err)

	_, err = svc.Reject(context.Background(), "BR001")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotPending)

	b, err := bookingRepo.GetByID(context.Background(), "BR001")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApproved, b.Status)
}

func TestBookingService_Approve_NotFound(t *testing.T) {
	svc, bookingRepo, _, notifier := newBookingService(t, false)

	notifier.EXPECT().Notify(mock.Anything, titled("Booking Approved", domain.VariantDefault)).Return().Once()

	_, err := svc.Approve(context.Background(), "BR999")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	all, err := bookingRepo.List(context.Background())
	require.NoError(t, err)
	for _, b := range all {
		assert.Equal(t, domain.BookingStatusPending, b.Status)
	}
}

func TestBookingService_Reject_NotFound(t *testing.T) {
	svc, bookingRepo, _, notifier := newBookingService(t, true)

	notifier.EXPECT().Notify(mock.Anything, titled("Booking Rejected", domain.VariantDestructive)).Return().Once()

	_, err := svc.Reject(context.Background(), "BR999")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	all, err := bookingRepo.List(context.Background())
	require.NoError(t, err)
	for _, b := range all {
		assert.Equal(t, domain.BookingStatusPending, b.Status)
	}
}

func TestBookingService_Reject_RepoError(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewBookingService(bookingRepo, nil, notifier, newTestLogger(t), false)

	repoErr := errors.New("storage unavailable")
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, "BR001", domain.BookingStatusRejected, false).Return(nil, repoErr)

	_, err := svc.Reject(context.Background(), "BR001")

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestBookingService_List_FilterByStatus(t *testing.T) {
	svc, _, _, notifier := newBookingService(t, false)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return()

	_, err := svc.Approve(context.Background(), "BR001")
	require.NoError(t, err)

	pending, err := svc.List(context.Background(), domain.BookingStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	approved, err := svc.List(context.Background(), domain.BookingStatusApproved)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "BR001", approved[0].ID)

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestBookingService_List_RepoError(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, nil, nil, newTestLogger(t), false)

	bookingRepo.EXPECT().List(mock.Anything).Return(nil, assert.AnError)

	_, err := svc.List(context.Background(), "")

	assert.ErrorIs(t, err, assert.AnError)
}

func TestBookingService_GetDetails_ResolvesRoom(t *testing.T) {
	svc, _, _, _ := newBookingService(t, false)

	details, err := svc.GetDetails(context.Background(), "BR001")

	require.NoError(t, err)
	assert.Equal(t, "BR001", details.Booking.ID)
	require.NotNil(t, details.Room)
	assert.Equal(t, "R001", details.Room.ID)
	assert.Equal(t, 30, details.Room.Capacity)
}

func TestBookingService_GetDetails_RoomDeleted(t *testing.T) {
	svc, _, roomRepo, _ := newBookingService(t, false)

	require.NoError(t, roomRepo.Delete(context.Background(), "R003"))

	details, err := svc.GetDetails(context.Background(), "BR003")

	require.NoError(t, err)
	assert.Nil(t, details.Room)
	assert.Equal(t, "Auditorium Main", details.Booking.RoomName)
}

func TestBookingService_GetDetails_NotFound(t *testing.T) {
	svc, _, _, _ := newBookingService(t, false)

	_, err := svc.GetDetails(context.Background(), "BR404")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_GetDetails_RoomRepoError(t *testing.T) {
	bookingRepo := repository.NewBookingRepo(repository.SeedBookings())
	roomRepo := mocks.NewMockRoomRepo(t)
	svc := NewBookingService(bookingRepo, roomRepo, nil, newTestLogger(t), false)

	roomRepo.EXPECT().GetByID(mock.Anything, "R002").Return(nil, assert.AnError)

	_, err := svc.GetDetails(context.Background(), "BR002")

	assert.ErrorIs(t, err, assert.AnError)
}
