package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/stpnv0/RoomDesk/internal/domain"
	"github.com/stpnv0/RoomDesk/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	List(ctx context.Context, status domain.BookingStatus) ([]*domain.BookingRequest, error)
	GetDetails(ctx context.Context, id string) (*domain.BookingDetails, error)
	Approve(ctx context.Context, id string) (*domain.BookingRequest, error)
	Reject(ctx context.Context, id string) (*domain.BookingRequest, error)
}

type RoomSvc interface {
	List(ctx context.Context) ([]*domain.Room, error)
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	Add(ctx context.Context, in domain.RoomInput) (*domain.Room, error)
	Update(ctx context.Context, id string, in domain.RoomInput) (*domain.Room, error)
	Delete(ctx context.Context, id string) error

	Form(ctx context.Context) domain.RoomForm
	OpenCreate(ctx context.Context) domain.RoomForm
	Edit(ctx context.Context, id string) (domain.RoomForm, error)
	SetDraft(ctx context.Context, in domain.RoomInput) (domain.RoomForm, error)
	Submit(ctx context.Context) (*domain.Room, error)
	SubmitEdit(ctx context.Context) (*domain.Room, error)
	Cancel(ctx context.Context) domain.RoomForm
}

type NotificationFeed interface {
	List(ctx context.Context) []domain.Notification
}

type Handler struct {
	bookingService BookingSvc
	roomService    RoomSvc
	feed           NotificationFeed
}

func NewHandler(bookingService BookingSvc, roomService RoomSvc, feed NotificationFeed) *Handler {
	return &Handler{
		bookingService: bookingService,
		roomService:    roomService,
		feed:           feed,
	}
}

// Bookings

func (h *Handler) ListBookings(c *ginext.Context) {
	var status domain.BookingStatus
	if raw := c.Query("status"); raw != "" {
		parsed, err := domain.ParseBookingStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		status = parsed
	}

	bookings, err := h.bookingService.List(c.Request.Context(), status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBooking(c *ginext.Context) {
	details, err := h.bookingService.GetDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingDetailsResponse(details))
}

func (h *Handler) ApproveBooking(c *ginext.Context) {
	booking, err := h.bookingService.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) RejectBooking(c *ginext.Context) {
	booking, err := h.bookingService.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Rooms

func (h *Handler) ListRooms(c *ginext.Context) {
	rooms, err := h.roomService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp = append(resp, dto.ToRoomResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetRoom(c *ginext.Context) {
	room, err := h.roomService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

func (h *Handler) AddRoom(c *ginext.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	room, err := h.roomService.Add(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

func (h *Handler) UpdateRoom(c *ginext.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	room, err := h.roomService.Update(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

func (h *Handler) DeleteRoom(c *ginext.Context) {
	if err := h.roomService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Room dialog

func (h *Handler) GetRoomForm(c *ginext.Context) {
	c.JSON(http.StatusOK, dto.ToRoomFormResponse(h.roomService.Form(c.Request.Context())))
}

func (h *Handler) OpenCreateForm(c *ginext.Context) {
	c.JSON(http.StatusOK, dto.ToRoomFormResponse(h.roomService.OpenCreate(c.Request.Context())))
}

func (h *Handler) EditRoom(c *ginext.Context) {
	form, err := h.roomService.Edit(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomFormResponse(form))
}

func (h *Handler) SetRoomDraft(c *ginext.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	form, err := h.roomService.SetDraft(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomFormResponse(form))
}

func (h *Handler) SubmitRoomForm(c *ginext.Context) {
	room, err := h.roomService.Submit(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

func (h *Handler) SubmitRoomEdit(c *ginext.Context) {
	room, err := h.roomService.SubmitEdit(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

func (h *Handler) CancelRoomForm(c *ginext.Context) {
	c.JSON(http.StatusOK, dto.ToRoomFormResponse(h.roomService.Cancel(c.Request.Context())))
}

// Notifications

func (h *Handler) ListNotifications(c *ginext.Context) {
	notes := h.feed.List(c.Request.Context())

	resp := make([]dto.NotificationResponse, 0, len(notes))
	for _, n := range notes {
		resp = append(resp, dto.ToNotificationResponse(n))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBookingNotPending),
		errors.Is(err, domain.ErrNoActiveForm),
		errors.Is(err, domain.ErrWrongFormMode):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
