package handler

import (
	"net/http"

	"github.com/stpnv0/RoomDesk/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

type dashboardView struct {
	Bookings      []*domain.BookingRequest
	Rooms         []*domain.Room
	Form          domain.RoomForm
	Notifications []domain.Notification
}

// Dashboard renders the admin page with the current queue and registry.
func (h *Handler) Dashboard(c *ginext.Context) {
	ctx := c.Request.Context()

	bookings, err := h.bookingService.List(ctx, "")
	if err != nil {
		h.handleError(c, err)
		return
	}

	rooms, err := h.roomService.List(ctx)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", dashboardView{
		Bookings:      bookings,
		Rooms:         rooms,
		Form:          h.roomService.Form(ctx),
		Notifications: h.feed.List(ctx),
	})
}
