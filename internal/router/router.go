package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ApproveBooking(c *ginext.Context)
	RejectBooking(c *ginext.Context)

	ListRooms(c *ginext.Context)
	GetRoom(c *ginext.Context)
	AddRoom(c *ginext.Context)
	UpdateRoom(c *ginext.Context)
	DeleteRoom(c *ginext.Context)

	GetRoomForm(c *ginext.Context)
	OpenCreateForm(c *ginext.Context)
	EditRoom(c *ginext.Context)
	SetRoomDraft(c *ginext.Context)
	SubmitRoomForm(c *ginext.Context)
	SubmitRoomEdit(c *ginext.Context)
	CancelRoomForm(c *ginext.Context)

	ListNotifications(c *ginext.Context)
	Dashboard(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Bookings
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/approve", h.ApproveBooking)
		api.POST("/bookings/:id/reject", h.RejectBooking)

		// Room dialog
		api.GET("/rooms/form", h.GetRoomForm)
		api.POST("/rooms/form", h.OpenCreateForm)
		api.DELETE("/rooms/form", h.CancelRoomForm)
		api.PUT("/rooms/form/draft", h.SetRoomDraft)
		api.POST("/rooms/form/submit", h.SubmitRoomForm)
		api.POST("/rooms/form/update", h.SubmitRoomEdit)

		// Rooms
		api.GET("/rooms", h.ListRooms)
		api.POST("/rooms", h.AddRoom)
		api.GET("/rooms/:id", h.GetRoom)
		api.PUT("/rooms/:id", h.UpdateRoom)
		api.DELETE("/rooms/:id", h.DeleteRoom)
		api.POST("/rooms/:id/edit", h.EditRoom)

		api.GET("/notifications", h.ListNotifications)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.LoadHTMLGlob("web/templates/*")
	router.GET("/", h.Dashboard)

	return router
}
