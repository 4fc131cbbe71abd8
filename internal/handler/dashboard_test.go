package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stpnv0/RoomDesk/internal/domain"
	hmocks "github.com/stpnv0/RoomDesk/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupDashboard(t *testing.T, form domain.RoomForm) http.Handler {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)
	roomSvc := hmocks.NewMockRoomSvc(t)
	feed := hmocks.NewMockNotificationFeed(t)

	bookingSvc.EXPECT().List(mock.Anything, domain.BookingStatus("")).Return([]*domain.BookingRequest{
		{ID: "BR001", RoomName: "Lab A1", LecturerName: "Dr. Smith", Status: domain.BookingStatusPending},
		{ID: "BR002", RoomName: "Room B2", LecturerName: "Prof. Johnson", Status: domain.BookingStatusApproved},
		{ID: "BR003", RoomName: "Auditorium C", LecturerName: "Dr. Williams", Status: domain.BookingStatusRejected},
	}, nil)
	roomSvc.EXPECT().List(mock.Anything).Return([]*domain.Room{
		{ID: "R001", Name: "Lab A1", Type: domain.RoomTypeLab, Location: "Block A", Level: "Level 1", Capacity: 30},
	}, nil)
	roomSvc.EXPECT().Form(mock.Anything).Return(form)
	feed.EXPECT().List(mock.Anything).Return([]domain.Notification{
		{ID: "n1", Title: "Booking Approved", Variant: domain.VariantDefault},
	})

	h := NewHandler(bookingSvc, roomSvc, feed)

	r := ginext.New("test")
	r.LoadHTMLGlob("../../web/templates/*")
	r.GET("/", h.Dashboard)

	return r
}

func renderDashboard(t *testing.T, form domain.RoomForm) string {
	t.Helper()
	r := setupDashboard(t, form)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestDashboard_DecisionButtonsOnlyForPending(t *testing.T) {
	body := renderDashboard(t, domain.IdleForm())

	assert.Contains(t, body, "/api/bookings/BR001/approve")
	assert.Contains(t, body, "/api/bookings/BR001/reject")

	for _, id := range []string{"BR002", "BR003"} {
		assert.NotContains(t, body, "/api/bookings/"+id+"/approve")
		assert.NotContains(t, body, "/api/bookings/"+id+"/reject")
	}

	assert.Contains(t, body, "Booking Approved")
}

func TestDashboard_RoomFormBlock(t *testing.T) {
	tests := []struct {
		name     string
		form     domain.RoomForm
		visible  bool
		contains string
	}{
		{name: "idle", form: domain.IdleForm(), visible: false},
		{name: "creating", form: domain.CreatingForm(), visible: true, contains: "Add New Room"},
		{
			name: "editing",
			form: domain.EditingForm(domain.Room{
				ID: "R001", Name: "Lab A1", Type: domain.RoomTypeLab, Location: "Block A", Level: "Level 1", Capacity: 30,
			}),
			visible:  true,
			contains: "Edit Room R001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := renderDashboard(t, tt.form)

			if !tt.visible {
				assert.NotContains(t, body, `<form class="room"`)
				assert.NotContains(t, body, "Add New Room")
				return
			}
			assert.Contains(t, body, `<form class="room"`)
			assert.Contains(t, body, tt.contains)
		})
	}
}
