package dto

import (
	"time"

	"github.com/stpnv0/RoomDesk/internal/domain"
)

type BookingResponse struct {
	ID           string `json:"id"`
	RoomID       string `json:"room_id"`
	RoomName     string `json:"room_name"`
	RoomType     string `json:"room_type"`
	Location     string `json:"location"`
	LecturerName string `json:"lecturer_name"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Duration     string `json:"duration"`
	Status       string `json:"status"`
	Purpose      string `json:"purpose"`
}

type BookingDetailsResponse struct {
	Booking BookingResponse `json:"booking"`
	Room    *RoomResponse   `json:"room"`
}

type RoomResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Level    string `json:"level"`
	Capacity int    `json:"capacity"`
}

type RoomFormResponse struct {
	Mode     string      `json:"mode"`
	TargetID string      `json:"target_id,omitempty"`
	Draft    RoomRequest `json:"draft"`
}

type NotificationResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
	CreatedAt   string `json:"created_at"`
	ExpiresAt   string `json:"expires_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.BookingRequest) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		RoomID:       b.RoomID,
		RoomName:     b.RoomName,
		RoomType:     b.RoomType,
		Location:     b.Location,
		LecturerName: b.LecturerName,
		Date:         b.Date,
		Time:         b.Time,
		Duration:     b.Duration,
		Status:       string(b.Status),
		Purpose:      b.Purpose,
	}
}

func ToBookingDetailsResponse(d *domain.BookingDetails) BookingDetailsResponse {
	resp := BookingDetailsResponse{Booking: ToBookingResponse(&d.Booking)}
	if d.Room != nil {
		room := ToRoomResponse(d.Room)
		resp.Room = &room
	}
	return resp
}

func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		ID:       r.ID,
		Name:     r.Name,
		Type:     string(r.Type),
		Location: r.Location,
		Level:    r.Level,
		Capacity: r.Capacity,
	}
}

func ToRoomFormResponse(f domain.RoomForm) RoomFormResponse {
	return RoomFormResponse{
		Mode:     string(f.Mode),
		TargetID: f.TargetID,
		Draft: RoomRequest{
			Name:     f.Draft.Name,
			Type:     string(f.Draft.Type),
			Location: f.Draft.Location,
			Level:    f.Draft.Level,
			Capacity: f.Draft.Capacity,
		},
	}
}

func ToNotificationResponse(n domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		Variant:     string(n.Variant),
		CreatedAt:   n.CreatedAt.Format(time.RFC3339),
		ExpiresAt:   n.ExpiresAt.Format(time.RFC3339),
	}
}
