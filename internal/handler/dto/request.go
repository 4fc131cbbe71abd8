package dto

import "github.com/stpnv0/RoomDesk/internal/domain"

// RoomRequest carries the room fields for create, update and the dialog
// draft. Required fields are checked by the room service so that a rejected
// room still raises a toast.
type RoomRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Level    string `json:"level"`
	Capacity int    `json:"capacity"`
}

func (r RoomRequest) ToInput() domain.RoomInput {
	return domain.RoomInput{
		Name:     r.Name,
		Type:     domain.RoomType(r.Type),
		Location: r.Location,
		Level:    r.Level,
		Capacity: r.Capacity,
	}
}
