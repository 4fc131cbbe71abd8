package domain

import "fmt"

type RoomType string

const (
	RoomTypeClassroom  RoomType = "classroom"
	RoomTypeLab        RoomType = "lab"
	RoomTypeAuditorium RoomType = "auditorium"
)

// ParseRoomType falls back to classroom for an empty value, matching the
// default selection of the room dialog.
func ParseRoomType(s string) (RoomType, error) {
	switch RoomType(s) {
	case "":
		return RoomTypeClassroom, nil
	case RoomTypeClassroom, RoomTypeLab, RoomTypeAuditorium:
		return RoomType(s), nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownRoomType, s)
	}
}

type Room struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     RoomType `json:"type"`
	Location string   `json:"location"`
	Level    string   `json:"level"`
	Capacity int      `json:"capacity"`
}

// RoomInput is a room without its identifier. It backs both the create
// request and the draft of the room dialog.
type RoomInput struct {
	Name     string   `json:"name"`
	Type     RoomType `json:"type"`
	Location string   `json:"location"`
	Level    string   `json:"level"`
	Capacity int      `json:"capacity"`
}

func (in RoomInput) Validate() error {
	if in.Name == "" || in.Location == "" || in.Level == "" || in.Capacity <= 0 {
		return ErrMissingRoomFields
	}
	if _, err := ParseRoomType(string(in.Type)); err != nil {
		return err
	}
	return nil
}

func (in RoomInput) ToRoom(id string) Room {
	t := in.Type
	if t == "" {
		t = RoomTypeClassroom
	}
	return Room{
		ID:       id,
		Name:     in.Name,
		Type:     t,
		Location: in.Location,
		Level:    in.Level,
		Capacity: in.Capacity,
	}
}

func (r Room) Input() RoomInput {
	return RoomInput{
		Name:     r.Name,
		Type:     r.Type,
		Location: r.Location,
		Level:    r.Level,
		Capacity: r.Capacity,
	}
}

func FormatRoomID(seq int) string {
	return fmt.Sprintf("R%03d", seq)
}
