package domain

import "fmt"

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusApproved BookingStatus = "approved"
	BookingStatusRejected BookingStatus = "rejected"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusApproved, BookingStatusRejected:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("%w: unknown booking status %q", ErrValidation, s)
	}
}

// decisions reachable from each status when transitions are enforced.
var allowedTransitions = map[BookingStatus]map[BookingStatus]bool{
	BookingStatusPending:  {BookingStatusApproved: true, BookingStatusRejected: true},
	BookingStatusApproved: {},
	BookingStatusRejected: {},
}

func CanTransition(from, to BookingStatus) bool {
	return allowedTransitions[from][to]
}

// BookingRequest keeps the room fields as they were when the lecturer asked
// for the room. RoomID points at the registry entry, if it still exists.
type BookingRequest struct {
	ID           string        `json:"id"`
	RoomID       string        `json:"room_id"`
	RoomName     string        `json:"room_name"`
	RoomType     string        `json:"room_type"`
	Location     string        `json:"location"`
	LecturerName string        `json:"lecturer_name"`
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	Duration     string        `json:"duration"`
	Status       BookingStatus `json:"status"`
	Purpose      string        `json:"purpose"`
}

type BookingDetails struct {
	Booking BookingRequest `json:"booking"`
	Room    *Room          `json:"room"`
}
