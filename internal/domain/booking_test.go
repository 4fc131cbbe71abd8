package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingStatus(t *testing.T) {
	for _, s := range []string{"pending", "approved", "rejected"} {
		status, err := ParseBookingStatus(s)
		require.NoError(t, err)
		assert.Equal(t, BookingStatus(s), status)
	}

	_, err := ParseBookingStatus("cancelled")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(BookingStatusPending, BookingStatusApproved))
	assert.True(t, CanTransition(BookingStatusPending, BookingStatusRejected))

	assert.False(t, CanTransition(BookingStatusApproved, BookingStatusRejected))
	assert.False(t, CanTransition(BookingStatusRejected, BookingStatusApproved))
	assert.False(t, CanTransition(BookingStatusApproved, BookingStatusPending))
	assert.False(t, CanTransition(BookingStatusPending, BookingStatusPending))
}

func TestRoomForm_Modes(t *testing.T) {
	assert.False(t, IdleForm().Active())

	creating := CreatingForm()
	assert.True(t, creating.Active())
	assert.Empty(t, creating.TargetID)
	assert.Equal(t, RoomTypeClassroom, creating.Draft.Type)

	room := Room{ID: "R002", Name: "Classroom B3", Type: RoomTypeClassroom, Location: "Block B", Level: "Level 3", Capacity: 45}
	editing := EditingForm(room)
	assert.True(t, editing.Active())
	assert.Equal(t, "R002", editing.TargetID)
	assert.Equal(t, room.Input(), editing.Draft)
}
