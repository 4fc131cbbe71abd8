package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomInput_Validate(t *testing.T) {
	valid := RoomInput{Name: "Lab D1", Type: RoomTypeLab, Location: "Block D", Level: "Level 1", Capacity: 20}

	tests := []struct {
		name    string
		mutate  func(in *RoomInput)
		wantErr error
	}{
		{name: "valid", mutate: func(in *RoomInput) {}},
		{name: "empty type defaults", mutate: func(in *RoomInput) { in.Type = "" }},
		{name: "missing name", mutate: func(in *RoomInput) { in.Name = "" }, wantErr: ErrMissingRoomFields},
		{name: "missing location", mutate: func(in *RoomInput) { in.Location = "" }, wantErr: ErrMissingRoomFields},
		{name: "missing level", mutate: func(in *RoomInput) { in.Level = "" }, wantErr: ErrMissingRoomFields},
		{name: "zero capacity", mutate: func(in *RoomInput) { in.Capacity = 0 }, wantErr: ErrMissingRoomFields},
		{name: "negative capacity", mutate: func(in *RoomInput) { in.Capacity = -5 }, wantErr: ErrMissingRoomFields},
		{name: "unknown type", mutate: func(in *RoomInput) { in.Type = "gym" }, wantErr: ErrUnknownRoomType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			err := in.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestRoomInput_ToRoom_DefaultsType(t *testing.T) {
	room := RoomInput{Name: "A", Location: "B", Level: "C", Capacity: 1}.ToRoom("R010")

	assert.Equal(t, "R010", room.ID)
	assert.Equal(t, RoomTypeClassroom, room.Type)
}

func TestRoom_InputRoundTrip(t *testing.T) {
	room := Room{ID: "R001", Name: "Lab A1", Type: RoomTypeLab, Location: "Block A", Level: "Level 1", Capacity: 30}

	assert.Equal(t, room, room.Input().ToRoom(room.ID))
}

func TestFormatRoomID(t *testing.T) {
	assert.Equal(t, "R006", FormatRoomID(6))
	assert.Equal(t, "R042", FormatRoomID(42))
	assert.Equal(t, "R1000", FormatRoomID(1000))
}
