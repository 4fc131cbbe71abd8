package domain

type FormMode string

const (
	FormModeIdle     FormMode = "idle"
	FormModeCreating FormMode = "creating"
	FormModeEditing  FormMode = "editing"
)

// RoomForm is the state of the room dialog. Only one mode is active at a
// time; TargetID is set only while editing and Draft is empty while idle.
type RoomForm struct {
	Mode     FormMode  `json:"mode"`
	TargetID string    `json:"target_id,omitempty"`
	Draft    RoomInput `json:"draft"`
}

func IdleForm() RoomForm {
	return RoomForm{Mode: FormModeIdle}
}

func CreatingForm() RoomForm {
	return RoomForm{
		Mode:  FormModeCreating,
		Draft: RoomInput{Type: RoomTypeClassroom},
	}
}

func EditingForm(r Room) RoomForm {
	return RoomForm{
		Mode:     FormModeEditing,
		TargetID: r.ID,
		Draft:    r.Input(),
	}
}

func (f RoomForm) Active() bool {
	return f.Mode == FormModeCreating || f.Mode == FormModeEditing
}
