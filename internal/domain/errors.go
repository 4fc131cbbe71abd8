package domain

import (
	"errors"
	"fmt"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrRoomNotFound    = errors.New("room not found")
)

var (
	ErrBookingNotPending = errors.New("booking is not in pending status")
	ErrNoActiveForm      = errors.New("no room form is open")
	ErrWrongFormMode     = errors.New("room form is not in the required mode")
)

var (
	ErrValidation = errors.New("validation error")
)

var (
	ErrMissingRoomFields = fmt.Errorf("%w: name, location, level and capacity are required", ErrValidation)
	ErrUnknownRoomType   = fmt.Errorf("%w: unknown room type", ErrValidation)
)
