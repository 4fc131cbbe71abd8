package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/RoomDesk/internal/domain"
)

func newNotification(title, description string, variant domain.Variant) domain.Notification {
	return domain.Notification{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Variant:     variant,
		CreatedAt:   time.Now().UTC(),
	}
}

func errorNotification(description string) domain.Notification {
	return newNotification("Error", description, domain.VariantDestructive)
}

// announced reports whether an action toast is due. A missing target still
// gets the toast of the action; the caller learns about it from the error.
func announced(err, notFound error) bool {
	return err == nil || errors.Is(err, notFound)
}
