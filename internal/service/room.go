package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/stpnv0/RoomDesk/internal/domain"
	"github.com/stpnv0/RoomDesk/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	missingFieldsText   = "Please fill in all fields."
	unknownRoomTypeText = "Room type must be classroom, lab or auditorium."
)

// RoomService owns the room registry and the room dialog of the dashboard.
type RoomService struct {
	repo     ports.RoomRepo
	notifier ports.Notifier
	logger   logger.Logger
	// checkUpdates runs the Add field checks on Update as well.
	checkUpdates bool

	mu   sync.Mutex
	form domain.RoomForm
}

func NewRoomService(repo ports.RoomRepo, notifier ports.Notifier, logger logger.Logger, checkUpdates bool) *RoomService {
	return &RoomService{
		repo:         repo,
		notifier:     notifier,
		logger:       logger,
		checkUpdates: checkUpdates,
		form:         domain.IdleForm(),
	}
}

func (s *RoomService) List(ctx context.Context) ([]*domain.Room, error) {
	return s.repo.List(ctx)
}

func (s *RoomService) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RoomService) Add(ctx context.Context, in domain.RoomInput) (*domain.Room, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	room, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.logger.Info("room added",
		logger.String("room_id", room.ID),
		logger.String("name", room.Name),
	)
	s.notifier.Notify(ctx, newNotification(
		"Room Added",
		"New room has been added successfully.",
		domain.VariantDefault,
	))

	return room, nil
}

// Update replaces every field of the room except its id. The fields are only
// checked when the service was built with checkUpdates.
func (s *RoomService) Update(ctx context.Context, id string, in domain.RoomInput) (*domain.Room, error) {
	if s.checkUpdates {
		if err := s.validate(ctx, in); err != nil {
			return nil, err
		}
	}

	room, err := s.repo.Update(ctx, id, in)
	if announced(err, domain.ErrRoomNotFound) {
		s.notifier.Notify(ctx, newNotification(
			"Room Updated",
			"Room information has been updated successfully.",
			domain.VariantDefault,
		))
	}
	if err != nil {
		s.logger.Warn("room update refused",
			logger.String("room_id", id),
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("update room: %w", err)
	}

	s.logger.Info("room updated", logger.String("room_id", room.ID))

	return room, nil
}

func (s *RoomService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if announced(err, domain.ErrRoomNotFound) {
		s.notifier.Notify(ctx, newNotification(
			"Room Deleted",
			"Room has been deleted successfully.",
			domain.VariantDestructive,
		))
	}
	if err != nil {
		s.logger.Warn("room delete refused",
			logger.String("room_id", id),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("delete room: %w", err)
	}

	s.logger.Info("room deleted", logger.String("room_id", id))

	return nil
}

func (s *RoomService) validate(ctx context.Context, in domain.RoomInput) error {
	err := in.Validate()
	if err == nil {
		return nil
	}

	text := missingFieldsText
	if errors.Is(err, domain.ErrUnknownRoomType) {
		text = unknownRoomTypeText
	}
	s.notifier.Notify(ctx, errorNotification(text))
	s.logger.Warn("room rejected", logger.String("error", err.Error()))

	return err
}

// Room dialog

func (s *RoomService) Form(_ context.Context) domain.RoomForm {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.form
}

// OpenCreate switches the dialog to creating with an empty draft. A dialog
// that was already open loses its draft.
func (s *RoomService) OpenCreate(_ context.Context) domain.RoomForm {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.replaceForm(domain.CreatingForm())

	return s.form
}

// Edit loads a room into the draft and switches the dialog to editing. The
// registry itself is not touched.
func (s *RoomService) Edit(ctx context.Context, id string) (domain.RoomForm, error) {
	room, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.RoomForm{}, fmt.Errorf("edit room: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.replaceForm(domain.EditingForm(*room))

	return s.form, nil
}

func (s *RoomService) SetDraft(_ context.Context, in domain.RoomInput) (domain.RoomForm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.form.Active() {
		return domain.RoomForm{}, domain.ErrNoActiveForm
	}
	s.form.Draft = in

	return s.form, nil
}

// Submit completes the open dialog: a new room is added while creating, the
// target room is replaced while editing. The dialog stays open when the draft
// is rejected and closes when the room being edited no longer exists.
func (s *RoomService) Submit(ctx context.Context) (*domain.Room, error) {
	return s.submit(ctx, "")
}

// SubmitEdit is Submit limited to the editing dialog.
func (s *RoomService) SubmitEdit(ctx context.Context) (*domain.Room, error) {
	return s.submit(ctx, domain.FormModeEditing)
}

func (s *RoomService) submit(ctx context.Context, want domain.FormMode) (*domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.form.Active() {
		return nil, domain.ErrNoActiveForm
	}
	if want != "" && s.form.Mode != want {
		return nil, domain.ErrWrongFormMode
	}

	var (
		room *domain.Room
		err  error
	)
	if s.form.Mode == domain.FormModeEditing {
		room, err = s.Update(ctx, s.form.TargetID, s.form.Draft)
	} else {
		room, err = s.Add(ctx, s.form.Draft)
	}
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			s.replaceForm(domain.IdleForm())
		}
		return nil, err
	}

	s.form = domain.IdleForm()

	return room, nil
}

func (s *RoomService) Cancel(_ context.Context) domain.RoomForm {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.replaceForm(domain.IdleForm())

	return s.form
}

func (s *RoomService) replaceForm(next domain.RoomForm) {
	if s.form.Active() {
		s.logger.Debug("room form discarded",
			logger.String("mode", string(s.form.Mode)),
			logger.String("target_id", s.form.TargetID),
		)
	}
	s.form = next
}
