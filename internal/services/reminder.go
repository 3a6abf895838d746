package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"plantcal/internal/common"
	"plantcal/internal/models"
	"plantcal/internal/repositories/reminders"
)

// ReminderService implements the reminder lifecycle: create, edit, delete.
// Every mutation is persisted before any caller-visible state changes, so a
// failed write never leaves memory and storage diverged.
type ReminderService struct {
	db          *sql.DB
	allowDelete bool
}

// NewReminderService constructs a ReminderService. allowDelete is the
// capability flag gating the delete operation.
func NewReminderService(db *sql.DB, allowDelete bool) *ReminderService {
	return &ReminderService{db: db, allowDelete: allowDelete}
}

func (s *ReminderService) getRemindersRepo() reminders.Repository {
	return reminders.NewSQLiteRepository(s.db)
}

// AllowDelete reports whether the deletion capability is enabled.
func (s *ReminderService) AllowDelete() bool {
	return s.allowDelete
}

// Create validates and stores a new reminder for the given selection.
// Note and date must be non-empty, the date must be a valid calendar day,
// and both crop and country must be selected; otherwise the store is left
// unchanged and a validation error is returned.
func (s *ReminderService) Create(ctx context.Context, sel models.Selection, note, date string) (*models.Reminder, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return nil, fmt.Errorf("%w: note is required", common.ErrorValidation)
	}
	if date == "" {
		return nil, fmt.Errorf("%w: date is required", common.ErrorValidation)
	}
	if _, err := time.ParseInLocation(models.DateLayout, date, time.Local); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", common.ErrorValidation)
	}
	if !sel.Complete() {
		return nil, common.ErrorNoSelection
	}

	rem := &models.Reminder{
		ID:      models.NewReminderID(timeNow()),
		Crop:    sel.Crop,
		Country: sel.Country,
		Note:    note,
		Date:    date,
	}

	if err := s.getRemindersRepo().Create(ctx, rem); err != nil {
		return nil, err
	}
	return rem, nil
}

// List returns every stored reminder in creation order.
func (s *ReminderService) List(ctx context.Context) ([]models.Reminder, error) {
	return s.getRemindersRepo().GetAll(ctx)
}

// Get returns the reminder with the given identifier, or common.ErrorNotFound.
func (s *ReminderService) Get(ctx context.Context, id int64) (*models.Reminder, error) {
	return s.getRemindersRepo().GetByID(ctx, id)
}

// ListForCrop returns the reminders attached to the given crop.
func (s *ReminderService) ListForCrop(ctx context.Context, crop string) ([]models.Reminder, error) {
	all, err := s.getRemindersRepo().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var result []models.Reminder
	for _, r := range all {
		if strings.EqualFold(r.Crop, crop) {
			result = append(result, r)
		}
	}
	return result, nil
}

// EditNote replaces the note on the matching reminder; the identifier and
// every other field stay unchanged. An unknown identifier returns
// common.ErrorNotFound and leaves the store untouched.
func (s *ReminderService) EditNote(ctx context.Context, id int64, note string) error {
	note = strings.TrimSpace(note)
	if note == "" {
		return fmt.Errorf("%w: note is required", common.ErrorValidation)
	}
	return s.getRemindersRepo().UpdateNote(ctx, id, note)
}

// Delete removes the matching reminder. It requires the deletion capability
// and an explicit prior confirmation; without either the store is unchanged.
func (s *ReminderService) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !s.allowDelete {
		return common.ErrorDeleteNotAllowed
	}
	if !confirmed {
		return common.ErrorDeleteNotConfirmed
	}
	return s.getRemindersRepo().DeleteByID(ctx, id)
}
