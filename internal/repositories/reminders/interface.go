// Package reminders provides the persistence layer for reminder records.
//
// The repository is the single source of truth for the reminder list; every
// mutation goes through it before any in-memory or displayed state changes.
package reminders

import (
	"context"

	"plantcal/internal/models"
)

// Repository describes CRUD and query operations for Reminder records.
// Implementations are backed by the local SQLite database.
type Repository interface {
	// Create inserts a new reminder.
	Create(ctx context.Context, r *models.Reminder) error

	// GetAll returns every reminder, ordered by identifier (creation order).
	GetAll(ctx context.Context) ([]models.Reminder, error)

	// GetByID returns a reminder by its identifier, or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*models.Reminder, error)

	// UpdateNote replaces the note on the matching record, leaving every
	// other field unchanged. Returns common.ErrorNotFound when id is unknown.
	UpdateNote(ctx context.Context, id int64, note string) error

	// MarkSent sets the sent flag on the matching record.
	// Returns common.ErrorNotFound when id is unknown.
	MarkSent(ctx context.Context, id int64) error

	// DeleteByID removes the matching record.
	// Returns common.ErrorNotFound when id is unknown.
	DeleteByID(ctx context.Context, id int64) error

	// GetDue returns reminders whose date equals the given calendar day and
	// whose sent flag is still false.
	GetDue(ctx context.Context, date string) ([]models.Reminder, error)
}
