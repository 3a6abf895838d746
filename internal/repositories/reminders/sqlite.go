package reminders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"plantcal/internal/common"
	"plantcal/internal/dbx"
	"plantcal/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, rem *models.Reminder) error {
	query := `INSERT INTO reminders (id, crop, country, note, date, sent)
			VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rem.ID, rem.Crop, rem.Country, rem.Note, rem.Date, rem.Sent)
	if err != nil {
		return fmt.Errorf("failed to insert reminder: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Reminder, error) {
	query := `SELECT id, crop, country, note, date, sent FROM reminders ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select reminders: %w", err)
	}
	defer rows.Close()

	return scanReminders(rows)
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Reminder, error) {
	query := `SELECT id, crop, country, note, date, sent FROM reminders WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	rem := &models.Reminder{}
	err := row.Scan(&rem.ID, &rem.Crop, &rem.Country, &rem.Note, &rem.Date, &rem.Sent)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return rem, nil
}

func (r *SQLiteRepository) UpdateNote(ctx context.Context, id int64, note string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE reminders SET note = ? WHERE id = ?`, note, id)
	if err != nil {
		return fmt.Errorf("failed to update reminder note: %w", err)
	}
	return requireOneRow(res)
}

func (r *SQLiteRepository) MarkSent(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE reminders SET sent = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}
	return requireOneRow(res)
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	return requireOneRow(res)
}

func (r *SQLiteRepository) GetDue(ctx context.Context, date string) ([]models.Reminder, error) {
	query := `SELECT id, crop, country, note, date, sent FROM reminders
			WHERE date = ? AND sent = 0 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to select due reminders: %w", err)
	}
	defer rows.Close()

	return scanReminders(rows)
}

func scanReminders(rows *sql.Rows) ([]models.Reminder, error) {
	var result []models.Reminder
	for rows.Next() {
		var item models.Reminder
		if err := rows.Scan(&item.ID, &item.Crop, &item.Country, &item.Note, &item.Date, &item.Sent); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// requireOneRow maps a zero-row mutation to common.ErrorNotFound so callers
// can treat a missing identifier as a no-op.
func requireOneRow(res sql.Result) error {
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	return nil
}
