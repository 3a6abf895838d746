package reminders

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plantcal/internal/common"
	"plantcal/internal/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:remindersrepo?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE reminders (
  id      INTEGER PRIMARY KEY,
  crop    TEXT NOT NULL,
  country TEXT NOT NULL,
  note    TEXT NOT NULL,
  date    TEXT NOT NULL,
  sent    INTEGER NOT NULL DEFAULT 0
)`)
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = db.Exec(`DROP TABLE reminders`) })
	return db
}

func sample(id int64) *models.Reminder {
	return &models.Reminder{
		ID:      id,
		Crop:    "Maize",
		Country: "Nigeria",
		Note:    "Water the seedlings",
		Date:    "2026-09-01",
	}
}

func TestCreateAndGetAll_RoundTrip(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	first := sample(1)
	second := sample(2)
	second.Crop = "Rice"
	second.Date = "2026-10-15"

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, *first, all[0])
	assert.Equal(t, *second, all[1])
}

func TestGetByID(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sample(7)))

	got, err := repo.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, *sample(7), *got)

	_, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdateNote_TouchesOnlyNote(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sample(1)))
	require.NoError(t, repo.Create(ctx, sample(2)))

	require.NoError(t, repo.UpdateNote(ctx, 1, "Apply fertilizer"))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Apply fertilizer", got.Note)
	assert.Equal(t, "Maize", got.Crop)
	assert.Equal(t, "Nigeria", got.Country)
	assert.Equal(t, "2026-09-01", got.Date)
	assert.False(t, got.Sent)

	other, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Water the seedlings", other.Note)

	assert.ErrorIs(t, repo.UpdateNote(ctx, 42, "x"), common.ErrorNotFound)
}

func TestMarkSent(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sample(1)))
	require.NoError(t, repo.MarkSent(ctx, 1))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.Sent)

	assert.ErrorIs(t, repo.MarkSent(ctx, 42), common.ErrorNotFound)
}

func TestDeleteByID_RemovesExactlyTarget(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sample(1)))
	require.NoError(t, repo.Create(ctx, sample(2)))

	require.NoError(t, repo.DeleteByID(ctx, 1))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, int64(2), all[0].ID)

	assert.ErrorIs(t, repo.DeleteByID(ctx, 1), common.ErrorNotFound)
}

func TestGetDue_FiltersByDateAndSent(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	today := sample(1)
	future := sample(2)
	future.Date = "2030-01-01"
	alreadySent := sample(3)
	alreadySent.Sent = true

	require.NoError(t, repo.Create(ctx, today))
	require.NoError(t, repo.Create(ctx, future))
	require.NoError(t, repo.Create(ctx, alreadySent))

	due, err := repo.GetDue(ctx, "2026-09-01")
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, int64(1), due[0].ID)
}
