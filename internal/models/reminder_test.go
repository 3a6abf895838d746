package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReminderID_SameTickStaysUnique(t *testing.T) {
	now := time.Now()

	seen := make(map[int64]struct{})
	prev := int64(0)
	for i := 0; i < 1000; i++ {
		id := NewReminderID(now)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %d", id)
		require.Greater(t, id, prev)
		seen[id] = struct{}{}
		prev = id
	}
}

func TestNewReminderID_TracksClock(t *testing.T) {
	base := time.Now().Add(time.Hour)
	id := NewReminderID(base)
	assert.Equal(t, base.UnixMilli(), id)

	later := base.Add(5 * time.Millisecond)
	assert.Equal(t, later.UnixMilli(), NewReminderID(later))
}

func TestReminder_DueOn(t *testing.T) {
	r := &Reminder{Date: "2026-09-01", Sent: false}

	assert.True(t, r.DueOn("2026-09-01"))
	assert.False(t, r.DueOn("2026-09-02"))

	r.Sent = true
	assert.False(t, r.DueOn("2026-09-01"))
}

func TestSelection_Complete(t *testing.T) {
	assert.False(t, Selection{}.Complete())
	assert.False(t, Selection{Country: "Nigeria"}.Complete())
	assert.False(t, Selection{Crop: "Maize"}.Complete())
	assert.True(t, Selection{Country: "Nigeria", Crop: "Maize"}.Complete())
}
