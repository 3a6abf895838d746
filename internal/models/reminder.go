// Package models defines the core record types of the planting calendar:
// reminders, the registered user profile, and the crop/country selection.
package models

import (
	"sync"
	"time"
)

// DateLayout is the calendar-day format used everywhere a reminder date is
// stored or compared, e.g. "2026-04-12".
const DateLayout = "2006-01-02"

// Reminder is a user-created note tied to a crop, country and target date.
// Sent flips to true once the email alert for the date has gone out.
type Reminder struct {
	ID      int64  `json:"id"`
	Crop    string `json:"crop"`
	Country string `json:"country"`
	Note    string `json:"note"`
	Date    string `json:"date"`
	Sent    bool   `json:"sent"`
}

// DueOn reports whether the reminder targets the given calendar day and has
// not been notified yet.
func (r *Reminder) DueOn(day string) bool {
	return !r.Sent && r.Date == day
}

var (
	idMu   sync.Mutex
	lastID int64
)

// NewReminderID returns a millisecond-timestamp identifier for a new
// reminder. Two creations within the same clock tick still get distinct,
// strictly increasing values.
func NewReminderID(now time.Time) int64 {
	idMu.Lock()
	defer idMu.Unlock()

	id := now.UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}
