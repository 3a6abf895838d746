package services

import (
	"context"
	"database/sql"
	"time"

	"plantcal/internal/email"
	"plantcal/internal/logging"
	"plantcal/internal/models"
	"plantcal/internal/repositories/reminders"
)

// Sweeper periodically scans the reminder store and emails every reminder
// whose date has arrived.
//
// A reminder whose send fails stays unmarked and is picked up again on the
// next cycle; there is no attempt cap across cycles. That unbounded retry is
// a documented property of the sweep, not an accident.
type Sweeper struct {
	db            *sql.DB
	sender        email.Sender
	profiles      *ProfileService
	fallbackEmail string
	log           logging.Logger
}

// NewSweeper constructs a Sweeper. fallbackEmail is the destination used
// when no profile is registered.
func NewSweeper(db *sql.DB, sender email.Sender, profiles *ProfileService, fallbackEmail string, log logging.Logger) *Sweeper {
	return &Sweeper{
		db:            db,
		sender:        sender,
		profiles:      profiles,
		fallbackEmail: fallbackEmail,
		log:           log.With("component", "sweep"),
	}
}

// Run performs one sweep immediately, then one per interval tick until ctx
// is cancelled. Cancelling the context on teardown is what stops the timer.
func (s *Sweeper) Run(ctx context.Context, interval time.Duration) {
	s.SweepOnce(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.SweepOnce(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// SweepOnce scans for reminders due today and not yet sent, emails each one,
// and marks it sent only after the send succeeded. It returns the number of
// reminders notified in this pass.
func (s *Sweeper) SweepOnce(ctx context.Context) int {
	today := timeNow().Format(models.DateLayout)
	repo := reminders.NewSQLiteRepository(s.db)

	due, err := repo.GetDue(ctx, today)
	if err != nil {
		s.log.Error(ctx, "due-check query failed", "error", err)
		return 0
	}
	if len(due) == 0 {
		return 0
	}

	to := s.destination(ctx)

	sent := 0
	for _, r := range due {
		msg := email.Message{
			Crop:    r.Crop,
			Note:    r.Note,
			Date:    r.Date,
			Country: r.Country,
			ToEmail: to,
		}
		if err := s.sender.Send(ctx, msg); err != nil {
			// Left unmarked; the next cycle retries.
			s.log.Error(ctx, "reminder email failed", "id", r.ID, "error", err)
			continue
		}
		if err := repo.MarkSent(ctx, r.ID); err != nil {
			s.log.Error(ctx, "failed to mark reminder sent", "id", r.ID, "error", err)
			continue
		}
		s.log.Info(ctx, "reminder email sent", "id", r.ID, "crop", r.Crop, "date", r.Date)
		sent++
	}
	return sent
}

// destination resolves the notification address: the registered user's
// email when a profile exists, the configured fallback otherwise.
func (s *Sweeper) destination(ctx context.Context) string {
	profile, err := s.profiles.Current(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to load profile, using fallback address", "error", err)
		return s.fallbackEmail
	}
	if profile == nil || profile.Email == "" {
		return s.fallbackEmail
	}
	return profile.Email
}
