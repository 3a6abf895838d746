package cli

import (
	"context"
	"os"
	"time"

	"plantcal/internal/email"
	"plantcal/internal/models"
)

// Email sends an immediate message to the registered address, either for a
// chosen reminder or as a plain test message. It is useful for checking the
// delivery settings without waiting for the sweep.
func (a *App) Email(ctx context.Context) error {
	dest := a.config.FallbackEmail
	if a.user != nil && a.user.Email != "" {
		dest = a.user.Email
	}

	if a.selection.Crop != "" {
		rems, err := a.reminders.ListForCrop(ctx, a.selection.Crop)
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		for _, r := range rems {
			printlnFn(formatReminder(r))
		}
	}

	idText, err := getSimpleText(a.reader, "Reminder id to send (empty for a test message)", os.Stdout)
	if err != nil {
		return err
	}

	msg := email.Message{
		Crop:    a.selection.Crop,
		Country: a.selection.Country,
		Note:    "Test message",
		Date:    time.Now().Format(models.DateLayout),
		ToEmail: dest,
	}

	if idText != "" {
		id, err := a.parseReminderID(idText)
		if err != nil {
			return err
		}
		rem, err := a.reminders.Get(ctx, id)
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		msg.Crop = rem.Crop
		msg.Country = rem.Country
		msg.Note = rem.Note
		msg.Date = rem.Date
	}

	if err := a.sender.Send(ctx, msg); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Sent to", dest)
	return nil
}
