package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"plantcal/internal/common"
	"plantcal/internal/models"
)

// Remind prompts for a note and a due date and stores a reminder attached to
// the current country and crop.
func (a *App) Remind(ctx context.Context) error {
	note, err := getMultiline(a.reader, "Reminder note", os.Stdout)
	if err != nil {
		return err
	}

	date, err := getSimpleText(a.reader, "Due date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}

	rem, err := a.reminders.Create(ctx, a.selection, note, date)
	if err != nil {
		if errors.Is(err, common.ErrorNoSelection) {
			printlnFn("Select a country and crop first")
		} else {
			printlnFn("Error:", err.Error())
		}
		return err
	}

	printlnFn(fmt.Sprintf("Reminder %d saved for %s on %s", rem.ID, rem.Crop, rem.Date))
	return nil
}

// List prints every stored reminder.
func (a *App) List(ctx context.Context) error {
	all, err := a.reminders.List(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(all) == 0 {
		printlnFn("No reminders yet")
		return nil
	}

	for _, r := range all {
		printlnFn(formatReminder(r))
	}
	return nil
}

func formatReminder(r models.Reminder) string {
	status := "pending"
	if r.Sent {
		status = "sent"
	}
	return fmt.Sprintf("%d  %-10s %-10s %s  [%s]  %s", r.ID, r.Crop, r.Country, r.Date, status, r.Note)
}

// Edit prompts for a reminder id and replaces its note. All other fields are
// left unchanged.
func (a *App) Edit(ctx context.Context) error {
	id, err := a.promptReminderID("Enter reminder id to edit")
	if err != nil {
		return err
	}

	note, err := getMultiline(a.reader, "New note", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.reminders.EditNote(ctx, id, note); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Updated")
	return nil
}

// Delete prompts for a reminder id, asks for confirmation, and removes the
// reminder. The command is refused outright when deletion is disabled.
func (a *App) Delete(ctx context.Context) error {
	if !a.reminders.AllowDelete() {
		printlnFn("Deletion is disabled")
		return common.ErrorDeleteNotAllowed
	}

	id, err := a.promptReminderID("Enter reminder id to delete")
	if err != nil {
		return err
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete reminder %d? (y/n)", id), os.Stdout)
	if err != nil {
		return err
	}
	confirmed := strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")

	if err := a.reminders.Delete(ctx, id, confirmed); err != nil {
		if errors.Is(err, common.ErrorDeleteNotConfirmed) {
			printlnFn("Cancelled")
			return nil
		}
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Deleted")
	return nil
}

func (a *App) promptReminderID(prompt string) (int64, error) {
	text, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	return a.parseReminderID(text)
}

func (a *App) parseReminderID(text string) (int64, error) {
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		printlnFn("Invalid id:", text)
		return 0, fmt.Errorf("%w: invalid reminder id", common.ErrorValidation)
	}
	return id, nil
}
