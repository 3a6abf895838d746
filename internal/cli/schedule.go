package cli

import (
	"context"
	"errors"
	"fmt"

	"plantcal/internal/common"
	"plantcal/internal/schedule"
)

// Schedule prints the month-by-month planting calendar for the current
// selection, or the no-data message when the pair has no schedule.
func (a *App) Schedule(ctx context.Context) error {
	months, ok, err := a.selections.Schedule(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorNoSelection) {
			printlnFn("Select a country and crop first")
			return err
		}
		printlnFn("Error:", err.Error())
		return err
	}

	if !ok {
		printlnFn("No data available for this crop and location.")
		return nil
	}

	printlnFn(fmt.Sprintf("Planting calendar for %s in %s:", a.selection.Crop, a.selection.Country))
	for _, m := range schedule.SortedMonths(months) {
		printlnFn(fmt.Sprintf("  %-10s %s", m, months[m]))
	}
	return nil
}
