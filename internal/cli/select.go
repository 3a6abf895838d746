package cli

import (
	"context"
	"os"
	"strings"

	"plantcal/internal/common"
	"plantcal/internal/models"
)

// Country prompts for a country, makes it the active selection, and lists the
// crops with planting data for it. Selecting a country always clears the
// previously selected crop.
func (a *App) Country(ctx context.Context) error {
	countries := a.selections.Table().Countries()
	if len(countries) > 0 {
		printlnFn("Known countries:", strings.Join(countries, ", "))
	}

	country, err := getSimpleText(a.reader, "Enter country", os.Stdout)
	if err != nil {
		return err
	}

	crops, err := a.selections.SelectCountry(ctx, country)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	a.selection = models.Selection{Country: country}
	a.crops = crops

	if len(crops) == 0 {
		printlnFn("No crops with planting data for", country)
	} else {
		printlnFn("Available crops:", strings.Join(crops, ", "))
	}
	return nil
}

// Crop prompts for a crop, makes it the active selection, and shows the
// planting schedule for the resulting country and crop pair.
func (a *App) Crop(ctx context.Context) error {
	if a.selection.Country == "" {
		printlnFn("Select a country first (type 'country')")
		return common.ErrorNoSelection
	}
	if len(a.crops) > 0 {
		printlnFn("Available crops:", strings.Join(a.crops, ", "))
	}

	crop, err := getSimpleText(a.reader, "Enter crop", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.selections.SelectCrop(ctx, crop); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	a.selection.Crop = crop

	return a.Schedule(ctx)
}
