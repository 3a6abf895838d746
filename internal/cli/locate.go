package cli

import (
	"context"
	"os"
	"time"

	"plantcal/internal/geocode"
)

// Locate prompts for coordinates, resolves them to a country through the
// reverse-geocoding service, and stores the result as the fallback location
// for the next session.
func (a *App) Locate(ctx context.Context) error {
	coords, err := getSimpleText(a.reader, "Enter coordinates as lat,lon", os.Stdout)
	if err != nil {
		return err
	}

	lat, lon, err := geocode.ParseCoordinates(coords)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	tctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	country, err := a.geocoder.CountryFor(tctx, lat, lon)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if err := a.selections.SetLocation(ctx, country); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("You appear to be in", country)
	return nil
}
