package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"plantcal/internal/common"
	"plantcal/internal/models"
	"plantcal/internal/repositories/settings"
	"plantcal/internal/schedule"
)

// SelectionService tracks the chosen country and crop, persists them through
// the settings store, and answers schedule lookups for the current pair.
//
// Invariant: changing the country always clears the crop selection first, so
// stale schedule data from a previous country is never shown under a new one.
type SelectionService struct {
	db    *sql.DB
	table *schedule.Table
}

// NewSelectionService constructs a SelectionService over the given DB and
// schedule table.
func NewSelectionService(db *sql.DB, table *schedule.Table) *SelectionService {
	return &SelectionService{db: db, table: table}
}

func (s *SelectionService) getSettingsRepo() settings.Repository {
	return settings.NewSQLiteRepository(s.db)
}

// Table exposes the read-only schedule table (for listing countries).
func (s *SelectionService) Table() *schedule.Table {
	return s.table
}

// Current returns the active selection from the settings store.
func (s *SelectionService) Current(ctx context.Context) (models.Selection, error) {
	repo := s.getSettingsRepo()

	country, err := repo.Get(ctx, settings.KeySelectedCountry)
	if err != nil {
		return models.Selection{}, err
	}
	crop, err := repo.Get(ctx, settings.KeySelectedCrop)
	if err != nil {
		return models.Selection{}, err
	}
	return models.Selection{Country: string(country), Crop: string(crop)}, nil
}

// SelectCountry makes country the active selection, clears any previously
// selected crop and schedule, and returns the crops with data for it. The
// country is also remembered as preferred for the next session.
func (s *SelectionService) SelectCountry(ctx context.Context, country string) ([]string, error) {
	country = strings.TrimSpace(country)
	if country == "" {
		return nil, fmt.Errorf("%w: country is required", common.ErrorValidation)
	}

	crops := s.table.CropsForCountry(country)
	cropsJSON, err := json.Marshal(crops)
	if err != nil {
		return nil, err
	}

	repo := s.getSettingsRepo()
	if err := repo.Set(ctx, settings.KeySelectedCountry, []byte(country)); err != nil {
		return nil, err
	}
	if err := repo.Set(ctx, settings.KeyPreferredCountry, []byte(country)); err != nil {
		return nil, err
	}
	// The old crop belongs to the old country; drop it before anything can
	// render against the new selection.
	if err := repo.Delete(ctx, settings.KeySelectedCrop); err != nil {
		return nil, err
	}
	if err := repo.Set(ctx, settings.KeyAvailableCrops, cropsJSON); err != nil {
		return nil, err
	}

	return crops, nil
}

// SelectCrop makes crop the active selection for the current country and
// remembers it as preferred. A country must be selected first.
func (s *SelectionService) SelectCrop(ctx context.Context, crop string) error {
	crop = strings.TrimSpace(crop)
	if crop == "" {
		return fmt.Errorf("%w: crop is required", common.ErrorValidation)
	}

	repo := s.getSettingsRepo()

	country, err := repo.Get(ctx, settings.KeySelectedCountry)
	if err != nil {
		return err
	}
	if len(country) == 0 {
		return fmt.Errorf("%w: select a country first", common.ErrorValidation)
	}

	if err := repo.Set(ctx, settings.KeySelectedCrop, []byte(crop)); err != nil {
		return err
	}
	return repo.Set(ctx, settings.KeyPreferredCrop, []byte(crop))
}

// Schedule looks up the month→status map for the current selection. The
// boolean mirrors the table's "no data available" state; an incomplete
// selection yields common.ErrorNoSelection.
func (s *SelectionService) Schedule(ctx context.Context) (map[string]string, bool, error) {
	sel, err := s.Current(ctx)
	if err != nil {
		return nil, false, err
	}
	if !sel.Complete() {
		return nil, false, common.ErrorNoSelection
	}

	months, ok := s.table.Lookup(sel.Country, sel.Crop)
	return months, ok, nil
}

// SetLocation stores the country resolved by the geolocation lookup.
func (s *SelectionService) SetLocation(ctx context.Context, country string) error {
	return s.getSettingsRepo().Set(ctx, settings.KeyLocation, []byte(country))
}

// Location returns the stored geolocated country, or "".
func (s *SelectionService) Location(ctx context.Context) (string, error) {
	v, err := s.getSettingsRepo().Get(ctx, settings.KeyLocation)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Restore rebuilds the selection on startup: the selected country falls back
// to the preferred one and then to the geolocated location; the crop falls
// back to the preferred one and is kept only if it still belongs to the
// restored country's crop set. The resulting selection is persisted.
func (s *SelectionService) Restore(ctx context.Context) (models.Selection, error) {
	repo := s.getSettingsRepo()

	country, err := s.firstSetting(ctx,
		settings.KeySelectedCountry, settings.KeyPreferredCountry, settings.KeyLocation)
	if err != nil {
		return models.Selection{}, err
	}
	if country == "" {
		return models.Selection{}, nil
	}

	crops, err := s.SelectCountry(ctx, country)
	if err != nil {
		return models.Selection{}, err
	}

	crop, err := s.firstSetting(ctx, settings.KeyPreferredCrop)
	if err != nil {
		return models.Selection{}, err
	}
	if crop != "" && slices.Contains(crops, strings.ToLower(crop)) {
		if err := repo.Set(ctx, settings.KeySelectedCrop, []byte(crop)); err != nil {
			return models.Selection{}, err
		}
		return models.Selection{Country: country, Crop: crop}, nil
	}

	return models.Selection{Country: country}, nil
}

func (s *SelectionService) firstSetting(ctx context.Context, keys ...string) (string, error) {
	repo := s.getSettingsRepo()
	for _, key := range keys {
		v, err := repo.Get(ctx, key)
		if err != nil {
			return "", err
		}
		if len(v) > 0 {
			return string(v), nil
		}
	}
	return "", nil
}
