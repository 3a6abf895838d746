// Package services contains the application services of the planting
// calendar: the registration gate, crop/country selection, the reminder
// store, and the due-check sweep.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"plantcal/internal/common"
	"plantcal/internal/dbx"
	"plantcal/internal/models"
	"plantcal/internal/repositories/settings"
)

// timeNow is a test seam for the current time.
var timeNow = time.Now

// ProfileService manages the single locally registered user profile that
// gates access to the rest of the UI. It is a local record keeper, not an
// authentication system.
type ProfileService struct {
	db *sql.DB
}

// NewProfileService constructs a ProfileService bound to the given DB.
func NewProfileService(db *sql.DB) *ProfileService {
	return &ProfileService{db: db}
}

func (s *ProfileService) getSettingsRepo() settings.Repository {
	return settings.NewSQLiteRepository(s.db)
}

// Register validates and stores the profile. All three fields must be
// non-empty and the email must look syntactically valid. At most one profile
// exists at a time; registering over an existing one is rejected.
func (s *ProfileService) Register(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return fmt.Errorf("%w: all fields are required", common.ErrorValidation)
	}
	if !common.IsValidEmail(email) {
		return common.ErrorInvalidEmail
	}

	data, err := json.Marshal(models.UserProfile{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	// The existence check and the insert must be atomic so two racing
	// registrations cannot both succeed.
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := settings.NewSQLiteRepository(tx)

		existing, err := repo.Get(ctx, settings.KeyRegisteredUser)
		if err != nil {
			return err
		}
		if existing != nil {
			return common.ErrorAlreadyRegistered
		}
		return repo.Set(ctx, settings.KeyRegisteredUser, data)
	})
}

// Current returns the registered profile, or nil when no profile exists.
func (s *ProfileService) Current(ctx context.Context) (*models.UserProfile, error) {
	data, err := s.getSettingsRepo().Get(ctx, settings.KeyRegisteredUser)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var profile models.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode stored profile: %w", err)
	}
	return &profile, nil
}

// Logout clears the stored profile wholesale, returning the app to the
// unregistered state.
func (s *ProfileService) Logout(ctx context.Context) error {
	return s.getSettingsRepo().Delete(ctx, settings.KeyRegisteredUser)
}
