// Package settings provides the persisted key-value store backing the
// app's remembered UI state: location, selected/preferred country and crop,
// available crops, and the registered user profile.
package settings

import "context"

// Well-known keys stored by the application.
const (
	KeyLocation         = "location"
	KeySelectedCountry  = "selectedCountry"
	KeyPreferredCountry = "preferredCountry"
	KeySelectedCrop     = "selectedCrop"
	KeyPreferredCrop    = "preferredCrop"
	KeyAvailableCrops   = "availableCrops"
	KeyRegisteredUser   = "registeredUser"
)

type Repository interface {
	// Get returns the value stored under key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns every stored key with its value.
	List(ctx context.Context) (map[string][]byte, error)

	// Clear removes every stored key.
	Clear(ctx context.Context) error
}
