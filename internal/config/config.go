package config

import "time"

// Config holds runtime settings for the plantcal CLI.
type Config struct {
	// DatabasePath is the SQLite file holding reminders and settings.
	DatabasePath string

	// SweepInterval is the period of the reminder due-check sweep.
	SweepInterval time.Duration

	// AllowDelete enables the reminder deletion command.
	AllowDelete bool

	// Coordinates is an optional "lat,lon" pair used for the best-effort
	// reverse-geocoding lookup at startup. Empty disables the lookup.
	Coordinates string

	// GeocoderBaseURL is the reverse-geocoding endpoint.
	GeocoderBaseURL string

	// Email widget settings: endpoint plus service/template identifiers.
	EmailAPIURL     string
	EmailServiceID  string
	EmailTemplateID string

	// FallbackEmail is the destination used when no profile is registered.
	FallbackEmail string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "plantcal.db"
	c.SweepInterval = 60 * time.Second
	c.AllowDelete = true
	c.GeocoderBaseURL = "https://geocode.xyz"
	c.EmailAPIURL = "https://api.emailjs.com/api/v1.0/email/send"
	c.EmailServiceID = "service_9mf8vts"
	c.EmailTemplateID = "template_5nx7t24"
	c.FallbackEmail = "farmer@example.com"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
