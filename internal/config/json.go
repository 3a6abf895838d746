package config

import (
	"encoding/json"
	"os"

	"plantcal/internal/flagx"
	"plantcal/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so intervals can be given either as strings like "60s" or
// as integer nanoseconds. Parsed values are copied into the runtime Config.
type JsonConfig struct {
	DatabasePath    string         `json:"database_path"`
	SweepInterval   timex.Duration `json:"sweep_interval"`
	AllowDelete     *bool          `json:"allow_delete"`
	Coordinates     string         `json:"coordinates"`
	GeocoderBaseURL string         `json:"geocoder_base_url"`
	EmailAPIURL     string         `json:"email_api_url"`
	EmailServiceID  string         `json:"email_service_id"`
	EmailTemplateID string         `json:"email_template_id"`
	FallbackEmail   string         `json:"fallback_email"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flag (flagx.JsonConfigFlags);
// when no path is given the function returns without touching cfg. Fields
// absent from the file keep their current (default) values. Read or
// unmarshal errors panic; startup config is the one place where failing
// loudly beats limping on with half-applied settings.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.SweepInterval.Duration != 0 {
		cfg.SweepInterval = jc.SweepInterval.Duration
	}
	if jc.AllowDelete != nil {
		cfg.AllowDelete = *jc.AllowDelete
	}
	if jc.Coordinates != "" {
		cfg.Coordinates = jc.Coordinates
	}
	if jc.GeocoderBaseURL != "" {
		cfg.GeocoderBaseURL = jc.GeocoderBaseURL
	}
	if jc.EmailAPIURL != "" {
		cfg.EmailAPIURL = jc.EmailAPIURL
	}
	if jc.EmailServiceID != "" {
		cfg.EmailServiceID = jc.EmailServiceID
	}
	if jc.EmailTemplateID != "" {
		cfg.EmailTemplateID = jc.EmailTemplateID
	}
	if jc.FallbackEmail != "" {
		cfg.FallbackEmail = jc.FallbackEmail
	}
}
