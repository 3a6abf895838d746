// Package config loads runtime configuration for the plantcal CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string             path to the sqlite database
//	-i int                due-check sweep interval (seconds)
//	-g string             "lat,lon" coordinates for startup geolocation
//	-e string             fallback destination email address
//	-allow-delete=bool    allow deleting reminders
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "60s" or integer nanoseconds:
//
//	{
//	  "database_path": "plantcal.db",
//	  "sweep_interval": "60s",
//	  "allow_delete": true,
//	  "coordinates": "6.52,3.37",
//	  "email_service_id": "service_9mf8vts",
//	  "email_template_id": "template_5nx7t24"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
