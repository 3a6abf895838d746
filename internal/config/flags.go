package config

import (
	"flag"
	"os"
	"time"

	"plantcal/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string             SQLite database path
//	-i int                sweep interval in seconds
//	-g string             "lat,lon" coordinates for startup geolocation
//	-e string             fallback destination email
//	-allow-delete=bool    enable reminder deletion
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-i", "-g", "-e", "-allow-delete"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the sqlite database")
	sweepInterval := fs.Int("i", int(cfg.SweepInterval.Seconds()), "due-check sweep interval (in seconds)")
	fs.StringVar(&cfg.Coordinates, "g", cfg.Coordinates, "lat,lon coordinates for startup geolocation")
	fs.StringVar(&cfg.FallbackEmail, "e", cfg.FallbackEmail, "fallback destination email address")
	fs.BoolVar(&cfg.AllowDelete, "allow-delete", cfg.AllowDelete, "allow deleting reminders")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SweepInterval = time.Duration(*sweepInterval) * time.Second
}
