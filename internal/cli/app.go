package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"time"

	"plantcal/internal/config"
	"plantcal/internal/email"
	"plantcal/internal/geocode"
	"plantcal/internal/logging"
	"plantcal/internal/models"
	"plantcal/internal/schedule"
	"plantcal/internal/services"
	"plantcal/internal/storage"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	db     *sql.DB
	log    logging.Logger
	reader *bufio.Reader

	profiles   *services.ProfileService
	selections *services.SelectionService
	reminders  *services.ReminderService
	sweeper    *services.Sweeper
	geocoder   *geocode.Client
	sender     email.Sender

	user      *models.UserProfile
	selection models.Selection
	crops     []string
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	table, err := schedule.Load()
	if err != nil {
		return nil, err
	}

	sender := email.NewClient(c.EmailAPIURL, c.EmailServiceID, c.EmailTemplateID)
	profiles := services.NewProfileService(db)

	return &App{
		config:     c,
		db:         db,
		log:        log,
		reader:     bufio.NewReader(os.Stdin),
		profiles:   profiles,
		selections: services.NewSelectionService(db, table),
		reminders:  services.NewReminderService(db, c.AllowDelete),
		sweeper:    services.NewSweeper(db, sender, profiles, c.FallbackEmail, log),
		geocoder:   geocode.NewClient(c.GeocoderBaseURL),
		sender:     sender,
	}, nil
}

func (a *App) isRegistered() bool {
	return a.user != nil
}

func (a *App) getStatus() string {
	s := ""
	if a.user != nil {
		s = a.user.Username
	}
	if a.selection.Country != "" {
		if s != "" {
			s += " "
		}
		s += a.selection.Country
		if a.selection.Crop != "" {
			s += "/" + a.selection.Crop
		}
	}
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}

// Run restores persisted state, starts the background reminder sweep, and
// blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	profile, err := a.profiles.Current(ctx)
	if err != nil {
		a.log.Error(ctx, "error loading profile", "error", err)
	} else {
		a.user = profile
	}

	a.startupLocate(ctx)

	sel, err := a.selections.Restore(ctx)
	if err != nil {
		a.log.Error(ctx, "error restoring selection", "error", err)
	} else {
		a.selection = sel
		if sel.Country != "" {
			a.crops = a.selections.Table().CropsForCountry(sel.Country)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.sweeper.Run(ctx, a.config.SweepInterval)

	printlnFn("Welcome to the planting calendar (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// startupLocate resolves the configured coordinates to a country when no
// location has been stored yet. Failures are logged and ignored; the lookup
// is best effort.
func (a *App) startupLocate(ctx context.Context) {
	if a.config.Coordinates == "" {
		return
	}

	loc, err := a.selections.Location(ctx)
	if err != nil || loc != "" {
		return
	}

	lat, lon, err := geocode.ParseCoordinates(a.config.Coordinates)
	if err != nil {
		a.log.Warn(ctx, "invalid coordinates in config", "error", err)
		return
	}

	tctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	country, err := a.geocoder.CountryFor(tctx, lat, lon)
	if err != nil {
		a.log.Warn(ctx, "geolocation lookup failed", "error", err)
		return
	}

	if err := a.selections.SetLocation(ctx, country); err != nil {
		a.log.Warn(ctx, "error storing location", "error", err)
	}
}
