package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/desertwitch/bestls/internal/configuration"
	"github.com/desertwitch/bestls/internal/schema"
	"github.com/desertwitch/bestls/internal/theme"
)

type osProvider interface {
	UserConfigDir() (string, error)
	LookupEnv(key string) (string, bool)
}

type listingProvider interface {
	Run(ctx context.Context, req *schema.Request, th *theme.Theme) (string, error)
}

type App struct {
	osHandler      osProvider
	configHandler  *configuration.Handler
	listingHandler listingProvider
	logLevel       *slog.LevelVar
}

func NewApp(osHandler osProvider,
	configHandler *configuration.Handler,
	listingHandler listingProvider,
	logLevel *slog.LevelVar,
) *App {
	return &App{
		osHandler:      osHandler,
		configHandler:  configHandler,
		listingHandler: listingHandler,
		logLevel:       logLevel,
	}
}

// SetVerbose switches the logging between warnings and debug output.
func (app *App) SetVerbose(verbose bool) {
	if app.logLevel == nil {
		return
	}

	if verbose {
		app.logLevel.Set(slog.LevelDebug)
	} else {
		app.logLevel.Set(slog.LevelWarn)
	}
}

// ThemePath returns the location of the theme configuration file.
func (app *App) ThemePath() (string, error) {
	path, err := theme.DefaultPath(app.osHandler)
	if err != nil {
		return "", fmt.Errorf("(app-theme) %w", err)
	}

	return path, nil
}

// Theme returns the configured theme, or the defaults.
func (app *App) Theme() *theme.Theme {
	path, err := app.ThemePath()
	if err != nil {
		slog.Debug("Using default theme", "err", err)

		return theme.Default()
	}

	return theme.NewStore(path).Load()
}

// Defaults returns the preset listing options of the defaults file and the
// environment.
func (app *App) Defaults() *configuration.Defaults {
	var path string

	if dir, err := app.osHandler.UserConfigDir(); err == nil && dir != "" {
		path = configuration.DefaultPath(dir)
	}

	defaults, err := app.configHandler.ReadDefaults(path)
	if err != nil {
		slog.Warn("Ignored unreadable defaults file", "err", err, "path", path)

		return &configuration.Defaults{}
	}

	return defaults
}

// List runs one listing request with the configured theme.
func (app *App) List(ctx context.Context, req *schema.Request) (string, error) {
	out, err := app.listingHandler.Run(ctx, req, app.Theme())
	if err != nil {
		return "", fmt.Errorf("(app) %w", err)
	}

	return out, nil
}

// NoColorRequested reports whether the environment disables colors.
func (app *App) NoColorRequested() bool {
	return app.configHandler.NoColorRequested()
}
