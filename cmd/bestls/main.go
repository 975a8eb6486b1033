package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/desertwitch/bestls/internal/configuration"
	"github.com/desertwitch/bestls/internal/filesystem"
	"github.com/desertwitch/bestls/internal/listing"
	"github.com/desertwitch/bestls/internal/schema"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  = "dev"
)

func setupLogging(level slog.Leveler) {
	noColor := !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd())

	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    noColor,
		}),
	))
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logLevel := new(slog.LevelVar)
	logLevel.Set(slog.LevelWarn)

	setupLogging(logLevel)
	setupSignalHandlers(cancel)

	osProvider := &schema.OS{}
	unixProvider := &schema.Unix{}
	userProvider := &schema.Users{}
	configProvider := &configuration.GodotenvProvider{}

	fsHandler := filesystem.NewHandler(osProvider, unixProvider, userProvider)
	listingHandler := listing.NewHandler(fsHandler)
	configHandler := configuration.NewHandler(configProvider, osProvider)

	app := NewApp(osProvider, configHandler, listingHandler, logLevel)

	rootCmd := newRootCommand(app)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ExitCode = exitCodeFor(err)
	}
}
