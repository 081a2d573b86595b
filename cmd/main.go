package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	goenv "github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"pugchamp/command"
	"pugchamp/moderation"
	"pugchamp/repositories"
	"pugchamp/runtime"
	"pugchamp/transport"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and centralizes error reporting, so
// deferred cleanup (the database close in particular) always executes
// before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := goenv.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Transport (console session for local runs) & restore
	console := transport.NewConsole(log, config.GuildID, config.AnnouncementChannelID, os.Stdin, os.Stdout)
	console.GrantRole(transport.ConsoleUserID, config.ModRoleID)
	notifier := transport.NewNotifier(console, config.GuildID, config.NoDMRoleID)

	snapshots := repositories.NewSnapshotRepository(db, log)
	sessions, zones, err := snapshots.Restore(console, notifier)
	if err != nil {
		// The engine must not run against unreconciled state.
		log.Error("Could not restore state from backup", "error", err)
		return err
	}
	log.Info("State restored", "pugs", sessions.Len(), "zones", zones.Len())

	// 4. Command environment
	env := &command.Env{
		Sessions:          sessions,
		Zones:             zones,
		Chat:              console,
		Notifier:          notifier,
		Log:               log,
		Prefix:            config.Prefix,
		ModRoleID:         config.ModRoleID,
		NoDMRoleID:        config.NoDMRoleID,
		AnnounceChannelID: config.AnnouncementChannelID,
	}
	if words := config.BannedWordList(); len(words) > 0 {
		mod, err := moderation.NewModerator(words, '*')
		if err != nil {
			return fmt.Errorf("building moderator: %w", err)
		}
		env.Moderator = &mod
	}

	dispatcher := command.NewDispatcher(env, command.NewBuiltinRegistry(config.Prefix))
	engine := runtime.NewEngine(log, env, dispatcher, snapshots, console, config.Welcome())

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	console.Start(ctx)
	log.Info("PUGchamp is listening", "prefix", config.Prefix)
	return engine.Run(ctx)
}
