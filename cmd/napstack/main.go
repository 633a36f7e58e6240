package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/napstack/napstack/internal/activity"
	"github.com/napstack/napstack/internal/audio"
	"github.com/napstack/napstack/internal/cli"
	"github.com/napstack/napstack/internal/clock"
	"github.com/napstack/napstack/internal/config"
	"github.com/napstack/napstack/internal/db"
	"github.com/napstack/napstack/internal/presence"
	"github.com/napstack/napstack/internal/repository"
	"github.com/napstack/napstack/internal/service"
	"github.com/napstack/napstack/internal/timer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logOut, closeLog, err := openLog(cfg.LogPath)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	sessionRepo := repository.NewSQLiteSessionLogRepo(database)
	prefRepo := repository.NewSQLitePreferenceRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	clk := clock.Real{}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	feed := activity.New(activity.Options{
		Clock:       clk,
		Retained:    cfg.Retained,
		Visible:     cfg.Visible,
		IdleTimeout: cfg.IdleTimeout,
		FreshFor:    cfg.FreshFor,
	})
	defer feed.Close()

	observer := service.NewLogUseCaseObserver(logger)
	stats := service.NewStatsService(sessionRepo, prefRepo, uow, clk, feed.Record, observer)

	var player audio.Player = audio.LogPlayer{Logger: logger}
	if p, err := audio.NewExecPlayer(cfg.AudioPlayer, cfg.SoundDir, logger); err != nil {
		logger.Info("audio disabled", "reason", err.Error())
	} else {
		player = p
	}
	sounds := service.NewSoundService(prefRepo, player, feed.Record, logger, observer)
	defer sounds.Close()

	tm := timer.New(timer.Options{
		Clock:            clk,
		Rand:             rand.New(rand.NewPCG(seed, 1)),
		Emit:             feed.Record,
		OnCredit:         cli.CreditRecorder(stats, logger),
		OnRunStateChange: feed.SetSessionActive,
		TickInterval:     cfg.TickInterval,
		RefreshInterval:  cfg.RefreshInterval,
		Celebration:      cfg.Celebration,
	})
	defer tm.Close()

	counter := presence.New(presence.Options{
		Clock:    clk,
		Rand:     rand.New(rand.NewPCG(seed, 2)),
		Interval: cfg.PresenceInterval,
	})
	defer counter.Close()

	app := &cli.App{
		Timer:       tm,
		Activity:    feed,
		Presence:    counter,
		Stats:       stats,
		Sounds:      sounds,
		Clock:       clk,
		Logger:      logger,
		Celebration: cfg.Celebration,
	}

	// Detect interactive terminal for the dashboard entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// openLog opens the append-only log file. The dashboard owns the terminal,
// so logs only go to stderr when asked for explicitly.
func openLog(path string) (io.Writer, func(), error) {
	if path == "" || path == "stderr" {
		return os.Stderr, func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
