package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexanderramin/agenda/internal/cli"
	"github.com/alexanderramin/agenda/internal/config"
	"github.com/alexanderramin/agenda/internal/db"
	"github.com/alexanderramin/agenda/internal/domain"
	"github.com/alexanderramin/agenda/internal/repository"
	"github.com/alexanderramin/agenda/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine config path: env var or default ~/.agenda/config.yaml
	cfgPath := os.Getenv("AGENDA_CONFIG")
	if cfgPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfgPath = filepath.Join(home, ".agenda", "config.yaml")
		}
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Events live only as long as the process.
	database, err := db.OpenInMemory()
	if err != nil {
		return err
	}
	defer database.Close()

	// The TUI owns the terminal, so use-case logs only go to a file.
	var logOut io.Writer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	observer := service.NewLogUseCaseObserver(logOut, slog.LevelDebug)

	events, err := service.NewEventService(
		repository.NewSQLiteEventRepo(database),
		db.NewSQLiteUnitOfWork(database),
		domain.Palette(cfg.Palette),
		observer,
	)
	if err != nil {
		return fmt.Errorf("wiring event service: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	app := &cli.App{
		Events:   events,
		Config:   cfg,
		Location: loc,
	}

	// Detect interactive terminal for the TUI-by-default entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
