package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/avelinek/dayflow/internal/ai"
	"github.com/avelinek/dayflow/internal/cli"
	"github.com/avelinek/dayflow/internal/service"
	"github.com/avelinek/dayflow/internal/storage"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.dayflow/dayflow.db
	dbPath := os.Getenv("DAYFLOW_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".dayflow", "dayflow.db")
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	state, found, err := store.Load()
	if err != nil {
		return err
	}
	if !found {
		state = service.SeedSampleState(time.Now())
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger().Level(zerolog.WarnLevel)
	if os.Getenv("DAYFLOW_DEBUG") != "" {
		logger = logger.Level(zerolog.DebugLevel)
	}

	saver := storage.NewWorker(store, logger, storage.DefaultSaveInterval)
	defer saver.Close()

	gateway := service.NewGateway(state, saver)

	// Wire the generator only when enabled; the planner falls back to the
	// built-in suggestion set otherwise.
	var generator ai.Generator
	aiCfg := ai.LoadConfig()
	if aiCfg.Enabled {
		var observer ai.Observer = ai.NoopObserver{}
		if aiCfg.LogCalls {
			observer = ai.NewLogObserver(os.Stderr)
		}
		generator = ai.NewOllamaGenerator(aiCfg, observer)
	}

	app := &cli.App{
		Gateway: gateway,
		Planner: service.NewPlanner(gateway, generator),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
