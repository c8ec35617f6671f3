package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/driveline/internal/catalog"
	"github.com/alexanderramin/driveline/internal/cli"
	"github.com/alexanderramin/driveline/internal/provider"
	"github.com/alexanderramin/driveline/internal/recommend"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.driveline/driveline.db
	dbPath := os.Getenv("DRIVELINE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".driveline", "driveline.db")
	}

	database, err := catalog.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Build the provider chain from the environment. Adapters for
	// providers without keys are skipped up front; a partial chain still
	// ends at the deterministic baseline.
	cfg := provider.LoadConfig()
	var observer provider.Observer = provider.NoopObserver{}
	if cfg.LogCalls {
		observer = provider.NewLogObserver(os.Stderr)
	}

	var rankers []provider.Ranker
	if cfg.GeminiAPIKey != "" {
		rankers = append(rankers, provider.NewGeminiRanker(cfg, observer))
	}
	if cfg.OpenRouterAPIKey != "" {
		rankers = append(rankers, provider.NewOpenRouterRanker(cfg, observer))
	}

	app := &cli.App{
		Vehicles:     catalog.NewSQLiteVehicleRepo(database),
		Leads:        catalog.NewSQLiteLeadRepo(database),
		Orchestrator: recommend.New(rankers, observer),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
