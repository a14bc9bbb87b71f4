package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"runmaster/internal/config"
	"runmaster/internal/service"
	"runmaster/internal/store"
	"runmaster/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:   "runmaster",
		Short: "Track runs, races and personal bests from the terminal",
		Long: `RunMaster is a terminal running tracker. Log workouts with lap times,
record races, follow weekly distance goals and watch personal bests and
race predictions evolve.

Run without arguments to open the interactive interface.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(dataDir)
		},
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory for the database and log file (default ~/.runmaster)")

	importCmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import workouts from a CSV file",
		Long: `Import workouts from a CSV file with columns:
date,category,name,distance,duration[,notes]

The distance column accepts a standard token (5km, half-marathon, 10000m)
or a number: meters for track workouts, kilometers otherwise. Rows that
fail to parse are reported and skipped; the rest import normally.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(dataDir, args[0])
		},
	}
	root.AddCommand(importCmd)

	return root
}

// setup loads config, opens the store and builds the logger. The caller
// owns both returned closers.
func setup(dataDir string) (*config.Config, *store.Store, *zap.Logger, error) {
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		if err := config.CreateDefault(); err != nil {
			return nil, nil, nil, fmt.Errorf("creating default config: %w", err)
		}
		cfg, err = config.Load()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("loading config: %w", err)
		}
	} else if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		return nil, nil, nil, fmt.Errorf("%w\n\nPlease edit the config file at:\n  %s/config.json", err, configDir)
	}

	if dataDir == "" {
		dataDir, err = config.GetConfigDir()
		if err != nil {
			return nil, nil, nil, err
		}
	}

	db, err := store.Open(filepath.Join(dataDir, "data.db"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening database: %w", err)
	}

	logger, err := newLogger(filepath.Join(dataDir, "runmaster.log"))
	if err != nil {
		db.Close()
		return nil, nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	return cfg, db, logger, nil
}

// newLogger writes structured logs to a file; stdout belongs to the TUI.
func newLogger(path string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{path}
	logCfg.ErrorOutputPaths = []string{path}
	return logCfg.Build()
}

func runTUI(dataDir string) error {
	cfg, db, logger, err := setup(dataDir)
	if err != nil {
		return err
	}
	defer db.Close()
	defer logger.Sync()

	querySvc := service.NewQueryService(db)
	entrySvc := service.NewEntryService(db)

	app := tui.NewApp(querySvc, entrySvc, cfg.Display)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

func runImport(dataDir, path string) error {
	cfg, db, logger, err := setup(dataDir)
	if err != nil {
		return err
	}
	defer db.Close()
	defer logger.Sync()

	importer := service.NewImporter(db, cfg.Import, logger)
	report, err := importer.ImportFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d workouts (batch %s)\n", report.Imported, report.BatchID)
	if report.Skipped > 0 {
		fmt.Printf("Skipped %d rows:\n", report.Skipped)
		for _, re := range report.RowErrors {
			fmt.Printf("  %s\n", re)
		}
	}
	return nil
}
