package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/albertocester96/programma-manutenzioni/internal/cli"
	"github.com/albertocester96/programma-manutenzioni/internal/db"
	"github.com/albertocester96/programma-manutenzioni/internal/repository"
	"github.com/albertocester96/programma-manutenzioni/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.manutenzioni/manutenzioni.db
	dbPath := os.Getenv("MANUTENZIONI_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".manutenzioni", "manutenzioni.db")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// Open database
	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Wire repositories
	maintRepo := repository.NewSQLiteMaintenanceRepo(database)
	equipRepo := repository.NewSQLiteEquipmentRepo(database)
	catRepo := repository.NewSQLiteCategoryRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Maintenances: service.NewMaintenanceService(maintRepo, equipRepo, uow,
			service.WithObserver(service.NewLogObserver(os.Stderr))),
		Equipment:  service.NewEquipmentService(equipRepo),
		Categories: service.NewCategoryService(catRepo),
		DB:         database,
		Logger:     logger,
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
