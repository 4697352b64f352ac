package main

import (
	"context"
	"fmt"

	"github.com/lendsift/lendsift/internal/config"
	"github.com/lendsift/lendsift/internal/service"
	"github.com/lendsift/lendsift/internal/storage"
	"github.com/spf13/viper"
)

// initStorage initializes the run-history storage with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	// Initialize storage
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}
