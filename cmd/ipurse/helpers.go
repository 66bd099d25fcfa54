package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/LightDevCoder/iPurseLight/internal/config"
	"github.com/LightDevCoder/iPurseLight/internal/llm"
	"github.com/LightDevCoder/iPurseLight/internal/service"
	"github.com/LightDevCoder/iPurseLight/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/ipurse/ipurse.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

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

// createLLMClient builds an AI client from configuration. Shared by the
// commands that parse free text or request advice.
func createLLMClient() (llm.Client, llm.Config, error) {
	cfg, err := config.LoadLLMConfig()
	if err != nil {
		return nil, llm.Config{}, err
	}

	client, err := llm.NewClient(cfg)
	if err != nil {
		return nil, llm.Config{}, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return client, cfg, nil
}

// resolveLocation reads the timezone flag and returns the evaluation zone.
func resolveLocation() (*time.Location, error) {
	return config.ResolveTimezone(viper.GetString("timezone"))
}

// retryOptions builds the retry policy used around LLM calls.
func retryOptions(cfg llm.Config) service.RetryOptions {
	return service.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
}
