// Package app provides the application context and dependency management for
// the newsd CLI. It centralizes configuration, logging, and the seeded store,
// following the dependency injection pattern.
package app

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/newsbench/newsd/internal/seed"
	"github.com/newsbench/newsd/pkg/news"
)

// App represents the newsd application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Store instance (lazy-initialized, singleton)
	mu    sync.RWMutex
	store *news.Store
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	return app, nil
}

// Version returns the version string.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Store returns the seeded article store, creating it lazily on first use.
// This is thread-safe and ensures only one instance is created.
func (a *App) Store() *news.Store {
	a.mu.RLock()
	if a.store != nil {
		s := a.store
		a.mu.RUnlock()
		return s
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.store != nil {
		return a.store
	}

	store := news.NewStore()
	seed.Populate(store, time.Now())
	a.store = store

	a.logger.Info().
		Int("articles", store.Count("")).
		Int("categories", len(store.Categories())).
		Msg("Seeded in-memory store")

	return a.store
}
