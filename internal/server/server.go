// Package server provides the HTTP server for the newsd API.
package server

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/newsbench/newsd/internal/server/cache"
	"github.com/newsbench/newsd/pkg/news"
)

// Server holds the HTTP server state and dependencies. The store is injected
// so tests can construct an isolated server around their own dataset.
type Server struct {
	store  *news.Store
	cache  *cache.Cache
	logger *zerolog.Logger
	config Config
}

// New creates a new server instance with the given configuration.
func New(store *news.Store, logger *zerolog.Logger, cfg Config) *Server {
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 60 * time.Second
	}
	if cfg.Version == "" {
		cfg.Version = "1.0.0"
	}

	return &Server{
		store:  store,
		cache:  cache.New(cfg.CacheTTL, cfg.CacheTTL*2),
		logger: logger,
		config: cfg,
	}
}
