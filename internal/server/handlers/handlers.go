// Package handlers provides HTTP request handlers for the newsd API.
// Handlers parse and validate input, call the store, and hand typed errors to
// the response layer for status mapping.
package handlers

import (
	"context"
	"time"

	"github.com/newsbench/newsd/internal/server/cache"
	"github.com/newsbench/newsd/pkg/news"
)

// Per-endpoint artificial latency, simulating a realistic network for the
// performance-comparison clients this backend serves.
const (
	listDelay       = 50 * time.Millisecond
	getDelay        = 30 * time.Millisecond
	createDelay     = 100 * time.Millisecond
	updateDelay     = 80 * time.Millisecond
	deleteDelay     = 50 * time.Millisecond
	categoriesDelay = 30 * time.Millisecond
)

// Handlers provides access to all HTTP handlers. Request logging goes through
// the context logger injected by the middleware chain.
type Handlers struct {
	store           *news.Store
	cache           *cache.Cache
	version         string
	simulateLatency bool
}

// New creates a new Handlers instance.
func New(store *news.Store, responseCache *cache.Cache, version string, simulateLatency bool) *Handlers {
	return &Handlers{
		store:           store,
		cache:           responseCache,
		version:         version,
		simulateLatency: simulateLatency,
	}
}

// delay sleeps for d without blocking past request cancellation. It is a
// no-op when latency simulation is disabled (tests).
func (h *Handlers) delay(ctx context.Context, d time.Duration) {
	if !h.simulateLatency {
		return
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// invalidate drops all cached GET responses after a mutation.
func (h *Handlers) invalidate() {
	h.cache.Clear()
}
