package server

import "time"

// Config holds server configuration.
type Config struct {
	// Server settings
	Host string
	Port int

	// Version reported by /health, /api/status, and the X-API-Version header.
	Version string

	// CORS settings
	CORSEnabled bool
	CORSOrigins []string

	// Response cache TTL (0 uses the default).
	CacheTTL time.Duration

	// SimulateLatency enables the per-endpoint artificial network delay.
	SimulateLatency bool

	// HTTP timeouts
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:            "localhost",
		Port:            8080,
		Version:         "1.0.0",
		CORSEnabled:     true,
		CORSOrigins:     []string{},
		CacheTTL:        60 * time.Second,
		SimulateLatency: true,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     120 * time.Second,
	}
}
