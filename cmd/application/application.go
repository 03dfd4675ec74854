// Package application provides the application interface for newsd commands.
//
// The Application interface defines the contract between the application
// layer and command implementations, enabling dependency injection and
// testability: commands accept this interface rather than the concrete App
// type, so tests can pass a Mock instead.
package application

import (
	"github.com/rs/zerolog"

	"github.com/newsbench/newsd/pkg/news"
)

// Application provides the dependencies that commands need.
//
// Thread safety: all methods must be safe for concurrent access.
type Application interface {
	// Store returns the seeded article store. The store is created lazily and
	// shared for the lifetime of the process.
	Store() *news.Store

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// Version returns the build version string.
	Version() string
}
