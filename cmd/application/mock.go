package application

import (
	"github.com/rs/zerolog"

	"github.com/newsbench/newsd/pkg/logging"
	"github.com/newsbench/newsd/pkg/news"
)

// Mock is a test double for Application. Unset functions fall back to an
// empty store, a nop logger, and a "test" version.
type Mock struct {
	StoreFunc   func() *news.Store
	LoggerFunc  func() *zerolog.Logger
	VersionFunc func() string
}

// Store implements Application.
func (m *Mock) Store() *news.Store {
	if m.StoreFunc != nil {
		return m.StoreFunc()
	}
	return news.NewStore()
}

// Logger implements Application.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	return logging.NewNopLogger()
}

// Version implements Application.
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "test"
}
