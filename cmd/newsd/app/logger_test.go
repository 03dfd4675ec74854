package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineLogLevelPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{"default", Config{}, "info"},
		{"verbose", Config{Verbose: true}, "debug"},
		{"quiet", Config{Quiet: true}, "warn"},
		{"quiet wins over verbose", Config{Verbose: true, Quiet: true}, "warn"},
		{"explicit level wins over verbose", Config{Verbose: true, LogLevel: "error"}, "error"},
		{"explicit level wins over quiet", Config{Quiet: true, LogLevel: "trace"}, "trace"},
		{"invalid explicit level falls back", Config{LogLevel: "loud"}, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, determineLogLevel(&tt.config))
		})
	}
}

func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		assert.Equal(t, level, validateLogLevel(level))
	}
	assert.Equal(t, "info", validateLogLevel("verbose"))
	assert.Equal(t, "info", validateLogLevel(""))
	assert.Equal(t, "info", validateLogLevel("WARN"))
}

func TestUpdateFromFlags(t *testing.T) {
	config := &Config{LogLevel: "warn"}

	config.UpdateFromFlags(true, false, true, "debug")
	assert.True(t, config.Verbose)
	assert.False(t, config.Quiet)
	assert.True(t, config.NoColor)
	assert.Equal(t, "debug", config.LogLevel)

	// Empty flag value keeps the previously loaded level.
	config.UpdateFromFlags(false, true, false, "")
	assert.Equal(t, "debug", config.LogLevel)
}
