package demokit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type feederFunc func(target any) error

func (f feederFunc) Feed(target any) error { return f(target) }

var errFeed = errors.New("feed error")

func TestLoadConfig_Defaults(t *testing.T) {
	t.Parallel()
	var cfg Config
	require.NoError(t, LoadConfig(&cfg))

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Zero(t, cfg.DelayScale)
	assert.Empty(t, cfg.Lessons)
}

func TestLoadConfig_FeedersInOrder(t *testing.T) {
	t.Parallel()
	first := feederFunc(func(target any) error {
		cfg := target.(*Config)
		cfg.LogLevel = "info"
		cfg.Lessons = []string{"builder"}
		return nil
	})
	second := feederFunc(func(target any) error {
		target.(*Config).LogLevel = "debug"
		return nil
	})

	var cfg Config
	require.NoError(t, LoadConfig(&cfg, first, second))
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"builder"}, cfg.Lessons)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, LoadConfig(nil), ErrConfigNil)

	var cfg Config
	err := LoadConfig(&cfg, feederFunc(func(any) error { return errFeed }))
	assert.ErrorIs(t, err, ErrConfigFeederError)
	assert.ErrorIs(t, err, errFeed)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"negative scale", Config{DelayScale: -1}},
		{"bad level", Config{LogLevel: "loud"}},
		{"bad format", Config{LogFormat: "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := LoadConfig(&cfg)
			assert.ErrorIs(t, err, ErrConfigValidationFailed)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}
