package app_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gfx/app"
)

func TestDefaultConfig(t *testing.T) {
	cfg := app.DefaultConfig()
	assert.Equal(t, 1366, cfg.Width)
	assert.Equal(t, 768, cfg.Height)
	assert.Equal(t, 60, cfg.TargetFPS)
	assert.Equal(t, 2, cfg.FramesInFlight)
	assert.True(t, cfg.VSync)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	cfg, err := app.LoadConfig([]byte(`
title = "overlay"
target_fps = 120
clear_color = [1.0, 0.0, 0.0, 1.0]
`))
	require.NoError(t, err)
	assert.Equal(t, "overlay", cfg.Title)
	assert.Equal(t, 120, cfg.TargetFPS)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, cfg.ClearColor)
	assert.Equal(t, 1366, cfg.Width, "unset keys keep defaults")
}

func TestOptionsApplyAfterTOML(t *testing.T) {
	cfg, err := app.LoadConfig([]byte(`width = 100`),
		app.WithSize(320, 240),
		app.WithTitle("opts"),
		app.WithVertexCapacity(64),
		app.WithClearColor(0, 0, 1, 1),
		app.WithLogLevel("debug"),
	)
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 240, cfg.Height)
	assert.Equal(t, "opts", cfg.Title)
	assert.Equal(t, 64, cfg.VertexCapacity)
	assert.Equal(t, [4]float32{0, 0, 1, 1}, cfg.ClearColor)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero width", `width = 0`},
		{"negative fps", `target_fps = -1`},
		{"no frames in flight", `frames_in_flight = 0`},
		{"no vertices", `vertex_capacity = 0`},
		{"bad log level", `log_level = "loud"`},
		{"bad toml", `width = `},
		{"wrong type", `width = "wide"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := app.LoadConfig([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestDefaultConfigPanicsOnInvalidOption(t *testing.T) {
	assert.Panics(t, func() { app.DefaultConfig(app.WithSize(0, 0)) })
}
