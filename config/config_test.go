package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glbview.toml")
	doc := `
[window]
width = 1920
height = 1080
title = "review rig"
vsync = false

[camera]
fov_degrees = 45.0
distance = 8.0

[viewer]
highlight_tint = "#204060"
palette = ["#ffffff", "#ff0000"]
export_dir = "/tmp/exports"

[monitor]
addr = "127.0.0.1:8473"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1920, cfg.Window.Width)
	assert.Equal(t, 1080, cfg.Window.Height)
	assert.Equal(t, "review rig", cfg.Window.Title)
	assert.False(t, cfg.Window.VSync)
	assert.Equal(t, float32(45), cfg.Camera.FOVDegrees)
	assert.Equal(t, float32(8), cfg.Camera.Distance)
	assert.Equal(t, "#204060", cfg.Viewer.HighlightTint)
	assert.Equal(t, []string{"#ffffff", "#ff0000"}, cfg.Viewer.Palette)
	assert.Equal(t, "/tmp/exports", cfg.Viewer.ExportDir)
	assert.Equal(t, "127.0.0.1:8473", cfg.Monitor.Addr)
}

func TestLoadPartialFileKeepsRemainingDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\nwidth = 640\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "#59450d", cfg.Viewer.HighlightTint)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window\nwidth ="), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
