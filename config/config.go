// Package config loads viewer settings from a TOML file, falling back to
// defaults when the file is absent.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Window  Window  `toml:"window"`
	Camera  Camera  `toml:"camera"`
	Viewer  Viewer  `toml:"viewer"`
	Monitor Monitor `toml:"monitor"`
}

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

type Camera struct {
	FOVDegrees float32 `toml:"fov_degrees"`
	Distance   float32 `toml:"distance"`
}

type Viewer struct {
	// HighlightTint is the hover emissive overlay, "#rrggbb".
	HighlightTint string `toml:"highlight_tint"`
	// Palette holds the hex colors cycled by the color key.
	Palette []string `toml:"palette"`
	// ExportDir receives model.glb on export.
	ExportDir string `toml:"export_dir"`
}

type Monitor struct {
	// Addr enables the live stats server when non-empty, e.g. "127.0.0.1:8473".
	Addr string `toml:"addr"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "glbview",
			VSync:  true,
		},
		Camera: Camera{
			FOVDegrees: 60,
			Distance:   5,
		},
		Viewer: Viewer{
			HighlightTint: "#59450d",
			ExportDir:     ".",
		},
	}
}

// Load reads the TOML file at path on top of the defaults. A missing file is
// not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}
