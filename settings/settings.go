// Package settings loads the user configuration from a TOML file in
// the platform config directory. A default file is written on first
// run so there is always something to edit.
package settings

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

//go:embed settings.toml
var defaultSettings string

// Settings is the full on-disk configuration.
type Settings struct {
	Window   Window   `toml:"window"`
	Graphics Graphics `toml:"graphics"`
	Debug    Debug    `toml:"debug"`
}

type Window struct {
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
	Title  string `toml:"title"`

	// Transparent requests a framebuffer that is composited against
	// whatever is behind the window.
	Transparent bool `toml:"transparent"`
}

type Graphics struct {
	VSync bool `toml:"vsync"`

	// GPUPreference is "high-performance" or "low-power".
	GPUPreference string `toml:"gpu_preference"`

	// ForceFallbackAdapter selects a software adapter even when a
	// hardware one is available.
	ForceFallbackAdapter bool `toml:"force_fallback_adapter"`
}

type Debug struct {
	// Profile writes a CPU profile for the lifetime of the window.
	Profile bool `toml:"profile"`
}

const (
	GPUPreferenceHighPerformance = "high-performance"
	GPUPreferenceLowPower        = "low-power"
)

// Default returns the built-in settings.
func Default() Settings {
	var s Settings
	if _, err := toml.Decode(defaultSettings, &s); err != nil {
		panic("default settings are invalid, this is a bug: " + err.Error())
	}

	return s
}

// Load reads the settings file, falling back to the defaults when the
// file is missing or broken. A missing file is created with the
// defaults.
func Load(log *slog.Logger) Settings {
	s, err := tryLoad()
	if err != nil {
		log.Error("Failed to load settings", slog.Any("error", err))
		return Default()
	}

	return s.validated(log)
}

// Path returns the location of the settings file, creating parent
// directories as needed.
func Path() (string, error) {
	return xdg.ConfigFile(filepath.Join("trigon", "settings.toml"))
}

func tryLoad() (Settings, error) {
	path, err := Path()
	if err != nil {
		return Settings{}, fmt.Errorf("locate config file: %w", err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(path, []byte(defaultSettings), 0o644); err != nil {
			return Settings{}, fmt.Errorf("write default config: %w", err)
		}

		return Default(), nil
	}

	if err != nil {
		return Settings{}, fmt.Errorf("read config file: %w", err)
	}

	return Parse(string(data))
}

// Parse decodes TOML over the defaults, so keys missing from the file
// keep their default value.
func Parse(data string) (Settings, error) {
	s := Default()
	if _, err := toml.Decode(data, &s); err != nil {
		return Settings{}, fmt.Errorf("config is invalid: %w", err)
	}

	return s, nil
}

func (s Settings) validated(log *slog.Logger) Settings {
	switch s.Graphics.GPUPreference {
	case GPUPreferenceHighPerformance, GPUPreferenceLowPower:
	default:
		log.Error("Unknown gpu_preference, using high-performance",
			slog.String("value", s.Graphics.GPUPreference))
		s.Graphics.GPUPreference = GPUPreferenceHighPerformance
	}

	if s.Window.Width == 0 || s.Window.Height == 0 {
		def := Default()
		log.Error("Window resolution must not be zero, using default",
			slog.Int("width", int(def.Window.Width)),
			slog.Int("height", int(def.Window.Height)))
		s.Window.Width = def.Window.Width
		s.Window.Height = def.Window.Height
	}

	return s
}
