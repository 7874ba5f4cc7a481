// Package config loads the application configuration from an INI file.
//
// The file lives at $XDG_CONFIG_HOME/shellbridge/config.ini unless another
// path is given explicitly or through SHELLBRIDGE_CONFIG. A missing file is
// not an error: every key has a default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"gopkg.in/ini.v1"

	"github.com/mpyw/shellbridge/internal/menu"
)

// EnvPath is the environment variable overriding the configuration path.
const EnvPath = "SHELLBRIDGE_CONFIG"

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the full application configuration.
type Config struct {
	Window   Window
	Devtools Devtools
	Log      Log
}

// Window configures the main window.
type Window struct {
	Title  string
	Width  int
	Height int
}

// Devtools configures the developer tools toggle.
type Devtools struct {
	Accelerator   string
	OpenOnStartup bool
}

// Log configures diagnostic logging.
type Log struct {
	Level  string
	Format string
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Window: Window{
			Title:  "shellbridge",
			Width:  800,
			Height: 600,
		},
		Devtools: Devtools{
			Accelerator: menu.DefaultAccelerator,
		},
		Log: Log{
			Level:  zerolog.InfoLevel.String(),
			Format: FormatConsole,
		},
	}
}

// Path returns the configuration file path: explicit if non-empty, then
// SHELLBRIDGE_CONFIG, then the XDG default.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}

	if p := os.Getenv(EnvPath); p != "" {
		return p
	}

	return filepath.Join(xdg.ConfigHome, "shellbridge", "config.ini")
}

// Load reads the configuration at path on top of Default.
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes INI data on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	f, err := ini.Load(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	window := f.Section("window")
	cfg.Window.Title = window.Key("title").MustString(cfg.Window.Title)

	if cfg.Window.Width, err = intKey(window, "width", cfg.Window.Width); err != nil {
		return Config{}, err
	}

	if cfg.Window.Height, err = intKey(window, "height", cfg.Window.Height); err != nil {
		return Config{}, err
	}

	devtools := f.Section("devtools")
	cfg.Devtools.Accelerator = devtools.Key("accelerator").MustString(cfg.Devtools.Accelerator)

	if devtools.HasKey("open_on_startup") {
		if cfg.Devtools.OpenOnStartup, err = devtools.Key("open_on_startup").Bool(); err != nil {
			return Config{}, fmt.Errorf("%w: devtools.open_on_startup: %w", ErrInvalid, err)
		}
	}

	log := f.Section("log")
	cfg.Log.Level = strings.ToLower(log.Key("level").MustString(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(log.Key("format").MustString(cfg.Log.Format))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func intKey(section *ini.Section, name string, def int) (int, error) {
	if !section.HasKey(name) {
		return def, nil
	}

	v, err := section.Key(name).Int()
	if err != nil {
		return 0, fmt.Errorf("%w: %s.%s: %w", ErrInvalid, section.Name(), name, err)
	}

	return v, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.Window.Width <= 0 {
		return fmt.Errorf("%w: window.width must be positive, got %d", ErrInvalid, c.Window.Width)
	}

	if c.Window.Height <= 0 {
		return fmt.Errorf("%w: window.height must be positive, got %d", ErrInvalid, c.Window.Height)
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}

	if !slices.Contains([]string{FormatConsole, FormatJSON}, c.Log.Format) {
		return fmt.Errorf("%w: log.format must be %q or %q, got %q", ErrInvalid, FormatConsole, FormatJSON, c.Log.Format)
	}

	if err := menu.ValidateAccelerator(c.Devtools.Accelerator); err != nil {
		return fmt.Errorf("%w: devtools.accelerator: %w", ErrInvalid, err)
	}

	return nil
}

// Encode renders c as INI text.
func (c Config) Encode() (string, error) {
	f := ini.Empty()

	window := f.Section("window")
	window.Key("title").SetValue(c.Window.Title)
	window.Key("width").SetValue(fmt.Sprint(c.Window.Width))
	window.Key("height").SetValue(fmt.Sprint(c.Window.Height))

	devtools := f.Section("devtools")
	devtools.Key("accelerator").SetValue(c.Devtools.Accelerator)
	devtools.Key("open_on_startup").SetValue(fmt.Sprint(c.Devtools.OpenOnStartup))

	log := f.Section("log")
	log.Key("level").SetValue(c.Log.Level)
	log.Key("format").SetValue(c.Log.Format)

	var b strings.Builder
	if _, err := f.WriteTo(&b); err != nil {
		return "", err
	}

	return b.String(), nil
}
