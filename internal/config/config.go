// Package config loads and saves tripcost settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all tripcost configuration.
type Config struct {
	General    GeneralConfig         `toml:"general"`
	Transport  TransportConfig       `toml:"transport"`
	Appearance AppearanceConfig      `toml:"appearance"`
	Archive    ArchiveConfig         `toml:"archive"`
	Routes     []RouteConfig         `toml:"routes,omitempty"`
	Cities     map[string]CityConfig `toml:"cities,omitempty"`
}

// GeneralConfig holds planning defaults.
type GeneralConfig struct {
	HopDistance      float64 `toml:"hop_distance"`
	DefaultDays      int     `toml:"default_days"`
	DefaultBudget    float64 `toml:"default_budget"`
	DefaultTransport string  `toml:"default_transport"`
	Currency         string  `toml:"currency"`
	ExportDir        string  `toml:"export_dir,omitempty"`
}

// TransportConfig overrides the built-in price per distance unit.
type TransportConfig struct {
	Car   *float64 `toml:"car,omitempty"`
	Train *float64 `toml:"train,omitempty"`
	Plane *float64 `toml:"plane,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ArchiveConfig controls the exported-plan history database.
type ArchiveConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path,omitempty"`
}

// RouteConfig is an extra route merged into the catalog.
type RouteConfig struct {
	Name   string   `toml:"name"`
	Cities []string `toml:"cities"`
}

// CityConfig adds or replaces the catalog entry for a city.
type CityConfig struct {
	Hotel      string  `toml:"hotel"`
	HotelPrice float64 `toml:"hotel_price"`
	Food       string  `toml:"food"`
	FoodPrice  float64 `toml:"food_price"`
	Sight      string  `toml:"sight"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			HopDistance:      300,
			DefaultDays:      4,
			DefaultBudget:    1500,
			DefaultTransport: "car",
			Currency:         "лв",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Archive: ArchiveConfig{
			Enabled: true,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tripcost")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tripcost")
}

// ConfigPath returns the full path to the config file.
// TRIPCOST_CONFIG takes precedence over the XDG location.
func ConfigPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return filepath.Join(ConfigDir(), "config.toml")
}

// CacheDir returns the XDG-compliant cache directory.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "tripcost")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "tripcost")
}

// ArchivePath returns the exported-plan database path.
func ArchivePath(cfg Config) string {
	if cfg.Archive.Path != "" {
		return cfg.Archive.Path
	}
	return filepath.Join(CacheDir(), "plans.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// Validate rejects settings the planner cannot work with.
func Validate(cfg Config) error {
	if cfg.General.HopDistance <= 0 {
		return fmt.Errorf("general.hop_distance must be positive, got %g", cfg.General.HopDistance)
	}
	for name, p := range map[string]*float64{
		"car":   cfg.Transport.Car,
		"train": cfg.Transport.Train,
		"plane": cfg.Transport.Plane,
	} {
		if p != nil && *p <= 0 {
			return fmt.Errorf("transport.%s must be positive, got %g", name, *p)
		}
	}
	for i, r := range cfg.Routes {
		if r.Name == "" {
			return fmt.Errorf("routes[%d]: missing name", i)
		}
	}
	for name, c := range cfg.Cities {
		if c.HotelPrice < 0 || c.FoodPrice < 0 {
			return fmt.Errorf("cities.%s: prices must not be negative", name)
		}
	}
	return nil
}
