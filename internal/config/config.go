// Package config loads lumina's TOML configuration and category catalog.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Views accepted by GeneralConfig.DefaultView.
const (
	ViewRealized  = "realized"
	ViewProjected = "projected"
)

// Config holds all lumina configuration.
type Config struct {
	General    GeneralConfig     `toml:"general"`
	Projection ProjectionConfig  `toml:"projection"`
	Appearance AppearanceConfig  `toml:"appearance"`
	Categories CategoryOverrides `toml:"categories"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DBPath      string `toml:"db_path,omitempty"`
	DefaultView string `toml:"default_view"`
	Currency    string `toml:"currency"`
}

// ProjectionConfig controls the investment projection.
type ProjectionConfig struct {
	HorizonMonths     int     `toml:"horizon_months"`
	StepMonths        int     `toml:"step_months"`
	MilestoneYears    []int   `toml:"milestone_years"`
	DefaultAnnualRate float64 `toml:"default_annual_rate"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// CategoryOverrides allows renaming built-in categories or adding new ones.
type CategoryOverrides struct {
	Overrides map[string]CategoryOverride `toml:"overrides,omitempty"`
}

// CategoryOverride holds per-category display overrides. Empty fields keep
// the built-in value.
type CategoryOverride struct {
	Name  string `toml:"name,omitempty"`
	Icon  string `toml:"icon,omitempty"`
	Color string `toml:"color,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultView: ViewRealized,
			Currency:    "R$",
		},
		Projection: ProjectionConfig{
			HorizonMonths:     60,
			StepMonths:        3,
			MilestoneYears:    []int{1, 5, 10},
			DefaultAnnualRate: 10,
		},
		Appearance: AppearanceConfig{
			Theme: "lumina-dark",
		},
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	switch c.General.DefaultView {
	case ViewRealized, ViewProjected:
	default:
		errs = append(errs, fmt.Errorf("general.default_view: %q is not %q or %q",
			c.General.DefaultView, ViewRealized, ViewProjected))
	}
	if c.Projection.HorizonMonths <= 0 {
		errs = append(errs, fmt.Errorf("projection.horizon_months: must be positive, got %d", c.Projection.HorizonMonths))
	}
	if c.Projection.StepMonths <= 0 {
		errs = append(errs, fmt.Errorf("projection.step_months: must be positive, got %d", c.Projection.StepMonths))
	}
	for _, y := range c.Projection.MilestoneYears {
		if y <= 0 {
			errs = append(errs, fmt.Errorf("projection.milestone_years: must be positive, got %d", y))
		}
	}
	if c.Projection.DefaultAnnualRate <= -100 {
		errs = append(errs, fmt.Errorf("projection.default_annual_rate: must exceed -100, got %g", c.Projection.DefaultAnnualRate))
	}
	return errors.Join(errs...)
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "lumina")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "lumina")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "lumina")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "lumina")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFile(ConfigPath())
}

// LoadFile reads the config at path, returning defaults if it doesn't exist.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own config file
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveFile(ConfigPath(), cfg)
}

// SaveFile writes cfg to path with owner-only permissions.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// LoadEnv loads a .env file from the config dir into the environment.
// Variables already set win. A missing file is not an error.
func LoadEnv() error {
	path := filepath.Join(ConfigDir(), ".env")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// GetDBPath returns the database path from env var, config or the default,
// in that order.
func GetDBPath(cfg Config) string {
	if p := os.Getenv("LUMINA_DB_PATH"); p != "" {
		return p
	}
	if cfg.General.DBPath != "" {
		return cfg.General.DBPath
	}
	return filepath.Join(DataDir(), "lumina.db")
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
