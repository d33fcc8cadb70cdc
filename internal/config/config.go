// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/overlap/internal/clock"
	"github.com/javiermolinar/overlap/internal/debuglog"
	"github.com/javiermolinar/overlap/internal/interval"
	"github.com/javiermolinar/overlap/internal/schedule"
	"github.com/javiermolinar/overlap/internal/tui/theme"
)

// Config holds the application configuration.
type Config struct {
	Report ReportConfig `toml:"report"`
	UI     UIConfig     `toml:"ui"`
	Debug  DebugConfig  `toml:"debug"`
}

// ReportConfig holds input parsing and report settings.
type ReportConfig struct {
	BusinessDayStart string `toml:"business_day_start"` // e.g., "9:00am" (optional)
	BusinessDayEnd   string `toml:"business_day_end"`   // e.g., "5:00pm" (optional)
	SkipHeader       bool   `toml:"skip_header"`
	MarkerPrefix     string `toml:"marker_prefix"` // e.g., "#BDAY:"
	Summary          bool   `toml:"summary"`
}

// UIConfig holds terminal output settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
	Color bool   `toml:"color"`
}

// DebugConfig holds debug log settings.
type DebugConfig struct {
	Enabled bool   `toml:"enabled"`
	LogPath string `toml:"log_path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			BusinessDayStart: "", // Empty means no business day configured
			BusinessDayEnd:   "",
			SkipHeader:       true,
			MarkerPrefix:     schedule.DefaultMarkerPrefix,
		},
		UI: UIConfig{
			Theme: "mocha",
			Color: true,
		},
		Debug: DebugConfig{
			LogPath: debuglog.DefaultPath,
		},
	}
}

// DefaultConfigPath returns the default config file path.
// OVERLAP_CONFIG takes precedence when set.
func DefaultConfigPath() string {
	if v := os.Getenv("OVERLAP_CONFIG"); v != "" {
		return expandPath(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "overlap", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Debug.LogPath = expandPath(cfg.Debug.LogPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	// Report overrides
	if v := os.Getenv("OVERLAP_BUSINESS_DAY_START"); v != "" {
		cfg.Report.BusinessDayStart = v
	}
	if v := os.Getenv("OVERLAP_BUSINESS_DAY_END"); v != "" {
		cfg.Report.BusinessDayEnd = v
	}
	if err := envBool("OVERLAP_SKIP_HEADER", &cfg.Report.SkipHeader); err != nil {
		return err
	}
	if v := os.Getenv("OVERLAP_MARKER_PREFIX"); v != "" {
		cfg.Report.MarkerPrefix = v
	}
	if err := envBool("OVERLAP_SUMMARY", &cfg.Report.Summary); err != nil {
		return err
	}

	// UI overrides
	if v := os.Getenv("OVERLAP_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if err := envBool("OVERLAP_COLOR", &cfg.UI.Color); err != nil {
		return err
	}

	// Debug overrides
	if err := envBool("OVERLAP_DEBUG", &cfg.Debug.Enabled); err != nil {
		return err
	}
	if v := os.Getenv("OVERLAP_DEBUG_LOG"); v != "" {
		cfg.Debug.LogPath = v
	}
	return nil
}

func envBool(key string, dst *bool) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s must be a boolean, got %q", key, v)
	}
	*dst = b
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	// Business day: both must be set or neither
	hasStart := c.Report.BusinessDayStart != ""
	hasEnd := c.Report.BusinessDayEnd != ""
	if hasStart != hasEnd {
		return errors.New("both business_day_start and business_day_end must be set, or neither")
	}
	if hasStart {
		if _, err := c.Window(); err != nil {
			return err
		}
	}

	if strings.TrimSpace(c.Report.MarkerPrefix) == "" {
		return errors.New("marker_prefix must be set")
	}
	if strings.Contains(c.Report.MarkerPrefix, ",") {
		return fmt.Errorf("marker_prefix must not contain a comma, got %q", c.Report.MarkerPrefix)
	}

	if !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}
	return nil
}

// HasBusinessDay returns true if a business-day window is configured.
func (c *Config) HasBusinessDay() bool {
	return c.Report.BusinessDayStart != "" && c.Report.BusinessDayEnd != ""
}

// Window returns the configured business-day window, or nil if none is configured.
func (c *Config) Window() (*interval.Interval, error) {
	if !c.HasBusinessDay() {
		return nil, nil
	}
	start, err := clock.Parse(c.Report.BusinessDayStart)
	if err != nil {
		return nil, fmt.Errorf("business_day_start: %w", err)
	}
	end, err := clock.Parse(c.Report.BusinessDayEnd)
	if err != nil {
		return nil, fmt.Errorf("business_day_end: %w", err)
	}
	if start >= end {
		return nil, errors.New("business_day_start must be before business_day_end")
	}
	return &interval.Interval{Start: start, End: end}, nil
}

// ScheduleOptions returns the reader options for this configuration.
func (c *Config) ScheduleOptions() (schedule.Options, error) {
	window, err := c.Window()
	if err != nil {
		return schedule.Options{}, err
	}
	return schedule.Options{
		SkipHeader:   c.Report.SkipHeader,
		MarkerPrefix: c.Report.MarkerPrefix,
		Window:       window,
	}, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
