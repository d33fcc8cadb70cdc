package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/javiermolinar/overlap/internal/interval"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.HasBusinessDay() {
		t.Error("expected no business day by default")
	}
	if !cfg.Report.SkipHeader {
		t.Error("expected skip_header true by default")
	}
	if cfg.Report.MarkerPrefix != "#BDAY:" {
		t.Errorf("expected marker_prefix #BDAY:, got %s", cfg.Report.MarkerPrefix)
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha, got %s", cfg.UI.Theme)
	}
	if !cfg.UI.Color {
		t.Error("expected color enabled by default")
	}
	if cfg.Debug.Enabled {
		t.Error("expected debug disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.Report.MarkerPrefix != "#BDAY:" {
		t.Errorf("expected default marker_prefix, got %s", cfg.Report.MarkerPrefix)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[report]
business_day_start = "8:00am"
business_day_end = "6:00pm"
skip_header = false
marker_prefix = "#HOURS:"
summary = true

[ui]
theme = "latte"
color = false

[debug]
enabled = true
log_path = "/tmp/overlap.log"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Report.BusinessDayStart != "8:00am" {
		t.Errorf("expected business_day_start 8:00am, got %s", cfg.Report.BusinessDayStart)
	}
	if cfg.Report.BusinessDayEnd != "6:00pm" {
		t.Errorf("expected business_day_end 6:00pm, got %s", cfg.Report.BusinessDayEnd)
	}
	if cfg.Report.SkipHeader {
		t.Error("expected skip_header false")
	}
	if cfg.Report.MarkerPrefix != "#HOURS:" {
		t.Errorf("expected marker_prefix #HOURS:, got %s", cfg.Report.MarkerPrefix)
	}
	if !cfg.Report.Summary {
		t.Error("expected summary true")
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
	if cfg.UI.Color {
		t.Error("expected color false")
	}
	if !cfg.Debug.Enabled {
		t.Error("expected debug enabled")
	}
	if cfg.Debug.LogPath != "/tmp/overlap.log" {
		t.Errorf("expected log_path /tmp/overlap.log, got %s", cfg.Debug.LogPath)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[report\nsummary = "), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	content := `
[report]
business_day_start = "8:00am"
business_day_end = "6:00pm"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("OVERLAP_BUSINESS_DAY_START", "9:00am")
	t.Setenv("OVERLAP_SKIP_HEADER", "false")
	t.Setenv("OVERLAP_SUMMARY", "true")
	t.Setenv("OVERLAP_UI_THEME", "frappe")
	t.Setenv("OVERLAP_DEBUG", "1")
	t.Setenv("OVERLAP_DEBUG_LOG", "/tmp/env.log")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Env should override file
	if cfg.Report.BusinessDayStart != "9:00am" {
		t.Errorf("expected business_day_start 9:00am from env, got %s", cfg.Report.BusinessDayStart)
	}
	// File value should remain for non-overridden
	if cfg.Report.BusinessDayEnd != "6:00pm" {
		t.Errorf("expected business_day_end 6:00pm from file, got %s", cfg.Report.BusinessDayEnd)
	}
	if cfg.Report.SkipHeader {
		t.Error("expected skip_header false from env")
	}
	if !cfg.Report.Summary {
		t.Error("expected summary true from env")
	}
	if cfg.UI.Theme != "frappe" {
		t.Errorf("expected theme frappe from env, got %s", cfg.UI.Theme)
	}
	if !cfg.Debug.Enabled {
		t.Error("expected debug enabled from env")
	}
	if cfg.Debug.LogPath != "/tmp/env.log" {
		t.Errorf("expected log_path from env, got %s", cfg.Debug.LogPath)
	}
}

func TestLoadFrom_InvalidEnvBool(t *testing.T) {
	t.Setenv("OVERLAP_SUMMARY", "sometimes")

	if _, err := LoadFrom("/nonexistent/path/config.toml"); err == nil {
		t.Error("expected error for non-boolean OVERLAP_SUMMARY")
	}
}

func TestDefaultConfigPath_EnvOverride(t *testing.T) {
	t.Setenv("OVERLAP_CONFIG", "/etc/overlap.toml")
	if got := DefaultConfigPath(); got != "/etc/overlap.toml" {
		t.Errorf("DefaultConfigPath() = %q, want /etc/overlap.toml", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:   "business day valid",
			modify: func(c *Config) { c.Report.BusinessDayStart, c.Report.BusinessDayEnd = "9:00am", "5:00pm" },
		},
		{
			name:    "business day only start set",
			modify:  func(c *Config) { c.Report.BusinessDayStart = "9:00am" },
			wantErr: true,
		},
		{
			name:    "business day only end set",
			modify:  func(c *Config) { c.Report.BusinessDayEnd = "5:00pm" },
			wantErr: true,
		},
		{
			name:    "business day start after end",
			modify:  func(c *Config) { c.Report.BusinessDayStart, c.Report.BusinessDayEnd = "5:00pm", "9:00am" },
			wantErr: true,
		},
		{
			name:    "business day invalid format",
			modify:  func(c *Config) { c.Report.BusinessDayStart, c.Report.BusinessDayEnd = "09:00", "17:00" },
			wantErr: true,
		},
		{
			name:    "empty marker prefix",
			modify:  func(c *Config) { c.Report.MarkerPrefix = " " },
			wantErr: true,
		},
		{
			name:    "marker prefix with comma",
			modify:  func(c *Config) { c.Report.MarkerPrefix = "#A,B" },
			wantErr: true,
		},
		{
			name:    "unknown theme",
			modify:  func(c *Config) { c.UI.Theme = "solarized" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestWindow(t *testing.T) {
	cfg := Default()
	w, err := cfg.Window()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != nil {
		t.Errorf("expected nil window, got %v", *w)
	}

	cfg.Report.BusinessDayStart = "9:00am"
	cfg.Report.BusinessDayEnd = "5:00pm"
	w, err = cfg.Window()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := interval.Interval{Start: 540, End: 1020}
	if w == nil || *w != want {
		t.Errorf("Window() = %v, want %v", w, want)
	}
}

func TestScheduleOptions(t *testing.T) {
	cfg := Default()
	cfg.Report.SkipHeader = false
	cfg.Report.MarkerPrefix = "#H:"
	cfg.Report.BusinessDayStart = "6:00pm"
	cfg.Report.BusinessDayEnd = "11:00pm"

	opts, err := cfg.ScheduleOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.SkipHeader {
		t.Error("expected SkipHeader false")
	}
	if opts.MarkerPrefix != "#H:" {
		t.Errorf("MarkerPrefix = %q", opts.MarkerPrefix)
	}
	want := interval.Interval{Start: 1080, End: 1380}
	if opts.Window == nil || *opts.Window != want {
		t.Errorf("Window = %v, want %v", opts.Window, want)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/debug.log", filepath.Join(home, "debug.log")},
		{"/absolute/path.log", "/absolute/path.log"},
		{"relative/path.log", "relative/path.log"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := expandPath(tc.input)
			if got != tc.want {
				t.Errorf("expandPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.toml")

	cfg := Default()
	cfg.Report.BusinessDayStart = "7:30am"
	cfg.Report.BusinessDayEnd = "3:30pm"
	cfg.Report.Summary = true
	cfg.UI.Theme = "macchiato"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Report.BusinessDayStart != "7:30am" {
		t.Errorf("expected business_day_start 7:30am, got %s", loaded.Report.BusinessDayStart)
	}
	if loaded.Report.BusinessDayEnd != "3:30pm" {
		t.Errorf("expected business_day_end 3:30pm, got %s", loaded.Report.BusinessDayEnd)
	}
	if !loaded.Report.Summary {
		t.Error("expected summary true")
	}
	if loaded.UI.Theme != "macchiato" {
		t.Errorf("expected theme macchiato, got %s", loaded.UI.Theme)
	}
}
