// Package config loads the storyboard settings file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// FileName is the settings file looked up in the working directory
const FileName = ".storyboard.json"

// Config represents the full storyboard configuration
type Config struct {
	Store StoreConfig `json:"store"`
	Log   LogConfig   `json:"log"`
	UI    UIConfig    `json:"ui"`
}

// StoreConfig selects where and how the dataset is persisted
type StoreConfig struct {
	Path        string `json:"path"`
	Backend     string `json:"backend"`
	Codec       string `json:"codec"`
	Compression string `json:"compression"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Dir   string `json:"dir"`
	Level string `json:"level"`
}

// UIConfig contains terminal UI settings
type UIConfig struct {
	AltScreen        bool `json:"altScreen"`
	IDWidth          int  `json:"idWidth"`
	NameWidth        int  `json:"nameWidth"`
	DescriptionWidth int  `json:"descriptionWidth"`
	StatusWidth      int  `json:"statusWidth"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Store: StoreConfig{
			Path:        filepath.Join("data", "db.json"),
			Backend:     "file",
			Codec:       "json",
			Compression: "none",
		},
		Log: LogConfig{
			Dir:   filepath.Join(homeDir, ".storyboard", "logs"),
			Level: "info",
		},
		UI: UIConfig{
			AltScreen:        false,
			IDWidth:          11,
			NameWidth:        32,
			DescriptionWidth: 27,
			StatusWidth:      17,
		},
	}
}

// LoadConfig loads configuration from project path with priority:
// 1. .storyboard.json in project root (with version migration support)
// 2. Defaults
// CLI flags are applied on top by the caller.
func LoadConfig(projectPath string) (*Config, error) {
	path := filepath.Join(projectPath, FileName)
	if _, err := os.Stat(path); err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from an explicit path, which must exist
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := ParseVersionedConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	cfg = MergeWithDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// SaveConfig saves configuration to the specified path with version information
func SaveConfig(cfg *Config, path string) error {
	data, err := MarshalVersionedConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	// Merge Store config
	if cfg.Store.Path == "" {
		cfg.Store.Path = defaults.Store.Path
	}
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = defaults.Store.Backend
	}
	if cfg.Store.Codec == "" {
		cfg.Store.Codec = defaults.Store.Codec
	}
	if cfg.Store.Compression == "" {
		cfg.Store.Compression = defaults.Store.Compression
	}

	// Merge Log config
	if cfg.Log.Dir == "" {
		cfg.Log.Dir = defaults.Log.Dir
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	// Merge UI config
	if cfg.UI.IDWidth == 0 {
		cfg.UI.IDWidth = defaults.UI.IDWidth
	}
	if cfg.UI.NameWidth == 0 {
		cfg.UI.NameWidth = defaults.UI.NameWidth
	}
	if cfg.UI.DescriptionWidth == 0 {
		cfg.UI.DescriptionWidth = defaults.UI.DescriptionWidth
	}
	if cfg.UI.StatusWidth == 0 {
		cfg.UI.StatusWidth = defaults.UI.StatusWidth
	}

	return cfg
}

// Validate checks values that defaults cannot repair
func (c *Config) Validate() error {
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	widths := map[string]int{
		"idWidth":          c.UI.IDWidth,
		"nameWidth":        c.UI.NameWidth,
		"descriptionWidth": c.UI.DescriptionWidth,
		"statusWidth":      c.UI.StatusWidth,
	}
	for name, w := range widths {
		if w < 0 {
			return fmt.Errorf("ui.%s must not be negative, got %d", name, w)
		}
	}
	return nil
}

// SlogLevel parses the configured level name
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
