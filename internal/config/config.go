package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Johannes-Berggren/repodash/internal/models"
)

// Config represents the complete repodash configuration
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Table   TableConfig   `mapstructure:"table"`
	Data    DataConfig    `mapstructure:"data"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// UIConfig controls the dashboard presentation
type UIConfig struct {
	// DisplayMode is the initial table variant
	// Options: "default", "compact", "compactBorderless"
	DisplayMode string `mapstructure:"display_mode"`
	// Placeholder is shown in the empty search input
	Placeholder string `mapstructure:"placeholder"`
	// Title is the heading above the table
	Title string `mapstructure:"title"`
}

// TableConfig controls the table widget
type TableConfig struct {
	// Paging splits rows into pages of PageLength rows
	Paging bool `mapstructure:"paging"`
	// Searching enables the search input's filter
	Searching bool `mapstructure:"searching"`
	// Ordering sorts rows, initially by the first column ascending
	Ordering bool `mapstructure:"ordering"`
	// PageLength is the number of rows per page (default: 10)
	PageLength int `mapstructure:"page_length"`
	// MaxColumnWidth truncates wide cells, 0 = no limit
	MaxColumnWidth int `mapstructure:"max_column_width"`
}

// DataConfig selects the dataset
type DataConfig struct {
	// File is a YAML dataset; empty uses the built-in repositories
	File string `mapstructure:"file"`
	// Scan is a directory whose git repositories become the dataset.
	// Cannot be combined with File.
	Scan string `mapstructure:"scan"`
}

// LoggingConfig controls the debug log. The terminal belongs to the UI, so
// logs only go to a file.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
	// File is the log path; empty disables logging
	File string `mapstructure:"file"`
	// MaxSizeMB rotates the log after this many megabytes
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of rotated files kept
	MaxBackups int `mapstructure:"max_backups"`
	// MaxAgeDays removes rotated files older than this, 0 = keep
	MaxAgeDays int `mapstructure:"max_age_days"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		UI: UIConfig{
			DisplayMode: string(models.DefaultDisplayMode),
			Placeholder: "Search table",
			Title:       "Repositories",
		},
		Table: TableConfig{
			Paging:     true,
			Searching:  true,
			Ordering:   true,
			PageLength: 10,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("ui.display_mode", defaults.UI.DisplayMode)
	viper.SetDefault("ui.placeholder", defaults.UI.Placeholder)
	viper.SetDefault("ui.title", defaults.UI.Title)

	viper.SetDefault("table.paging", defaults.Table.Paging)
	viper.SetDefault("table.searching", defaults.Table.Searching)
	viper.SetDefault("table.ordering", defaults.Table.Ordering)
	viper.SetDefault("table.page_length", defaults.Table.PageLength)
	viper.SetDefault("table.max_column_width", defaults.Table.MaxColumnWidth)

	viper.SetDefault("data.file", defaults.Data.File)
	viper.SetDefault("data.scan", defaults.Data.Scan)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
}

// Load reads the configuration from viper and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// DisplayMode returns the configured initial mode. Validate guarantees it parses.
func (c *Config) DisplayMode() models.DisplayMode {
	m, err := models.ParseDisplayMode(c.UI.DisplayMode)
	if err != nil {
		return models.DefaultDisplayMode
	}
	return m
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "repodash")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".repodash"
	}
	return filepath.Join(home, ".config", "repodash")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
