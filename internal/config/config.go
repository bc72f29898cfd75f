package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// ThemeMode selects a color palette.
type ThemeMode string

const (
	ThemeLight        ThemeMode = "light"
	ThemeDark         ThemeMode = "dark"
	ThemeHighContrast ThemeMode = "high-contrast"
)

// Config holds all application configuration.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig controls project loading.
type CatalogConfig struct {
	File        string `mapstructure:"file"`          // Optional external catalog YAML; empty = embedded
	PageSize    int    `mapstructure:"page_size"`     // Items per batch
	LoadDelayMS int    `mapstructure:"load_delay_ms"` // Artificial fetch delay; zero is valid
}

// UIConfig holds presentation preferences. Values here are defaults; the
// preference store overrides them once the user changes anything in-app.
type UIConfig struct {
	Theme        ThemeMode `mapstructure:"theme"`
	Locale       string    `mapstructure:"locale"`
	ReduceMotion bool      `mapstructure:"reduce_motion"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			PageSize:    5,
			LoadDelayMS: 0,
		},
		UI: UIConfig{
			Theme:  ThemeDark,
			Locale: "en-US",
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS.
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "vitrine", "vitrine.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "vitrine", "vitrine.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS.
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "vitrine")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "vitrine")
	}
}

// DataDir returns the directory for the preference database.
func DataDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "vitrine")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "vitrine")
	}
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("VITRINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if cfg.Catalog.PageSize < 1 {
		cfg.Catalog.PageSize = 5
	}
	if !ValidTheme(cfg.UI.Theme) {
		cfg.UI.Theme = ThemeDark
	}

	return cfg, nil
}

// ValidTheme reports whether mode names a known palette.
func ValidTheme(mode ThemeMode) bool {
	switch mode {
	case ThemeLight, ThemeDark, ThemeHighContrast:
		return true
	}
	return false
}
