package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/budgetboard/internal/logging"
)

// Environment overrides, usually supplied through a .env file.
const (
	EnvDataFile = "BUDGETBOARD_DATA_FILE"
	EnvLogLevel = "BUDGETBOARD_LOG_LEVEL"
)

// Config holds all budgetboard configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        logging.Config   `toml:"log"`
}

// GeneralConfig holds storage settings.
type GeneralConfig struct {
	DataFile string `toml:"data_file,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Log: logging.Config{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "budgetboard")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "budgetboard")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "budgetboard")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "budgetboard")
}

// DataFile resolves the store path: environment, then config, then default.
func DataFile(cfg Config) string {
	if p := os.Getenv(EnvDataFile); p != "" {
		return p
	}
	if cfg.General.DataFile != "" {
		return cfg.General.DataFile
	}
	return filepath.Join(DataDir(), "budget.db")
}

// LogLevel resolves the log level: environment, then config.
func LogLevel(cfg Config) string {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		return lvl
	}
	return cfg.Log.Level
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
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
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
