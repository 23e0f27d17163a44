// Package config provides configuration management using viper.
// It supports loading from YAML files and environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Daily    DailyConfig    `mapstructure:"daily"`
	Level    LevelConfig    `mapstructure:"level"`
	Profiles ProfilesConfig `mapstructure:"profiles"`
}

// AppConfig holds application identity configuration.
type AppConfig struct {
	// Name is used in backup filenames (<name>-backup-<date>.json).
	Name string `mapstructure:"name"`
}

// StorageConfig holds local state storage configuration.
type StorageConfig struct {
	// Path is the SQLite database file holding the state record.
	// Empty means <user config dir>/chorequest/state.db.
	Path string `mapstructure:"path"`
}

// DailyConfig holds daily quest selection configuration.
type DailyConfig struct {
	QuestCount int `mapstructure:"quest_count"`
	MaxResets  int `mapstructure:"max_resets"`
}

// LevelConfig holds level progression configuration.
type LevelConfig struct {
	MaxLevel     int `mapstructure:"max_level"`
	PointsForMax int `mapstructure:"points_for_max"`
}

// ProfilesConfig holds profile registry configuration.
type ProfilesConfig struct {
	Max int `mapstructure:"max"`
}

// Load reads configuration from file and environment variables.
// It looks for config.yaml in the given directory.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variable override, e.g. CHOREQUEST_STORAGE_PATH,
	// CHOREQUEST_DAILY_MAX_RESETS.
	v.SetEnvPrefix("chorequest")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional - env vars and defaults can provide all config.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "chorequest")

	// Daily quest selection defaults.
	v.SetDefault("daily.quest_count", 4)
	v.SetDefault("daily.max_resets", 2)

	// Level curve defaults.
	v.SetDefault("level.max_level", 50)
	v.SetDefault("level.points_for_max", 4800)

	// Profile registry defaults.
	v.SetDefault("profiles.max", 5)
}

// StatePath resolves the state database path, creating the parent directory
// if it does not exist.
func (c *Config) StatePath() (string, error) {
	path := c.Storage.Path
	if path == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve config dir: %w", err)
		}
		path = filepath.Join(base, c.App.Name, "state.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create state dir: %w", err)
	}
	return path, nil
}
