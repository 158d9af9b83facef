package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete tabgroups configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Persist PersistConfig `mapstructure:"persist"`
	Confirm ConfirmConfig `mapstructure:"confirm"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is the minimum log level ("DEBUG", "INFO", "WARN", "ERROR")
	Level string `mapstructure:"level"`
	// File is the log file path; empty logs to stderr
	File string `mapstructure:"file"`
}

// PersistConfig controls persistence behavior.
type PersistConfig struct {
	// DebounceMs is the quiescence window before item edits are flushed
	DebounceMs int `mapstructure:"debounce_ms"`
	// WatchSidecar reloads the collection when the sidecar file changes on disk
	WatchSidecar bool `mapstructure:"watch_sidecar"`
}

// ConfirmConfig controls which operations prompt before acting.
type ConfirmConfig struct {
	// Delete asks before removing a group (default: true)
	Delete bool `mapstructure:"delete"`
	// Translate asks before rewriting paths on cross-workspace import (default: true)
	Translate bool `mapstructure:"translate"`
}

// Default returns the configuration with all defaults applied.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "INFO"},
		Persist: PersistConfig{DebounceMs: 1000, WatchSidecar: false},
		Confirm: ConfirmConfig{Delete: true, Translate: true},
	}
}

// Load reads the configuration file at configPath if it exists, applying
// defaults for anything unset. Environment variables with the TABGROUPS_
// prefix override file values (e.g. TABGROUPS_LOGGING_LEVEL).
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault("logging.level", "INFO")
	v.SetDefault("logging.file", "")
	v.SetDefault("persist.debounce_ms", 1000)
	v.SetDefault("persist.watch_sidecar", false)
	v.SetDefault("confirm.delete", true)
	v.SetDefault("confirm.translate", true)

	v.SetEnvPrefix("TABGROUPS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(configPath); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
