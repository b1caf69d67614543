package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// envBindings maps config keys to the environment variables that override them,
// first match wins
var envBindings = map[string][]string{
	"database.path":       {"SRATASK_DATABASE_PATH"},
	"database.log_level":  {"SRATASK_DATABASE_LOG_LEVEL"},
	"ai.api_key":          {"SRATASK_AI_API_KEY", "GEMINI_API_KEY", "API_KEY"},
	"ai.model":            {"SRATASK_AI_MODEL"},
	"ai.base_url":         {"SRATASK_AI_BASE_URL"},
	"server.addr":         {"SRATASK_SERVER_ADDR"},
	"board.reduce_motion": {"SRATASK_REDUCE_MOTION"},
}

// Load reads the config file at path (the default path when empty) over the
// defaults, then applies environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = DefaultPath()
	}

	v := viper.New()
	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// WriteDefault writes the default configuration to path, refusing to overwrite
func WriteDefault(path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s", path)
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// DefaultPath returns the path to the user config file
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".sratask", "config.yaml")
}
