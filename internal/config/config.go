// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"record-notes/internal/util"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	LogLevel string `yaml:"log_level"`
	// Pretty selects the indented debug form for printed records.
	Pretty bool `yaml:"pretty"`
}

// Level returns the parsed log level.
func (c *AppConfig) Level() slog.Level {
	level, err := util.ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// LoadConfig loads configuration from a .env file, an optional YAML file named
// by NOTES_CONFIG and environment variables, in increasing precedence.
func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &AppConfig{LogLevel: "info"}

	if path := os.Getenv("NOTES_CONFIG"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if _, err := util.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if prettyStr := os.Getenv("NOTES_PRETTY"); prettyStr != "" {
		pretty, err := strconv.ParseBool(prettyStr)
		if err != nil {
			return nil, fmt.Errorf("invalid NOTES_PRETTY %q: %w", prettyStr, util.ErrInvalidInput)
		}
		cfg.Pretty = pretty
	}

	return cfg, nil
}

func loadFile(path string, cfg *AppConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %v: %w", path, err, util.ErrInvalidInput)
	}
	return nil
}
