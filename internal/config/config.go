// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for tourdeck.
type Config struct {
	APIURL           string `mapstructure:"api_url" yaml:"api_url"`
	TimeoutSeconds   int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	MaxGalleryImages int    `mapstructure:"max_gallery_images" yaml:"max_gallery_images"`
	LogLevel         string `mapstructure:"log_level" yaml:"log_level"`
	LogFile          string `mapstructure:"log_file" yaml:"log_file"`
}

// Timeout returns the request timeout as a duration.
// Image-bearing calls (create with cover image, gallery update) rely on this
// being finite so a stalled upload surfaces as a timeout, not a hang.
func (c *Config) Timeout() time.Duration {
	secs := c.TimeoutSeconds
	if secs <= 0 {
		secs = 30
	}
	return time.Duration(secs) * time.Second
}

// Load loads configuration with full precedence:
// ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("tourdeck")

	v.SetDefault("api_url", "http://localhost:5000/api/v1")
	v.SetDefault("timeout_seconds", 30)
	v.SetDefault("max_gallery_images", 10)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	// Setup ENV binding with TOURDECK_ prefix
	v.SetEnvPrefix("TOURDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit ENV bindings for better int parsing
	if err := v.BindEnv("api_url", "TOURDECK_API_URL"); err != nil {
		return nil, fmt.Errorf("binding api_url env: %w", err)
	}
	if err := v.BindEnv("timeout_seconds", "TOURDECK_TIMEOUT_SECONDS"); err != nil {
		return nil, fmt.Errorf("binding timeout_seconds env: %w", err)
	}
	if err := v.BindEnv("max_gallery_images", "TOURDECK_MAX_GALLERY_IMAGES"); err != nil {
		return nil, fmt.Errorf("binding max_gallery_images env: %w", err)
	}
	if err := v.BindEnv("log_level", "TOURDECK_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("binding log_level env: %w", err)
	}
	if err := v.BindEnv("log_file", "TOURDECK_LOG_FILE"); err != nil {
		return nil, fmt.Errorf("binding log_file env: %w", err)
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/tourdeck/tourdeck.yml or $XDG_CONFIG_HOME/tourdeck/tourdeck.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tourdeck", "tourdeck.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tourdeck", "tourdeck.yml")
}

// ProjectPath returns the project-local config path.
// Returns ./tourdeck.yml in the current working directory.
func ProjectPath() string {
	return "tourdeck.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	path := ProjectPath()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
