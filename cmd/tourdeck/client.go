package main

import (
	"os"

	"github.com/charmbracelet/x/term"

	"github.com/tourdeck/tourdeck/internal/catalog"
	"github.com/tourdeck/tourdeck/internal/config"
	"github.com/tourdeck/tourdeck/internal/logger"
)

// loadConfig loads the merged configuration and applies its logging
// settings to the default logger. Env vars are already honored by the
// logger itself; the config file settings are applied on top.
func loadConfig() (*config.Config, error) {
	if !config.Exists() {
		logger.Debug("no config file found, using defaults (run 'tourdeck setup' to write one)")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cfg.LogLevel != "" {
		if level, err := logger.ParseLevel(cfg.LogLevel); err == nil {
			logger.Default.SetLevel(level)
		}
	}
	if cfg.LogFile != "" && os.Getenv("TOURDECK_LOG_FILE") == "" {
		if f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			logger.Default.SetOutput(f)
		}
	}

	return cfg, nil
}

func newClient(cfg *config.Config) *catalog.Client {
	return catalog.NewClient(cfg.APIURL, cfg.Timeout())
}

// termWidth returns the terminal width for the read-only views, falling
// back to 100 columns when stdout is not a terminal.
func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 100
}
