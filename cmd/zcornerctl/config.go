package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	// APIURL is the base URL of the storefront backend.
	APIURL string `toml:"api_url"`
	// SessionFile holds the persisted token/user pair.
	SessionFile string `toml:"session_file"`
}

func defaults() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		APIURL:      "http://localhost:8090",
		SessionFile: filepath.Join(home, ".config", "zcornerctl", "session.json"),
	}
}

// loadConfig reads the TOML config from the explicit path, or from
// ~/.config/zcornerctl/config.toml, or falls back to defaults.
func loadConfig(path string) (*Config, error) {
	cfg := defaults()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".config", "zcornerctl", "config.toml")
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	if cfg.APIURL == "" {
		cfg.APIURL = defaults().APIURL
	}
	if cfg.SessionFile == "" {
		cfg.SessionFile = defaults().SessionFile
	}
	return cfg, nil
}
