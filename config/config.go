// Package config loads REPL cosmetics - prompt text, color toggles, history location,
// banner visibility - from an optional .ember.yaml file.
package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// File is the config file name searched for in the current directory and then $HOME.
const File = ".ember.yaml"

// REPL holds everything the repl package needs to know to start a session.
type REPL struct {
	Prompt      string `yaml:"prompt"`
	Colors      *bool  `yaml:"colors"`
	HistoryFile string `yaml:"history_file"`
	Banner      *bool  `yaml:"banner"`
}

// Config is the top-level shape of .ember.yaml. Only the repl section exists today;
// it's a struct rather than a bare map so new top-level sections can be added without
// breaking existing config files.
type Config struct {
	REPL REPL `yaml:"repl"`
}

// Default returns the configuration used when no .ember.yaml is found anywhere.
func Default() *Config {
	colors := true
	banner := true
	return &Config{
		REPL: REPL{
			Prompt:      "ember» ",
			Colors:      &colors,
			HistoryFile: defaultHistoryFile(),
			Banner:      &banner,
		},
	}
}

// Load searches the current directory and then the user's home directory for .ember.yaml,
// merging any fields it finds over Default(). A missing file is not an error; a malformed
// one is.
func Load() (*Config, error) {
	cfg := Default()

	path, ok := findConfigFile()
	if !ok {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func findConfigFile() (string, bool) {
	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, File)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, File)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ember_history")
}

// ColorsEnabled returns whether colors are enabled, defaulting to true when the field
// wasn't set in the config file.
func (r REPL) ColorsEnabled() bool {
	if r.Colors == nil {
		return true
	}
	return *r.Colors
}

// BannerEnabled returns whether the startup banner should print, defaulting to true.
func (r REPL) BannerEnabled() bool {
	if r.Banner == nil {
		return true
	}
	return *r.Banner
}
