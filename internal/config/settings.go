package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// SortMode is the default sort mode for listings and the browser:
	// "alpha", "time", "rating", or "views".
	SortMode string `json:"sort_mode"`

	// GroupArtists controls whether sorts cluster records of the same
	// artist together by default.
	GroupArtists bool `json:"group_artists"`

	// MaxConcurrentLoads bounds how many archive directories are read
	// in parallel while loading.
	MaxConcurrentLoads int `json:"max_concurrent_loads"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		SortMode:           "alpha",
		GroupArtists:       false,
		MaxConcurrentLoads: 4,
	}
}

// DefaultPath returns the default location of the settings file.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "dvk-archive.json"
	}
	return filepath.Join(configDir, "dvk-archive", "settings.json")
}

// Load reads settings from a JSON file. A missing file yields defaults
// rather than an error.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file, creating parent directories as
// needed.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
