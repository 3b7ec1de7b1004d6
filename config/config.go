package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	Release ReleaseConfig `json:"release"`
	Links   LinkConfig    `json:"links"`
	Webhook WebhookConfig `json:"webhook"`
	Filters FilterConfig  `json:"filters"`
}

// ReleaseConfig holds release window resolution settings.
type ReleaseConfig struct {
	TagFormat string `json:"tagFormat"` // Template with an {id} placeholder
}

// LinkConfig holds issue-tracker linkification settings.
type LinkConfig struct {
	BaseURL string `json:"baseUrl"` // Empty disables entry links
}

// WebhookConfig holds announcement delivery settings.
type WebhookConfig struct {
	URL string `json:"url"`
}

// FilterConfig holds commit path filtering options.
type FilterConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Release: ReleaseConfig{
			TagFormat: "{id}-release",
		},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
// An empty path tries .herald.json in the working directory, then in the
// user's home directory.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		candidates := []string{".herald.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".herald.json"))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, ".herald.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
