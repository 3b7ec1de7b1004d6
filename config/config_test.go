package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Release.TagFormat != "{id}-release" {
		t.Errorf("tag format = %q, want %q", cfg.Release.TagFormat, "{id}-release")
	}
	if cfg.Links.BaseURL != "" {
		t.Errorf("link base URL should default to empty, got %q", cfg.Links.BaseURL)
	}
	if cfg.Webhook.URL != "" {
		t.Errorf("webhook URL should default to empty, got %q", cfg.Webhook.URL)
	}
	if len(cfg.Filters.Include) != 0 || len(cfg.Filters.Exclude) != 0 {
		t.Errorf("filters should default to empty, got %+v", cfg.Filters)
	}
}

func TestLoadConfig_MergesWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "herald.json")
	content := `{
		"links": {"baseUrl": "https://tracker.example.com/browse"},
		"filters": {"exclude": ["**/*.md"]}
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Links.BaseURL != "https://tracker.example.com/browse" {
		t.Errorf("link base URL = %q", cfg.Links.BaseURL)
	}
	if len(cfg.Filters.Exclude) != 1 || cfg.Filters.Exclude[0] != "**/*.md" {
		t.Errorf("exclude = %v", cfg.Filters.Exclude)
	}
	// Untouched fields keep their defaults.
	if cfg.Release.TagFormat != "{id}-release" {
		t.Errorf("tag format = %q, want default preserved", cfg.Release.TagFormat)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Release.TagFormat != "{id}-release" {
		t.Errorf("tag format = %q, want default", cfg.Release.TagFormat)
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "herald.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "herald.json")
	cfg := DefaultConfig()
	cfg.Webhook.URL = "https://hooks.example.com/T000/B000"

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Webhook.URL != cfg.Webhook.URL {
		t.Errorf("webhook URL = %q, want %q", loaded.Webhook.URL, cfg.Webhook.URL)
	}
}
