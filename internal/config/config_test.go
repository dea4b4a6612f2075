package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "config.toml")

	cfg, resolved, exists, err := Load(missing)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if resolved != missing {
		t.Errorf("resolved path = %q, want %q", resolved, missing)
	}
	if cfg.Service.BaseURL != "http://localhost:8000" {
		t.Errorf("unexpected default base url: %q", cfg.Service.BaseURL)
	}
	if cfg.Polling.Strategy != PollStrategyFixed || cfg.Polling.Interval != 1 {
		t.Errorf("unexpected polling defaults: %+v", cfg.Polling)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[service]
base_url = "https://transcribe.example.com/"

[polling]
strategy = "Exponential"
interval = 2
max_interval = 20

[logging]
level = "DEBUG"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Service.BaseURL != "https://transcribe.example.com" {
		t.Errorf("trailing slash not trimmed: %q", cfg.Service.BaseURL)
	}
	if cfg.Polling.Strategy != PollStrategyExponential {
		t.Errorf("strategy not lowercased: %q", cfg.Polling.Strategy)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level not lowercased: %q", cfg.Logging.Level)
	}
	// Sections absent from the file keep their defaults.
	if cfg.Defaults.ExportFormat != "txt" {
		t.Errorf("defaults.export_format = %q, want txt", cfg.Defaults.ExportFormat)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing base url", func(c *Config) { c.Service.BaseURL = "" }, "base_url"},
		{"bad scheme", func(c *Config) { c.Service.BaseURL = "ftp://example.com" }, "scheme"},
		{"unknown strategy", func(c *Config) { c.Polling.Strategy = "linear" }, "strategy"},
		{"zero interval", func(c *Config) { c.Polling.Interval = 0 }, "interval"},
		{"max below interval", func(c *Config) { c.Polling.Interval = 10; c.Polling.MaxInterval = 5 }, "max_interval"},
		{"bad export format", func(c *Config) { c.Defaults.ExportFormat = "pdf" }, "export_format"},
		{"bad log format", func(c *Config) { c.Logging.Format = "yaml" }, "logging.format"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config failed validation: %v", err)
	}
}
