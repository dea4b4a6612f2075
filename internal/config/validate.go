package config

import (
	"fmt"
	"net/url"

	"scribe/internal/transcription"
)

// Validate checks configuration values after normalization.
func (c *Config) Validate() error {
	if c.Service.BaseURL == "" {
		return fmt.Errorf("service.base_url is required")
	}
	parsed, err := url.Parse(c.Service.BaseURL)
	if err != nil {
		return fmt.Errorf("service.base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("service.base_url: unsupported scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("service.base_url: missing host")
	}
	if c.Service.RequestTimeout < 1 {
		return fmt.Errorf("service.request_timeout must be at least 1 second")
	}

	switch c.Polling.Strategy {
	case PollStrategyFixed, PollStrategyExponential:
	default:
		return fmt.Errorf("polling.strategy: unknown strategy %q", c.Polling.Strategy)
	}
	if c.Polling.Interval < 1 {
		return fmt.Errorf("polling.interval must be at least 1 second")
	}
	if c.Polling.MaxInterval < c.Polling.Interval {
		return fmt.Errorf("polling.max_interval must be >= polling.interval")
	}

	if _, ok := transcription.ParseFormat(c.Defaults.ExportFormat); !ok {
		return fmt.Errorf("defaults.export_format: unknown format %q", c.Defaults.ExportFormat)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}

	return nil
}
