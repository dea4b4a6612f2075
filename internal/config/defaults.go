package config

import "strings"

// Default returns the baseline configuration used when no file is present.
func Default() Config {
	return Config{
		Service: Service{
			BaseURL:        "http://localhost:8000",
			RequestTimeout: 30,
		},
		Polling: Polling{
			Strategy:    PollStrategyFixed,
			Interval:    1,
			MaxInterval: 30,
		},
		Defaults: Defaults{
			Language:     "auto",
			Model:        "base",
			ExportFormat: "txt",
		},
		Logging: Logging{
			Format: "console",
			Level:  "info",
		},
	}
}

func (c *Config) normalize() {
	c.Service.BaseURL = strings.TrimRight(strings.TrimSpace(c.Service.BaseURL), "/")
	c.Polling.Strategy = strings.ToLower(strings.TrimSpace(c.Polling.Strategy))
	if c.Polling.Strategy == "" {
		c.Polling.Strategy = PollStrategyFixed
	}
	c.Defaults.Language = strings.ToLower(strings.TrimSpace(c.Defaults.Language))
	if c.Defaults.Language == "" {
		c.Defaults.Language = "auto"
	}
	c.Defaults.Model = strings.TrimSpace(c.Defaults.Model)
	c.Defaults.ExportFormat = strings.ToLower(strings.TrimSpace(c.Defaults.ExportFormat))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
