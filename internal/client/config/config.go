// Package config holds runtime settings for the HirePilot CLI client.
package config

import "time"

// Config holds runtime settings for the client.
//
// Fields:
//   - APIBaseURL: base URL of the screening backend, e.g. "http://localhost:8000".
//   - RequestTimeout: upper bound for a single API request. Analysis of a
//     batch is slow, so the default is generous.
//   - ReportsDir: directory where full candidate reports are saved.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	ReportsDir     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.RequestTimeout = 120 * time.Second
	c.ReportsDir = "reports"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
