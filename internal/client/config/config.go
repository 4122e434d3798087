package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the Zenora CLI.
//
// RequestTimeout bounds each collaborator request attempt; a failed attempt
// is retried once after RetryDelay.
type Config struct {
	ServerURL      string        `env:"ZENORA_SERVER_URL"`
	DataDir        string        `env:"ZENORA_DATA_DIR"`
	RequestTimeout time.Duration `env:"ZENORA_REQUEST_TIMEOUT"`
	RetryDelay     time.Duration `env:"ZENORA_RETRY_DELAY"`
	LogLevel       string        `env:"ZENORA_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "https://api.zenora.example"
	c.DataDir = ".zenora"
	c.RequestTimeout = 10 * time.Second
	c.RetryDelay = 500 * time.Millisecond
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays JSON,
// environment and command-line flags. Later sources take precedence.
// Non-positive intervals from any source fall back to the defaults.
// Malformed input panics; main is the only caller.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseEnv(cfg)
	parseFlags(cfg, os.Args[1:])
	cfg.normalize()
	return cfg
}

// normalize restores the default for any non-positive interval. A zero
// request timeout would expire every attempt before it starts.
func (c *Config) normalize() {
	var d Config
	d.LoadDefaults()
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = d.RequestTimeout
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = d.RetryDelay
	}
}
