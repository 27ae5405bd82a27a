package config

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Fixed crawl parameters
const (
	DefaultSeedURL          = "https://en.wikipedia.org/wiki/Big_data"
	DefaultUserAgent        = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.14; rv:60.0) Gecko/20100101 Firefox/60.0"
	DefaultReferrer         = "http://www.google.com"
	DefaultBudget           = 60 * time.Second
	DefaultFetchTimeout     = 10 * time.Second
	DefaultProgressInterval = 10 * time.Second
)

// Config holds all runtime configuration parameters
type Config struct {
	SeedURL          string
	UserAgent        string
	Referrer         string
	Budget           time.Duration
	FetchTimeout     time.Duration
	ProgressInterval time.Duration
}

// Default returns the fixed configuration of a crawl run
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Normalize fills unspecified fields with defaults and validates the result
func Normalize(cfg *Config) error {
	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// RequestHeaders returns the headers sent with every page fetch
func (c *Config) RequestHeaders() http.Header {
	h := http.Header{}
	h.Set("User-Agent", c.UserAgent)
	h.Set("Referer", c.Referrer)
	return h
}

// applyDefaults sets default values for unspecified fields
func applyDefaults(cfg *Config) {
	if cfg.SeedURL == "" {
		cfg.SeedURL = DefaultSeedURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Referrer == "" {
		cfg.Referrer = DefaultReferrer
	}
	if cfg.Budget == 0 {
		cfg.Budget = DefaultBudget
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = DefaultFetchTimeout
	}
	if cfg.ProgressInterval == 0 {
		cfg.ProgressInterval = DefaultProgressInterval
	}
}

// validate checks that required fields are present and values are sensible
func validate(cfg *Config) error {
	u, err := url.Parse(cfg.SeedURL)
	if err != nil {
		return fmt.Errorf("seed url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("seed url must be http or https, got %q", cfg.SeedURL)
	}
	if cfg.Budget < 0 {
		return fmt.Errorf("budget must be >= 0")
	}
	if cfg.FetchTimeout < time.Second {
		return fmt.Errorf("fetch timeout must be >= 1s")
	}
	if cfg.ProgressInterval <= 0 {
		return fmt.Errorf("progress interval must be > 0")
	}
	return nil
}
