package config

import (
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.SeedURL != DefaultSeedURL {
		t.Errorf("SeedURL = %q", cfg.SeedURL)
	}
	if cfg.Budget != 60*time.Second {
		t.Errorf("Budget = %v, want 60s", cfg.Budget)
	}
	if err := validate(cfg); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	cfg := &Config{SeedURL: "http://localhost:8080/", Budget: 5 * time.Second}

	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	if cfg.SeedURL != "http://localhost:8080/" || cfg.Budget != 5*time.Second {
		t.Errorf("explicit values overwritten: %+v", cfg)
	}
	if cfg.UserAgent != DefaultUserAgent || cfg.Referrer != DefaultReferrer {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestNormalizeRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"non-http seed", Config{SeedURL: "ftp://example.com"}},
		{"relative seed", Config{SeedURL: "/wiki/Big_data"}},
		{"negative budget", Config{Budget: -time.Second}},
		{"tiny fetch timeout", Config{FetchTimeout: time.Millisecond}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			if err := Normalize(&cfg); err == nil {
				t.Errorf("expected error for %+v", cfg)
			}
		})
	}
}

func TestRequestHeaders(t *testing.T) {
	h := Default().RequestHeaders()

	if h.Get("User-Agent") != DefaultUserAgent {
		t.Errorf("User-Agent = %q", h.Get("User-Agent"))
	}
	if h.Get("Referer") != "http://www.google.com" {
		t.Errorf("Referer = %q", h.Get("Referer"))
	}
}
