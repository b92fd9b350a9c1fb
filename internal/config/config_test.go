package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.APIPort != "3000" {
		t.Errorf("APIPort = %q, want %q", cfg.APIPort, "3000")
	}
	if cfg.JWTExpiration != 24*time.Hour {
		t.Errorf("JWTExpiration = %v, want 24h", cfg.JWTExpiration)
	}
	if cfg.RateLimitPerMinute != 100 {
		t.Errorf("RateLimitPerMinute = %d, want 100", cfg.RateLimitPerMinute)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_CONFIG_KEY", "value")
	if got := getEnv("TEST_CONFIG_KEY", "fallback"); got != "value" {
		t.Errorf("getEnv = %q, want %q", got, "value")
	}
	if got := getEnv("TEST_CONFIG_MISSING", "fallback"); got != "fallback" {
		t.Errorf("getEnv = %q, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_CONFIG_INT", "42")
	if got := getEnvInt("TEST_CONFIG_INT", 7); got != 42 {
		t.Errorf("getEnvInt = %d, want 42", got)
	}

	t.Setenv("TEST_CONFIG_BAD_INT", "not-a-number")
	if got := getEnvInt("TEST_CONFIG_BAD_INT", 7); got != 7 {
		t.Errorf("getEnvInt = %d, want fallback 7", got)
	}

	if got := getEnvInt("TEST_CONFIG_INT_MISSING", 7); got != 7 {
		t.Errorf("getEnvInt = %d, want fallback 7", got)
	}
}
