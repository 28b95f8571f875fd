package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected default config to be valid, got error: %v", err)
	}
}

func TestDefaultConfig_TokenTTLAsymmetry(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Auth.SignupTokenTTL != time.Hour {
		t.Errorf("signup token TTL = %v, want 1h", cfg.Auth.SignupTokenTTL)
	}
	if cfg.Auth.SessionTokenTTL != 24*time.Hour {
		t.Errorf("session token TTL = %v, want 24h", cfg.Auth.SessionTokenTTL)
	}
}

func TestValidate_InvalidValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name:   "empty server address",
			mutate: func(c *Config) { c.Server.Address = "" },
		},
		{
			name:   "non-positive read timeout",
			mutate: func(c *Config) { c.Server.ReadTimeout = 0 },
		},
		{
			name:   "empty jwt secret",
			mutate: func(c *Config) { c.Auth.JWTSecret = "" },
		},
		{
			name:   "non-positive signup token ttl",
			mutate: func(c *Config) { c.Auth.SignupTokenTTL = 0 },
		},
		{
			name:   "non-positive session token ttl",
			mutate: func(c *Config) { c.Auth.SessionTokenTTL = -time.Hour },
		},
		{
			name: "postgres enabled without dsn",
			mutate: func(c *Config) {
				c.Postgres.Enabled = true
				c.Postgres.DSN = ""
			},
		},
		{
			name: "redis enabled without address",
			mutate: func(c *Config) {
				c.Redis.Enabled = true
				c.Redis.Address = ""
			},
		},
		{
			name: "tracing sample rate out of range",
			mutate: func(c *Config) {
				c.Tracing.Enabled = true
				c.Tracing.SampleRate = 1.5
			},
		},
		{
			name:   "empty notify channel",
			mutate: func(c *Config) { c.Notify.Channel = "" },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("expected defaults on missing file, got error: %v", err)
	}
	if cfg.Server.Address != ":8080" {
		t.Errorf("server address = %q, want :8080", cfg.Server.Address)
	}
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  address: \":9999\"\nauth:\n  jwt_secret: \"test-secret\"\n  signup_token_ttl: 1h\n  session_token_ttl: 24h\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Address != ":9999" {
		t.Errorf("server address = %q, want :9999", cfg.Server.Address)
	}
	if cfg.Auth.JWTSecret != "test-secret" {
		t.Errorf("jwt secret = %q, want test-secret", cfg.Auth.JWTSecret)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("ALUMNINET_JWT_SECRET", "env-secret")
	t.Setenv("ALUMNINET_LOG_LEVEL", "debug")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	if cfg.Auth.JWTSecret != "env-secret" {
		t.Errorf("jwt secret = %q, want env-secret", cfg.Auth.JWTSecret)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
}
