package config

import (
	"os"
	"testing"
	"time"
)

func TestLoader_ParseEnvironment(t *testing.T) {

	t.Run("applies defaults when variables are missing", func(t *testing.T) {
		unset := []string{
			"DASHBOARD_HTTP_PORT",
			"DASHBOARD_ROUNDS_DSN",
			"DASHBOARD_SESSION_TTL",
			"DASHBOARD_LOG_LEVEL",
			"DASHBOARD_DATASET_SEED",
			"DASHBOARD_DEMO_PASSWORD",
		}
		for _, key := range unset {
			if err := os.Unsetenv(key); err != nil {
				t.Fatalf("failed to unset %s: %v", key, err)
			}
		}

		const secret = "super-secret"
		t.Setenv("DASHBOARD_SESSION_SECRET", secret)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 8080 {
			t.Fatalf("expected default HTTP port 8080, got %d", cfg.HTTPPort)
		}
		if cfg.RoundsDSN != "file:dashboard.db?_foreign_keys=on" {
			t.Fatalf("unexpected default DSN: %q", cfg.RoundsDSN)
		}
		if cfg.SessionSecret != secret {
			t.Fatalf("expected session secret to be %q, got %q", secret, cfg.SessionSecret)
		}
		if cfg.LogLevel != "info" {
			t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
		}
		if cfg.DatasetSeed != 0 {
			t.Fatalf("expected unpinned dataset seed, got %d", cfg.DatasetSeed)
		}
		if cfg.DemoPassword != "mentorship-demo" {
			t.Fatalf("unexpected default demo password: %q", cfg.DemoPassword)
		}
	})

	t.Run("errors when required values are missing", func(t *testing.T) {
		for _, key := range []string{
			"DASHBOARD_SESSION_SECRET",
			"DASHBOARD_HTTP_PORT",
			"DASHBOARD_ROUNDS_DSN",
		} {
			if err := os.Unsetenv(key); err != nil {
				t.Fatalf("failed to unset %s: %v", key, err)
			}
		}

		_, err := Load()
		if err == nil {
			t.Fatalf("expected error when required values are missing")
		}
		expected := "missing required environment variables: DASHBOARD_SESSION_SECRET"
		if err.Error() != expected {
			t.Fatalf("unexpected error message: %q", err.Error())
		}
	})

	t.Run("parses duration and numeric fields", func(t *testing.T) {
		t.Setenv("DASHBOARD_SESSION_SECRET", "secret-value")
		t.Setenv("DASHBOARD_HTTP_PORT", "9090")
		t.Setenv("DASHBOARD_ROUNDS_DSN", "file:/tmp/dashboard.db")
		t.Setenv("DASHBOARD_SESSION_TTL", "12h")
		t.Setenv("DASHBOARD_DATASET_SEED", "42")
		t.Setenv("DASHBOARD_LOG_LEVEL", "DEBUG")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.SessionTTL != 12*time.Hour {
			t.Fatalf("expected session TTL 12h, got %s", cfg.SessionTTL)
		}
		if cfg.HTTPPort != 9090 {
			t.Fatalf("expected HTTP port 9090, got %d", cfg.HTTPPort)
		}
		if cfg.RoundsDSN != "file:/tmp/dashboard.db" {
			t.Fatalf("unexpected DSN: %q", cfg.RoundsDSN)
		}
		if cfg.DatasetSeed != 42 {
			t.Fatalf("expected dataset seed 42, got %d", cfg.DatasetSeed)
		}
		if cfg.LogLevel != "debug" {
			t.Fatalf("expected log level debug, got %q", cfg.LogLevel)
		}
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		t.Setenv("DASHBOARD_SESSION_SECRET", "secret-value")
		t.Setenv("DASHBOARD_HTTP_PORT", "not-a-port")
		t.Setenv("DASHBOARD_DATASET_SEED", "-1")

		_, err := Load()
		if err == nil {
			t.Fatalf("expected error for malformed values")
		}
	})
}
