package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures environment driven configuration values for the dashboard
// service.
type Config struct {
	HTTPPort      int
	RoundsDSN     string
	SessionSecret string
	SessionTTL    time.Duration
	LogLevel      string

	// DatasetSeed pins the mock dataset generator; zero means a random
	// seed per process.
	DatasetSeed uint64

	// DemoPassword is assigned to every seeded demo account.
	DemoPassword string
}

// Load parses configuration values from the current process environment.
//
// The loader applies defaults for optional fields while validating required
// values, accumulating every missing or invalid entry into one error.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:     8080,
		RoundsDSN:    "file:dashboard.db?_foreign_keys=on",
		SessionTTL:   24 * time.Hour,
		LogLevel:     "info",
		DemoPassword: "mentorship-demo",
	}

	missing := make([]string, 0, 1)
	invalid := make([]string, 0, 2)

	if portValue := strings.TrimSpace(os.Getenv("DASHBOARD_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "DASHBOARD_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("DASHBOARD_ROUNDS_DSN")); dsn != "" {
		cfg.RoundsDSN = dsn
	}

	if secret := strings.TrimSpace(os.Getenv("DASHBOARD_SESSION_SECRET")); secret == "" {
		missing = append(missing, "DASHBOARD_SESSION_SECRET")
	} else {
		cfg.SessionSecret = secret
	}

	if ttlValue := strings.TrimSpace(os.Getenv("DASHBOARD_SESSION_TTL")); ttlValue != "" {
		ttl, err := time.ParseDuration(ttlValue)
		if err != nil || ttl <= 0 {
			invalid = append(invalid, "DASHBOARD_SESSION_TTL")
		} else {
			cfg.SessionTTL = ttl
		}
	}

	if level := strings.TrimSpace(os.Getenv("DASHBOARD_LOG_LEVEL")); level != "" {
		switch strings.ToLower(level) {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = strings.ToLower(level)
		default:
			invalid = append(invalid, "DASHBOARD_LOG_LEVEL")
		}
	}

	if seedValue := strings.TrimSpace(os.Getenv("DASHBOARD_DATASET_SEED")); seedValue != "" {
		seed, err := strconv.ParseUint(seedValue, 10, 64)
		if err != nil {
			invalid = append(invalid, "DASHBOARD_DATASET_SEED")
		} else {
			cfg.DatasetSeed = seed
		}
	}

	if password := strings.TrimSpace(os.Getenv("DASHBOARD_DEMO_PASSWORD")); password != "" {
		cfg.DemoPassword = password
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variable values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
