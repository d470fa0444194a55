package config

import (
	"os"
	"time"
)

const (
	defaultFrontendURL = "https://piped.video"
	defaultBackendURL  = "https://pipedapi.adminforge.de"
)

// ListenAddr is the fixed address the embed service binds to.
const ListenAddr = "0.0.0.0:8080"

// Config captures the runtime configuration for the embed service.
type Config struct {
	FrontendURL    string
	BackendURL     string
	LogLevel       string
	BackendTimeout time.Duration
}

// Load reads configuration from environment variables. Values are not
// validated; a malformed URL surfaces later as a failed backend lookup.
func Load() (Config, error) {
	cfg := Config{
		FrontendURL:    resolve("FRONTEND_URL", defaultFrontendURL),
		BackendURL:     resolve("BACKEND_URL", defaultBackendURL),
		LogLevel:       getString("LOG_LEVEL", "info"),
		BackendTimeout: getDuration("BACKEND_TIMEOUT", 10*time.Second),
	}

	return cfg, nil
}

// resolve returns the variable's value whenever it is set, even if empty.
func resolve(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
