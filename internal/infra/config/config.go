package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates application configuration values loaded from environment
// variables.
type Config struct {
	Env             string
	HTTPAddr        string
	HotelAPIURL     string
	HotelAPITimeout time.Duration
	PaymentsURL     string
	PaymentsTimeout time.Duration
	SessionTTL      time.Duration
	SessionSweep    time.Duration
	MetricsEnabled  bool
	ServiceName     string
}

// Load parses configuration from the current environment. A .env file in the
// working directory is applied first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:         getEnv("APP_ENV", "dev"),
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		HotelAPIURL: os.Getenv("HOTEL_API_URL"),
		PaymentsURL: getEnv("PAYMENTS_API_URL", ""),
		ServiceName: getEnv("SERVICE_NAME", "hotelfront"),
	}

	hotelTimeout, err := parseDurationEnv("HOTEL_API_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.HotelAPITimeout = hotelTimeout

	paymentsTimeout, err := parseDurationEnv("PAYMENTS_API_TIMEOUT", 15*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.PaymentsTimeout = paymentsTimeout

	sessionTTL, err := parseDurationEnv("SESSION_TTL", 30*time.Minute)
	if err != nil {
		return Config{}, err
	}
	cfg.SessionTTL = sessionTTL

	sweep, err := parseDurationEnv("SESSION_SWEEP_INTERVAL", time.Minute)
	if err != nil {
		return Config{}, err
	}
	cfg.SessionSweep = sweep

	metricsEnabled, err := parseBoolEnv("METRICS_ENABLED", true)
	if err != nil {
		return Config{}, err
	}
	cfg.MetricsEnabled = metricsEnabled

	if cfg.HotelAPIURL == "" {
		return Config{}, fmt.Errorf("HOTEL_API_URL is required")
	}
	if cfg.PaymentsURL == "" {
		// The gateway fronting the payment processor lives behind the same
		// backend deployment unless pointed elsewhere.
		cfg.PaymentsURL = cfg.HotelAPIURL
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}

func parseBoolEnv(key string, def bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	switch raw {
	case "1", "t", "true", "yes", "on":
		return true, nil
	case "0", "f", "false", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid %s boolean: %q", key, raw)
	}
}
