package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	RedisAddr   string // empty means in-process cache
	CacheTTL    time.Duration
	RateLimit   int
	RateWindow  time.Duration
	PresetsFile string // empty means built-in presets
}

func Default() Config {
	return Config{
		Port:       8080,
		CacheTTL:   10 * time.Minute,
		RateLimit:  60,
		RateWindow: time.Minute,
	}
}

// Load reads an optional .env file and then the ROI_* environment variables
// on top of the defaults.
func Load() (Config, error) {
	if err := loadDotenv(".env"); err != nil {
		return Config{}, err
	}
	return FromEnv(os.Getenv)
}

// loadDotenv loads path into the environment. A missing file is not an error.
func loadDotenv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := getenv("ROI_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return cfg, fmt.Errorf("invalid ROI_PORT %q", v)
		}
		cfg.Port = port
	}

	cfg.RedisAddr = getenv("ROI_REDIS_ADDR")
	cfg.PresetsFile = getenv("ROI_PRESETS_FILE")

	if v := getenv("ROI_CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl < 0 {
			return cfg, fmt.Errorf("invalid ROI_CACHE_TTL %q", v)
		}
		cfg.CacheTTL = ttl
	}

	if v := getenv("ROI_RATE_LIMIT"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			return cfg, fmt.Errorf("invalid ROI_RATE_LIMIT %q", v)
		}
		cfg.RateLimit = limit
	}

	if v := getenv("ROI_RATE_WINDOW"); v != "" {
		window, err := time.ParseDuration(v)
		if err != nil || window <= 0 {
			return cfg, fmt.Errorf("invalid ROI_RATE_WINDOW %q", v)
		}
		cfg.RateWindow = window
	}

	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
