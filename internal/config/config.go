package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Store drivers.
const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Config is read from the environment, optionally seeded from a .env file.
type Config struct {
	Port             string
	StoreDriver      string
	StorePath        string
	StoreDatabaseURL string
	RedisAddr        string
	OutputDir        string
	ChromePath       string
	AutosaveDelay    time.Duration
	LoadDelay        time.Duration
	LogLevel         string
}

// Load reads envFile (when it exists) into the process environment without
// overriding variables that are already set, then builds the configuration.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return Config{}, errors.Wrapf(err, "failed to load env file: %s", envFile)
		}
	}

	cfg := Config{
		Port:             getenv("PORT", "3000"),
		StoreDriver:      strings.ToLower(getenv("STORE_DRIVER", DriverFile)),
		StorePath:        getenv("STORE_PATH", "resume-data/store"),
		StoreDatabaseURL: os.Getenv("STORE_DATABASE_URL"),
		RedisAddr:        firstEnv("REDIS_ADDR", "REDIS_URL"),
		OutputDir:        getenv("OUTPUT_DIR", "resume-data/generated"),
		ChromePath:       os.Getenv("CHROME_PATH"),
		LogLevel:         getenv("LOG_LEVEL", "info"),
	}

	var err error
	cfg.AutosaveDelay, err = durationEnv("AUTOSAVE_DELAY", 2*time.Second)
	if err != nil {
		return cfg, err
	}
	cfg.LoadDelay, err = durationEnv("LOAD_DELAY", 800*time.Millisecond)
	if err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "config validation failed")
	}
	return cfg, nil
}

// Validate checks that the selected store driver has what it needs.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case DriverFile:
		if c.StorePath == "" {
			return errors.New("STORE_PATH is required for the file store")
		}
	case DriverMemory:
	case DriverPostgres:
		if c.StoreDatabaseURL == "" {
			return errors.New("STORE_DATABASE_URL is required for the postgres store")
		}
	case DriverRedis:
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR (or REDIS_URL) is required for the redis store")
		}
	default:
		return errors.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	if c.AutosaveDelay <= 0 {
		return errors.New("AUTOSAVE_DELAY must be positive")
	}
	if c.LoadDelay < 0 {
		return errors.New("LOAD_DELAY must not be negative")
	}
	if c.OutputDir == "" {
		return errors.New("OUTPUT_DIR is required")
	}
	return nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	return d, nil
}
