package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	StorageDriver string // one of memory, postgres, redis
	DatabaseURL   string // postgres connection url, required for the postgres driver
	RedisURL      string // redis connection url, required for the redis driver
	SentryDSN     string // optional, empty disables error reporting
	Env           string // either prod or dev
}

func LoadConfig() (Config, error) {
	storageDriver := strings.ToLower(os.Getenv("STORAGE_DRIVER"))
	if storageDriver == "" {
		return Config{}, fmt.Errorf("STORAGE_DRIVER cannot be empty")
	}
	switch storageDriver {
	case "memory", "postgres", "redis":
	default:
		return Config{}, fmt.Errorf("unsupported STORAGE_DRIVER %s", storageDriver)
	}
	databaseURL := os.Getenv("DATABASE_URL")
	if storageDriver == "postgres" && databaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL cannot be empty")
	}
	redisURL := os.Getenv("REDIS_URL")
	if storageDriver == "redis" && redisURL == "" {
		return Config{}, fmt.Errorf("REDIS_URL cannot be empty")
	}
	env := strings.ToLower(os.Getenv("ENV"))
	if env == "" {
		return Config{}, fmt.Errorf("ENV cannot be empty")
	}

	return Config{
		StorageDriver: storageDriver,
		DatabaseURL:   databaseURL,
		RedisURL:      redisURL,
		SentryDSN:     os.Getenv("SENTRY_DSN"),
		Env:           env,
	}, nil
}
