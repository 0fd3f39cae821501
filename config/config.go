package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/yeremiapane/restaurant-client/storage"
	"github.com/yeremiapane/restaurant-client/utils"
)

// Config carries everything the client core needs from the environment.
type Config struct {
	APIBaseURL    string
	StorageDriver string // memory, sqlite, mysql, postgres or redis
	SQLitePath    string
	DSN           string
	RedisAddr     string
	SignInPath    string
}

// Load reads .env (when present) and the process environment. A missing
// .env is normal in production and only logged.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Printf("no .env file loaded: %v", err)
	}

	return Config{
		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:8080"),
		StorageDriver: getEnv("STORAGE_DRIVER", "sqlite"),
		SQLitePath:    getEnv("SQLITE_PATH", "restaurant-client.db"),
		DSN:           os.Getenv("STORAGE_DSN"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		SignInPath:    getEnv("STAFF_SIGNIN_PATH", "/staff/login"),
	}
}

// OpenStore builds the device store selected by StorageDriver.
func (c Config) OpenStore() (storage.Store, error) {
	switch c.StorageDriver {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "redis":
		return storage.NewRedisStore(c.RedisAddr), nil
	case "sqlite", "":
		return storage.OpenGorm("sqlite", c.SQLitePath)
	default:
		return storage.OpenGorm(c.StorageDriver, c.DSN)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
