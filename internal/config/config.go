package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort           = "8000"
	DefaultDBPath         = "./database.json"
	DefaultCacheTTL       = 2 * time.Hour
	DefaultMaxUploadBytes = 2 * 1024 * 1024
)

type Config struct {
	Port   string
	DBPath string
	Debug  bool

	JWTSecret     string
	AdminEmail    string
	AdminPassword string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	MaxUploadBytes int64
	LogLevel       string
}

// Load reads an optional .env file at envPath, then the environment.
// A missing .env file is not an error.
func Load(envPath string) (Config, error) {
	if envPath != "" {
		godotenv.Load(envPath)
	}

	cfg := Config{
		Port:           getEnv("PORT", DefaultPort),
		DBPath:         getEnv("DB_PATH", DefaultDBPath),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		CacheTTL:       DefaultCacheTTL,
		MaxUploadBytes: DefaultMaxUploadBytes,
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
	}

	var err error
	if v := os.Getenv("REDIS_DB"); v != "" {
		cfg.RedisDB, err = strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("REDIS_DB: %w", err)
		}
	}

	if v := os.Getenv("CACHE_TTL"); v != "" {
		cfg.CacheTTL, err = time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("CACHE_TTL: %w", err)
		}
	}

	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		cfg.MaxUploadBytes, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("MAX_UPLOAD_BYTES: %w", err)
		}
	}

	return cfg, nil
}

func (cfg Config) Addr() string {
	return ":" + cfg.Port
}

func getEnv(key string, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
