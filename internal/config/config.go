// Package config loads application configuration from environment
// variables. A .env file in the working directory is honored when
// present so local development does not need exported variables.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. StorageBackend selects which Storage
// implementation the server runs on; the database fields are only
// required for the mysql backend.
type Config struct {
	Env            string // APP_ENV: dev, test or prod
	Port           string // APP_PORT: HTTP port to listen on
	StorageBackend string // STORAGE_BACKEND: "memory" or "mysql"
	DBUser         string // DB_USER
	DBPass         string // DB_PASS (optional)
	DBHost         string // DB_HOST
	DBPort         string // DB_PORT
	DBName         string // DB_NAME
	JWTSecret      string // JWT_SECRET: signing key for access tokens
	AccessTTLMin   int    // ACCESS_TOKEN_TTL_MIN
	BcryptCost     int    // BCRYPT_COST
	EventsEnabled  bool   // EVENTS_ENABLED: publish submission events to RabbitMQ
}

// Load reads configuration from the environment. Missing required
// values are fatal; optional ones fall back to development defaults.
func Load() Config {
	_ = godotenv.Load() // best effort; absence of .env is fine

	cfg := Config{
		Env:            getenv("APP_ENV", "dev"),
		Port:           getenv("APP_PORT", "8080"),
		StorageBackend: getenv("STORAGE_BACKEND", "memory"),
		JWTSecret:      must("JWT_SECRET"),
		AccessTTLMin:   getenvInt("ACCESS_TOKEN_TTL_MIN", 60),
		BcryptCost:     getenvInt("BCRYPT_COST", 10),
		EventsEnabled:  getenv("EVENTS_ENABLED", "false") == "true",
	}
	if cfg.StorageBackend != "memory" && cfg.StorageBackend != "mysql" {
		log.Fatalf("unknown STORAGE_BACKEND: %q (want memory or mysql)", cfg.StorageBackend)
	}
	if cfg.StorageBackend == "mysql" {
		cfg.DBUser = must("DB_USER")
		cfg.DBPass = os.Getenv("DB_PASS")
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	}
	return cfg
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}
