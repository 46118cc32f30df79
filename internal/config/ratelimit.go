package config

import "time"

// RateLimitConfig controls the token bucket applied to form POSTs.
// Limits are per client IP per route.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int           // bucket size (burst)
	RefillInterval time.Duration // one token refilled per interval
	TTL            time.Duration // idle bucket expiry in redis
	Prefix         string
}

// LoadRateLimitConfig reads RATE_LIMIT_* variables with defaults tuned
// for a human filling in a form, not an API client.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled:        getenv("RATE_LIMIT_ENABLED", "true") == "true",
		Capacity:       getenvInt("RATE_LIMIT_CAPACITY", 10),
		RefillInterval: 6 * time.Second,
		TTL:            10 * time.Minute,
		Prefix:         getenv("RATE_LIMIT_PREFIX", "rl"),
	}
	if d, err := time.ParseDuration(getenv("RATE_LIMIT_REFILL_INTERVAL", "")); err == nil && d > 0 {
		cfg.RefillInterval = d
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = 1
	}
	if minTTL := 5 * cfg.RefillInterval; cfg.TTL < minTTL {
		cfg.TTL = minTTL
	}
	return cfg
}
