package config

import "time"

// CacheConfig controls the catalog response cache. The catalog is
// immutable after seed, so cached GET bodies can live comfortably long;
// the TTL exists mainly so a reseeded database shows up eventually.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig reads CACHE_ENABLED, CACHE_TTL and CACHE_PREFIX with
// defaults suitable for the immutable catalog.
func LoadCacheConfig() CacheConfig {
	ttl, err := time.ParseDuration(getenv("CACHE_TTL", "5m"))
	if err != nil || ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return CacheConfig{
		Enabled: getenv("CACHE_ENABLED", "true") == "true",
		TTL:     ttl,
		Prefix:  getenv("CACHE_PREFIX", "cache"),
	}
}
