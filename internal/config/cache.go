package config

import (
	"time"
)

// CacheConfig defines settings for the venue map cache middleware.
// When Enabled is false or no Redis client is available the middleware
// becomes a pass-through.  TTL bounds how stale a cached map may be
// after a venue reload on another instance; Prefix namespaces the
// cache keys.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: getenv("CACHE_ENABLED", "true") == "true",
		TTL:     parseDur(getenv("CACHE_TTL", "60s")),
		Prefix:  getenv("CACHE_PREFIX", "seatselect:cache"),
	}
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Minute
	}
	return d
}
