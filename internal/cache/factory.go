package cache

import (
	"github.com/studentportal/portal/config"
)

// NewFromConfig creates the in-memory cache from the two configured TTL classes.
func NewFromConfig(cfg *config.Config) *Cache {
	return New(cfg.Cache.TTL, cfg.StaticTTL)
}
