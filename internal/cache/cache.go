package cache

import (
	"time"

	"github.com/coocood/freecache"
)

const megabyte = 1024 * 1024

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Clear()
}

var _ Cache = (*MemCache)(nil)

// MemCache is a size bounded in-process cache with per-entry expiration.
type MemCache struct {
	mainCache *freecache.Cache
}

func NewMemCache(sizeMB int) *MemCache {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	return &MemCache{
		mainCache: freecache.NewCache(sizeMB * megabyte),
	}
}

func (c *MemCache) Get(key string) ([]byte, bool) {
	val, err := c.mainCache.Get([]byte(key))
	if err != nil {
		// freecache.ErrNotFound, incl. expired entries
		return nil, false
	}
	return val, true
}

func (c *MemCache) Set(key string, value []byte, ttl time.Duration) error {
	return c.mainCache.Set([]byte(key), value, int(ttl.Seconds()))
}

func (c *MemCache) Clear() {
	c.mainCache.Clear()
}
