package clawbr

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type cacheEntry struct {
	body      []byte
	fetchedAt time.Time
}

// responseCache keeps raw response bodies by path. Each read decides freshness with its
// own window; the LRU TTL only bounds how long anything is kept at all.
type responseCache struct {
	lru *expirable.LRU[string, cacheEntry]
	now func() time.Time
}

func newResponseCache(size int, ttl time.Duration) *responseCache {
	if size <= 0 {
		return nil
	}
	return &responseCache{
		lru: expirable.NewLRU[string, cacheEntry](size, nil, ttl),
		now: time.Now,
	}
}

func (c *responseCache) get(path string, freshness time.Duration) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	entry, ok := c.lru.Get(path)
	if !ok || c.now().Sub(entry.fetchedAt) >= freshness {
		return nil, false
	}
	return entry.body, true
}

func (c *responseCache) put(path string, body []byte) {
	if c == nil {
		return
	}
	c.lru.Add(path, cacheEntry{body: body, fetchedAt: c.now()})
}
