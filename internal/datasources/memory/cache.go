package memory

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/jbeshir/newsdesk/internal/datasources"
)

var _ datasources.Cache = (*Cache)(nil)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Cache is an in-process, size-bounded LRU. Per-key TTLs are honoured on read, and
// maxTTL bounds how long any entry may stay resident.
type Cache struct {
	lru *expirable.LRU[string, entry]
	now func() time.Time
}

func New(size int, maxTTL time.Duration) *Cache {
	return &Cache{
		lru: expirable.NewLRU[string, entry](size, nil, maxTTL),
		now: time.Now,
	}
}

func (c *Cache) Get(_ context.Context, key string) ([]byte, bool, error) {
	e, ok := c.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		c.lru.Remove(key)
		return nil, false, nil
	}
	return e.value, true, nil
}

func (c *Cache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := entry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.lru.Add(key, e)
	return nil
}

func (c *Cache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		c.lru.Remove(key)
	}
	return nil
}

func (c *Cache) DeletePrefix(_ context.Context, prefix string) error {
	for _, key := range c.lru.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.lru.Remove(key)
		}
	}
	return nil
}

// Len reports the number of resident entries, including any not yet evicted after
// their per-key TTL passed.
func (c *Cache) Len() int {
	return c.lru.Len()
}
