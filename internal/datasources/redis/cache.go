package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jbeshir/newsdesk/internal/datasources"
	"github.com/jbeshir/newsdesk/internal/domain"
)

const (
	scanBatchSize   = 1000
	deleteBatchSize = 200
)

var _ datasources.Cache = (*Cache)(nil)

// Cache stores values in Redis with per-key expiry.
type Cache struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// Connect parses a redis:// URL and checks the server is reachable. An unreachable
// server is only logged; the client reconnects on later commands.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing Redis URL: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "redis unreachable at startup, cache bypassed until it recovers",
			"addr", opts.Addr, "error", err)
	}
	return rdb, nil
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, unavailable("getting key", err)
	}
	return b, true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return unavailable("setting key", err)
	}
	return nil
}

func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return unavailable("deleting keys", err)
	}
	return nil
}

// DeletePrefix removes every key starting with prefix, deleting in pipelined batches
// while scanning.
func (c *Cache) DeletePrefix(ctx context.Context, prefix string) error {
	iter := c.rdb.Scan(ctx, 0, escapeGlob(prefix)+"*", scanBatchSize).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%deleteBatchSize == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return unavailable("deleting scanned keys", err)
			}
		}
	}
	if err := iter.Err(); err != nil {
		return unavailable("scanning keys", err)
	}
	if n%deleteBatchSize != 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return unavailable("deleting scanned keys", err)
		}
	}
	return nil
}

var globEscaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`?`, `\?`,
	`[`, `\[`,
	`]`, `\]`,
)

// escapeGlob quotes the characters SCAN MATCH treats as pattern syntax.
func escapeGlob(s string) string {
	return globEscaper.Replace(s)
}

func (c *Cache) Close() error {
	return c.rdb.Close()
}

func unavailable(action string, err error) error {
	return fmt.Errorf("%s: %w: %w", action, domain.ErrCacheUnavailable, err)
}
