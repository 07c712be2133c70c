package datasources

import (
	"context"
	"errors"
	"time"

	"github.com/jbeshir/newsdesk/internal/domain"
	"github.com/jbeshir/newsdesk/internal/metrics"
)

// Cache is a key/value store with TTL. Values are opaque bytes; callers serialise.
// Get reports a miss with found=false and a nil error.
type Cache interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// NullCache never stores anything.
type NullCache struct{}

var _ Cache = NullCache{}

func (NullCache) Get(_ context.Context, _ string) ([]byte, bool, error) {
	return nil, false, nil
}

func (NullCache) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return nil
}

func (NullCache) Delete(_ context.Context, _ ...string) error {
	return nil
}

func (NullCache) DeletePrefix(_ context.Context, _ string) error {
	return nil
}

// FailSafeCache wraps a backend so that backend failures degrade to misses and no-ops.
// Failures are logged and counted, and never returned.
type FailSafeCache struct {
	Backend Cache
}

var _ Cache = FailSafeCache{}

func (c FailSafeCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, found, err := c.Backend.Get(ctx, key)
	if err != nil {
		c.report(ctx, "get", key, err)
		return nil, false, nil
	}
	return value, found, nil
}

func (c FailSafeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.Backend.Set(ctx, key, value, ttl); err != nil {
		c.report(ctx, "set", key, err)
	}
	return nil
}

func (c FailSafeCache) Delete(ctx context.Context, keys ...string) error {
	if err := c.Backend.Delete(ctx, keys...); err != nil {
		c.report(ctx, "delete", "", err)
	}
	return nil
}

func (c FailSafeCache) DeletePrefix(ctx context.Context, prefix string) error {
	if err := c.Backend.DeletePrefix(ctx, prefix); err != nil {
		c.report(ctx, "delete_prefix", prefix, err)
	}
	return nil
}

func (c FailSafeCache) report(ctx context.Context, operation, key string, err error) {
	if !errors.Is(err, domain.ErrCacheUnavailable) {
		err = errors.Join(domain.ErrCacheUnavailable, err)
	}
	metrics.CacheErrorsTotal.WithLabelValues(operation).Inc()
	domain.LoggerFromContext(ctx).WarnContext(ctx, "cache operation failed, bypassing cache",
		"operation", operation, "key", key, "error", err)
}
