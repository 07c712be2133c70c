package app

import (
	"context"
	"time"

	"github.com/jbeshir/newsdesk/internal/retry"
)

const (
	defaultCacheDriver        = "memory"
	defaultMemoryCacheSize    = 10000
	defaultArticleCacheTTL    = 5 * time.Minute
	defaultRetryAttempts      = 3
	defaultRetryDelay         = time.Second
	defaultToggleTimeout      = 5 * time.Second
	defaultViewQueueSize      = 1000
	defaultArticleCacheMaxAge = 60 * time.Second
)

// DatastoreRetryConfig bounds how often a datastore call is attempted when the
// datastore cannot be reached.
func DatastoreRetryConfig(ctx context.Context) retry.Config {
	return retry.Config{
		MaxAttempts: GetEnvAsIntOrDefault(ctx, "DATASTORE_RETRY_ATTEMPTS", defaultRetryAttempts),
		Delay:       GetEnvAsDurationOrDefault(ctx, "DATASTORE_RETRY_DELAY", defaultRetryDelay),
	}
}

func ArticleCacheTTL(ctx context.Context) time.Duration {
	return GetEnvAsDurationOrDefault(ctx, "ARTICLE_CACHE_TTL", defaultArticleCacheTTL)
}
