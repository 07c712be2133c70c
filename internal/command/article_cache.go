package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jbeshir/newsdesk/internal/datasources"
	"github.com/jbeshir/newsdesk/internal/domain"
)

// ArticleCacheKeyPrefix prefixes every cached article payload key.
const ArticleCacheKeyPrefix = "article:"

func ArticleIDCacheKey(id string) string {
	return ArticleCacheKeyPrefix + "id:" + id
}

func ArticleSlugCacheKey(slug string) string {
	return ArticleCacheKeyPrefix + "slug:" + slug
}

// ArticleGuardCacheKey marks an article as recently invalidated. While it exists,
// reads serve fresh payloads without caching them.
func ArticleGuardCacheKey(id string) string {
	return ArticleCacheKeyPrefix + "guard:" + id
}

// invalidationGuardTTL bounds how long a read that started before an invalidation may
// still be assembling its payload.
const invalidationGuardTTL = 2 * time.Second

// lookupCacheKeys lists the keys a read for idOrSlug tries, id first.
func lookupCacheKeys(idOrSlug string) []string {
	return []string{ArticleIDCacheKey(idOrSlug), ArticleSlugCacheKey(idOrSlug)}
}

// articleCacheKeys lists every key a payload for article may be stored under.
func articleCacheKeys(article domain.Article) []string {
	return []string{ArticleIDCacheKey(article.ID), ArticleSlugCacheKey(article.Slug)}
}

// storeCacheKeys lists the keys a payload read via requested is stored under. The slug
// key is written only when requested resolved as a slug, which means no article had
// it as an id; otherwise a later read of a value that is this slug and another
// article's id would be served this article.
func storeCacheKeys(article domain.Article, requested string) []string {
	keys := []string{ArticleIDCacheKey(article.ID)}
	if requested == article.Slug && requested != article.ID {
		keys = append(keys, ArticleSlugCacheKey(article.Slug))
	}
	return keys
}

// ArticleCacheInvalidator deletes every cached payload for an article.
type ArticleCacheInvalidator struct {
	ArticleFetcher datasources.ArticleFetcher
	Cache          datasources.Cache
}

func NewArticleCacheInvalidator(
	articleFetcher datasources.ArticleFetcher,
	cache datasources.Cache,
) *ArticleCacheInvalidator {
	return &ArticleCacheInvalidator{
		ArticleFetcher: articleFetcher,
		Cache:          cache,
	}
}

// Invalidate deletes the keys derived from idOrSlug itself and, when the article can
// be resolved, the keys for its canonical id and slug. A failed lookup still deletes
// the derived keys and is only logged.
func (i *ArticleCacheInvalidator) Invalidate(ctx context.Context, idOrSlug string) error {
	logger := domain.LoggerFromContext(ctx)

	keys := lookupCacheKeys(idOrSlug)
	guardIDs := []string{idOrSlug}
	article, err := i.ArticleFetcher.FetchArticle(ctx, idOrSlug)
	switch {
	case err == nil:
		keys = append(keys, articleCacheKeys(article)...)
		if article.ID != idOrSlug {
			guardIDs = append(guardIDs, article.ID)
		}
	case errors.Is(err, domain.ErrNotFound):
	default:
		logger.WarnContext(ctx, "unable to resolve article for cache invalidation",
			"article", idOrSlug, "error", err)
	}

	// Guards go in before the delete so a read racing it cannot re-cache old counts.
	for _, id := range guardIDs {
		if err := i.Cache.Set(ctx, ArticleGuardCacheKey(id), []byte{1}, invalidationGuardTTL); err != nil {
			logger.WarnContext(ctx, "unable to set invalidation guard", "article", id, "error", err)
		}
	}

	if err := i.Cache.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("deleting cached article payloads: %w", err)
	}

	logger.DebugContext(ctx, "invalidated cached article", "article", idOrSlug, "keys", keys)
	return nil
}

// InvalidateArticle is the operator entry point for dropping an article's cached
// payloads after the authoring subsystem edits it.
type InvalidateArticle struct {
	Invalidator *ArticleCacheInvalidator
}

func NewInvalidateArticle(invalidator *ArticleCacheInvalidator) *InvalidateArticle {
	return &InvalidateArticle{Invalidator: invalidator}
}

func (c *InvalidateArticle) Execute(ctx context.Context, idOrSlug string) (Empty, error) {
	if idOrSlug == "" {
		return Empty{}, domain.ErrNotFound
	}
	if err := c.Invalidator.Invalidate(ctx, idOrSlug); err != nil {
		return Empty{}, err
	}
	return Empty{}, nil
}

// InvalidateAllArticles drops every cached article payload, for use after bulk edits.
type InvalidateAllArticles struct {
	Cache datasources.Cache
}

func NewInvalidateAllArticles(cache datasources.Cache) *InvalidateAllArticles {
	return &InvalidateAllArticles{Cache: cache}
}

func (c *InvalidateAllArticles) Execute(ctx context.Context, _ Empty) (Empty, error) {
	if err := c.Cache.DeletePrefix(ctx, ArticleCacheKeyPrefix); err != nil {
		return Empty{}, fmt.Errorf("deleting cached article payloads: %w", err)
	}
	domain.LoggerFromContext(ctx).InfoContext(ctx, "invalidated all cached articles")
	return Empty{}, nil
}
