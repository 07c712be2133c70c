package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jbeshir/newsdesk/internal/datasources"
	"github.com/jbeshir/newsdesk/internal/domain"
	"github.com/jbeshir/newsdesk/internal/metrics"
)

type GetArticleRequest struct {
	IDOrSlug string
	IsEditor bool
}

type GetArticleResult struct {
	Payload  domain.ArticlePayload
	CacheHit bool
}

// GetArticle serves article payloads cache-aside. Only published payloads are cached;
// editors may read unpublished articles, which are then never cached.
type GetArticle struct {
	ArticleFetcher        datasources.ArticleFetcher
	AuthorFetcher         datasources.AuthorFetcher
	InteractionAggregator datasources.InteractionAggregator
	Cache                 datasources.Cache
	ViewRecorder          ViewRecorder
	CacheTTL              time.Duration
}

func NewGetArticle(
	articleFetcher datasources.ArticleFetcher,
	authorFetcher datasources.AuthorFetcher,
	interactionAggregator datasources.InteractionAggregator,
	cache datasources.Cache,
	viewRecorder ViewRecorder,
	cacheTTL time.Duration,
) *GetArticle {
	return &GetArticle{
		ArticleFetcher:        articleFetcher,
		AuthorFetcher:         authorFetcher,
		InteractionAggregator: interactionAggregator,
		Cache:                 cache,
		ViewRecorder:          viewRecorder,
		CacheTTL:              cacheTTL,
	}
}

func (c *GetArticle) Execute(ctx context.Context, req GetArticleRequest) (GetArticleResult, error) {
	if req.IDOrSlug == "" {
		return GetArticleResult{}, domain.ErrNotFound
	}

	if payload, ok := c.lookupCache(ctx, req.IDOrSlug); ok {
		metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
		c.ViewRecorder.RecordView(ctx, payload.ID)
		return GetArticleResult{Payload: payload, CacheHit: true}, nil
	}
	metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()

	article, err := c.ArticleFetcher.FetchArticle(ctx, req.IDOrSlug)
	if err != nil {
		return GetArticleResult{}, fmt.Errorf("fetching article: %w", err)
	}
	if !article.IsPublished() && !req.IsEditor {
		return GetArticleResult{}, &domain.NotPublishedError{Status: article.Status}
	}

	payload, err := c.assemblePayload(ctx, article)
	if err != nil {
		return GetArticleResult{}, err
	}

	if article.IsPublished() && !c.recentlyInvalidated(ctx, article.ID) {
		c.storeCache(ctx, payload, req.IDOrSlug)
	}

	c.ViewRecorder.RecordView(ctx, article.ID)
	return GetArticleResult{Payload: payload}, nil
}

// lookupCache tries the id-keyed entry before the slug-keyed one.
func (c *GetArticle) lookupCache(ctx context.Context, idOrSlug string) (domain.ArticlePayload, bool) {
	logger := domain.LoggerFromContext(ctx)

	for _, key := range lookupCacheKeys(idOrSlug) {
		value, found, err := c.Cache.Get(ctx, key)
		if err != nil {
			logger.WarnContext(ctx, "cache lookup failed", "key", key, "error", err)
			continue
		}
		if !found {
			continue
		}

		var payload domain.ArticlePayload
		if err := json.Unmarshal(value, &payload); err != nil {
			logger.WarnContext(ctx, "discarding undecodable cache entry", "key", key, "error", err)
			_ = c.Cache.Delete(ctx, key)
			continue
		}
		if !payload.IsPublished() {
			continue
		}

		logger.DebugContext(ctx, "article cache hit", "key", key)
		return payload, true
	}

	logger.DebugContext(ctx, "article cache miss", "article", idOrSlug)
	return domain.ArticlePayload{}, false
}

func (c *GetArticle) assemblePayload(ctx context.Context, article domain.Article) (domain.ArticlePayload, error) {
	counts, err := c.InteractionAggregator.AggregateInteractions(ctx, article.ID, "")
	if err != nil {
		return domain.ArticlePayload{}, fmt.Errorf("aggregating interactions: %w", err)
	}
	if counts == nil {
		counts = &domain.AggregateCounts{}
	}

	payload := domain.ArticlePayload{
		Article:  article,
		Author:   c.fetchAuthor(ctx, article.AuthorID),
		Keywords: domain.DeriveKeywords(article),
		Counts:   *counts,
	}
	payload.Article.Keywords = ""
	payload.Article.MetaKeywords = ""
	payload.Article.Tags = nil

	return payload, nil
}

// fetchAuthor substitutes a placeholder when the author cannot be loaded.
func (c *GetArticle) fetchAuthor(ctx context.Context, authorID string) domain.Author {
	if authorID == "" {
		return domain.PlaceholderAuthor(authorID)
	}

	author, err := c.AuthorFetcher.FetchAuthor(ctx, authorID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			domain.LoggerFromContext(ctx).WarnContext(ctx, "failed to fetch author, using placeholder",
				"author_id", authorID, "error", err)
		}
		return domain.PlaceholderAuthor(authorID)
	}
	return author
}

// recentlyInvalidated reports whether an invalidation guard exists for articleID. The
// payload may then hold counts from before the invalidation, so it is not cached.
func (c *GetArticle) recentlyInvalidated(ctx context.Context, articleID string) bool {
	_, found, err := c.Cache.Get(ctx, ArticleGuardCacheKey(articleID))
	if err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "invalidation guard lookup failed",
			"article_id", articleID, "error", err)
		return true
	}
	return found
}

func (c *GetArticle) storeCache(ctx context.Context, payload domain.ArticlePayload, requested string) {
	logger := domain.LoggerFromContext(ctx)

	value, err := json.Marshal(payload)
	if err != nil {
		logger.WarnContext(ctx, "unable to encode article payload for cache", "error", err)
		return
	}

	for _, key := range storeCacheKeys(payload.Article, requested) {
		if err := c.Cache.Set(ctx, key, value, c.CacheTTL); err != nil {
			logger.WarnContext(ctx, "failed to cache article payload", "key", key, "error", err)
		}
	}
}
