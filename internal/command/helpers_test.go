package command

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jbeshir/newsdesk/internal/datasources/memory"
	"github.com/jbeshir/newsdesk/internal/domain"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func testCache() *memory.Cache {
	return memory.New(100, time.Hour)
}

func boolPtr(b bool) *bool {
	return &b
}

var testPublishedAt = time.Date(2024, 4, 27, 11, 13, 6, 0, time.UTC)

func publishedArticle() domain.Article {
	return domain.Article{
		ID:           "a1",
		Slug:         "council-budget",
		Title:        "Council passes budget",
		Status:       domain.ArticleStatusPublished,
		Views:        10,
		Content:      "Body",
		Excerpt:      "Short",
		Category:     "politics",
		AuthorID:     "au1",
		Keywords:     "budget, Council",
		MetaKeywords: "council;finance",
		Tags:         []string{"City Hall"},
		PublishedAt:  &testPublishedAt,
		UpdatedAt:    testPublishedAt,
	}
}

func cachedPayload(t *testing.T, cache *memory.Cache, key string) (domain.ArticlePayload, bool) {
	t.Helper()

	value, found, err := cache.Get(context.Background(), key)
	require.NoError(t, err)
	if !found {
		return domain.ArticlePayload{}, false
	}

	var payload domain.ArticlePayload
	require.NoError(t, json.Unmarshal(value, &payload))
	return payload, true
}

func isCached(t *testing.T, cache *memory.Cache, key string) bool {
	t.Helper()

	_, found, err := cache.Get(context.Background(), key)
	require.NoError(t, err)
	return found
}
