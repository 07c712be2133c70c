// Package resilient decorates the Datastore Gateway with bounded retries for
// connectivity failures. It keeps no health state between calls.
package resilient

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbeshir/newsdesk/internal/datasources"
	"github.com/jbeshir/newsdesk/internal/domain"
	"github.com/jbeshir/newsdesk/internal/metrics"
	"github.com/jbeshir/newsdesk/internal/retry"
)

var _ datasources.DatasetRepository = (*Repository)(nil)

type Repository struct {
	inner   datasources.DatasetRepository
	retrier *retry.Retrier
}

// New wraps inner so that calls failing with an error isConnectivityError accepts are
// retried per config. Once the attempts run out the error wraps
// domain.ErrDatastoreUnavailable.
func New(
	inner datasources.DatasetRepository,
	config retry.Config,
	isConnectivityError retry.ErrorClassifier,
) *Repository {
	retrier := retry.NewRetrier(config, func(err error) bool {
		return !errors.Is(err, domain.ErrCommitOutcomeUnknown) && isConnectivityError(err)
	})
	retrier.OnRetry = func(operation string, _ int, _ error) {
		metrics.DatastoreRetriesTotal.WithLabelValues(operation).Inc()
	}
	return &Repository{inner: inner, retrier: retrier}
}

func call[T any](
	ctx context.Context,
	r *Repository,
	operation string,
	fn func(ctx context.Context) (T, error),
) (T, error) {
	var result T
	err := r.retrier.Do(ctx, operation, func(ctx context.Context) error {
		var err error
		result, err = fn(ctx)
		return err
	})
	if errors.Is(err, retry.ErrAttemptsExhausted) {
		metrics.DatastoreUnavailableTotal.WithLabelValues(operation).Inc()
		var zero T
		return zero, fmt.Errorf("%w: %w", domain.ErrDatastoreUnavailable, err)
	}
	return result, err
}

func (r *Repository) FetchArticle(ctx context.Context, idOrSlug string) (domain.Article, error) {
	return call(ctx, r, "fetch_article", func(ctx context.Context) (domain.Article, error) {
		return r.inner.FetchArticle(ctx, idOrSlug)
	})
}

func (r *Repository) IncrementArticleViews(ctx context.Context, articleID string) error {
	_, err := call(ctx, r, "increment_article_views", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, r.inner.IncrementArticleViews(ctx, articleID)
	})
	return err
}

func (r *Repository) FetchAuthor(ctx context.Context, authorID string) (domain.Author, error) {
	return call(ctx, r, "fetch_author", func(ctx context.Context) (domain.Author, error) {
		return r.inner.FetchAuthor(ctx, authorID)
	})
}

// ToggleInteraction is retried only when the transaction failed before commit, as the
// gateway rolls back and reports an ambiguous commit with ErrCommitOutcomeUnknown.
func (r *Repository) ToggleInteraction(
	ctx context.Context,
	articleID, userID string,
	interactionType domain.InteractionType,
) (bool, error) {
	return call(ctx, r, "toggle_interaction", func(ctx context.Context) (bool, error) {
		return r.inner.ToggleInteraction(ctx, articleID, userID, interactionType)
	})
}

func (r *Repository) AggregateInteractions(
	ctx context.Context, articleID, userID string,
) (*domain.AggregateCounts, error) {
	return call(ctx, r, "aggregate_interactions", func(ctx context.Context) (*domain.AggregateCounts, error) {
		return r.inner.AggregateInteractions(ctx, articleID, userID)
	})
}

func (r *Repository) ListDuplicateInteractionGroups(ctx context.Context) ([]domain.DuplicateInteractionGroup, error) {
	return call(ctx, r, "list_duplicate_interactions",
		func(ctx context.Context) ([]domain.DuplicateInteractionGroup, error) {
			return r.inner.ListDuplicateInteractionGroups(ctx)
		})
}

func (r *Repository) CollapseDuplicateInteractions(ctx context.Context, key domain.InteractionKey) (int64, error) {
	return call(ctx, r, "collapse_duplicate_interactions", func(ctx context.Context) (int64, error) {
		return r.inner.CollapseDuplicateInteractions(ctx, key)
	})
}
