package datasources

import (
	"context"

	"github.com/jbeshir/newsdesk/internal/domain"
)

// DatasetRepository combines every Datastore Gateway operation.
type DatasetRepository interface {
	ArticleFetcher
	ArticleViewIncrementer
	AuthorFetcher
	InteractionToggler
	InteractionAggregator
	DuplicateInteractionRepository
}

// ArticleFetcher looks an article up by id or slug. An id match wins over a slug match.
// Returns domain.ErrNotFound when neither matches.
type ArticleFetcher interface {
	FetchArticle(ctx context.Context, idOrSlug string) (domain.Article, error)
}

type ArticleViewIncrementer interface {
	IncrementArticleViews(ctx context.Context, articleID string) error
}

// AuthorFetcher returns domain.ErrNotFound when the author record is missing.
type AuthorFetcher interface {
	FetchAuthor(ctx context.Context, authorID string) (domain.Author, error)
}

// InteractionToggler flips a user's interaction inside one transaction and reports
// whether the interaction exists afterwards. Returns domain.ErrInvalidTarget when the
// article is missing or unpublished.
type InteractionToggler interface {
	ToggleInteraction(
		ctx context.Context,
		articleID, userID string,
		interactionType domain.InteractionType,
	) (bool, error)
}

// InteractionAggregator computes counts for an article in a single round trip.
// userID may be empty. Returns nil counts when the article does not exist.
type InteractionAggregator interface {
	AggregateInteractions(ctx context.Context, articleID, userID string) (*domain.AggregateCounts, error)
}

type DuplicateInteractionLister interface {
	ListDuplicateInteractionGroups(ctx context.Context) ([]domain.DuplicateInteractionGroup, error)
}

// DuplicateInteractionCollapser deletes every row for key except the most recent one,
// returning the number of rows removed.
type DuplicateInteractionCollapser interface {
	CollapseDuplicateInteractions(ctx context.Context, key domain.InteractionKey) (int64, error)
}

type DuplicateInteractionRepository interface {
	DuplicateInteractionLister
	DuplicateInteractionCollapser
}
