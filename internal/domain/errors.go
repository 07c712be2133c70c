package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested article does not exist.
	ErrNotFound = errors.New("article not found")

	// ErrNotPublished is matched by *NotPublishedError.
	ErrNotPublished = errors.New("article not published")

	// ErrDatastoreUnavailable is returned once the datastore retry budget is exhausted.
	ErrDatastoreUnavailable = errors.New("datastore unavailable")

	// ErrInvalidTarget is returned when a toggle targets a missing or unpublished article.
	ErrInvalidTarget = errors.New("invalid interaction target")

	// ErrCacheUnavailable is reported by cache backends and never leaves the cache layer.
	ErrCacheUnavailable = errors.New("cache unavailable")

	// ErrUnknownInteractionType is returned for interaction types outside InteractionTypes.
	ErrUnknownInteractionType = errors.New("unknown interaction type")

	// ErrCommitOutcomeUnknown wraps commit failures, after which the transaction may or
	// may not have been applied. Operations failing this way must not be retried.
	ErrCommitOutcomeUnknown = errors.New("commit outcome unknown")
)

// NotPublishedError reports an article that exists but is not visible to the caller.
type NotPublishedError struct {
	Status ArticleStatus
}

func (e *NotPublishedError) Error() string {
	return fmt.Sprintf("article not published (status %s)", e.Status)
}

func (e *NotPublishedError) Is(target error) bool {
	return target == ErrNotPublished
}
