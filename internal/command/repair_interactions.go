package command

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jbeshir/newsdesk/internal/datasources"
	"github.com/jbeshir/newsdesk/internal/domain"
	"github.com/jbeshir/newsdesk/internal/metrics"
)

const repairInvalidationConcurrency = 4

type RepairInteractionsResult struct {
	Removed int64 `json:"removed"`
}

// RepairInteractions collapses duplicate interaction rows down to the most recent row
// per key. It only ever deletes rows that have a newer sibling, so it is safe to run
// repeatedly and alongside live toggles.
type RepairInteractions struct {
	Duplicates  datasources.DuplicateInteractionRepository
	Invalidator *ArticleCacheInvalidator
}

func NewRepairInteractions(
	duplicates datasources.DuplicateInteractionRepository,
	invalidator *ArticleCacheInvalidator,
) *RepairInteractions {
	return &RepairInteractions{
		Duplicates:  duplicates,
		Invalidator: invalidator,
	}
}

func (c *RepairInteractions) Execute(ctx context.Context, _ Empty) (RepairInteractionsResult, error) {
	logger := domain.LoggerFromContext(ctx)

	groups, err := c.Duplicates.ListDuplicateInteractionGroups(ctx)
	if err != nil {
		return RepairInteractionsResult{}, fmt.Errorf("listing duplicate interactions: %w", err)
	}
	logger.InfoContext(ctx, "found duplicate interaction groups", "groups", len(groups))

	var result RepairInteractionsResult
	var affected []string
	seen := make(map[string]bool)
	for _, group := range groups {
		removed, err := c.Duplicates.CollapseDuplicateInteractions(ctx, group.InteractionKey)
		if err != nil {
			c.invalidateAll(ctx, affected)
			return result, fmt.Errorf("collapsing duplicates for article %s: %w", group.ArticleID, err)
		}
		if removed == 0 {
			continue
		}

		result.Removed += removed
		metrics.DuplicateInteractionsRemovedTotal.Add(float64(removed))
		logger.InfoContext(ctx, "collapsed duplicate interactions",
			"article_id", group.ArticleID,
			"user_id", group.UserID,
			"type", group.Type,
			"removed", removed)

		if !seen[group.ArticleID] {
			seen[group.ArticleID] = true
			affected = append(affected, group.ArticleID)
		}
	}

	c.invalidateAll(ctx, affected)

	logger.InfoContext(ctx, "interaction repair complete", "removed", result.Removed)
	return result, nil
}

// invalidateAll drops cached payloads for articles whose counts the repair may have
// changed. Failures are logged.
func (c *RepairInteractions) invalidateAll(ctx context.Context, articleIDs []string) {
	var g errgroup.Group
	g.SetLimit(repairInvalidationConcurrency)
	for _, articleID := range articleIDs {
		g.Go(func() error {
			if err := c.Invalidator.Invalidate(ctx, articleID); err != nil {
				domain.LoggerFromContext(ctx).WarnContext(ctx, "failed to invalidate article cache after repair",
					"article_id", articleID, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()
}
