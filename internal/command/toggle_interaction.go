package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jbeshir/newsdesk/internal/datasources"
	"github.com/jbeshir/newsdesk/internal/domain"
	"github.com/jbeshir/newsdesk/internal/metrics"
)

// ErrAnonymousToggle is returned when a toggle arrives without a resolved user.
var ErrAnonymousToggle = errors.New("toggling an interaction requires an authenticated user")

type ToggleInteractionRequest struct {
	ArticleID string
	UserID    string
	Type      domain.InteractionType
}

type ToggleInteractionResult struct {
	NewState bool `json:"newState"`
}

// ToggleInteraction flips a user's interaction and then invalidates the article's
// cached payloads so the next read sees fresh counts.
type ToggleInteraction struct {
	InteractionToggler datasources.InteractionToggler
	Invalidator        *ArticleCacheInvalidator

	// Timeout bounds the toggle transaction, including datastore retries.
	Timeout time.Duration
}

func NewToggleInteraction(
	interactionToggler datasources.InteractionToggler,
	invalidator *ArticleCacheInvalidator,
	timeout time.Duration,
) *ToggleInteraction {
	return &ToggleInteraction{
		InteractionToggler: interactionToggler,
		Invalidator:        invalidator,
		Timeout:            timeout,
	}
}

func (c *ToggleInteraction) Execute(
	ctx context.Context, req ToggleInteractionRequest,
) (ToggleInteractionResult, error) {
	if req.UserID == "" {
		return ToggleInteractionResult{}, ErrAnonymousToggle
	}
	if _, err := domain.ParseInteractionType(string(req.Type)); err != nil {
		return ToggleInteractionResult{}, err
	}
	if req.ArticleID == "" {
		return ToggleInteractionResult{}, domain.ErrInvalidTarget
	}

	logger := domain.LoggerFromContext(ctx).With(
		"article_id", req.ArticleID, "user_id", req.UserID, "type", req.Type)
	ctx = domain.ContextWithLogger(ctx, logger)

	toggleCtx := ctx
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		toggleCtx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	newState, err := c.InteractionToggler.ToggleInteraction(toggleCtx, req.ArticleID, req.UserID, req.Type)
	if err != nil {
		if errors.Is(err, domain.ErrCommitOutcomeUnknown) {
			c.invalidate(ctx, req.ArticleID)
		}
		return ToggleInteractionResult{}, fmt.Errorf("toggling interaction: %w", err)
	}

	metrics.InteractionTogglesTotal.WithLabelValues(string(req.Type), strconv.FormatBool(newState)).Inc()
	logger.DebugContext(ctx, "toggled interaction", "new_state", newState)

	c.invalidate(ctx, req.ArticleID)

	return ToggleInteractionResult{NewState: newState}, nil
}

func (c *ToggleInteraction) invalidate(ctx context.Context, articleID string) {
	if err := c.Invalidator.Invalidate(ctx, articleID); err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "failed to invalidate article cache after toggle",
			"error", err)
	}
}
