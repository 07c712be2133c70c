package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/newsdesk/internal/datasources"
	"github.com/jbeshir/newsdesk/internal/domain"
)

type GetInteractionStateRequest struct {
	ArticleID string
	UserID    string
}

// InteractionState is the lightweight counts view for one article and user.
type InteractionState struct {
	Likes     int64 `json:"likes"`
	Saves     int64 `json:"saves"`
	UserLiked bool  `json:"userLiked"`
	UserSaved bool  `json:"userSaved"`
}

type GetInteractionState struct {
	InteractionAggregator datasources.InteractionAggregator
}

func NewGetInteractionState(interactionAggregator datasources.InteractionAggregator) *GetInteractionState {
	return &GetInteractionState{InteractionAggregator: interactionAggregator}
}

// Execute returns domain.ErrNotFound when the article does not exist. UserID may be
// empty, in which case both user flags are false.
func (c *GetInteractionState) Execute(
	ctx context.Context, req GetInteractionStateRequest,
) (InteractionState, error) {
	if req.ArticleID == "" {
		return InteractionState{}, domain.ErrNotFound
	}

	counts, err := c.InteractionAggregator.AggregateInteractions(ctx, req.ArticleID, req.UserID)
	if err != nil {
		return InteractionState{}, fmt.Errorf("aggregating interactions: %w", err)
	}
	if counts == nil {
		return InteractionState{}, domain.ErrNotFound
	}

	state := InteractionState{
		Likes: counts.Likes,
		Saves: counts.Saves,
	}
	if counts.UserLiked != nil {
		state.UserLiked = *counts.UserLiked
	}
	if counts.UserSaved != nil {
		state.UserSaved = *counts.UserSaved
	}
	return state, nil
}
