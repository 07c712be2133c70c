package domain

import "time"

// InteractionType is a kind of per-user toggle on an article.
type InteractionType string

const (
	InteractionTypeLike InteractionType = "like"
	InteractionTypeSave InteractionType = "save"
)

// InteractionTypes lists every supported interaction type, in aggregation order.
var InteractionTypes = []InteractionType{
	InteractionTypeLike,
	InteractionTypeSave,
}

// ParseInteractionType validates a raw interaction type name.
func ParseInteractionType(s string) (InteractionType, error) {
	for _, t := range InteractionTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", ErrUnknownInteractionType
}

// Interaction is a single stored toggle row. Rows are inserted and deleted, never updated.
type Interaction struct {
	ID        string
	ArticleID string
	UserID    string
	Type      InteractionType
	CreatedAt time.Time
}

// InteractionKey identifies the logical owner of an interaction row.
// At most one row should exist per key.
type InteractionKey struct {
	ArticleID string
	UserID    string
	Type      InteractionType
}

// DuplicateInteractionGroup is a key that currently has more than one row.
type DuplicateInteractionGroup struct {
	InteractionKey
	Rows int64
}

// AggregateCounts are derived totals for one article, plus the acting user's flags
// when a user was supplied.
type AggregateCounts struct {
	Likes     int64 `json:"likes_count"`
	Saves     int64 `json:"saves_count"`
	UserLiked *bool `json:"user_liked,omitempty"`
	UserSaved *bool `json:"user_saved,omitempty"`
}
