package domain

import (
	"time"
)

// ArticleStatus is the editorial lifecycle state of an article.
type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusPublished ArticleStatus = "published"
	ArticleStatusArchived  ArticleStatus = "archived"
)

// Article is an article row as stored by the authoring subsystem.
// Only Views is ever written by this service.
type Article struct {
	ID           string        `json:"id"`
	Slug         string        `json:"slug"`
	Title        string        `json:"title"`
	Status       ArticleStatus `json:"status"`
	Views        int64         `json:"views"`
	Content      string        `json:"content"`
	Excerpt      string        `json:"excerpt"`
	Category     string        `json:"category"`
	AuthorID     string        `json:"author_id"`
	Keywords     string        `json:"-"`
	MetaKeywords string        `json:"-"`
	Tags         []string      `json:"-"`
	PublishedAt  *time.Time    `json:"published_at,omitempty"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (a Article) IsPublished() bool {
	return a.Status == ArticleStatusPublished
}

// Author is the public profile attached to an article payload.
type Author struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Bio       string `json:"bio,omitempty"`
}

// UnknownAuthorName is used when an article's author record cannot be loaded.
const UnknownAuthorName = "Unknown author"

// PlaceholderAuthor returns the author shown when the author record is missing.
func PlaceholderAuthor(authorID string) Author {
	return Author{ID: authorID, Name: UnknownAuthorName}
}

// ArticlePayload is the enriched article served to readers and stored in the cache.
type ArticlePayload struct {
	Article
	Author   Author          `json:"author"`
	Keywords []string        `json:"keywords"`
	Counts   AggregateCounts `json:"counts"`
}
