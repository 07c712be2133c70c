package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotPublishedError(t *testing.T) {
	err := fmt.Errorf("loading article: %w", &NotPublishedError{Status: ArticleStatusDraft})

	assert.ErrorIs(t, err, ErrNotPublished)
	assert.NotErrorIs(t, err, ErrNotFound)

	var npErr *NotPublishedError
	require.True(t, errors.As(err, &npErr))
	assert.Equal(t, ArticleStatusDraft, npErr.Status)
	assert.Contains(t, err.Error(), "draft")
}

func TestParseInteractionType(t *testing.T) {
	got, err := ParseInteractionType("save")
	require.NoError(t, err)
	assert.Equal(t, InteractionTypeSave, got)

	_, err = ParseInteractionType("share")
	assert.ErrorIs(t, err, ErrUnknownInteractionType)
}
