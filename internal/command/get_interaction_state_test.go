package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jbeshir/newsdesk/internal/datasources/mocks"
	"github.com/jbeshir/newsdesk/internal/domain"
)

func TestGetInteractionState_Execute(t *testing.T) {
	cases := []struct {
		name    string
		req     GetInteractionStateRequest
		counts  *domain.AggregateCounts
		want    InteractionState
		wantErr error
	}{
		{
			name: "with_user",
			req:  GetInteractionStateRequest{ArticleID: "a1", UserID: "u1"},
			counts: &domain.AggregateCounts{
				Likes: 3, Saves: 1, UserLiked: boolPtr(true), UserSaved: boolPtr(false),
			},
			want: InteractionState{Likes: 3, Saves: 1, UserLiked: true, UserSaved: false},
		},
		{
			name:   "anonymous",
			req:    GetInteractionStateRequest{ArticleID: "a1"},
			counts: &domain.AggregateCounts{Likes: 2},
			want:   InteractionState{Likes: 2},
		},
		{
			name:    "missing_article",
			req:     GetInteractionStateRequest{ArticleID: "missing", UserID: "u1"},
			counts:  nil,
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			aggregator := mocks.NewMockInteractionAggregator(t)
			aggregator.EXPECT().
				AggregateInteractions(mock.Anything, tc.req.ArticleID, tc.req.UserID).
				Return(tc.counts, nil)

			got, err := NewGetInteractionState(aggregator).Execute(testContext(), tc.req)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetInteractionState_EmptyArticleID(t *testing.T) {
	aggregator := mocks.NewMockInteractionAggregator(t)

	_, err := NewGetInteractionState(aggregator).Execute(testContext(), GetInteractionStateRequest{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
