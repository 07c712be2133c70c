package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jbeshir/newsdesk/internal/command"
	cmdmocks "github.com/jbeshir/newsdesk/internal/command/mocks"
	"github.com/jbeshir/newsdesk/internal/domain"
)

func TestArticleGet_ServeHTTP(t *testing.T) {
	testTime := time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)
	published := domain.ArticlePayload{
		Article: domain.Article{
			ID:        "a1",
			Slug:      "council-budget",
			Title:     "Council passes budget",
			Status:    domain.ArticleStatusPublished,
			UpdatedAt: testTime,
		},
		Author:   domain.Author{ID: "au1", Name: "Ada Reporter"},
		Keywords: []string{"budget"},
		Counts:   domain.AggregateCounts{Likes: 3, Saves: 1},
	}
	draft := published
	draft.Status = domain.ArticleStatusDraft

	cases := []struct {
		name          string
		setupContext  func(r *http.Request) *http.Request
		wantReq       command.GetArticleRequest
		result        command.GetArticleResult
		cmdErr        error
		wantStatus    int
		wantXCache    string
		wantCacheCtrl string
		wantBody      string
	}{
		{
			name:          "anonymous_miss",
			setupContext:  testContext(),
			wantReq:       command.GetArticleRequest{IDOrSlug: "council-budget"},
			result:        command.GetArticleResult{Payload: published},
			wantStatus:    http.StatusOK,
			wantXCache:    "MISS",
			wantCacheCtrl: "max-age=60",
		},
		{
			name:          "anonymous_hit",
			setupContext:  testContext(),
			wantReq:       command.GetArticleRequest{IDOrSlug: "council-budget"},
			result:        command.GetArticleResult{Payload: published, CacheHit: true},
			wantStatus:    http.StatusOK,
			wantXCache:    "HIT",
			wantCacheCtrl: "max-age=60",
		},
		{
			name:         "authenticated_not_http_cached",
			setupContext: testContextWithUserID("user456"),
			wantReq:      command.GetArticleRequest{IDOrSlug: "council-budget"},
			result:       command.GetArticleResult{Payload: published},
			wantStatus:   http.StatusOK,
			wantXCache:   "MISS",
		},
		{
			name:         "editor_reads_draft",
			setupContext: testContextWithUserID("editor1", domain.RoleEditor),
			wantReq:      command.GetArticleRequest{IDOrSlug: "council-budget", IsEditor: true},
			result:       command.GetArticleResult{Payload: draft},
			wantStatus:   http.StatusOK,
			wantXCache:   "MISS",
		},
		{
			name:         "not_found",
			setupContext: testContext(),
			wantReq:      command.GetArticleRequest{IDOrSlug: "council-budget"},
			cmdErr:       domain.ErrNotFound,
			wantStatus:   http.StatusNotFound,
			wantBody:     `{"error":"article not found"}`,
		},
		{
			name:         "not_published",
			setupContext: testContext(),
			wantReq:      command.GetArticleRequest{IDOrSlug: "council-budget"},
			cmdErr:       &domain.NotPublishedError{Status: domain.ArticleStatusDraft},
			wantStatus:   http.StatusForbidden,
			wantBody:     `{"error":"article not published","status":"draft"}`,
		},
		{
			name:         "datastore_unavailable",
			setupContext: testContext(),
			wantReq:      command.GetArticleRequest{IDOrSlug: "council-budget"},
			cmdErr:       errors.Join(domain.ErrDatastoreUnavailable, errors.New("connection refused")),
			wantStatus:   http.StatusServiceUnavailable,
			wantBody:     `{"error":"datastore unavailable"}`,
		},
		{
			name:         "unexpected_error",
			setupContext: testContext(),
			wantReq:      command.GetArticleRequest{IDOrSlug: "council-budget"},
			cmdErr:       errors.New("boom"),
			wantStatus:   http.StatusInternalServerError,
			wantBody:     `{"error":"internal error"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := cmdmocks.NewMockCommand[command.GetArticleRequest, command.GetArticleResult](t)
			cmd.EXPECT().Execute(mock.Anything, tc.wantReq).Return(tc.result, tc.cmdErr)

			controller := ArticleGet{
				GetArticleCmd: cmd,
				CacheMaxAge:   time.Minute,
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/articles/council-budget", nil)
			req = tc.setupContext(req)
			req = mux.SetURLVars(req, map[string]string{"article_id": "council-budget"})
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tc.wantStatus != http.StatusOK {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
				return
			}

			assert.Equal(t, tc.wantXCache, rec.Header().Get("X-Cache"))
			assert.Equal(t, tc.wantCacheCtrl, rec.Header().Get("Cache-Control"))

			var payload domain.ArticlePayload
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
			assert.Equal(t, tc.result.Payload, payload)
		})
	}
}
