package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jbeshir/newsdesk/internal/command"
	cmdmocks "github.com/jbeshir/newsdesk/internal/command/mocks"
	"github.com/jbeshir/newsdesk/internal/domain"
)

func TestInteractionToggle_ServeHTTP(t *testing.T) {
	cases := []struct {
		name            string
		interactionType string
		body            string
		setupContext    func(r *http.Request) *http.Request
		wantCmdReq      *command.ToggleInteractionRequest
		result          command.ToggleInteractionResult
		cmdErr          error
		wantStatus      int
		wantBody        string
	}{
		{
			name:            "like_on",
			interactionType: "like",
			body:            `{"articleId":"a1"}`,
			setupContext:    testContextWithUserID("user456"),
			wantCmdReq: &command.ToggleInteractionRequest{
				ArticleID: "a1", UserID: "user456", Type: domain.InteractionTypeLike,
			},
			result:     command.ToggleInteractionResult{NewState: true},
			wantStatus: http.StatusOK,
			wantBody:   `{"newState":true}`,
		},
		{
			name:            "save_off",
			interactionType: "save",
			body:            `{"articleId":"a1"}`,
			setupContext:    testContextWithUserID("user456"),
			wantCmdReq: &command.ToggleInteractionRequest{
				ArticleID: "a1", UserID: "user456", Type: domain.InteractionTypeSave,
			},
			result:     command.ToggleInteractionResult{NewState: false},
			wantStatus: http.StatusOK,
			wantBody:   `{"newState":false}`,
		},
		{
			name:            "unknown_type",
			interactionType: "bookmark",
			body:            `{"articleId":"a1"}`,
			setupContext:    testContextWithUserID("user456"),
			wantStatus:      http.StatusBadRequest,
			wantBody:        `{"error":"unknown interaction type"}`,
		},
		{
			name:            "malformed_body",
			interactionType: "like",
			body:            `{"articleId":`,
			setupContext:    testContextWithUserID("user456"),
			wantStatus:      http.StatusBadRequest,
			wantBody:        `{"error":"articleId is required"}`,
		},
		{
			name:            "missing_article_id",
			interactionType: "like",
			body:            `{}`,
			setupContext:    testContextWithUserID("user456"),
			wantStatus:      http.StatusBadRequest,
			wantBody:        `{"error":"articleId is required"}`,
		},
		{
			name:            "anonymous",
			interactionType: "like",
			body:            `{"articleId":"a1"}`,
			setupContext:    testContext(),
			wantCmdReq: &command.ToggleInteractionRequest{
				ArticleID: "a1", Type: domain.InteractionTypeLike,
			},
			cmdErr:     command.ErrAnonymousToggle,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"authentication required"}`,
		},
		{
			name:            "invalid_target",
			interactionType: "like",
			body:            `{"articleId":"a1"}`,
			setupContext:    testContextWithUserID("user456"),
			wantCmdReq: &command.ToggleInteractionRequest{
				ArticleID: "a1", UserID: "user456", Type: domain.InteractionTypeLike,
			},
			cmdErr:     domain.ErrInvalidTarget,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"invalid interaction target"}`,
		},
		{
			name:            "transaction_failure",
			interactionType: "like",
			body:            `{"articleId":"a1"}`,
			setupContext:    testContextWithUserID("user456"),
			wantCmdReq: &command.ToggleInteractionRequest{
				ArticleID: "a1", UserID: "user456", Type: domain.InteractionTypeLike,
			},
			cmdErr:     errors.Join(domain.ErrCommitOutcomeUnknown, errors.New("connection lost")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal error"}`,
		},
		{
			name:            "datastore_unavailable",
			interactionType: "save",
			body:            `{"articleId":"a1"}`,
			setupContext:    testContextWithUserID("user456"),
			wantCmdReq: &command.ToggleInteractionRequest{
				ArticleID: "a1", UserID: "user456", Type: domain.InteractionTypeSave,
			},
			cmdErr:     domain.ErrDatastoreUnavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"error":"datastore unavailable"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := cmdmocks.NewMockCommand[command.ToggleInteractionRequest, command.ToggleInteractionResult](t)
			if tc.wantCmdReq != nil {
				cmd.EXPECT().Execute(mock.Anything, *tc.wantCmdReq).Return(tc.result, tc.cmdErr)
			}

			controller := InteractionToggle{ToggleCmd: cmd}

			req := httptest.NewRequest(http.MethodPost, "/v1/interactions/"+tc.interactionType,
				strings.NewReader(tc.body))
			req = tc.setupContext(req)
			req = mux.SetURLVars(req, map[string]string{"type": tc.interactionType})
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.JSONEq(t, tc.wantBody, rec.Body.String())
		})
	}
}
