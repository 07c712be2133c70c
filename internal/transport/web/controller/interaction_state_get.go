package controller

import (
	"net/http"

	"github.com/jbeshir/newsdesk/internal/command"
	"github.com/jbeshir/newsdesk/internal/domain"
)

// InteractionStateGet reports counts for an article and the flags of userId, which
// defaults to the authenticated caller.
type InteractionStateGet struct {
	StateCmd command.Command[command.GetInteractionStateRequest, command.InteractionState]
}

func (c InteractionStateGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query()
	articleID := query.Get("articleId")
	if articleID == "" {
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: "articleId is required"})
		return
	}
	userID := query.Get("userId")
	if userID == "" {
		userID = domain.UserIDFromContext(ctx)
	}

	state, err := c.StateCmd.Execute(ctx, command.GetInteractionStateRequest{
		ArticleID: articleID,
		UserID:    userID,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, state)
}
