package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jbeshir/newsdesk/internal/command"
	"github.com/jbeshir/newsdesk/internal/domain"
)

type interactionToggleBody struct {
	ArticleID string `json:"articleId"`
}

type InteractionToggle struct {
	ToggleCmd command.Command[command.ToggleInteractionRequest, command.ToggleInteractionResult]
}

func (c InteractionToggle) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := domain.LoggerFromContext(r.Context())
	ctx := r.Context()

	interactionType, err := domain.ParseInteractionType(mux.Vars(r)["type"])
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var body interactionToggleBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ArticleID == "" {
		logger.WarnContext(ctx, "invalid toggle request body", "error", err)
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: "articleId is required"})
		return
	}

	userID := domain.UserIDFromContext(ctx)
	ctx = domain.ContextWithLogger(ctx, logger.With("article_id", body.ArticleID))

	res, err := c.ToggleCmd.Execute(ctx, command.ToggleInteractionRequest{
		ArticleID: body.ArticleID,
		UserID:    userID,
		Type:      interactionType,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, res)
}
