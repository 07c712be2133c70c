package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jbeshir/newsdesk/internal/command"
	"github.com/jbeshir/newsdesk/internal/domain"
)

type errorResponse struct {
	Error  string `json:"error"`
	Status string `json:"status,omitempty"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

// writeError maps err onto the response status and body. Unrecognised errors are
// logged and reported as a bare internal error.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	logger := domain.LoggerFromContext(ctx)

	var notPublished *domain.NotPublishedError
	switch {
	case errors.As(err, &notPublished):
		writeJSON(ctx, w, http.StatusForbidden, errorResponse{
			Error:  domain.ErrNotPublished.Error(),
			Status: string(notPublished.Status),
		})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(ctx, w, http.StatusNotFound, errorResponse{Error: domain.ErrNotFound.Error()})
	case errors.Is(err, domain.ErrInvalidTarget):
		writeJSON(ctx, w, http.StatusNotFound, errorResponse{Error: domain.ErrInvalidTarget.Error()})
	case errors.Is(err, domain.ErrUnknownInteractionType):
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: domain.ErrUnknownInteractionType.Error()})
	case errors.Is(err, command.ErrAnonymousToggle):
		writeJSON(ctx, w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
	case errors.Is(err, domain.ErrDatastoreUnavailable):
		logger.ErrorContext(ctx, "datastore unavailable", "error", err)
		w.Header().Set("Retry-After", "1")
		writeJSON(ctx, w, http.StatusServiceUnavailable, errorResponse{Error: domain.ErrDatastoreUnavailable.Error()})
	default:
		logger.ErrorContext(ctx, "request failed", "error", err)
		writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
