package controller

import (
	"log/slog"
	"net/http"

	"github.com/jbeshir/newsdesk/internal/domain"
)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		return r.WithContext(ctx)
	}
}

func testContextWithUserID(userID string, roles ...string) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		ctx = domain.ContextWithUserID(ctx, userID)
		ctx = domain.ContextWithRoles(ctx, roles)
		return r.WithContext(ctx)
	}
}
