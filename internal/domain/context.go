package domain

import (
	"context"
	"log/slog"
)

type contextKey string

const loggerContextKey contextKey = "logger"

func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger := ctx.Value(loggerContextKey)
	if logger == nil {
		logger = slog.Default()
	}

	return logger.(*slog.Logger)
}

const userContextKey contextKey = "user"

func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userContextKey, userID)
}

func UserIDFromContext(ctx context.Context) string {
	userID := ctx.Value(userContextKey)
	if userID == nil {
		userID = ""
	}
	return userID.(string)
}

// AuthMethod records which identity driver authenticated the request.
type AuthMethod string

const (
	AuthMethodAuth0   AuthMethod = "auth0"
	AuthMethodGateway AuthMethod = "gateway"
)

const authMethodContextKey contextKey = "auth_method"

func ContextWithAuthMethod(ctx context.Context, method AuthMethod) context.Context {
	return context.WithValue(ctx, authMethodContextKey, method)
}

func AuthMethodFromContext(ctx context.Context) AuthMethod {
	method, _ := ctx.Value(authMethodContextKey).(AuthMethod)
	return method
}

// RoleEditor lets the caller read unpublished articles.
const RoleEditor = "editor"

const rolesContextKey contextKey = "roles"

func ContextWithRoles(ctx context.Context, roles []string) context.Context {
	return context.WithValue(ctx, rolesContextKey, roles)
}

func RolesFromContext(ctx context.Context) []string {
	roles, _ := ctx.Value(rolesContextKey).([]string)
	return roles
}

// IsEditorFromContext reports whether the authenticated caller holds RoleEditor.
func IsEditorFromContext(ctx context.Context) bool {
	if UserIDFromContext(ctx) == "" {
		return false
	}
	for _, role := range RolesFromContext(ctx) {
		if role == RoleEditor {
			return true
		}
	}
	return false
}
