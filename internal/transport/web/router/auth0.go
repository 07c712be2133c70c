package router

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"

	"github.com/jbeshir/newsdesk/internal/domain"
)

const auth0AuthHeaderPrefix = "Bearer auth0|"

// auth0EditPermission is the API permission granting RoleEditor.
const auth0EditPermission = "articles:edit"

type auth0Claims struct {
	Permissions []string `json:"permissions"`
}

func (c *auth0Claims) Validate(_ context.Context) error {
	return nil
}

func rolesFromPermissions(permissions []string) []string {
	if slices.Contains(permissions, auth0EditPermission) {
		return []string{domain.RoleEditor}
	}
	return nil
}

// NewAuth0Validator creates a validator for Auth0 JWT tokens.
func NewAuth0Validator(auth0Domain, auth0Audience string) (AuthValidator, error) {
	issuerURL, err := url.Parse("https://" + auth0Domain + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse the issuer url: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{auth0Audience},
		validator.WithCustomClaims(func() validator.CustomClaims {
			return &auth0Claims{}
		}),
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, auth0AuthHeaderPrefix) {
			return nil, nil
		}

		token, err := jwtValidator.ValidateToken(r.Context(), authHeader[len(auth0AuthHeaderPrefix):])
		if err != nil {
			return nil, fmt.Errorf("invalid JWT token")
		}

		claims := token.(*validator.ValidatedClaims)
		result := &AuthResult{
			UserID: claims.RegisteredClaims.Subject,
			Method: domain.AuthMethodAuth0,
		}
		if custom, ok := claims.CustomClaims.(*auth0Claims); ok {
			result.Roles = rolesFromPermissions(custom.Permissions)
		}
		return result, nil
	}, nil
}
