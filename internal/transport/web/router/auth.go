package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/netip"
	"strings"

	"github.com/jbeshir/newsdesk/internal/domain"
)

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	UserID string
	Method domain.AuthMethod
	Roles  []string
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue // This validator doesn't apply
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
					return
				}

				ctx := domain.ContextWithUserID(r.Context(), result.UserID)
				ctx = domain.ContextWithAuthMethod(ctx, result.Method)
				ctx = domain.ContextWithRoles(ctx, result.Roles)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// No validator matched - continue without auth (for public endpoints)
			next.ServeHTTP(w, r)
		})
	}
}

const (
	GatewayUserHeader  = "X-Authenticated-User"
	GatewayRolesHeader = "X-Authenticated-Roles"
)

// ParseTrustedProxies parses a list of CIDR prefixes or bare addresses.
func ParseTrustedProxies(values []string) ([]netip.Prefix, error) {
	var prefixes []netip.Prefix
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if !strings.Contains(v, "/") {
			addr, err := netip.ParseAddr(v)
			if err != nil {
				return nil, fmt.Errorf("parsing trusted proxy [%s]: %w", v, err)
			}
			prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
			continue
		}
		prefix, err := netip.ParsePrefix(v)
		if err != nil {
			return nil, fmt.Errorf("parsing trusted proxy [%s]: %w", v, err)
		}
		prefixes = append(prefixes, prefix.Masked())
	}
	if len(prefixes) == 0 {
		return nil, fmt.Errorf("no trusted proxies configured")
	}
	return prefixes, nil
}

// NewGatewayValidator trusts identity headers set by an authenticating reverse proxy,
// but only on connections from trustedProxies. Identity headers from anywhere else
// are rejected.
func NewGatewayValidator(trustedProxies []netip.Prefix) AuthValidator {
	return func(r *http.Request) (*AuthResult, error) {
		userID, present := headerValue(r, GatewayUserHeader)
		_, rolesPresent := headerValue(r, GatewayRolesHeader)
		if !present && !rolesPresent {
			return nil, nil
		}
		if !fromTrustedProxy(r, trustedProxies) {
			return nil, fmt.Errorf("identity headers from untrusted address %s", r.RemoteAddr)
		}
		if !present {
			return nil, fmt.Errorf("%s without %s", GatewayRolesHeader, GatewayUserHeader)
		}
		userID = strings.TrimSpace(userID)
		if userID == "" {
			return nil, fmt.Errorf("empty %s header", GatewayUserHeader)
		}

		var roles []string
		for _, role := range strings.Split(r.Header.Get(GatewayRolesHeader), ",") {
			if role = strings.TrimSpace(role); role != "" {
				roles = append(roles, role)
			}
		}

		return &AuthResult{
			UserID: userID,
			Method: domain.AuthMethodGateway,
			Roles:  roles,
		}, nil
	}
}

func fromTrustedProxy(r *http.Request, trustedProxies []netip.Prefix) bool {
	addrPort, err := netip.ParseAddrPort(r.RemoteAddr)
	if err != nil {
		return false
	}
	addr := addrPort.Addr().Unmap()
	for _, prefix := range trustedProxies {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

func headerValue(r *http.Request, name string) (string, bool) {
	values, ok := r.Header[http.CanonicalHeaderKey(name)]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}
