// Package middleware resolves the request identity from a bearer
// token and enforces per-route authorization policies.
//
// Identity resolution and authorization are two separate phases:
// Authenticate runs on every request and only attaches an identity
// when a valid token resolves to an existing user; RequireAuth and
// RequireRole decide, per route, whether an absent or insufficient
// identity short-circuits the request.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/NemesisGuy/portfolioforge-backend/internal/repository"
	"github.com/NemesisGuy/portfolioforge-backend/internal/token"
)

const identityKey = "auth_identity"

// Identity is the request-scoped result of token verification plus a
// store lookup. It lives for one request only.
type Identity struct {
	UserID   int64
	Username string
	Role     string
}

// Authenticate inspects the Authorization header and, when a valid
// bearer token resolves to an existing user, attaches the identity to
// the request context. It never fails the request: public routes must
// stay reachable with a missing or invalid token.
func Authenticate(codec *token.Codec, users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := bearerToken(c.Request().Header.Get("Authorization"))
			if tokenString == "" {
				return next(c)
			}
			claims, err := codec.Verify(tokenString)
			if err != nil {
				// Logged server-side only; the client never learns
				// whether the token was expired, forged or garbled.
				slog.Debug("bearer token rejected", "error", err)
				return next(c)
			}
			u, err := users.GetByUsername(c.Request().Context(), claims.Subject)
			if errors.Is(err, repository.ErrNotFound) {
				slog.Debug("token subject no longer resolvable", "subject", claims.Subject)
				return next(c)
			}
			if err != nil {
				// A store failure is not an authentication decision;
				// surfacing it keeps an outage from reading as 401.
				return err
			}
			c.Set(identityKey, &Identity{UserID: u.ID, Username: u.Username, Role: u.Role})
			return next(c)
		}
	}
}

func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// CurrentIdentity returns the identity attached by Authenticate, or
// nil for an unauthenticated request.
func CurrentIdentity(c echo.Context) *Identity {
	if id, ok := c.Get(identityKey).(*Identity); ok {
		return id
	}
	return nil
}

// RequireAuth rejects requests that carry no resolved identity.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentIdentity(c) == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}
		return next(c)
	}
}

// RequireRole rejects unauthenticated requests with 401 and
// authenticated requests whose role does not match with 403.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := CurrentIdentity(c)
			if id == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}
			if id.Role != role {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Forbidden"})
			}
			return next(c)
		}
	}
}
