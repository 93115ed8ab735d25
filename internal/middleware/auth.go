package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shoplite/shoplite/internal/auth"
)

const userIDKey = "auth.user_id"

// RequireAuth verifies the Authorization bearer token and stores the
// authenticated user ID on the request context.
func RequireAuth(tokens *auth.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid bearer token")
			}

			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// UserID returns the authenticated user ID set by RequireAuth, or uuid.Nil
// on unauthenticated requests.
func UserID(c echo.Context) uuid.UUID {
	if id, ok := c.Get(userIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
