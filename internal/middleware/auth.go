package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hromada/hromada-api/internal/auth"
	"github.com/hromada/hromada-api/internal/domain"
	"github.com/hromada/hromada-api/pkg/logger"
)

const sessionContextKey = "session"

// Session resolves the session cookie into an auth.Session and stores
// it on the echo context. It never rejects: public routes run with a
// nil session, protected routes add RequireRole on top.
func Session(tm *auth.TokenManager, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			session, err := tm.Verify(cookie.Value)
			if err != nil {
				return next(c)
			}

			c.Set(sessionContextKey, session)

			ctx := logger.WithUserID(c.Request().Context(), session.UserID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// SessionFrom returns the authenticated session, or nil for anonymous
// requests.
func SessionFrom(c echo.Context) *auth.Session {
	if s, ok := c.Get(sessionContextKey).(*auth.Session); ok {
		return s
	}
	return nil
}

// RequireRole rejects anonymous requests with 401 and authenticated
// requests whose role is not listed with 403.
func RequireRole(roles ...domain.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := SessionFrom(c)
			if session == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Unauthorized",
				})
			}

			for _, role := range roles {
				if session.Role == role {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, map[string]string{
				"error": "Forbidden",
			})
		}
	}
}
