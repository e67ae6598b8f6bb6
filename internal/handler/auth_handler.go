package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hromada/hromada-api/internal/auth"
	"github.com/hromada/hromada-api/internal/middleware"
	"github.com/hromada/hromada-api/internal/service"
	"github.com/hromada/hromada-api/pkg/logger"
)

type AuthHandler struct {
	users      service.UserService
	tokens     *auth.TokenManager
	cookieName string
	logger     *logger.Logger
}

func NewAuthHandler(users service.UserService, tokens *auth.TokenManager, cookieName string, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		users:      users,
		tokens:     tokens,
		cookieName: cookieName,
		logger:     log,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	user, err := h.users.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return writeError(c, err, "failed to sign in")
	}

	token, err := h.tokens.Issue(user.ID, user.Role)
	if err != nil {
		h.logger.Error(ctx, "Failed to issue session token",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to sign in",
		})
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokens.TTL() / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"user": map[string]interface{}{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

// Status reports who the session cookie belongs to, if anyone.
func (h *AuthHandler) Status(c echo.Context) error {
	ctx := c.Request().Context()

	sess := middleware.SessionFrom(c)
	if sess == nil {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"authenticated": false,
		})
	}

	user, err := h.users.Get(ctx, sess.UserID)
	if err != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"authenticated": false,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"user": map[string]interface{}{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}
