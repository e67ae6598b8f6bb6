package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hromada/hromada-api/internal/service"
	"github.com/hromada/hromada-api/pkg/logger"
)

// UserHandler is the admin-only account management surface.
type UserHandler struct {
	users  service.UserService
	logger *logger.Logger
}

func NewUserHandler(users service.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		logger: log,
	}
}

func (h *UserHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.users.List(ctx)
	if err != nil {
		h.logger.Error(ctx, "Failed to list users",
			"error", err,
		)
		return writeError(c, err, "failed to fetch users")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"users": users,
	})
}

type createUserRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Role         string `json:"role"`
}

func (h *UserHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	user, err := h.users.Create(ctx, service.CreateUserInput{
		Email:        req.Email,
		Password:     req.Password,
		Name:         req.Name,
		Organization: req.Organization,
		Role:         req.Role,
	})
	if err != nil {
		return writeError(c, err, "failed to create user")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    user,
	})
}

func (h *UserHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	user, err := h.users.Get(ctx, id)
	if err != nil {
		return writeError(c, err, "failed to fetch user")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": user,
	})
}

type updateUserRequest struct {
	Name         *string `json:"name"`
	Organization *string `json:"organization"`
	Role         *string `json:"role"`
	Password     *string `json:"password"`
}

func (h *UserHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	user, err := h.users.Update(ctx, id, service.UserPatch{
		Name:         req.Name,
		Organization: req.Organization,
		Role:         req.Role,
		Password:     req.Password,
	})
	if err != nil {
		return writeError(c, err, "failed to update user")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    user,
	})
}

func (h *UserHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if err := h.users.Delete(ctx, id); err != nil {
		return writeError(c, err, "failed to delete user")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
