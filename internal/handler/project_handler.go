package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hromada/hromada-api/internal/domain"
	"github.com/hromada/hromada-api/internal/service"
	"github.com/hromada/hromada-api/pkg/logger"
)

type ProjectHandler struct {
	projects service.ProjectService
	logger   *logger.Logger
}

func NewProjectHandler(projects service.ProjectService, log *logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		projects: projects,
		logger:   log,
	}
}

func (h *ProjectHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	projects, err := h.projects.List(ctx)
	if err != nil {
		h.logger.Error(ctx, "Failed to list projects",
			"error", err,
		)
		return writeError(c, err, "failed to fetch projects")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"projects": projects,
	})
}

func (h *ProjectHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	project, err := h.projects.Get(ctx, id)
	if err != nil {
		return writeError(c, err, "failed to fetch project")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"project": project,
	})
}

type projectStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus lets nonprofit managers move a published project between
// funnel stages (OPEN, IN_DISCUSSION, MATCHED, FULFILLED).
func (h *ProjectHandler) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var req projectStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	project, err := h.projects.UpdateStatus(ctx, id, domain.ProjectStatus(req.Status))
	if err != nil {
		return writeError(c, err, "failed to update project")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"project": project,
	})
}
