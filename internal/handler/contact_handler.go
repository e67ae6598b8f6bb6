package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hromada/hromada-api/internal/service"
	"github.com/hromada/hromada-api/pkg/logger"
)

type ContactHandler struct {
	contacts service.ContactService
	logger   *logger.Logger
}

func NewContactHandler(contacts service.ContactService, log *logger.Logger) *ContactHandler {
	return &ContactHandler{
		contacts: contacts,
		logger:   log,
	}
}

type contactRequest struct {
	ProjectID    string `json:"projectId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	Message      string `json:"message"`
}

func (h *ContactHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	contact, err := h.contacts.Create(ctx, service.ContactInput{
		ProjectID:    req.ProjectID,
		Name:         req.Name,
		Email:        req.Email,
		Organization: req.Organization,
		Message:      req.Message,
	})
	if err != nil {
		return writeError(c, err, "failed to submit inquiry")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":   true,
		"contactId": contact.ID,
		"message":   "Inquiry submitted successfully",
	})
}

func (h *ContactHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	contacts, err := h.contacts.List(ctx)
	if err != nil {
		h.logger.Error(ctx, "Failed to list contact inquiries",
			"error", err,
		)
		return writeError(c, err, "failed to fetch inquiries")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"contacts": contacts,
	})
}

type contactHandledRequest struct {
	Handled *bool `json:"handled"`
}

func (h *ContactHandler) SetHandled(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var req contactHandledRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}
	if req.Handled == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "handled must be a boolean",
		})
	}

	contact, err := h.contacts.SetHandled(ctx, id, *req.Handled)
	if err != nil {
		return writeError(c, err, "failed to update inquiry")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"contact": contact,
	})
}
