package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hromada/hromada-api/internal/service"
	"github.com/hromada/hromada-api/pkg/logger"
)

type NewsletterHandler struct {
	newsletter service.NewsletterService
	logger     *logger.Logger
}

func NewNewsletterHandler(newsletter service.NewsletterService, log *logger.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		newsletter: newsletter,
		logger:     log,
	}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	ctx := c.Request().Context()

	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	sub, err := h.newsletter.Subscribe(ctx, req.Email)
	if err != nil {
		return writeError(c, err, "failed to subscribe")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":      true,
		"subscriberId": sub.ID,
	})
}

func (h *NewsletterHandler) Unsubscribe(c echo.Context) error {
	ctx := c.Request().Context()

	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	if err := h.newsletter.Unsubscribe(ctx, req.Email); err != nil {
		return writeError(c, err, "failed to unsubscribe")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

func (h *NewsletterHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	subscribers, err := h.newsletter.ListSubscribers(ctx)
	if err != nil {
		h.logger.Error(ctx, "Failed to list subscribers",
			"error", err,
		)
		return writeError(c, err, "failed to fetch subscribers")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"subscribers": subscribers,
	})
}

func (h *NewsletterHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if err := h.newsletter.DeleteSubscriber(ctx, id); err != nil {
		return writeError(c, err, "failed to delete subscriber")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
