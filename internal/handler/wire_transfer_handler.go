package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hromada/hromada-api/internal/domain"
	"github.com/hromada/hromada-api/internal/service"
	"github.com/hromada/hromada-api/pkg/logger"
)

type WireTransferHandler struct {
	transfers service.WireTransferService
	logger    *logger.Logger
}

func NewWireTransferHandler(transfers service.WireTransferService, log *logger.Logger) *WireTransferHandler {
	return &WireTransferHandler{
		transfers: transfers,
		logger:    log,
	}
}

type wireTransferRequest struct {
	ReferenceNumber string     `json:"referenceNumber"`
	RecipientName   string     `json:"recipientName"`
	ProjectID       string     `json:"projectId"`
	ProjectName     string     `json:"projectName"`
	AmountUsd       flexString `json:"amountUsd"`
}

func (h *WireTransferHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req wireTransferRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	transfer, err := h.transfers.Create(ctx, service.WireTransferInput{
		ReferenceNumber: req.ReferenceNumber,
		RecipientName:   req.RecipientName,
		ProjectID:       req.ProjectID,
		ProjectName:     req.ProjectName,
		AmountUsd:       string(req.AmountUsd),
	})
	if err != nil {
		return writeError(c, err, "failed to record wire transfer")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":  true,
		"transfer": transfer,
	})
}

func (h *WireTransferHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	transfers, err := h.transfers.List(ctx)
	if err != nil {
		h.logger.Error(ctx, "Failed to list wire transfers",
			"error", err,
		)
		return writeError(c, err, "failed to fetch wire transfers")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"transfers": transfers,
	})
}

type wireTransferStatusRequest struct {
	Status string `json:"status"`
}

func (h *WireTransferHandler) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var req wireTransferStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	transfer, err := h.transfers.UpdateStatus(ctx, id, domain.WireTransferStatus(req.Status))
	if err != nil {
		return writeError(c, err, "failed to update wire transfer")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":  true,
		"transfer": transfer,
	})
}
