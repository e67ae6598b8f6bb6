package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hromada/hromada-api/internal/domain"
	"github.com/hromada/hromada-api/internal/middleware"
	"github.com/hromada/hromada-api/internal/service"
	"github.com/hromada/hromada-api/pkg/logger"
)

type DonationHandler struct {
	donations service.DonationService
	logger    *logger.Logger
}

func NewDonationHandler(donations service.DonationService, log *logger.Logger) *DonationHandler {
	return &DonationHandler{
		donations: donations,
		logger:    log,
	}
}

type confirmDonationRequest struct {
	ProjectID         string     `json:"projectId"`
	ProjectName       string     `json:"projectName"`
	PaymentMethod     string     `json:"paymentMethod"`
	DonorName         string     `json:"donorName"`
	DonorEmail        string     `json:"donorEmail"`
	DonorOrganization string     `json:"donorOrganization"`
	Amount            flexString `json:"amount"`
	ReferenceNumber   string     `json:"referenceNumber"`
	Message           string     `json:"message"`
}

// Confirm creates a PENDING_CONFIRMATION donation record.
func (h *DonationHandler) Confirm(c echo.Context) error {
	ctx := c.Request().Context()

	var req confirmDonationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	result, err := h.donations.Confirm(ctx, service.ConfirmDonationInput{
		ProjectID:         req.ProjectID,
		ProjectName:       req.ProjectName,
		PaymentMethod:     req.PaymentMethod,
		DonorName:         req.DonorName,
		DonorEmail:        req.DonorEmail,
		DonorOrganization: req.DonorOrganization,
		Amount:            string(req.Amount),
		ReferenceNumber:   req.ReferenceNumber,
		Message:           req.Message,
	})
	if err != nil {
		return writeError(c, err, "failed to confirm donation")
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success":    true,
		"donationId": result.Donation.ID,
		"isNewDonor": result.IsNewDonor,
		"message":    result.Message,
	})
}

func (h *DonationHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	donations, err := h.donations.List(ctx)
	if err != nil {
		h.logger.Error(ctx, "Failed to list donations",
			"error", err,
		)
		return writeError(c, err, "failed to fetch donations")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"donations": donations,
	})
}

// donorDonationView is the donor-facing projection of a donation.
// Internal notes and reference numbers stay admin-only.
type donorDonationView struct {
	ID            string                `json:"id"`
	ProjectID     *string               `json:"projectId"`
	ProjectName   string                `json:"projectName"`
	Amount        *float64              `json:"amount"`
	PaymentMethod domain.PaymentMethod  `json:"paymentMethod"`
	Status        domain.DonationStatus `json:"status"`
	SubmittedAt   time.Time             `json:"submittedAt"`
	ReceivedAt    *time.Time            `json:"receivedAt"`
}

// ListOwn returns the session donor's donations, newest first.
func (h *DonationHandler) ListOwn(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.SessionFrom(c)

	donations, err := h.donations.ListByDonor(ctx, sess.UserID)
	if err != nil {
		h.logger.Error(ctx, "Failed to list donor donations",
			"error", err,
		)
		return writeError(c, err, "failed to fetch donations")
	}

	views := make([]donorDonationView, 0, len(donations))
	for _, d := range donations {
		views = append(views, donorDonationView{
			ID:            d.ID,
			ProjectID:     d.ProjectID,
			ProjectName:   d.ProjectName,
			Amount:        d.Amount,
			PaymentMethod: d.PaymentMethod,
			Status:        d.Status,
			SubmittedAt:   d.SubmittedAt,
			ReceivedAt:    d.ReceivedAt,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"donations": views,
	})
}

type donationStatusRequest struct {
	Status        string `json:"status"`
	InternalNotes string `json:"internalNotes"`
}

// UpdateStatus advances a donation through its lifecycle. Illegal jumps
// are rejected by the service.
func (h *DonationHandler) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var req donationStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	donation, err := h.donations.UpdateStatus(ctx, id, domain.DonationStatus(req.Status), req.InternalNotes)
	if err != nil {
		return writeError(c, err, "failed to update donation")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":  true,
		"donation": donation,
	})
}
