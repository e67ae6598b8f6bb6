package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hromada/hromada-api/internal/service"
	"github.com/hromada/hromada-api/pkg/logger"
)

type SubmissionHandler struct {
	submissions service.SubmissionService
	reviews     service.ReviewService
	logger      *logger.Logger
}

func NewSubmissionHandler(submissions service.SubmissionService, reviews service.ReviewService, log *logger.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissions: submissions,
		reviews:     reviews,
		logger:      log,
	}
}

type submissionRequest struct {
	MunicipalityName     string     `json:"municipalityName"`
	MunicipalityEmail    string     `json:"municipalityEmail"`
	Region               string     `json:"region"`
	FacilityName         string     `json:"facilityName"`
	Category             string     `json:"category"`
	ProjectType          string     `json:"projectType"`
	ProjectSubtype       string     `json:"projectSubtype"`
	BriefDescription     string     `json:"briefDescription"`
	FullDescription      string     `json:"fullDescription"`
	Urgency              string     `json:"urgency"`
	EstimatedCostUsd     flexString `json:"estimatedCostUsd"`
	TechnicalPowerKw     flexString `json:"technicalPowerKw"`
	NumberOfPanels       flexString `json:"numberOfPanels"`
	CofinancingAvailable string     `json:"cofinancingAvailable"`
	CofinancingDetails   string     `json:"cofinancingDetails"`
	CityName             string     `json:"cityName"`
	Address              string     `json:"address"`
	CityLatitude         flexString `json:"cityLatitude"`
	CityLongitude        flexString `json:"cityLongitude"`
	ContactName          string     `json:"contactName"`
	ContactEmail         string     `json:"contactEmail"`
	ContactPhone         string     `json:"contactPhone"`
	PartnerOrganization  string     `json:"partnerOrganization"`
	AdditionalNotes      string     `json:"additionalNotes"`
}

func (r submissionRequest) toInput() service.SubmissionInput {
	return service.SubmissionInput{
		MunicipalityName:     r.MunicipalityName,
		MunicipalityEmail:    r.MunicipalityEmail,
		Region:               r.Region,
		FacilityName:         r.FacilityName,
		Category:             r.Category,
		ProjectType:          r.ProjectType,
		ProjectSubtype:       r.ProjectSubtype,
		BriefDescription:     r.BriefDescription,
		FullDescription:      r.FullDescription,
		Urgency:              r.Urgency,
		EstimatedCostUsd:     string(r.EstimatedCostUsd),
		TechnicalPowerKw:     string(r.TechnicalPowerKw),
		NumberOfPanels:       string(r.NumberOfPanels),
		CofinancingAvailable: r.CofinancingAvailable,
		CofinancingDetails:   r.CofinancingDetails,
		CityName:             r.CityName,
		Address:              r.Address,
		CityLatitude:         string(r.CityLatitude),
		CityLongitude:        string(r.CityLongitude),
		ContactName:          r.ContactName,
		ContactEmail:         r.ContactEmail,
		ContactPhone:         r.ContactPhone,
		PartnerOrganization:  r.PartnerOrganization,
		AdditionalNotes:      r.AdditionalNotes,
	}
}

// Create handles the public intake form.
func (h *SubmissionHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req submissionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	sub, err := h.submissions.Submit(ctx, req.toInput(), nil)
	if err != nil {
		return writeError(c, err, "failed to submit project")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":      true,
		"submissionId": sub.ID,
		"message":      "Project submitted successfully",
	})
}

func (h *SubmissionHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	submissions, err := h.submissions.List(ctx)
	if err != nil {
		h.logger.Error(ctx, "Failed to list submissions",
			"error", err,
		)
		return writeError(c, err, "failed to fetch submissions")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"submissions": submissions,
	})
}

func (h *SubmissionHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	sub, err := h.submissions.Get(ctx, id)
	if err != nil {
		return writeError(c, err, "failed to fetch submission")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"submission": sub,
	})
}

type reviewRequest struct {
	Action          string `json:"action"`
	RejectionReason string `json:"rejectionReason"`
	ReviewedBy      string `json:"reviewedBy"`
}

// Review is the admin approve/reject decision on a pending submission.
func (h *SubmissionHandler) Review(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	switch req.Action {
	case "approve":
		project, err := h.reviews.Approve(ctx, id, req.ReviewedBy)
		if err != nil {
			return writeError(c, err, "failed to process submission")
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":   true,
			"projectId": project.ID,
			"message":   "Project approved and published",
		})

	case "reject":
		if err := h.reviews.Reject(ctx, id, req.RejectionReason, req.ReviewedBy); err != nil {
			return writeError(c, err, "failed to process submission")
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Submission rejected",
		})

	default:
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid action",
		})
	}
}

func (h *SubmissionHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if err := h.submissions.Delete(ctx, id); err != nil {
		return writeError(c, err, "failed to delete submission")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
	})
}
