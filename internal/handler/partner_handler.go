package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hromada/hromada-api/internal/middleware"
	"github.com/hromada/hromada-api/internal/service"
	"github.com/hromada/hromada-api/pkg/logger"
)

// PartnerHandler serves the partner self-service surface: partners see
// and edit only their own submissions.
type PartnerHandler struct {
	submissions service.SubmissionService
	logger      *logger.Logger
}

func NewPartnerHandler(submissions service.SubmissionService, log *logger.Logger) *PartnerHandler {
	return &PartnerHandler{
		submissions: submissions,
		logger:      log,
	}
}

func (h *PartnerHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.SessionFrom(c)

	submissions, err := h.submissions.ListByUser(ctx, sess.UserID)
	if err != nil {
		h.logger.Error(ctx, "Failed to list partner submissions",
			"error", err,
		)
		return writeError(c, err, "failed to fetch submissions")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"submissions": submissions,
	})
}

func (h *PartnerHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.SessionFrom(c)

	var req submissionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	sub, err := h.submissions.Submit(ctx, req.toInput(), &sess.UserID)
	if err != nil {
		return writeError(c, err, "failed to submit project")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":      true,
		"submissionId": sub.ID,
		"message":      "Project submitted successfully",
	})
}

func (h *PartnerHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.SessionFrom(c)
	id := c.Param("id")

	sub, err := h.submissions.GetOwned(ctx, id, sess.UserID)
	if err != nil {
		return writeError(c, err, "failed to fetch submission")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"submission": sub,
	})
}

type submissionPatchRequest struct {
	MunicipalityName     *string     `json:"municipalityName"`
	MunicipalityEmail    *string     `json:"municipalityEmail"`
	Region               *string     `json:"region"`
	FacilityName         *string     `json:"facilityName"`
	Category             *string     `json:"category"`
	ProjectType          *string     `json:"projectType"`
	ProjectSubtype       *string     `json:"projectSubtype"`
	BriefDescription     *string     `json:"briefDescription"`
	FullDescription      *string     `json:"fullDescription"`
	Urgency              *string     `json:"urgency"`
	EstimatedCostUsd     *flexString `json:"estimatedCostUsd"`
	TechnicalPowerKw     *flexString `json:"technicalPowerKw"`
	NumberOfPanels       *flexString `json:"numberOfPanels"`
	CofinancingAvailable *string     `json:"cofinancingAvailable"`
	CofinancingDetails   *string     `json:"cofinancingDetails"`
	CityName             *string     `json:"cityName"`
	Address              *string     `json:"address"`
	CityLatitude         *flexString `json:"cityLatitude"`
	CityLongitude        *flexString `json:"cityLongitude"`
	ContactName          *string     `json:"contactName"`
	ContactEmail         *string     `json:"contactEmail"`
	ContactPhone         *string     `json:"contactPhone"`
	PartnerOrganization  *string     `json:"partnerOrganization"`
	AdditionalNotes      *string     `json:"additionalNotes"`
}

func (r submissionPatchRequest) toPatch() service.SubmissionPatch {
	return service.SubmissionPatch{
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
		EstimatedCostUsd:     flexPtr(r.EstimatedCostUsd),
		TechnicalPowerKw:     flexPtr(r.TechnicalPowerKw),
		NumberOfPanels:       flexPtr(r.NumberOfPanels),
		CofinancingAvailable: r.CofinancingAvailable,
		CofinancingDetails:   r.CofinancingDetails,
		CityName:             r.CityName,
		Address:              r.Address,
		CityLatitude:         flexPtr(r.CityLatitude),
		CityLongitude:        flexPtr(r.CityLongitude),
		ContactName:          r.ContactName,
		ContactEmail:         r.ContactEmail,
		ContactPhone:         r.ContactPhone,
		PartnerOrganization:  r.PartnerOrganization,
		AdditionalNotes:      r.AdditionalNotes,
	}
}

// Update edits a pending submission. Review state and ownership are not
// part of the patch shape, so they cannot be changed here.
func (h *PartnerHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.SessionFrom(c)
	id := c.Param("id")

	var req submissionPatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	sub, err := h.submissions.UpdateOwned(ctx, id, sess.UserID, req.toPatch())
	if err != nil {
		return writeError(c, err, "failed to update submission")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":    true,
		"submission": sub,
	})
}
