package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/hromada/hromada-api/internal/domain"
	"github.com/hromada/hromada-api/internal/mailer"
	"github.com/hromada/hromada-api/pkg/logger"
)

// SubmissionInput is the intake payload. Numeric fields arrive as
// strings and are coerced; blank optionals store as null.
type SubmissionInput struct {
	MunicipalityName     string
	MunicipalityEmail    string
	Region               string
	FacilityName         string
	Category             string
	ProjectType          string
	ProjectSubtype       string
	BriefDescription     string
	FullDescription      string
	Urgency              string
	EstimatedCostUsd     string
	TechnicalPowerKw     string
	NumberOfPanels       string
	CofinancingAvailable string
	CofinancingDetails   string
	CityName             string
	Address              string
	CityLatitude         string
	CityLongitude        string
	ContactName          string
	ContactEmail         string
	ContactPhone         string
	PartnerOrganization  string
	AdditionalNotes      string
}

// SubmissionPatch is the partner edit payload: nil means the field was
// absent from the request. Review and ownership fields are not
// representable here, which is what keeps them unwritable.
type SubmissionPatch struct {
	MunicipalityName     *string
	MunicipalityEmail    *string
	Region               *string
	FacilityName         *string
	Category             *string
	ProjectType          *string
	ProjectSubtype       *string
	BriefDescription     *string
	FullDescription      *string
	Urgency              *string
	EstimatedCostUsd     *string
	TechnicalPowerKw     *string
	NumberOfPanels       *string
	CofinancingAvailable *string
	CofinancingDetails   *string
	CityName             *string
	Address              *string
	CityLatitude         *string
	CityLongitude        *string
	ContactName          *string
	ContactEmail         *string
	ContactPhone         *string
	PartnerOrganization  *string
	AdditionalNotes      *string
}

type SubmissionService interface {
	Submit(ctx context.Context, in SubmissionInput, submittedByUserID *string) (*domain.ProjectSubmission, error)
	Get(ctx context.Context, id string) (*domain.ProjectSubmission, error)
	List(ctx context.Context) ([]domain.ProjectSubmission, error)
	Delete(ctx context.Context, id string) error

	ListByUser(ctx context.Context, userID string) ([]domain.ProjectSubmission, error)
	GetOwned(ctx context.Context, id, userID string) (*domain.ProjectSubmission, error)
	UpdateOwned(ctx context.Context, id, userID string, patch SubmissionPatch) (*domain.ProjectSubmission, error)
}

type submissionService struct {
	repo   domain.Repository
	mailer mailer.Mailer
	logger *logger.Logger
}

func NewSubmissionService(repo domain.Repository, m mailer.Mailer, log *logger.Logger) SubmissionService {
	return &submissionService{
		repo:   repo,
		mailer: m,
		logger: log,
	}
}

func (s *submissionService) Submit(ctx context.Context, in SubmissionInput, submittedByUserID *string) (*domain.ProjectSubmission, error) {
	required := []struct {
		field string
		value string
	}{
		{"municipalityName", in.MunicipalityName},
		{"municipalityEmail", in.MunicipalityEmail},
		{"facilityName", in.FacilityName},
		{"category", in.Category},
		{"projectType", in.ProjectType},
		{"briefDescription", in.BriefDescription},
		{"fullDescription", in.FullDescription},
		{"cityName", in.CityName},
		{"cityLatitude", in.CityLatitude},
		{"cityLongitude", in.CityLongitude},
		{"contactName", in.ContactName},
		{"contactEmail", in.ContactEmail},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, domain.NewValidationError(r.field, "is required")
		}
	}

	municipalityEmail := normalizeEmail(in.MunicipalityEmail)
	contactEmail := normalizeEmail(in.ContactEmail)
	if !validEmail(municipalityEmail) {
		return nil, domain.NewValidationError("municipalityEmail", "invalid email format")
	}
	if !validEmail(contactEmail) {
		return nil, domain.NewValidationError("contactEmail", "invalid email format")
	}

	brief := strings.TrimSpace(in.BriefDescription)
	if len([]rune(brief)) > briefDescriptionMax {
		return nil, domain.NewValidationError("briefDescription", "must be 150 characters or less")
	}
	full := strings.TrimSpace(in.FullDescription)
	if len([]rune(full)) > fullDescriptionMax {
		return nil, domain.NewValidationError("fullDescription", "must be 2000 characters or less")
	}

	lat, err := parseLatitude("cityLatitude", in.CityLatitude)
	if err != nil {
		return nil, err
	}
	lng, err := parseLongitude("cityLongitude", in.CityLongitude)
	if err != nil {
		return nil, err
	}

	cost, err := parseOptionalFloat("estimatedCostUsd", in.EstimatedCostUsd)
	if err != nil {
		return nil, err
	}
	power, err := parseOptionalFloat("technicalPowerKw", in.TechnicalPowerKw)
	if err != nil {
		return nil, err
	}
	panels, err := parseOptionalInt("numberOfPanels", in.NumberOfPanels)
	if err != nil {
		return nil, err
	}

	var notes *string
	if trimmed := strings.TrimSpace(in.AdditionalNotes); trimmed != "" {
		capped := truncate(trimmed, additionalNotesMax)
		notes = &capped
	}

	sub := &domain.ProjectSubmission{
		ID:                   uuid.New().String(),
		MunicipalityName:     strings.TrimSpace(in.MunicipalityName),
		MunicipalityEmail:    municipalityEmail,
		Region:               optionalString(in.Region),
		FacilityName:         strings.TrimSpace(in.FacilityName),
		Category:             domain.Category(in.Category),
		ProjectType:          in.ProjectType,
		ProjectSubtype:       optionalString(in.ProjectSubtype),
		BriefDescription:     brief,
		FullDescription:      full,
		Urgency:              parseUrgency(in.Urgency),
		EstimatedCostUsd:     cost,
		TechnicalPowerKw:     power,
		NumberOfPanels:       panels,
		CofinancingAvailable: optionalString(in.CofinancingAvailable),
		CofinancingDetails:   optionalString(in.CofinancingDetails),
		CityName:             strings.TrimSpace(in.CityName),
		Address:              optionalString(in.Address),
		CityLatitude:         lat,
		CityLongitude:        lng,
		ContactName:          strings.TrimSpace(in.ContactName),
		ContactEmail:         contactEmail,
		ContactPhone:         optionalString(in.ContactPhone),
		PartnerOrganization:  optionalString(in.PartnerOrganization),
		AdditionalNotes:      notes,
		Status:               domain.SubmissionStatusPending,
		SubmittedByUserID:    submittedByUserID,
	}

	if err := s.repo.CreateSubmission(ctx, sub); err != nil {
		s.logger.Error(ctx, "Failed to create submission",
			"error", err,
		)
		return nil, err
	}

	s.logger.Info(ctx, "Submission created",
		"submission_id", sub.ID,
		"facility", sub.FacilityName,
	)

	go s.notifySubmitted(detach(ctx), sub)

	return sub, nil
}

// notifySubmitted sends the admin alert and the submitter confirmation.
// Both are best-effort: a failed send never fails the submission.
func (s *submissionService) notifySubmitted(ctx context.Context, sub *domain.ProjectSubmission) {
	alert := mailer.NewSubmissionAlert{
		MunicipalityName:  sub.MunicipalityName,
		MunicipalityEmail: sub.MunicipalityEmail,
		Region:            deref(sub.Region),
		FacilityName:      sub.FacilityName,
		Category:          string(sub.Category),
		ProjectType:       sub.ProjectType,
		Urgency:           string(sub.Urgency),
		BriefDescription:  sub.BriefDescription,
		ContactName:       sub.ContactName,
		ContactEmail:      sub.ContactEmail,
		ContactPhone:      deref(sub.ContactPhone),
	}
	if err := s.mailer.SendNewSubmissionAlert(ctx, alert); err != nil {
		s.logger.Error(ctx, "Failed to send admin notification email",
			"submission_id", sub.ID,
			"error", err,
		)
	}

	received := mailer.SubmissionReceived{
		ContactName:  sub.ContactName,
		ContactEmail: sub.ContactEmail,
		FacilityName: sub.FacilityName,
	}
	if err := s.mailer.SendSubmissionReceived(ctx, received); err != nil {
		s.logger.Error(ctx, "Failed to send submitter confirmation email",
			"submission_id", sub.ID,
			"error", err,
		)
	}
}

func (s *submissionService) Get(ctx context.Context, id string) (*domain.ProjectSubmission, error) {
	return s.repo.GetSubmission(ctx, id)
}

func (s *submissionService) List(ctx context.Context) ([]domain.ProjectSubmission, error) {
	return s.repo.ListSubmissions(ctx)
}

func (s *submissionService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteSubmission(ctx, id)
}

func (s *submissionService) ListByUser(ctx context.Context, userID string) ([]domain.ProjectSubmission, error) {
	return s.repo.ListSubmissionsByUser(ctx, userID)
}

func (s *submissionService) GetOwned(ctx context.Context, id, userID string) (*domain.ProjectSubmission, error) {
	return s.repo.GetSubmissionOwned(ctx, id, userID)
}

// UpdateOwned applies a partner's edit to their own PENDING submission.
// Only whitelisted content fields are writable; the same truncation and
// coercion rules as intake apply.
func (s *submissionService) UpdateOwned(ctx context.Context, id, userID string, patch SubmissionPatch) (*domain.ProjectSubmission, error) {
	existing, err := s.repo.GetSubmissionOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if existing.Status != domain.SubmissionStatusPending {
		return nil, domain.ErrSubmissionNotEditable
	}

	fields := map[string]interface{}{}

	setString := func(column string, v *string) {
		if v != nil {
			fields[column] = *v
		}
	}
	setString("municipality_name", patch.MunicipalityName)
	setString("region", patch.Region)
	setString("facility_name", patch.FacilityName)
	setString("category", patch.Category)
	setString("project_type", patch.ProjectType)
	setString("project_subtype", patch.ProjectSubtype)
	setString("cofinancing_available", patch.CofinancingAvailable)
	setString("cofinancing_details", patch.CofinancingDetails)
	setString("city_name", patch.CityName)
	setString("address", patch.Address)
	setString("contact_name", patch.ContactName)
	setString("contact_phone", patch.ContactPhone)
	setString("partner_organization", patch.PartnerOrganization)

	if patch.MunicipalityEmail != nil {
		fields["municipality_email"] = normalizeEmail(*patch.MunicipalityEmail)
	}
	if patch.ContactEmail != nil {
		fields["contact_email"] = normalizeEmail(*patch.ContactEmail)
	}

	if patch.BriefDescription != nil {
		fields["brief_description"] = truncate(*patch.BriefDescription, briefDescriptionMax)
	}
	if patch.FullDescription != nil {
		fields["full_description"] = truncate(*patch.FullDescription, fullDescriptionMax)
	}
	if patch.AdditionalNotes != nil {
		if trimmed := strings.TrimSpace(*patch.AdditionalNotes); trimmed != "" {
			fields["additional_notes"] = truncate(trimmed, additionalNotesMax)
		} else {
			fields["additional_notes"] = nil
		}
	}

	if patch.Urgency != nil {
		fields["urgency"] = parseUrgency(*patch.Urgency)
	}

	if patch.EstimatedCostUsd != nil {
		v, err := parseOptionalFloat("estimatedCostUsd", *patch.EstimatedCostUsd)
		if err != nil {
			return nil, err
		}
		fields["estimated_cost_usd"] = v
	}
	if patch.TechnicalPowerKw != nil {
		v, err := parseOptionalFloat("technicalPowerKw", *patch.TechnicalPowerKw)
		if err != nil {
			return nil, err
		}
		fields["technical_power_kw"] = v
	}
	if patch.NumberOfPanels != nil {
		v, err := parseOptionalInt("numberOfPanels", *patch.NumberOfPanels)
		if err != nil {
			return nil, err
		}
		fields["number_of_panels"] = v
	}

	if patch.CityLatitude != nil {
		v, err := parseLatitude("cityLatitude", *patch.CityLatitude)
		if err != nil {
			return nil, err
		}
		fields["city_latitude"] = v
	}
	if patch.CityLongitude != nil {
		v, err := parseLongitude("cityLongitude", *patch.CityLongitude)
		if err != nil {
			return nil, err
		}
		fields["city_longitude"] = v
	}

	if len(fields) == 0 {
		return existing, nil
	}

	updated, err := s.repo.UpdateSubmissionFields(ctx, id, fields)
	if err != nil {
		s.logger.Error(ctx, "Failed to update submission",
			"submission_id", id,
			"error", err,
		)
		return nil, err
	}

	s.logger.Info(ctx, "Submission updated",
		"submission_id", id,
		"fields", len(fields),
	)

	return updated, nil
}
