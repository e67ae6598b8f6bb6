package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/hromada/hromada-api/internal/domain"
	"github.com/hromada/hromada-api/internal/mailer"
	"github.com/hromada/hromada-api/pkg/logger"
)

// ReviewService is the admin approve/reject workflow. A submission
// leaves PENDING exactly once; both transitions notify the submitter.
type ReviewService interface {
	Approve(ctx context.Context, submissionID, reviewedBy string) (*domain.Project, error)
	Reject(ctx context.Context, submissionID, reason, reviewedBy string) error
}

type reviewService struct {
	repo   domain.Repository
	mailer mailer.Mailer
	logger *logger.Logger
}

func NewReviewService(repo domain.Repository, m mailer.Mailer, log *logger.Logger) ReviewService {
	return &reviewService{
		repo:   repo,
		mailer: m,
		logger: log,
	}
}

// Approve publishes a project from the submission's fields. Project
// creation and the submission update are one transaction in the store;
// a submission that already left PENDING fails with ErrAlreadyReviewed.
func (s *reviewService) Approve(ctx context.Context, submissionID, reviewedBy string) (*domain.Project, error) {
	sub, err := s.repo.GetSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	if reviewedBy == "" {
		reviewedBy = "admin"
	}

	project := &domain.Project{
		ID:                   uuid.New().String(),
		MunicipalityName:     sub.MunicipalityName,
		FacilityName:         sub.FacilityName,
		Category:             sub.Category,
		ProjectType:          sub.ProjectType,
		ProjectSubtype:       sub.ProjectSubtype,
		BriefDescription:     sub.BriefDescription,
		FullDescription:      sub.FullDescription,
		CityName:             sub.CityName,
		Address:              sub.Address,
		CityLatitude:         sub.CityLatitude,
		CityLongitude:        sub.CityLongitude,
		ContactName:          sub.ContactName,
		ContactEmail:         sub.ContactEmail,
		ContactPhone:         sub.ContactPhone,
		Urgency:              sub.Urgency,
		Status:               domain.ProjectStatusOpen,
		EstimatedCostUsd:     sub.EstimatedCostUsd,
		TechnicalPowerKw:     sub.TechnicalPowerKw,
		NumberOfPanels:       sub.NumberOfPanels,
		CofinancingAvailable: sub.CofinancingAvailable,
		CofinancingDetails:   sub.CofinancingDetails,
		PartnerOrganization:  sub.PartnerOrganization,
	}

	if err := s.repo.ApproveSubmission(ctx, submissionID, reviewedBy, project); err != nil {
		s.logger.Error(ctx, "Failed to approve submission",
			"submission_id", submissionID,
			"error", err,
		)
		return nil, err
	}

	s.logger.Info(ctx, "Submission approved",
		"submission_id", submissionID,
		"project_id", project.ID,
		"reviewed_by", reviewedBy,
	)

	go func(ctx context.Context) {
		err := s.mailer.SendSubmissionApproved(ctx, mailer.SubmissionApproved{
			ContactName:  sub.ContactName,
			ContactEmail: sub.ContactEmail,
			FacilityName: sub.FacilityName,
			ProjectID:    project.ID,
		})
		if err != nil {
			s.logger.Error(ctx, "Failed to send approval email",
				"submission_id", submissionID,
				"error", err,
			)
		}
	}(detach(ctx))

	return project, nil
}

func (s *reviewService) Reject(ctx context.Context, submissionID, reason, reviewedBy string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return domain.ErrRejectionReasonRequired
	}

	sub, err := s.repo.GetSubmission(ctx, submissionID)
	if err != nil {
		return err
	}

	if reviewedBy == "" {
		reviewedBy = "admin"
	}

	if err := s.repo.RejectSubmission(ctx, submissionID, reason, reviewedBy); err != nil {
		s.logger.Error(ctx, "Failed to reject submission",
			"submission_id", submissionID,
			"error", err,
		)
		return err
	}

	s.logger.Info(ctx, "Submission rejected",
		"submission_id", submissionID,
		"reviewed_by", reviewedBy,
	)

	go func(ctx context.Context) {
		err := s.mailer.SendSubmissionRejected(ctx, mailer.SubmissionRejected{
			ContactName:  sub.ContactName,
			ContactEmail: sub.ContactEmail,
			FacilityName: sub.FacilityName,
			Reason:       reason,
		})
		if err != nil {
			s.logger.Error(ctx, "Failed to send rejection email",
				"submission_id", submissionID,
				"error", err,
			)
		}
	}(detach(ctx))

	return nil
}
