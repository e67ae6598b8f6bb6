package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/hromada/hromada-api/internal/domain"
	"github.com/hromada/hromada-api/internal/mailer"
	"github.com/hromada/hromada-api/pkg/logger"
)

type ContactInput struct {
	ProjectID    string
	Name         string
	Email        string
	Organization string
	Message      string
}

type ContactService interface {
	Create(ctx context.Context, in ContactInput) (*domain.ContactSubmission, error)
	List(ctx context.Context) ([]domain.ContactSubmission, error)
	SetHandled(ctx context.Context, id string, handled bool) (*domain.ContactSubmission, error)
}

type contactService struct {
	repo   domain.Repository
	mailer mailer.Mailer
	logger *logger.Logger
}

func NewContactService(repo domain.Repository, m mailer.Mailer, log *logger.Logger) ContactService {
	return &contactService{
		repo:   repo,
		mailer: m,
		logger: log,
	}
}

func (s *contactService) Create(ctx context.Context, in ContactInput) (*domain.ContactSubmission, error) {
	if strings.TrimSpace(in.ProjectID) == "" {
		return nil, domain.NewValidationError("projectId", "is required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.NewValidationError("name", "is required")
	}
	if strings.TrimSpace(in.Message) == "" {
		return nil, domain.NewValidationError("message", "is required")
	}

	email := normalizeEmail(in.Email)
	if !validEmail(email) {
		return nil, domain.NewValidationError("email", "invalid email format")
	}

	project, err := s.repo.GetProject(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}

	contact := &domain.ContactSubmission{
		ID:           uuid.New().String(),
		ProjectID:    project.ID,
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		Organization: optionalString(in.Organization),
		Message:      strings.TrimSpace(in.Message),
		Handled:      false,
	}

	if err := s.repo.CreateContact(ctx, contact); err != nil {
		s.logger.Error(ctx, "Failed to create contact submission",
			"error", err,
		)
		return nil, err
	}

	s.logger.Info(ctx, "Contact submission created",
		"contact_id", contact.ID,
		"project_id", project.ID,
	)

	go func(ctx context.Context) {
		err := s.mailer.SendContactAlert(ctx, mailer.ContactAlert{
			Name:         contact.Name,
			Email:        contact.Email,
			Organization: deref(contact.Organization),
			Message:      contact.Message,
			ProjectName:  project.FacilityName,
		})
		if err != nil {
			s.logger.Error(ctx, "Failed to send contact alert email",
				"contact_id", contact.ID,
				"error", err,
			)
		}
	}(detach(ctx))

	return contact, nil
}

func (s *contactService) List(ctx context.Context) ([]domain.ContactSubmission, error) {
	return s.repo.ListContacts(ctx)
}

func (s *contactService) SetHandled(ctx context.Context, id string, handled bool) (*domain.ContactSubmission, error) {
	return s.repo.SetContactHandled(ctx, id, handled)
}
