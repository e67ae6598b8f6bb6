package service

import (
	"context"

	"github.com/hromada/hromada-api/internal/domain"
	"github.com/hromada/hromada-api/pkg/logger"
)

// ProjectService is the donor-facing read surface for published
// projects, plus the admin status update.
type ProjectService interface {
	Get(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	UpdateStatus(ctx context.Context, id string, status domain.ProjectStatus) (*domain.Project, error)
}

type projectService struct {
	repo   domain.Repository
	logger *logger.Logger
}

func NewProjectService(repo domain.Repository, log *logger.Logger) ProjectService {
	return &projectService{
		repo:   repo,
		logger: log,
	}
}

func (s *projectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.GetProject(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.ListProjects(ctx)
}

var projectStatuses = map[domain.ProjectStatus]bool{
	domain.ProjectStatusOpen:         true,
	domain.ProjectStatusInDiscussion: true,
	domain.ProjectStatusMatched:      true,
	domain.ProjectStatusFulfilled:    true,
}

func (s *projectService) UpdateStatus(ctx context.Context, id string, status domain.ProjectStatus) (*domain.Project, error) {
	if !projectStatuses[status] {
		return nil, domain.NewValidationError("status", "unknown status")
	}

	project, err := s.repo.UpdateProjectStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Project status updated",
		"project_id", id,
		"status", status,
	)

	return project, nil
}
