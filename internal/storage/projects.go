package storage

import (
	"context"

	"github.com/hromada/hromada-api/internal/domain"
)

func (s *GormStore) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	var p domain.Project
	err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, domain.ErrProjectNotFound)
	}
	return &p, nil
}

func (s *GormStore) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (s *GormStore) UpdateProjectStatus(ctx context.Context, id string, status domain.ProjectStatus) (*domain.Project, error) {
	res := s.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrProjectNotFound
	}
	return s.GetProject(ctx, id)
}
