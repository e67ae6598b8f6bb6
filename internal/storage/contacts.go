package storage

import (
	"context"

	"github.com/hromada/hromada-api/internal/domain"
)

func (s *GormStore) CreateContact(ctx context.Context, c *domain.ContactSubmission) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *GormStore) ListContacts(ctx context.Context) ([]domain.ContactSubmission, error) {
	var contacts []domain.ContactSubmission
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&contacts).Error
	return contacts, err
}

func (s *GormStore) SetContactHandled(ctx context.Context, id string, handled bool) (*domain.ContactSubmission, error) {
	res := s.db.WithContext(ctx).
		Model(&domain.ContactSubmission{}).
		Where("id = ?", id).
		Update("handled", handled)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrContactNotFound
	}

	var c domain.ContactSubmission
	if err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, notFound(err, domain.ErrContactNotFound)
	}
	return &c, nil
}
