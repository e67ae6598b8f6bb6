package storage

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/hromada/hromada-api/internal/domain"
)

func (s *GormStore) CreateSubmission(ctx context.Context, sub *domain.ProjectSubmission) error {
	return s.db.WithContext(ctx).Create(sub).Error
}

func (s *GormStore) GetSubmission(ctx context.Context, id string) (*domain.ProjectSubmission, error) {
	var sub domain.ProjectSubmission
	err := s.db.WithContext(ctx).First(&sub, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, domain.ErrSubmissionNotFound)
	}
	return &sub, nil
}

func (s *GormStore) GetSubmissionOwned(ctx context.Context, id, userID string) (*domain.ProjectSubmission, error) {
	var sub domain.ProjectSubmission
	err := s.db.WithContext(ctx).
		First(&sub, "id = ? AND submitted_by_user_id = ?", id, userID).Error
	if err != nil {
		return nil, notFound(err, domain.ErrSubmissionNotFound)
	}
	return &sub, nil
}

func (s *GormStore) ListSubmissions(ctx context.Context) ([]domain.ProjectSubmission, error) {
	var subs []domain.ProjectSubmission
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&subs).Error
	return subs, err
}

func (s *GormStore) ListSubmissionsByUser(ctx context.Context, userID string) ([]domain.ProjectSubmission, error) {
	var subs []domain.ProjectSubmission
	err := s.db.WithContext(ctx).
		Where("submitted_by_user_id = ?", userID).
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}

func (s *GormStore) UpdateSubmissionFields(ctx context.Context, id string, fields map[string]interface{}) (*domain.ProjectSubmission, error) {
	res := s.db.WithContext(ctx).
		Model(&domain.ProjectSubmission{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrSubmissionNotFound
	}
	return s.GetSubmission(ctx, id)
}

func (s *GormStore) DeleteSubmission(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&domain.ProjectSubmission{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrSubmissionNotFound
	}
	return nil
}

// ApproveSubmission publishes the project and flips the submission to
// APPROVED in one transaction. The PENDING re-check inside the
// transaction is the idempotency guard against double approval.
func (s *GormStore) ApproveSubmission(ctx context.Context, id, reviewedBy string, project *domain.Project) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sub domain.ProjectSubmission
		if err := tx.First(&sub, "id = ?", id).Error; err != nil {
			return notFound(err, domain.ErrSubmissionNotFound)
		}
		if sub.Status != domain.SubmissionStatusPending {
			return domain.ErrAlreadyReviewed
		}

		if err := tx.Create(project).Error; err != nil {
			return err
		}

		now := time.Now()
		return tx.Model(&sub).Updates(map[string]interface{}{
			"status":              domain.SubmissionStatusApproved,
			"approved_project_id": project.ID,
			"reviewed_at":         now,
			"reviewed_by":         reviewedBy,
		}).Error
	})
}

func (s *GormStore) RejectSubmission(ctx context.Context, id, reason, reviewedBy string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sub domain.ProjectSubmission
		if err := tx.First(&sub, "id = ?", id).Error; err != nil {
			return notFound(err, domain.ErrSubmissionNotFound)
		}
		if sub.Status != domain.SubmissionStatusPending {
			return domain.ErrAlreadyReviewed
		}

		now := time.Now()
		return tx.Model(&sub).Updates(map[string]interface{}{
			"status":           domain.SubmissionStatusRejected,
			"rejection_reason": reason,
			"reviewed_at":      now,
			"reviewed_by":      reviewedBy,
		}).Error
	})
}
