package storage

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/hromada/hromada-api/internal/domain"
)

func (s *GormStore) CreateWireTransfer(ctx context.Context, w *domain.WireTransferRecord) error {
	return s.db.WithContext(ctx).Create(w).Error
}

func (s *GormStore) GetWireTransfer(ctx context.Context, id string) (*domain.WireTransferRecord, error) {
	var w domain.WireTransferRecord
	err := s.db.WithContext(ctx).First(&w, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, domain.ErrWireTransferNotFound)
	}
	return &w, nil
}

func (s *GormStore) ListWireTransfers(ctx context.Context) ([]domain.WireTransferRecord, error) {
	var transfers []domain.WireTransferRecord
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&transfers).Error
	return transfers, err
}

func (s *GormStore) TransitionWireTransfer(ctx context.Context, id string, next domain.WireTransferStatus, at time.Time) (*domain.WireTransferRecord, error) {
	var w domain.WireTransferRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&w, "id = ?", id).Error; err != nil {
			return notFound(err, domain.ErrWireTransferNotFound)
		}
		if !w.Status.CanTransitionTo(next) {
			return &domain.TransitionError{From: string(w.Status), To: string(next)}
		}

		fields := map[string]interface{}{"status": next}
		switch next {
		case domain.WireTransferStatusInitiated:
			fields["initiated_at"] = at
		case domain.WireTransferStatusSent:
			fields["sent_at"] = at
		case domain.WireTransferStatusConfirmed:
			fields["confirmed_at"] = at
		}

		if err := tx.Model(&w).Updates(fields).Error; err != nil {
			return err
		}
		return tx.First(&w, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &w, nil
}
