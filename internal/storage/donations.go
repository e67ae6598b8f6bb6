package storage

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/hromada/hromada-api/internal/domain"
)

func (s *GormStore) CreateDonation(ctx context.Context, d *domain.DonationRecord) error {
	return s.db.WithContext(ctx).Create(d).Error
}

func (s *GormStore) GetDonation(ctx context.Context, id string) (*domain.DonationRecord, error) {
	var d domain.DonationRecord
	err := s.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, domain.ErrDonationNotFound)
	}
	return &d, nil
}

func (s *GormStore) ListDonations(ctx context.Context) ([]domain.DonationRecord, error) {
	var donations []domain.DonationRecord
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&donations).Error
	return donations, err
}

func (s *GormStore) ListDonationsByDonor(ctx context.Context, donorUserID string) ([]domain.DonationRecord, error) {
	var donations []domain.DonationRecord
	err := s.db.WithContext(ctx).
		Where("donor_user_id = ?", donorUserID).
		Order("submitted_at DESC").
		Find(&donations).Error
	return donations, err
}

// TransitionDonation re-reads the record inside a transaction and
// validates the requested status against the persisted one, so two
// concurrent transitions cannot both win.
func (s *GormStore) TransitionDonation(ctx context.Context, id string, next domain.DonationStatus, internalNotes *string, at time.Time) (*domain.DonationRecord, error) {
	var d domain.DonationRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&d, "id = ?", id).Error; err != nil {
			return notFound(err, domain.ErrDonationNotFound)
		}
		if !d.Status.CanTransitionTo(next) {
			return &domain.TransitionError{From: string(d.Status), To: string(next)}
		}

		fields := map[string]interface{}{"status": next}
		if internalNotes != nil {
			fields["internal_notes"] = *internalNotes
		}
		switch next {
		case domain.DonationStatusReceived:
			fields["received_at"] = at
		case domain.DonationStatusForwarded:
			fields["forwarded_at"] = at
		}

		if err := tx.Model(&d).Updates(fields).Error; err != nil {
			return err
		}
		return tx.First(&d, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}
