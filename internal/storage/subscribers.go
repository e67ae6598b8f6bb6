package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hromada/hromada-api/internal/domain"
)

func (s *GormStore) UpsertSubscriber(ctx context.Context, email string) (*domain.Subscriber, error) {
	var sub domain.Subscriber
	err := s.db.WithContext(ctx).First(&sub, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sub = domain.Subscriber{
			ID:         uuid.New().String(),
			Email:      email,
			Subscribed: true,
		}
		if err := s.db.WithContext(ctx).Create(&sub).Error; err != nil {
			return nil, err
		}
		return &sub, nil
	}
	if err != nil {
		return nil, err
	}

	if !sub.Subscribed {
		if err := s.db.WithContext(ctx).Model(&sub).Updates(map[string]interface{}{
			"subscribed":      true,
			"unsubscribed_at": nil,
		}).Error; err != nil {
			return nil, err
		}
		sub.Subscribed = true
		sub.UnsubscribedAt = nil
	}
	return &sub, nil
}

func (s *GormStore) UnsubscribeEmail(ctx context.Context, email string) error {
	now := time.Now()
	res := s.db.WithContext(ctx).
		Model(&domain.Subscriber{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"subscribed":      false,
			"unsubscribed_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrSubscriberNotFound
	}
	return nil
}

func (s *GormStore) ListSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	var subs []domain.Subscriber
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&subs).Error
	return subs, err
}

func (s *GormStore) DeleteSubscriber(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&domain.Subscriber{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrSubscriberNotFound
	}
	return nil
}
