package service

import (
	"context"

	"github.com/hromada/hromada-api/internal/domain"
	"github.com/hromada/hromada-api/pkg/logger"
)

type NewsletterService interface {
	Subscribe(ctx context.Context, email string) (*domain.Subscriber, error)
	Unsubscribe(ctx context.Context, email string) error
	ListSubscribers(ctx context.Context) ([]domain.Subscriber, error)
	DeleteSubscriber(ctx context.Context, id string) error
}

type newsletterService struct {
	repo   domain.Repository
	logger *logger.Logger
}

func NewNewsletterService(repo domain.Repository, log *logger.Logger) NewsletterService {
	return &newsletterService{
		repo:   repo,
		logger: log,
	}
}

func (s *newsletterService) Subscribe(ctx context.Context, email string) (*domain.Subscriber, error) {
	normalized := normalizeEmail(email)
	if !validEmail(normalized) {
		return nil, domain.NewValidationError("email", "invalid email format")
	}

	sub, err := s.repo.UpsertSubscriber(ctx, normalized)
	if err != nil {
		s.logger.Error(ctx, "Failed to subscribe email",
			"error", err,
		)
		return nil, err
	}

	s.logger.Info(ctx, "Newsletter subscription recorded",
		"subscriber_id", sub.ID,
	)

	return sub, nil
}

func (s *newsletterService) Unsubscribe(ctx context.Context, email string) error {
	normalized := normalizeEmail(email)
	if !validEmail(normalized) {
		return domain.NewValidationError("email", "invalid email format")
	}
	return s.repo.UnsubscribeEmail(ctx, normalized)
}

func (s *newsletterService) ListSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	return s.repo.ListSubscribers(ctx)
}

func (s *newsletterService) DeleteSubscriber(ctx context.Context, id string) error {
	return s.repo.DeleteSubscriber(ctx, id)
}
