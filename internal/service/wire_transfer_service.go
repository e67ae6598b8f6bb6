package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hromada/hromada-api/internal/domain"
	"github.com/hromada/hromada-api/pkg/logger"
)

type WireTransferInput struct {
	ReferenceNumber string
	RecipientName   string
	ProjectID       string
	ProjectName     string
	AmountUsd       string
}

type WireTransferService interface {
	Create(ctx context.Context, in WireTransferInput) (*domain.WireTransferRecord, error)
	UpdateStatus(ctx context.Context, id string, next domain.WireTransferStatus) (*domain.WireTransferRecord, error)
	List(ctx context.Context) ([]domain.WireTransferRecord, error)
}

type wireTransferService struct {
	repo   domain.Repository
	logger *logger.Logger
}

func NewWireTransferService(repo domain.Repository, log *logger.Logger) WireTransferService {
	return &wireTransferService{
		repo:   repo,
		logger: log,
	}
}

func (s *wireTransferService) Create(ctx context.Context, in WireTransferInput) (*domain.WireTransferRecord, error) {
	if strings.TrimSpace(in.ReferenceNumber) == "" {
		return nil, domain.NewValidationError("referenceNumber", "is required")
	}
	if strings.TrimSpace(in.RecipientName) == "" {
		return nil, domain.NewValidationError("recipientName", "is required")
	}
	if strings.TrimSpace(in.ProjectName) == "" {
		return nil, domain.NewValidationError("projectName", "is required")
	}

	amount, err := parseRequiredFloat("amountUsd", in.AmountUsd)
	if err != nil {
		return nil, err
	}

	transfer := &domain.WireTransferRecord{
		ID:              uuid.New().String(),
		ReferenceNumber: strings.TrimSpace(in.ReferenceNumber),
		RecipientName:   strings.TrimSpace(in.RecipientName),
		ProjectID:       optionalString(in.ProjectID),
		ProjectName:     strings.TrimSpace(in.ProjectName),
		AmountUsd:       amount,
		Status:          domain.WireTransferStatusPending,
	}

	if err := s.repo.CreateWireTransfer(ctx, transfer); err != nil {
		s.logger.Error(ctx, "Failed to create wire transfer",
			"error", err,
		)
		return nil, err
	}

	s.logger.Info(ctx, "Wire transfer created",
		"wire_transfer_id", transfer.ID,
		"reference", transfer.ReferenceNumber,
	)

	return transfer, nil
}

func (s *wireTransferService) UpdateStatus(ctx context.Context, id string, next domain.WireTransferStatus) (*domain.WireTransferRecord, error) {
	if next == "" {
		return nil, domain.NewValidationError("status", "is required")
	}
	if !next.Valid() {
		return nil, domain.NewValidationError("status", "unknown status")
	}

	updated, err := s.repo.TransitionWireTransfer(ctx, id, next, time.Now())
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Wire transfer status updated",
		"wire_transfer_id", id,
		"status", next,
	)

	return updated, nil
}

func (s *wireTransferService) List(ctx context.Context) ([]domain.WireTransferRecord, error) {
	return s.repo.ListWireTransfers(ctx)
}
