package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hromada/hromada-api/internal/auth"
	"github.com/hromada/hromada-api/internal/domain"
	"github.com/hromada/hromada-api/internal/mailer"
	"github.com/hromada/hromada-api/pkg/logger"
)

// GeneralFundProjectID marks a donation not tied to a specific project.
const GeneralFundProjectID = "general"

type ConfirmDonationInput struct {
	ProjectID         string
	ProjectName       string
	PaymentMethod     string
	DonorName         string
	DonorEmail        string
	DonorOrganization string
	Amount            string
	ReferenceNumber   string
	Message           string
}

type ConfirmDonationResult struct {
	Donation   *domain.DonationRecord
	IsNewDonor bool
	Message    string
}

type DonationService interface {
	Confirm(ctx context.Context, in ConfirmDonationInput) (*ConfirmDonationResult, error)
	UpdateStatus(ctx context.Context, id string, next domain.DonationStatus, internalNotes string) (*domain.DonationRecord, error)
	List(ctx context.Context) ([]domain.DonationRecord, error)
	ListByDonor(ctx context.Context, donorUserID string) ([]domain.DonationRecord, error)
}

type donationService struct {
	repo   domain.Repository
	mailer mailer.Mailer
	logger *logger.Logger
}

func NewDonationService(repo domain.Repository, m mailer.Mailer, log *logger.Logger) DonationService {
	return &donationService{
		repo:   repo,
		mailer: m,
		logger: log,
	}
}

var paymentMethods = map[string]domain.PaymentMethod{
	"wire":  domain.PaymentMethodWire,
	"daf":   domain.PaymentMethodDAF,
	"check": domain.PaymentMethodCheck,
	"ach":   domain.PaymentMethodACH,
}

// Confirm records a donor's notice that funds were sent. The donor
// account is looked up or created by email; a missing amount is valid
// and read as "TBD" until the nonprofit manager confirms receipt.
func (s *donationService) Confirm(ctx context.Context, in ConfirmDonationInput) (*ConfirmDonationResult, error) {
	if strings.TrimSpace(in.ProjectID) == "" {
		return nil, domain.NewValidationError("projectId", "is required")
	}
	if strings.TrimSpace(in.DonorName) == "" {
		return nil, domain.NewValidationError("donorName", "is required")
	}
	if strings.TrimSpace(in.DonorEmail) == "" {
		return nil, domain.NewValidationError("donorEmail", "is required")
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		return nil, domain.NewValidationError("paymentMethod", "is required")
	}

	donorEmail := normalizeEmail(in.DonorEmail)
	if !validEmail(donorEmail) {
		return nil, domain.NewValidationError("donorEmail", "invalid email format")
	}

	method, ok := paymentMethods[strings.ToLower(strings.TrimSpace(in.PaymentMethod))]
	if !ok {
		return nil, domain.NewValidationError("paymentMethod", "invalid payment method")
	}

	amount, err := parseOptionalFloat("amount", in.Amount)
	if err != nil {
		return nil, err
	}

	projectName := strings.TrimSpace(in.ProjectName)
	if projectName == "" {
		projectName = "General Fund"
	}

	var projectID *string
	if in.ProjectID != GeneralFundProjectID {
		id := in.ProjectID
		projectID = &id
	}

	donor, isNewDonor, temporaryPassword, err := s.lookupOrCreateDonor(ctx, donorEmail, in)
	if err != nil {
		s.logger.Error(ctx, "Failed to resolve donor account",
			"donor_email", donorEmail,
			"error", err,
		)
		return nil, err
	}

	donation := &domain.DonationRecord{
		ID:                uuid.New().String(),
		ProjectID:         projectID,
		ProjectName:       projectName,
		DonorUserID:       donor.ID,
		DonorName:         strings.TrimSpace(in.DonorName),
		DonorEmail:        donorEmail,
		DonorOrganization: optionalString(in.DonorOrganization),
		Amount:            amount,
		PaymentMethod:     method,
		ReferenceNumber:   optionalString(in.ReferenceNumber),
		Status:            domain.DonationStatusPendingConfirmation,
		DonorMessage:      optionalString(in.Message),
		SubmittedAt:       time.Now(),
	}

	if err := s.repo.CreateDonation(ctx, donation); err != nil {
		s.logger.Error(ctx, "Failed to create donation record",
			"error", err,
		)
		return nil, err
	}

	s.logger.Info(ctx, "Donation confirmation recorded",
		"donation_id", donation.ID,
		"project", projectName,
		"is_new_donor", isNewDonor,
	)

	go s.notifyConfirmed(detach(ctx), donation, isNewDonor, temporaryPassword)

	message := "Thank you! We will confirm receipt of your funds shortly. Track your donation in your donor dashboard."
	if isNewDonor {
		message = "Thank you! We've created a donor account for you. Check your email for login details to track your donation."
	}

	return &ConfirmDonationResult{
		Donation:   donation,
		IsNewDonor: isNewDonor,
		Message:    message,
	}, nil
}

func (s *donationService) lookupOrCreateDonor(ctx context.Context, email string, in ConfirmDonationInput) (*domain.User, bool, string, error) {
	donor, err := s.repo.GetUserByEmail(ctx, email)
	if err == nil {
		return donor, false, "", nil
	}
	if err != domain.ErrUserNotFound {
		return nil, false, "", err
	}

	temporaryPassword := auth.TemporaryPassword()
	passwordHash, err := auth.HashPassword(temporaryPassword)
	if err != nil {
		return nil, false, "", err
	}

	donor = &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         strings.TrimSpace(in.DonorName),
		Organization: optionalString(in.DonorOrganization),
		Role:         domain.RoleDonor,
		IsActive:     true,
	}
	if err := s.repo.CreateUser(ctx, donor); err != nil {
		return nil, false, "", err
	}

	s.logger.Info(ctx, "Donor account auto-created",
		"donor_email", email,
	)

	return donor, true, temporaryPassword, nil
}

func (s *donationService) notifyConfirmed(ctx context.Context, d *domain.DonationRecord, isNewDonor bool, temporaryPassword string) {
	if isNewDonor {
		err := s.mailer.SendDonorWelcome(ctx, mailer.DonorWelcome{
			DonorName:         d.DonorName,
			DonorEmail:        d.DonorEmail,
			TemporaryPassword: temporaryPassword,
			ProjectName:       d.ProjectName,
			Amount:            d.Amount,
			PaymentMethod:     strings.ToLower(string(d.PaymentMethod)),
		})
		if err != nil {
			s.logger.Error(ctx, "Failed to send donor welcome email",
				"donation_id", d.ID,
				"error", err,
			)
		}
	} else {
		err := s.mailer.SendDonationConfirmation(ctx, mailer.DonationConfirmation{
			DonorName:   d.DonorName,
			DonorEmail:  d.DonorEmail,
			ProjectName: d.ProjectName,
		})
		if err != nil {
			s.logger.Error(ctx, "Failed to send donation confirmation email",
				"donation_id", d.ID,
				"error", err,
			)
		}
	}

	err := s.mailer.SendDonationAlert(ctx, mailer.DonationAlert{
		DonorName:         d.DonorName,
		DonorEmail:        d.DonorEmail,
		DonorOrganization: deref(d.DonorOrganization),
		ProjectName:       d.ProjectName,
		Amount:            d.Amount,
		PaymentMethod:     strings.ToLower(string(d.PaymentMethod)),
		ReferenceNumber:   deref(d.ReferenceNumber),
		IsNewDonor:        isNewDonor,
	})
	if err != nil {
		s.logger.Error(ctx, "Failed to send donation admin alert",
			"donation_id", d.ID,
			"error", err,
		)
	}
}

// UpdateStatus moves a donation forward through its lifecycle. The
// transition table is enforced against the persisted status, not the
// caller's view of it.
func (s *donationService) UpdateStatus(ctx context.Context, id string, next domain.DonationStatus, internalNotes string) (*domain.DonationRecord, error) {
	if next == "" {
		return nil, domain.NewValidationError("status", "is required")
	}
	if !next.Valid() {
		return nil, domain.NewValidationError("status", "unknown status")
	}

	var notes *string
	if trimmed := strings.TrimSpace(internalNotes); trimmed != "" {
		notes = &trimmed
	}

	updated, err := s.repo.TransitionDonation(ctx, id, next, notes, time.Now())
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Donation status updated",
		"donation_id", id,
		"status", next,
	)

	if next == domain.DonationStatusForwarded {
		go func(ctx context.Context) {
			err := s.mailer.SendDonationForwarded(ctx, mailer.DonationForwarded{
				DonorName:       updated.DonorName,
				DonorEmail:      updated.DonorEmail,
				ProjectName:     updated.ProjectName,
				Amount:          updated.Amount,
				PaymentMethod:   strings.ToLower(string(updated.PaymentMethod)),
				ReferenceNumber: deref(updated.ReferenceNumber),
			})
			if err != nil {
				s.logger.Error(ctx, "Failed to send donation forwarded email",
					"donation_id", id,
					"error", err,
				)
			}
		}(detach(ctx))
	}

	return updated, nil
}

func (s *donationService) List(ctx context.Context) ([]domain.DonationRecord, error) {
	return s.repo.ListDonations(ctx)
}

func (s *donationService) ListByDonor(ctx context.Context, donorUserID string) ([]domain.DonationRecord, error) {
	return s.repo.ListDonationsByDonor(ctx, donorUserID)
}
