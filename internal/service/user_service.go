package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hromada/hromada-api/internal/auth"
	"github.com/hromada/hromada-api/internal/domain"
	"github.com/hromada/hromada-api/pkg/logger"
)

const passwordMinLength = 8

type CreateUserInput struct {
	Email        string
	Password     string
	Name         string
	Organization string
	Role         string
}

// UserPatch updates account fields; nil means unchanged. Email is
// intentionally not editable.
type UserPatch struct {
	Name         *string
	Organization *string
	Role         *string
	Password     *string
}

type UserService interface {
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	repo   domain.Repository
	logger *logger.Logger
}

func NewUserService(repo domain.Repository, log *logger.Logger) UserService {
	return &userService{
		repo:   repo,
		logger: log,
	}
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.ErrAccountDisabled
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.repo.TouchLastLogin(ctx, user.ID, time.Now()); err != nil {
		s.logger.Warn(ctx, "Failed to record last login",
			"user_id", user.ID,
			"error", err,
		)
	}

	s.logger.Info(ctx, "User authenticated",
		"user_id", user.ID,
		"role", user.Role,
	)

	return user, nil
}

var assignableRoles = map[domain.UserRole]bool{
	domain.RoleAdmin:            true,
	domain.RolePartner:          true,
	domain.RoleNonprofitManager: true,
}

func (s *userService) Create(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.NewValidationError("email", "email, password, and name are required")
	}

	email := normalizeEmail(in.Email)
	if !validEmail(email) {
		return nil, domain.NewValidationError("email", "invalid email format")
	}

	if len(in.Password) < passwordMinLength {
		return nil, domain.NewValidationError("password", "must be at least 8 characters")
	}

	role := domain.RolePartner
	if in.Role != "" && assignableRoles[domain.UserRole(in.Role)] {
		role = domain.UserRole(in.Role)
	}

	if _, err := s.repo.GetUserByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if err != domain.ErrUserNotFound {
		return nil, err
	}

	passwordHash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         strings.TrimSpace(in.Name),
		Organization: optionalString(in.Organization),
		Role:         role,
		IsActive:     true,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		s.logger.Error(ctx, "Failed to create user",
			"error", err,
		)
		return nil, err
	}

	s.logger.Info(ctx, "User created",
		"user_id", user.ID,
		"role", user.Role,
	)

	return user, nil
}

func (s *userService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *userService) Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error) {
	existing, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}

	if patch.Name != nil {
		fields["name"] = strings.TrimSpace(*patch.Name)
	}
	if patch.Organization != nil {
		fields["organization"] = optionalString(*patch.Organization)
	}
	if patch.Role != nil {
		role := domain.UserRole(*patch.Role)
		if !assignableRoles[role] {
			return nil, domain.NewValidationError("role", "invalid role")
		}
		fields["role"] = role
	}
	if patch.Password != nil && *patch.Password != "" {
		if len(*patch.Password) < passwordMinLength {
			return nil, domain.NewValidationError("password", "must be at least 8 characters")
		}
		hash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		fields["password_hash"] = hash
	}

	if len(fields) == 0 {
		return existing, nil
	}

	updated, err := s.repo.UpdateUserFields(ctx, id, fields)
	if err != nil {
		s.logger.Error(ctx, "Failed to update user",
			"user_id", id,
			"error", err,
		)
		return nil, err
	}

	return updated, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteUser(ctx, id)
}
