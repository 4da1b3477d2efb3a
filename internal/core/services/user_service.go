package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pfdash/pfdash_backend/internal/apperrors"
	"github.com/pfdash/pfdash_backend/internal/core/domain"
	portsrepo "github.com/pfdash/pfdash_backend/internal/core/ports/repositories"
	portssvc "github.com/pfdash/pfdash_backend/internal/core/ports/services"
	"github.com/pfdash/pfdash_backend/internal/dto"
	"github.com/pfdash/pfdash_backend/internal/platform/config"
	"github.com/pfdash/pfdash_backend/internal/utils"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo       portsrepo.UserRepositoryFacade
	categorySeeder portssvc.CategorySvcFacade
	cfg            *config.Config
}

// UserServiceOption is a functional option for configuring the user service
type UserServiceOption func(*userService)

// WithCategorySeeder lets the user service seed the default category set for
// every newly created user.
func WithCategorySeeder(svc portssvc.CategorySvcFacade) UserServiceOption {
	return func(s *userService) {
		s.categorySeeder = svc
	}
}

// NewUserService creates a new user service with the provided options
func NewUserService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade, options ...UserServiceOption) portssvc.UserSvcFacade {
	svc := &userService{
		cfg:      cfg,
		userRepo: userRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// seedDefaults creates the starter categories for a fresh user. Failure is
// logged and swallowed; the account is still usable without them.
func (s *userService) seedDefaults(ctx context.Context, userID string) {
	if s.categorySeeder == nil {
		return
	}
	if err := s.categorySeeder.SeedDefaultCategories(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to seed default categories for new user",
			slog.String("user_id", userID))
	}
}

func (s *userService) CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password during registration")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	newUserID := uuid.NewString()

	user := domain.User{
		UserID:       newUserID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicate
		}
		s.LogError(ctx, err, "Failed to save new user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.seedDefaults(ctx, newUserID)
	s.LogInfo(ctx, "User registered", slog.String("user_id", newUserID))
	return &user, nil
}

// CreateGuestUser creates an anonymous user with no credentials. Guests hold
// real data and can later be upgraded by setting an email and password.
func (s *userService) CreateGuestUser(ctx context.Context) (*domain.User, error) {
	now := time.Now()
	newUserID := uuid.NewString()

	user := domain.User{
		UserID: newUserID,
		Name:   "Guest",
		// Synthetic unique email keeps the column constraint satisfied.
		Email:        fmt.Sprintf("guest-%s@guest.local", newUserID),
		AuthProvider: domain.ProviderGuest,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save guest user")
		return nil, fmt.Errorf("failed to create guest user: %w", err)
	}

	s.seedDefaults(ctx, newUserID)
	s.LogInfo(ctx, "Guest user created", slog.String("user_id", newUserID))
	return &user, nil
}

func (s *userService) FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	if info.Email == "" {
		return nil, apperrors.ErrValidation
	}

	existing, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up user by email for google sign-in")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	now := time.Now()
	newUserID := uuid.NewString()

	user := domain.User{
		UserID:       newUserID,
		Name:         info.Name,
		Email:        info.Email,
		AuthProvider: domain.ProviderGoogle,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save google user")
		return nil, fmt.Errorf("failed to create google user: %w", err)
	}

	s.seedDefaults(ctx, newUserID)
	s.LogInfo(ctx, "Google user created", slog.String("user_id", newUserID))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// AuthenticateUser verifies email/password credentials. Unknown email and
// wrong password both come back as ErrUnauthorized so callers cannot probe
// which addresses are registered.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.ClearRefreshToken(ctx, userID)
}

// InitiatePasswordReset issues a single-use reset token. An unknown email
// yields an empty token and no error so the endpoint stays uniform.
func (s *userService) InitiatePasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to initiate password reset: %w", err)
	}
	if user.AuthProvider != domain.ProviderLocal {
		// Google and guest accounts have no password to reset.
		return "", nil
	}

	rawToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate password reset token: %w", err)
	}

	expiry := time.Now().Add(s.cfg.PasswordResetExpiryDuration)
	if err := s.userRepo.SetPasswordResetToken(ctx, user.UserID, utils.HashRefreshToken(rawToken), expiry); err != nil {
		s.LogError(ctx, err, "Failed to store password reset token", slog.String("user_id", user.UserID))
		return "", err
	}

	s.LogInfo(ctx, "Password reset initiated", slog.String("user_id", user.UserID))
	return rawToken, nil
}

func (s *userService) CompletePasswordReset(ctx context.Context, token, newPassword string) error {
	user, err := s.userRepo.FindUserByResetTokenHash(ctx, utils.HashRefreshToken(token))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrUnauthorized
		}
		return fmt.Errorf("failed to complete password reset: %w", err)
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.UserID, passwordHash); err != nil {
		s.LogError(ctx, err, "Failed to update password", slog.String("user_id", user.UserID))
		return err
	}

	s.LogInfo(ctx, "Password reset completed", slog.String("user_id", user.UserID))
	return nil
}

func (s *userService) ClearUserData(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearUserData(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to clear user data", slog.String("user_id", userID))
		return err
	}
	s.LogInfo(ctx, "User data cleared", slog.String("user_id", userID))
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearUserData(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to clear data before user deletion", slog.String("user_id", userID))
		return err
	}
	if err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to mark user deleted", slog.String("user_id", userID))
		return err
	}
	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID))
	return nil
}
