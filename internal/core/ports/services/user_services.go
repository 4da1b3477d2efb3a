package services

import (
	"context"
	"time"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
	"github.com/pfdash/pfdash_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email address.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// CreateUser creates a new local user with a bcrypt password hash.
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// CreateGuestUser creates a throwaway anonymous user.
	CreateGuestUser(ctx context.Context) (*domain.User, error)

	// FindOrCreateGoogleUser resolves a Google profile to a local user,
	// creating one on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)

	// UpdateUser updates the caller's own profile.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// UpdateRefreshToken stores the hashed refresh token details for a user.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken clears the refresh token for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserLifecycleSvc defines operations for managing user lifecycle.
type UserLifecycleSvc interface {
	// ClearUserData removes every record the user owns in one database
	// transaction; the user row itself survives.
	ClearUserData(ctx context.Context, userID string) error

	// DeleteUser clears the user's data and soft-deletes the user.
	DeleteUser(ctx context.Context, userID string) error
}

// UserAuthSvc defines operations for user authentication.
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with email and password. Unknown
	// email and wrong password are indistinguishable to the caller.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// InitiatePasswordReset issues a single-use reset token for the email.
	// The returned token is empty when the email is unknown; callers must not
	// reveal which case occurred.
	InitiatePasswordReset(ctx context.Context, email string) (string, error)

	// CompletePasswordReset consumes a reset token and sets a new password.
	CompletePasswordReset(ctx context.Context, token, newPassword string) error
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
	UserAuthSvc
}
