package repository

import (
	"context"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// SetResetToken stores the hash and expiry of a pending password
	// reset, replacing any previous one.
	SetResetToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error

	// FindByResetToken returns the user whose stored reset hash matches
	// and whose expiry is after now. ErrUserNotFound otherwise.
	FindByResetToken(ctx context.Context, tokenHash string, now time.Time) (*domain.User, error)

	// UpdatePassword sets a new password hash and clears any pending
	// reset token in the same statement.
	UpdatePassword(ctx context.Context, userID, passwordHash string) error

	// ClearExpiredResetTokens removes reset hashes whose expiry has
	// passed. Returns the number of rows touched.
	ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
}
