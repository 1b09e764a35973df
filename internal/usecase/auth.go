package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/notify"
	"github.com/taskdeck/taskdeck/internal/password"
	"github.com/taskdeck/taskdeck/internal/repository"
	"github.com/taskdeck/taskdeck/internal/token"
)

const defaultResetTTL = 10 * time.Minute

type AuthUsecase struct {
	users    repository.UserRepository
	hasher   *password.Hasher
	tokens   *token.Issuer
	sink     notify.ResetSink
	resetTTL time.Duration
}

func NewAuthUsecase(users repository.UserRepository, hasher *password.Hasher, tokens *token.Issuer, sink notify.ResetSink) *AuthUsecase {
	return &AuthUsecase{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		sink:     sink,
		resetTTL: defaultResetTTL,
	}
}

// Register creates the user with a hashed password and signs them in.
// Returns domain.ErrEmailTaken if the email is already registered.
func (u *AuthUsecase) Register(ctx context.Context, name, email, plaintext string) (*domain.User, string, error) {
	hash, err := u.hasher.Hash(plaintext)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := u.users.Create(ctx, name, email, hash)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, "", domain.ErrEmailTaken
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	signed, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, signed, nil
}

// Login verifies the credentials and returns a fresh bearer token.
// Unknown email and wrong password are both ErrInvalidCredentials, so
// the response does not reveal which one failed.
func (u *AuthUsecase) Login(ctx context.Context, email, plaintext string) (*domain.User, string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if !u.hasher.Verify(plaintext, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	signed, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, signed, nil
}

// RequestPasswordReset generates a single-use reset token, stores its
// SHA-256 hash with a short expiry, and hands the plaintext to the sink.
// An unknown email is a silent no-op: callers answer identically either
// way so the endpoint cannot be used to probe for accounts.
func (u *AuthUsecase) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("find user: %w", err)
	}

	raw := make([]byte, 20)
	if _, err = io.ReadFull(rand.Reader, raw); err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}
	rawToken := hex.EncodeToString(raw)
	tokenHash := fmt.Sprintf("%x", sha256.Sum256([]byte(rawToken)))

	expiresAt := time.Now().Add(u.resetTTL)
	if err = u.users.SetResetToken(ctx, user.ID, tokenHash, expiresAt); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	if err = u.sink.DeliverResetToken(ctx, user.Email, rawToken); err != nil {
		return fmt.Errorf("deliver reset token: %w", err)
	}
	return nil
}

// ResetPassword consumes a reset token: it hashes the supplied
// plaintext, looks up the user whose stored hash matches and whose
// expiry is still in the future, re-hashes the new password, and clears
// the reset columns so the token cannot be replayed. Wrong and expired
// tokens are indistinguishable (both ErrResetTokenInvalid).
func (u *AuthUsecase) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	tokenHash := fmt.Sprintf("%x", sha256.Sum256([]byte(rawToken)))

	user, err := u.users.FindByResetToken(ctx, tokenHash, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrResetTokenInvalid
		}
		return fmt.Errorf("find user by reset token: %w", err)
	}

	hash, err := u.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err = u.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
