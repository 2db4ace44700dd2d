package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"time"

	"github.com/cinescope/apiserver/internal/notify"
	"github.com/cinescope/apiserver/internal/store"
	"github.com/cinescope/apiserver/internal/token"
	"github.com/cinescope/apiserver/types"
	"golang.org/x/crypto/bcrypt"
)

// resetTokenTTL bounds how long a password-reset token stays redeemable.
const resetTokenTTL = time.Hour

// resetTokenBytes is the entropy of a reset token (256 bits, hex-encoded).
const resetTokenBytes = 32

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (types.User, error)
	GetByEmail(ctx context.Context, email string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
	List(ctx context.Context) ([]types.User, error)
	UpdateRole(ctx context.Context, id string, role types.Role) (types.User, error)
	SetResetToken(ctx context.Context, id, token string, expiry time.Time) error
	ConsumePasswordReset(ctx context.Context, token, passwordHash string) error
}

// AuthService owns the credential and session lifecycle: signup, login,
// token authentication, and the one-time password-reset flow.
type AuthService struct {
	repo       UserRepository
	tokens     token.Issuer
	mailer     notify.Mailer
	bcryptCost int
}

func NewAuthService(repo UserRepository, tokens token.Issuer, mailer notify.Mailer, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		repo:       repo,
		tokens:     tokens,
		mailer:     mailer,
		bcryptCost: bcryptCost,
	}
}

// Signup creates a user with the lowest-privilege role and returns it with a
// fresh session token. The email uniqueness constraint in the store is the
// source of truth; the pre-check only gives a friendlier fast path.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (types.User, string, error) {
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return types.User{}, "", ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return types.User{}, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return types.User{}, "", err
	}

	user, err := s.repo.Create(ctx, types.User{
		Name:         name,
		Email:        email,
		Role:         types.RoleUser,
		PasswordHash: string(hashed),
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return types.User{}, "", ErrEmailTaken
		}
		return types.User{}, "", err
	}

	signed, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return types.User{}, "", err
	}
	return user, signed, nil
}

// Login verifies credentials and returns the user with a fresh session
// token. Unknown email and wrong password fail identically. Previously
// issued tokens stay valid until they expire on their own.
func (s *AuthService) Login(ctx context.Context, email, password string) (types.User, string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, "", ErrInvalidCredentials
		}
		return types.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return types.User{}, "", ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return types.User{}, "", err
	}
	return user, signed, nil
}

// Authenticate verifies a bearer token and re-resolves the encoded user id
// against the current user record, so role changes since issuance are
// honored and deleted users are rejected.
func (s *AuthService) Authenticate(ctx context.Context, raw string) (types.User, error) {
	claims, err := s.tokens.Verify(raw)
	if err != nil {
		return types.User{}, ErrInvalidToken
	}

	user, err := s.repo.GetByID(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, ErrInvalidToken
		}
		return types.User{}, err
	}
	return user, nil
}

// Authorize checks that the user's current role is one of the required
// roles. It is a pure predicate over the already-authenticated user.
func (s *AuthService) Authorize(user types.User, roles ...types.Role) error {
	for _, role := range roles {
		if user.Role == role {
			return nil
		}
	}
	return ErrForbidden
}

// GetCurrentUser loads the user for an authenticated id.
func (s *AuthService) GetCurrentUser(ctx context.Context, id string) (types.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, ErrUserNotFound
		}
		return types.User{}, err
	}
	return user, nil
}

// RequestPasswordReset issues a one-time reset token for the account and
// dispatches it through the mailer. An unknown email returns success with no
// observable difference; that path burns one bcrypt hash so both outcomes
// cost comparable work.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_, _ = bcrypt.GenerateFromPassword([]byte("equalize-lookup-timing"), s.bcryptCost)
			return nil
		}
		return err
	}

	resetToken, err := generateResetToken()
	if err != nil {
		return err
	}

	if err := s.repo.SetResetToken(ctx, user.ID, resetToken, time.Now().UTC().Add(resetTokenTTL)); err != nil {
		return err
	}

	// Dispatch failures are logged, never surfaced: the endpoint must stay
	// non-enumerating.
	if err := s.mailer.SendPasswordReset(ctx, user.Email, resetToken); err != nil {
		log.Printf("failed to dispatch password reset for user %s: %v", user.ID, err)
	}
	return nil
}

// ResetPassword redeems a reset token and installs the new password. The
// token is consumed atomically in the store, so a concurrent redeem of the
// same token succeeds at most once.
func (s *AuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return err
	}

	if err := s.repo.ConsumePasswordReset(ctx, resetToken, string(hashed)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}
	return nil
}

func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
