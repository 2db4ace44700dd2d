package services

import "errors"

// Failure kinds surfaced by the services. Handlers map each kind to exactly
// one HTTP status; unexpected errors fall through as internal failures.
var (
	// ErrEmailTaken means the signup email already belongs to a user.
	ErrEmailTaken = errors.New("user already exists with this email")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// with a single message so responses do not reveal account existence.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken covers malformed, signature-invalid, and expired
	// session tokens, and tokens whose user no longer exists.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrForbidden means the caller is authenticated but lacks the role.
	ErrForbidden = errors.New("insufficient permissions")

	// ErrInvalidResetToken means the reset token is unknown, expired, or
	// already consumed.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")

	// ErrInvalidRole means the requested role is outside the closed set.
	ErrInvalidRole = errors.New("invalid role")

	// ErrUserNotFound means the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
)
