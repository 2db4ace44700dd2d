package services

import (
	"context"
	"errors"

	"github.com/cinescope/apiserver/internal/store"
	"github.com/cinescope/apiserver/types"
)

// AdminService encapsulates admin-only user management.
type AdminService struct {
	repo UserRepository
}

func NewAdminService(repo UserRepository) *AdminService {
	return &AdminService{repo: repo}
}

// ListUsers returns all users, newest first.
func (s *AdminService) ListUsers(ctx context.Context) ([]types.User, error) {
	return s.repo.List(ctx)
}

// UpdateUserRole sets a user's role to one of the enumerated values.
// Outstanding session tokens for the user are not invalidated; the new role
// is observed on the next authenticated request, which re-resolves the user.
func (s *AdminService) UpdateUserRole(ctx context.Context, userID, rawRole string) (types.User, error) {
	role, ok := types.ParseRole(rawRole)
	if !ok {
		return types.User{}, ErrInvalidRole
	}

	user, err := s.repo.UpdateRole(ctx, userID, role)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, ErrUserNotFound
		}
		return types.User{}, err
	}
	return user, nil
}
