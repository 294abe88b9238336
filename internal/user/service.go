// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/carterperez-dev/photo-portfolio/internal/auth"
)

// Service adapts the repository to auth.UserProvider and resolves each
// user's single role.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(ctx context.Context, id string) (*auth.UserInfo, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.withRole(ctx, u)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*auth.UserInfo, error) {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}

	return s.withRole(ctx, u)
}

func (s *Service) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.repo.ExistsByEmail(ctx, strings.TrimSpace(email))
}

func (s *Service) Create(ctx context.Context, nu auth.NewUser) (*auth.UserInfo, error) {
	role := nu.Role
	if role == "" {
		role = DefaultRole
	}

	u := &User{
		ID:           uuid.New().String(),
		FirstName:    strings.TrimSpace(nu.FirstName),
		LastName:     strings.TrimSpace(nu.LastName),
		Email:        strings.ToLower(strings.TrimSpace(nu.Email)),
		PhoneNumber:  nu.PhoneNumber,
		PasswordHash: nu.PasswordHash,
	}

	if err := s.repo.Create(ctx, u, role); err != nil {
		return nil, err
	}

	return toUserInfo(u, role), nil
}

func (s *Service) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	return s.repo.UpdatePassword(ctx, userID, passwordHash)
}

// ResolveRole returns the stored role, or DefaultRole when none exists.
func (s *Service) ResolveRole(ctx context.Context, userID string) (string, error) {
	role, err := s.repo.GetRole(ctx, userID)
	if err != nil {
		return "", err
	}
	if role == nil || *role == "" {
		return DefaultRole, nil
	}
	return *role, nil
}

func (s *Service) SetRole(ctx context.Context, userID, role string) (*auth.UserInfo, error) {
	if !IsValidRole(role) {
		return nil, fmt.Errorf("set role %q: %w", role, ErrInvalidRole)
	}

	if err := s.repo.AssignRole(ctx, userID, role); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, userID)
}

func (s *Service) withRole(ctx context.Context, u *User) (*auth.UserInfo, error) {
	role, err := s.ResolveRole(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return toUserInfo(u, role), nil
}

func toUserInfo(u *User, role string) *auth.UserInfo {
	return &auth.UserInfo{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		PhoneNumber:  u.PhoneNumber,
		PasswordHash: u.PasswordHash,
		Role:         role,
		CreatedAt:    u.CreatedAt,
	}
}
