// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/carterperez-dev/photo-portfolio/internal/config"
	"github.com/carterperez-dev/photo-portfolio/internal/core"
)

const (
	RoleAdmin  = "Admin"
	RoleClient = "Client"
)

type RegisterUserCommand struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	PhoneNumber *string
}

type LoginUserCommand struct {
	Email    string
	Password string
}

type GetCurrentUserQuery struct {
	UserID string
}

type UserInfo struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  *string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

type NewUser struct {
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  *string
	PasswordHash string
	Role         string
}

// UserProvider resolves accounts with their role already applied. Email
// lookups are case-insensitive.
type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	GetByID(ctx context.Context, id string) (*UserInfo, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user NewUser) (*UserInfo, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

// Service implements registration, login and current-user lookup.
// Register and Login report every failure through AuthResponse and never
// return an error; GetCurrentUser returns errors to its caller.
type Service struct {
	jwt    *JWTManager
	users  UserProvider
	logger *slog.Logger
}

func NewService(jwt *JWTManager, users UserProvider, logger *slog.Logger) *Service {
	return &Service{jwt: jwt, users: users, logger: logger}
}

func (s *Service) Register(
	ctx context.Context,
	cmd RegisterUserCommand,
) (AuthResponse, error) {
	resp, err := s.register(ctx, cmd)
	if err != nil {
		s.logger.ErrorContext(ctx, "error during user registration", "error", err)
		return failed(FailureInternal, MsgRegistrationError), nil
	}
	return resp, nil
}

func (s *Service) register(
	ctx context.Context,
	cmd RegisterUserCommand,
) (AuthResponse, error) {
	exists, err := s.users.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return failed(FailureConflict, MsgEmailExists), nil
	}

	passwordHash, err := core.HashPassword(cmd.Password)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, NewUser{
		FirstName:    cmd.FirstName,
		LastName:     cmd.LastName,
		Email:        cmd.Email,
		PhoneNumber:  cmd.PhoneNumber,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return failed(FailureConflict, MsgEmailExists), nil
		}
		return AuthResponse{}, fmt.Errorf("create user: %w", err)
	}

	return s.session(user, MsgRegistrationSuccess)
}

func (s *Service) Login(
	ctx context.Context,
	cmd LoginUserCommand,
) (AuthResponse, error) {
	resp, err := s.login(ctx, cmd)
	if err != nil {
		s.logger.ErrorContext(ctx, "error during user login", "error", err)
		return failed(FailureInternal, MsgLoginError), nil
	}
	return resp, nil
}

func (s *Service) login(
	ctx context.Context,
	cmd LoginUserCommand,
) (AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _, _ = core.VerifyPasswordTimingSafe(cmd.Password, nil)
			return failed(FailureInvalidCredentials, MsgInvalidCredentials), nil
		}
		return AuthResponse{}, fmt.Errorf("get user: %w", err)
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(
		cmd.Password,
		&user.PasswordHash,
	)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return failed(FailureInvalidCredentials, MsgInvalidCredentials), nil
	}

	if newHash != "" {
		if err := s.users.UpdatePassword(ctx, user.ID, newHash); err != nil {
			s.logger.WarnContext(ctx, "password rehash failed",
				"user_id", user.ID,
				"error", err,
			)
		}
	}

	return s.session(user, MsgLoginSuccess)
}

func (s *Service) GetCurrentUser(
	ctx context.Context,
	q GetCurrentUserQuery,
) (UserResponse, error) {
	if strings.TrimSpace(q.UserID) == "" {
		return UserResponse{}, fmt.Errorf("get current user: %w", core.ErrUnauthorized)
	}

	user, err := s.users.GetByID(ctx, q.UserID)
	if err != nil {
		return UserResponse{}, err
	}

	return ToUserResponse(user), nil
}

// EnsureAdmin creates the configured administrator when no account with
// that email exists. It reports whether an account was created.
func (s *Service) EnsureAdmin(ctx context.Context, seed config.SeedConfig) (bool, error) {
	if seed.AdminEmail == "" {
		return false, nil
	}

	exists, err := s.users.ExistsByEmail(ctx, seed.AdminEmail)
	if err != nil {
		return false, fmt.Errorf("seed admin: %w", err)
	}
	if exists {
		return false, nil
	}

	passwordHash, err := core.HashPassword(seed.AdminPassword)
	if err != nil {
		return false, fmt.Errorf("seed admin: hash password: %w", err)
	}

	_, err = s.users.Create(ctx, NewUser{
		FirstName:    seed.AdminFirstName,
		LastName:     seed.AdminLastName,
		Email:        seed.AdminEmail,
		PasswordHash: passwordHash,
		Role:         RoleAdmin,
	})
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return false, nil
		}
		return false, fmt.Errorf("seed admin: %w", err)
	}

	return true, nil
}

func (s *Service) session(user *UserInfo, message string) (AuthResponse, error) {
	token, expiresAt, err := s.jwt.CreateAccessToken(AccessTokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return AuthResponse{}, fmt.Errorf("create access token: %w", err)
	}

	profile := ToUserResponse(user)

	return AuthResponse{
		Success:   true,
		Message:   message,
		Token:     token,
		ExpiresAt: &expiresAt,
		User:      &profile,
	}, nil
}
