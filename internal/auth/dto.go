// AngelaMos | 2026
// dto.go

package auth

import (
	"time"
)

const (
	MsgInvalidCredentials  = "Invalid email or password"
	MsgEmailExists         = "User with this email already exists"
	MsgLoginSuccess        = "Login successful"
	MsgRegistrationSuccess = "Registration successful"
	MsgLoginError          = "An error occurred during login"
	MsgRegistrationError   = "An error occurred during registration"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=256"`
	Password string `json:"password" validate:"required,max=128"`
}

type RegisterRequest struct {
	FirstName   string  `json:"firstName"   validate:"required,max=100"`
	LastName    string  `json:"lastName"    validate:"required,max=100"`
	Email       string  `json:"email"       validate:"required,email,max=256"`
	Password    string  `json:"password"    validate:"required,min=8,max=128"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,max=32"`
}

// UserResponse is the public profile. It never carries the password hash.
type UserResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	PhoneNumber *string   `json:"phoneNumber"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FailureKind classifies an unsuccessful AuthResponse for the transport
// layer. It is not serialized.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureInvalidCredentials
	FailureConflict
	FailureInvalidInput
	FailureInternal
)

// AuthResponse is the result of login and registration. Failures are
// ordinary values with Success false, never errors.
type AuthResponse struct {
	Success   bool          `json:"success"`
	Message   string        `json:"message"`
	Token     string        `json:"token,omitempty"`
	ExpiresAt *time.Time    `json:"expiresAt,omitempty"`
	User      *UserResponse `json:"user,omitempty"`
	Failure   FailureKind   `json:"-"`
}

func failed(kind FailureKind, message string) AuthResponse {
	return AuthResponse{Success: false, Message: message, Failure: kind}
}

func ToUserResponse(u *UserInfo) UserResponse {
	return UserResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
	}
}
