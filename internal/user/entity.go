// AngelaMos | 2026
// entity.go

package user

import (
	"errors"
	"time"

	"github.com/carterperez-dev/photo-portfolio/internal/auth"
	"github.com/carterperez-dev/photo-portfolio/internal/row"
)

const (
	RoleAdmin  = auth.RoleAdmin
	RoleClient = auth.RoleClient
)

var ErrInvalidRole = errors.New("invalid role")

// DefaultRole applies to users without a role row.
const DefaultRole = RoleClient

var columns = []string{
	"id", "first_name", "last_name", "email", "phone_number",
	"password_hash", "created_at", "updated_at",
}

type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  *string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleClient
}

func fromRow(r *row.Reader) (User, error) {
	u := User{
		ID:           r.String("id"),
		FirstName:    r.String("first_name"),
		LastName:     r.String("last_name"),
		Email:        r.String("email"),
		PhoneNumber:  r.NullString("phone_number"),
		PasswordHash: r.String("password_hash"),
		CreatedAt:    r.Time("created_at"),
		UpdatedAt:    r.NullTime("updated_at"),
	}

	if err := r.Err(); err != nil {
		return User{}, err
	}

	return u, nil
}
