// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/photo-portfolio/internal/core"
	"github.com/carterperez-dev/photo-portfolio/internal/row"
)

type Repository interface {
	Create(ctx context.Context, user *User, role string) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetRole(ctx context.Context, userID string) (*string, error)
	AssignRole(ctx context.Context, userID, role string) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

var selectUser = "SELECT " + strings.Join(columns, ", ") + " FROM users"

// Create inserts the user and its role row in one transaction. A unique
// email collision surfaces as core.ErrDuplicateKey.
func (r *repository) Create(ctx context.Context, user *User, role string) error {
	now := time.Now().UTC()
	user.CreatedAt = now

	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO users (id, first_name, last_name, email, phone_number, password_hash, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`),
			user.ID,
			user.FirstName,
			user.LastName,
			user.Email,
			user.PhoneNumber,
			user.PasswordHash,
			now,
		)
		if err != nil {
			return err
		}

		return assignRole(ctx, tx, user.ID, role, now)
	})
	if err != nil {
		if core.IsUniqueViolation(err) {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	return r.getOne(ctx, "get user", selectUser+" WHERE id = ?", id)
}

// GetByEmail matches case-insensitively.
func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.getOne(ctx, "get user by email",
		selectUser+" WHERE LOWER(email) = LOWER(?)", email)
}

func (r *repository) getOne(
	ctx context.Context,
	op, stmt string,
	args ...any,
) (*User, error) {
	u, err := row.One(r.db.QueryRowxContext(ctx, r.db.Rebind(stmt), args...), fromRow)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &u, nil
}

func (r *repository) UpdatePassword(
	ctx context.Context,
	id, passwordHash string,
) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(`
		UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`),
		passwordHash, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update password: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count, r.db.Rebind(
		"SELECT COUNT(1) FROM users WHERE LOWER(email) = LOWER(?)"), email)
	if err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}

	return count > 0, nil
}

// GetRole returns nil when the user has no role row.
func (r *repository) GetRole(ctx context.Context, userID string) (*string, error) {
	var role string
	err := r.db.GetContext(ctx, &role, r.db.Rebind(
		"SELECT role_name FROM user_roles WHERE user_id = ?"), userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user role: %w", err)
	}

	return &role, nil
}

// AssignRole replaces any existing role for the user.
func (r *repository) AssignRole(ctx context.Context, userID, role string) error {
	if err := assignRole(ctx, r.db, userID, role, time.Now().UTC()); err != nil {
		if core.IsForeignKeyViolation(err) {
			return fmt.Errorf("assign role: %w", core.ErrNotFound)
		}
		return fmt.Errorf("assign role: %w", err)
	}
	return nil
}

func assignRole(
	ctx context.Context,
	db sqlx.ExtContext,
	userID, role string,
	at time.Time,
) error {
	_, err := db.ExecContext(ctx, db.Rebind(`
		INSERT INTO user_roles (user_id, role_name, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET role_name = excluded.role_name`),
		userID, role, at)
	return err
}
