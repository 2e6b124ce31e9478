package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/legalease/legalease-api/internal/core/domain"
)

// UserRepository is the SQLite implementation of ports.UserRepository.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

const userColumns = `id, username, email, password_hash, user_type, full_name, phone, address,
	preferred_language, is_verified, is_active, last_login, login_count, created_at, updated_at`

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, `username = ?`, username)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, `email = ?`, email)
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, `id = ?`, id)
}

func (r *UserRepository) findOne(ctx context.Context, cond string, arg any) (*domain.User, error) {
	var user domain.User
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + cond
	if err := r.store.db.GetContext(ctx, &user, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	err := r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO users (username, email, password_hash, user_type, full_name, phone, address,
			 preferred_language, is_verified, is_active, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			user.Username, user.Email, user.PasswordHash, user.UserType, user.FullName,
			user.Phone, user.Address, user.PreferredLanguage, user.IsVerified, user.IsActive,
			user.CreatedAt, user.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert user: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("user id: %w", err)
		}
		user.ID = id

		var profileSQL string
		switch user.UserType {
		case domain.RoleAdvocate:
			profileSQL = `INSERT INTO advocate_profiles (user_id) VALUES (?)`
		case domain.RoleClient:
			profileSQL = `INSERT INTO client_profiles (user_id) VALUES (?)`
		default:
			return nil
		}
		if _, err := tx.ExecContext(ctx, profileSQL, id); err != nil {
			return fmt.Errorf("insert profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) RecordLogin(ctx context.Context, id int64, at time.Time) error {
	_, err := r.store.db.ExecContext(ctx,
		`UPDATE users SET last_login = ?, login_count = login_count + 1, updated_at = ? WHERE id = ?`,
		at, at, id,
	)
	if err != nil {
		return fmt.Errorf("record login: %w", err)
	}
	return nil
}
