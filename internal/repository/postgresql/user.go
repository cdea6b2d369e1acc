package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/restolab/staffpoint-backend-go/internal/domain/user"
	"github.com/restolab/staffpoint-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

// GetByEmail implements user.Repository.
func (u *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, email, password_hash, full_name, role, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var account user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&account.ID, &account.Email, &account.PasswordHash, &account.FullName,
		&account.Role, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return account, nil
}

// GetByID implements user.Repository.
func (u *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, email, password_hash, full_name, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var account user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&account.ID, &account.Email, &account.PasswordHash, &account.FullName,
		&account.Role, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return account, nil
}

// Create implements user.Repository.
func (u *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO users (id, email, password_hash, full_name, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	if newUser.ID == "" {
		newUser.ID = uuid.NewString()
	}

	err := q.QueryRow(ctx, query,
		newUser.ID, newUser.Email, newUser.PasswordHash, newUser.FullName, newUser.Role,
	).Scan(&newUser.ID, &newUser.CreatedAt, &newUser.UpdatedAt)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepository{db: db}
}
