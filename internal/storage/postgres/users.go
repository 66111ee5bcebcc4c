// internal/storage/postgres/users.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"expense-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, first_name, last_name, email, contact_number, profile_image, password_hash, created_at, updated_at`

func (q *queries) CreateUser(ctx context.Context, u *domain.User) error {
	_, err := q.db.Exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, u.ID, u.FirstName, u.LastName, u.Email, u.ContactNumber, u.ProfileImage, u.PasswordHash, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Message: "User already exists"}
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (q *queries) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return q.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (q *queries) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return q.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (q *queries) getUser(ctx context.Context, query, arg string) (*domain.User, error) {
	var u domain.User
	err := q.db.QueryRow(ctx, query, arg).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email,
		&u.ContactNumber, &u.ProfileImage, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Message: "User not found"}
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (q *queries) UpdateUser(ctx context.Context, u *domain.User) error {
	tag, err := q.db.Exec(ctx, `
		UPDATE users
		SET first_name = $1, last_name = $2, email = $3, contact_number = $4, profile_image = $5,
		    password_hash = $6, updated_at = $7
		WHERE id = $8
	`, u.FirstName, u.LastName, u.Email, u.ContactNumber, u.ProfileImage, u.PasswordHash, u.UpdatedAt, u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Message: "Email is already in use"}
		}
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Message: "User not found"}
	}
	return nil
}
