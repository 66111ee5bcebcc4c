// internal/storage/sqlite/users.go
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"expense-tracker/internal/domain"
)

const userColumns = `id, first_name, last_name, email, contact_number, profile_image, password_hash, created_at, updated_at`

func (q *queries) CreateUser(ctx context.Context, u *domain.User) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, u.ID, u.FirstName, u.LastName, u.Email, u.ContactNumber, u.ProfileImage, u.PasswordHash,
		formatTime(u.CreatedAt), formatTime(u.UpdatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Message: "User already exists"}
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (q *queries) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return q.getUser(ctx, "id", id)
}

func (q *queries) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return q.getUser(ctx, "email", email)
}

func (q *queries) getUser(ctx context.Context, column, value string) (*domain.User, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE `+column+` = ?`, value)

	var u domain.User
	var createdAt, updatedAt string
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.ContactNumber, &u.ProfileImage,
		&u.PasswordHash, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Message: "User not found"}
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse user created_at: %w", err)
	}
	if u.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parse user updated_at: %w", err)
	}
	return &u, nil
}

func (q *queries) UpdateUser(ctx context.Context, u *domain.User) error {
	res, err := q.db.ExecContext(ctx, `
		UPDATE users
		SET first_name = ?, last_name = ?, email = ?, contact_number = ?, profile_image = ?,
		    password_hash = ?, updated_at = ?
		WHERE id = ?
	`, u.FirstName, u.LastName, u.Email, u.ContactNumber, u.ProfileImage, u.PasswordHash,
		formatTime(u.UpdatedAt), u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Message: "Email is already in use"}
		}
		return fmt.Errorf("update user: %w", err)
	}
	n, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if n == 0 {
		return &domain.NotFoundError{Message: "User not found"}
	}
	return nil
}
