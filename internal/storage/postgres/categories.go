// internal/storage/postgres/categories.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"expense-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
)

const categoryColumns = `id, user_id, name, name_key, emoji, color, created_at, updated_at`

var errCategoryNotFound = &domain.NotFoundError{Message: "Category not found"}

func (q *queries) CreateCategory(ctx context.Context, c *domain.Category) error {
	_, err := q.db.Exec(ctx, `
		INSERT INTO categories (`+categoryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, c.ID, c.UserID, c.Name, c.NameKey, c.Emoji, c.Color, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Message: "Category with this name already exists"}
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (q *queries) GetCategory(ctx context.Context, userID, id string) (*domain.Category, error) {
	var c domain.Category
	err := q.db.QueryRow(ctx, `
		SELECT `+categoryColumns+` FROM categories WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(&c.ID, &c.UserID, &c.Name, &c.NameKey, &c.Emoji, &c.Color, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errCategoryNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

func (q *queries) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+categoryColumns+` FROM categories
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.NameKey, &c.Emoji, &c.Color, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return categories, nil
}

func (q *queries) CategoryNameTaken(ctx context.Context, userID, nameKey, excludeID string) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM categories WHERE user_id = $1 AND name_key = $2 AND id <> $3
		)
	`, userID, nameKey, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check category name: %w", err)
	}
	return exists, nil
}

func (q *queries) UpdateCategory(ctx context.Context, c *domain.Category) error {
	tag, err := q.db.Exec(ctx, `
		UPDATE categories
		SET name = $1, name_key = $2, emoji = $3, color = $4, updated_at = $5
		WHERE id = $6 AND user_id = $7
	`, c.Name, c.NameKey, c.Emoji, c.Color, c.UpdatedAt, c.ID, c.UserID)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Message: "Category with this name already exists"}
		}
		return fmt.Errorf("update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errCategoryNotFound
	}
	return nil
}

func (q *queries) DeleteCategory(ctx context.Context, userID, id string) error {
	tag, err := q.db.Exec(ctx, `DELETE FROM categories WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errCategoryNotFound
	}
	return nil
}
