// internal/storage/sqlite/categories.go
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"expense-tracker/internal/domain"
)

const categoryColumns = `id, user_id, name, name_key, emoji, color, created_at, updated_at`

var errCategoryNotFound = &domain.NotFoundError{Message: "Category not found"}

func (q *queries) CreateCategory(ctx context.Context, c *domain.Category) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO categories (`+categoryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.UserID, c.Name, c.NameKey, c.Emoji, c.Color, formatTime(c.CreatedAt), formatTime(c.UpdatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Message: "Category with this name already exists"}
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (q *queries) GetCategory(ctx context.Context, userID, id string) (*domain.Category, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT `+categoryColumns+` FROM categories WHERE id = ? AND user_id = ?
	`, id, userID)
	c, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errCategoryNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

func (q *queries) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+categoryColumns+` FROM categories
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (q *queries) CategoryNameTaken(ctx context.Context, userID, nameKey, excludeID string) (bool, error) {
	var exists bool
	err := q.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM categories WHERE user_id = ? AND name_key = ? AND id <> ?
		)
	`, userID, nameKey, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check category name: %w", err)
	}
	return exists, nil
}

func (q *queries) UpdateCategory(ctx context.Context, c *domain.Category) error {
	res, err := q.db.ExecContext(ctx, `
		UPDATE categories
		SET name = ?, name_key = ?, emoji = ?, color = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`, c.Name, c.NameKey, c.Emoji, c.Color, formatTime(c.UpdatedAt), c.ID, c.UserID)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Message: "Category with this name already exists"}
		}
		return fmt.Errorf("update category: %w", err)
	}
	n, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if n == 0 {
		return errCategoryNotFound
	}
	return nil
}

func (q *queries) DeleteCategory(ctx context.Context, userID, id string) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	n, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if n == 0 {
		return errCategoryNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(row scanner) (*domain.Category, error) {
	var c domain.Category
	var createdAt, updatedAt string
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.NameKey, &c.Emoji, &c.Color, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
