// internal/storage/sqlite/expenses.go
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"expense-tracker/internal/domain"
)

const expenseColumns = `id, user_id, amount_cents, spent_on, category, emoji, description, created_at, updated_at`

var errExpenseNotFound = &domain.NotFoundError{Message: "Expense not found or unauthorized"}

func (q *queries) CreateExpense(ctx context.Context, e *domain.Expense) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO expenses (`+expenseColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.UserID, e.Amount.Cents, e.Date.Format(dateLayout), e.Category, e.Emoji, e.Description,
		formatTime(e.CreatedAt), formatTime(e.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

func (q *queries) GetExpense(ctx context.Context, userID, id string) (*domain.Expense, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT `+expenseColumns+` FROM expenses WHERE id = ? AND user_id = ?
	`, id, userID)
	e, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errExpenseNotFound
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return e, nil
}

func (q *queries) ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+expenseColumns+` FROM expenses
		WHERE user_id = ?
		ORDER BY spent_on DESC, created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

func (q *queries) UpdateExpense(ctx context.Context, e *domain.Expense) error {
	res, err := q.db.ExecContext(ctx, `
		UPDATE expenses
		SET amount_cents = ?, spent_on = ?, category = ?, emoji = ?, description = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`, e.Amount.Cents, e.Date.Format(dateLayout), e.Category, e.Emoji, e.Description,
		formatTime(e.UpdatedAt), e.ID, e.UserID)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	n, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if n == 0 {
		return errExpenseNotFound
	}
	return nil
}

func (q *queries) DeleteExpense(ctx context.Context, userID, id string) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	n, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if n == 0 {
		return errExpenseNotFound
	}
	return nil
}

func (q *queries) RenameExpenseCategory(ctx context.Context, userID, oldName, newName string) (int64, error) {
	res, err := q.db.ExecContext(ctx, `
		UPDATE expenses SET category = ?, updated_at = ?
		WHERE user_id = ? AND category = ?
	`, newName, formatTime(time.Now()), userID, oldName)
	if err != nil {
		return 0, fmt.Errorf("rename expense category: %w", err)
	}
	return rowsAffected(res)
}

func (q *queries) DeleteExpensesByCategory(ctx context.Context, userID, name string) (int64, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM expenses WHERE user_id = ? AND category = ?`, userID, name)
	if err != nil {
		return 0, fmt.Errorf("delete expenses by category: %w", err)
	}
	return rowsAffected(res)
}

func scanExpense(row scanner) (*domain.Expense, error) {
	var e domain.Expense
	var spentOn, createdAt, updatedAt string
	if err := row.Scan(&e.ID, &e.UserID, &e.Amount.Cents, &spentOn, &e.Category, &e.Emoji, &e.Description,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}
	d, err := domain.ParseDate(spentOn)
	if err != nil {
		return nil, fmt.Errorf("parse spent_on %q: %w", spentOn, err)
	}
	e.Date = d
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if e.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
