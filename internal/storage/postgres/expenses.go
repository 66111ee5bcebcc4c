// internal/storage/postgres/expenses.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"expense-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
)

const expenseColumns = `id, user_id, amount_cents, spent_on, category, emoji, description, created_at, updated_at`

var errExpenseNotFound = &domain.NotFoundError{Message: "Expense not found or unauthorized"}

func (q *queries) CreateExpense(ctx context.Context, e *domain.Expense) error {
	_, err := q.db.Exec(ctx, `
		INSERT INTO expenses (`+expenseColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, e.ID, e.UserID, e.Amount.Cents, e.Date.Time, e.Category, e.Emoji, e.Description, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

func (q *queries) GetExpense(ctx context.Context, userID, id string) (*domain.Expense, error) {
	row := q.db.QueryRow(ctx, `
		SELECT `+expenseColumns+` FROM expenses WHERE id = $1 AND user_id = $2
	`, id, userID)
	e, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errExpenseNotFound
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return e, nil
}

func (q *queries) ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+expenseColumns+` FROM expenses
		WHERE user_id = $1
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
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return expenses, nil
}

func (q *queries) UpdateExpense(ctx context.Context, e *domain.Expense) error {
	tag, err := q.db.Exec(ctx, `
		UPDATE expenses
		SET amount_cents = $1, spent_on = $2, category = $3, emoji = $4, description = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8
	`, e.Amount.Cents, e.Date.Time, e.Category, e.Emoji, e.Description, e.UpdatedAt, e.ID, e.UserID)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errExpenseNotFound
	}
	return nil
}

func (q *queries) DeleteExpense(ctx context.Context, userID, id string) error {
	tag, err := q.db.Exec(ctx, `DELETE FROM expenses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errExpenseNotFound
	}
	return nil
}

func (q *queries) RenameExpenseCategory(ctx context.Context, userID, oldName, newName string) (int64, error) {
	tag, err := q.db.Exec(ctx, `
		UPDATE expenses SET category = $1, updated_at = $2
		WHERE user_id = $3 AND category = $4
	`, newName, time.Now(), userID, oldName)
	if err != nil {
		return 0, fmt.Errorf("rename expense category: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (q *queries) DeleteExpensesByCategory(ctx context.Context, userID, name string) (int64, error) {
	tag, err := q.db.Exec(ctx, `DELETE FROM expenses WHERE user_id = $1 AND category = $2`, userID, name)
	if err != nil {
		return 0, fmt.Errorf("delete expenses by category: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var e domain.Expense
	var spentOn time.Time
	if err := row.Scan(&e.ID, &e.UserID, &e.Amount.Cents, &spentOn, &e.Category, &e.Emoji, &e.Description,
		&e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	e.Date = domain.DateOf(spentOn)
	return &e, nil
}
