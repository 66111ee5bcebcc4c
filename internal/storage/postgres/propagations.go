// internal/storage/postgres/propagations.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"expense-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
)

const propagationColumns = `id, user_id, kind, category_id, old_name, new_name, status, attempts, last_error, created_at, updated_at`

var errPropagationNotFound = &domain.NotFoundError{Message: "Propagation not found"}

func (q *queries) CreatePropagation(ctx context.Context, p *domain.Propagation) error {
	_, err := q.db.Exec(ctx, `
		INSERT INTO category_propagations (`+propagationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, p.ID, p.UserID, string(p.Kind), p.CategoryID, p.OldName, p.NewName, string(p.Status),
		p.Attempts, p.LastError, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert propagation: %w", err)
	}
	return nil
}

func (q *queries) GetPropagation(ctx context.Context, userID, id string) (*domain.Propagation, error) {
	row := q.db.QueryRow(ctx, `
		SELECT `+propagationColumns+` FROM category_propagations WHERE id = $1 AND user_id = $2
	`, id, userID)
	p, err := scanPropagation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errPropagationNotFound
		}
		return nil, fmt.Errorf("get propagation: %w", err)
	}
	return p, nil
}

func (q *queries) ListPendingPropagations(ctx context.Context, userID string) ([]domain.Propagation, error) {
	return q.listPropagations(ctx, `
		SELECT `+propagationColumns+` FROM category_propagations
		WHERE user_id = $1 AND status = 'pending'
		ORDER BY created_at, id
	`, userID)
}

func (q *queries) ListStalePropagations(ctx context.Context, before time.Time, limit int) ([]domain.Propagation, error) {
	return q.listPropagations(ctx, `
		SELECT `+propagationColumns+` FROM category_propagations
		WHERE status = 'pending' AND updated_at < $1
		ORDER BY updated_at, id
		LIMIT $2
	`, before, limit)
}

func (q *queries) listPropagations(ctx context.Context, query string, args ...any) ([]domain.Propagation, error) {
	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list propagations: %w", err)
	}
	defer rows.Close()

	out := []domain.Propagation{}
	for rows.Next() {
		p, err := scanPropagation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan propagation: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return out, nil
}

func (q *queries) MarkPropagation(ctx context.Context, id string, status domain.PropagationStatus, lastError string, at time.Time) error {
	tag, err := q.db.Exec(ctx, `
		UPDATE category_propagations
		SET status = $1, last_error = $2, attempts = attempts + 1, updated_at = $3
		WHERE id = $4
	`, string(status), lastError, at, id)
	if err != nil {
		return fmt.Errorf("mark propagation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errPropagationNotFound
	}
	return nil
}

func (q *queries) DeletePropagation(ctx context.Context, id string) error {
	if _, err := q.db.Exec(ctx, `DELETE FROM category_propagations WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete propagation: %w", err)
	}
	return nil
}

func scanPropagation(row pgx.Row) (*domain.Propagation, error) {
	var p domain.Propagation
	var kind, status string
	if err := row.Scan(&p.ID, &p.UserID, &kind, &p.CategoryID, &p.OldName, &p.NewName, &status,
		&p.Attempts, &p.LastError, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Kind = domain.PropagationKind(kind)
	p.Status = domain.PropagationStatus(status)
	return &p, nil
}
