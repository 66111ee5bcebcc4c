// internal/storage/sqlite/propagations.go
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"expense-tracker/internal/domain"
)

const propagationColumns = `id, user_id, kind, category_id, old_name, new_name, status, attempts, last_error, created_at, updated_at`

var errPropagationNotFound = &domain.NotFoundError{Message: "Propagation not found"}

func (q *queries) CreatePropagation(ctx context.Context, p *domain.Propagation) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO category_propagations (`+propagationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.UserID, string(p.Kind), p.CategoryID, p.OldName, p.NewName, string(p.Status),
		p.Attempts, p.LastError, formatTime(p.CreatedAt), formatTime(p.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insert propagation: %w", err)
	}
	return nil
}

func (q *queries) GetPropagation(ctx context.Context, userID, id string) (*domain.Propagation, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT `+propagationColumns+` FROM category_propagations WHERE id = ? AND user_id = ?
	`, id, userID)
	p, err := scanPropagation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errPropagationNotFound
		}
		return nil, fmt.Errorf("get propagation: %w", err)
	}
	return p, nil
}

func (q *queries) ListPendingPropagations(ctx context.Context, userID string) ([]domain.Propagation, error) {
	return q.listPropagations(ctx, `
		SELECT `+propagationColumns+` FROM category_propagations
		WHERE user_id = ? AND status = 'pending'
		ORDER BY created_at, id
	`, userID)
}

func (q *queries) ListStalePropagations(ctx context.Context, before time.Time, limit int) ([]domain.Propagation, error) {
	return q.listPropagations(ctx, `
		SELECT `+propagationColumns+` FROM category_propagations
		WHERE status = 'pending' AND updated_at < ?
		ORDER BY updated_at, id
		LIMIT ?
	`, formatTime(before), limit)
}

func (q *queries) listPropagations(ctx context.Context, query string, args ...any) ([]domain.Propagation, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
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
		return nil, fmt.Errorf("list propagations: %w", err)
	}
	return out, nil
}

func (q *queries) MarkPropagation(ctx context.Context, id string, status domain.PropagationStatus, lastError string, at time.Time) error {
	res, err := q.db.ExecContext(ctx, `
		UPDATE category_propagations
		SET status = ?, last_error = ?, attempts = attempts + 1, updated_at = ?
		WHERE id = ?
	`, string(status), lastError, formatTime(at), id)
	if err != nil {
		return fmt.Errorf("mark propagation: %w", err)
	}
	n, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if n == 0 {
		return errPropagationNotFound
	}
	return nil
}

func (q *queries) DeletePropagation(ctx context.Context, id string) error {
	if _, err := q.db.ExecContext(ctx, `DELETE FROM category_propagations WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete propagation: %w", err)
	}
	return nil
}

func scanPropagation(row scanner) (*domain.Propagation, error) {
	var p domain.Propagation
	var kind, status, createdAt, updatedAt string
	if err := row.Scan(&p.ID, &p.UserID, &kind, &p.CategoryID, &p.OldName, &p.NewName, &status,
		&p.Attempts, &p.LastError, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	p.Kind = domain.PropagationKind(kind)
	p.Status = domain.PropagationStatus(status)
	var err error
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
