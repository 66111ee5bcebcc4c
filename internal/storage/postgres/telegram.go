// internal/storage/postgres/telegram.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"expense-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
)

var errLinkCodeNotFound = &domain.NotFoundError{Message: "Link code not found or expired"}

func (s *Storage) CreateLinkCode(ctx context.Context, lc *domain.LinkCode) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO telegram_link_codes (code, user_id, expires_at) VALUES ($1, $2, $3)
	`, lc.Code, lc.UserID, lc.ExpiresAt)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Message: "Link code already exists"}
		}
		return fmt.Errorf("insert link code: %w", err)
	}
	return nil
}

func (s *Storage) ClaimLinkCode(ctx context.Context, code string, chatID int64, now time.Time) (string, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var userID string
	var expiresAt time.Time
	err = tx.QueryRow(ctx, `
		DELETE FROM telegram_link_codes WHERE code = $1
		RETURNING user_id, expires_at
	`, code).Scan(&userID, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", errLinkCodeNotFound
		}
		return "", fmt.Errorf("consume link code: %w", err)
	}
	if !now.Before(expiresAt) {
		if err := tx.Commit(ctx); err != nil {
			return "", fmt.Errorf("commit tx: %w", err)
		}
		return "", errLinkCodeNotFound
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO telegram_links (chat_id, user_id, linked_at) VALUES ($1, $2, $3)
		ON CONFLICT (chat_id) DO UPDATE SET user_id = EXCLUDED.user_id, linked_at = EXCLUDED.linked_at
	`, chatID, userID, now)
	if err != nil {
		return "", fmt.Errorf("link chat: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("commit tx: %w", err)
	}
	return userID, nil
}

func (s *Storage) UserIDByChat(ctx context.Context, chatID int64) (string, error) {
	var userID string
	err := s.db.QueryRow(ctx, `SELECT user_id FROM telegram_links WHERE chat_id = $1`, chatID).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", &domain.NotFoundError{Message: "Chat is not linked"}
		}
		return "", fmt.Errorf("get chat link: %w", err)
	}
	return userID, nil
}
