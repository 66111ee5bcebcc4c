// internal/storage/sqlite/telegram.go
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"expense-tracker/internal/domain"
)

func (s *Storage) CreateLinkCode(ctx context.Context, lc *domain.LinkCode) error {
	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO telegram_link_codes (code, user_id, expires_at) VALUES (?, ?, ?)
	`, lc.Code, lc.UserID, formatTime(lc.ExpiresAt))
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Message: "Link code already exists"}
		}
		return fmt.Errorf("insert link code: %w", err)
	}
	return nil
}

func (s *Storage) ClaimLinkCode(ctx context.Context, code string, chatID int64, now time.Time) (string, error) {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var userID, expiresAt string
	err = tx.QueryRowContext(ctx, `
		SELECT user_id, expires_at FROM telegram_link_codes WHERE code = ?
	`, code).Scan(&userID, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", &domain.NotFoundError{Message: "Link code not found or expired"}
		}
		return "", fmt.Errorf("get link code: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM telegram_link_codes WHERE code = ?`, code); err != nil {
		return "", fmt.Errorf("delete link code: %w", err)
	}
	exp, err := parseTime(expiresAt)
	if err != nil {
		return "", fmt.Errorf("parse link code expiry: %w", err)
	}
	if !now.Before(exp) {
		// the expired code is still consumed
		if err := tx.Commit(); err != nil {
			return "", fmt.Errorf("commit tx: %w", err)
		}
		return "", &domain.NotFoundError{Message: "Link code not found or expired"}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO telegram_links (chat_id, user_id, linked_at) VALUES (?, ?, ?)
		ON CONFLICT (chat_id) DO UPDATE SET user_id = excluded.user_id, linked_at = excluded.linked_at
	`, chatID, userID, formatTime(now))
	if err != nil {
		return "", fmt.Errorf("link chat: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit tx: %w", err)
	}
	return userID, nil
}

func (s *Storage) UserIDByChat(ctx context.Context, chatID int64) (string, error) {
	var userID string
	err := s.conn.QueryRowContext(ctx, `SELECT user_id FROM telegram_links WHERE chat_id = ?`, chatID).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", &domain.NotFoundError{Message: "Chat is not linked"}
		}
		return "", fmt.Errorf("get chat link: %w", err)
	}
	return userID, nil
}
