// internal/service/telegram.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"expense-tracker/internal/domain"

	"github.com/google/uuid"
)

const linkCodeAttempts = 3

// IssueLinkCode creates a one-time code the user sends to the bot with /link.
func (s *Service) IssueLinkCode(ctx context.Context, userID string) (*domain.LinkCode, error) {
	var err error
	for range linkCodeAttempts {
		lc := &domain.LinkCode{
			Code:      newLinkCode(),
			UserID:    userID,
			ExpiresAt: s.timestamp().Add(s.opts.LinkCodeTTL),
		}
		if err = s.store.CreateLinkCode(ctx, lc); err == nil {
			slog.Info("Link code issued", "user_id", userID, "expires_at", lc.ExpiresAt)
			return lc, nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
	}
	return nil, err
}

func newLinkCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// LinkChat consumes code and binds chatID to its owner.
func (s *Service) LinkChat(ctx context.Context, code string, chatID int64) (*domain.User, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, domain.NewValidationError("Link code is required")
	}
	userID, err := s.store.ClaimLinkCode(ctx, code, chatID, s.timestamp())
	if err != nil {
		return nil, err
	}
	slog.Info("Telegram chat linked", "user_id", userID, "chat_id", chatID)
	return s.store.GetUserByID(ctx, userID)
}

func (s *Service) UserIDByChat(ctx context.Context, chatID int64) (string, error) {
	return s.store.UserIDByChat(ctx, chatID)
}
