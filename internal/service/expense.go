// internal/service/expense.go
package service

import (
	"context"
	"log/slog"
	"strings"

	"expense-tracker/internal/domain"
	val "expense-tracker/internal/validator"

	"github.com/google/uuid"
)

type ExpenseInput struct {
	Amount      *domain.Money `json:"amount"`
	Date        *domain.Date  `json:"date"`
	Category    string        `json:"category" validate:"max=100"`
	Description string        `json:"description" validate:"max=500"`
	Emoji       string        `json:"emoji" validate:"max=32"`
}

// ExpenseUpdate leaves nil fields unchanged.
type ExpenseUpdate struct {
	Amount      *domain.Money `json:"amount"`
	Date        *domain.Date  `json:"date"`
	Category    *string       `json:"category" validate:"omitempty,notblank,max=100"`
	Description *string       `json:"description" validate:"omitempty,notblank,max=500"`
	Emoji       *string       `json:"emoji" validate:"omitempty,max=32"`
}

var (
	errExpenseFieldsRequired = domain.NewValidationError("All fields are required")
	errAmountNotPositive     = domain.NewValidationError("Amount must be greater than 0")
)

// ListExpenses returns the user's expenses within period, newest first.
func (s *Service) ListExpenses(ctx context.Context, userID string, period domain.Period) ([]domain.Expense, error) {
	expenses, err := s.store.ListExpenses(ctx, userID)
	if err != nil {
		return nil, err
	}
	if period == domain.PeriodAll {
		return expenses, nil
	}
	return domain.FilterExpenses(expenses, period, s.now()), nil
}

func (s *Service) CreateExpense(ctx context.Context, userID string, in ExpenseInput) (*domain.Expense, error) {
	if in.Amount == nil || in.Date == nil || blank(in.Category, in.Description) {
		return nil, errExpenseFieldsRequired
	}
	if !in.Amount.IsPositive() {
		return nil, errAmountNotPositive
	}
	if err := val.Struct(in); err != nil {
		return nil, err
	}

	now := s.timestamp()
	e := &domain.Expense{
		ID:          uuid.NewString(),
		UserID:      userID,
		Amount:      *in.Amount,
		Date:        *in.Date,
		Category:    domain.NormalizeName(in.Category),
		Emoji:       orDefault(in.Emoji, domain.DefaultExpenseEmoji),
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateExpense(ctx, e); err != nil {
		return nil, err
	}
	slog.Info("Expense created", "user_id", userID, "expense_id", e.ID, "amount", e.Amount.String())
	return e, nil
}

func (s *Service) UpdateExpense(ctx context.Context, userID, id string, in ExpenseUpdate) (*domain.Expense, error) {
	if err := val.Struct(in); err != nil {
		return nil, err
	}
	if in.Amount != nil && !in.Amount.IsPositive() {
		return nil, errAmountNotPositive
	}

	e, err := s.store.GetExpense(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if in.Amount != nil {
		e.Amount = *in.Amount
	}
	if in.Date != nil {
		e.Date = *in.Date
	}
	if in.Category != nil {
		e.Category = domain.NormalizeName(*in.Category)
	}
	if in.Description != nil {
		e.Description = strings.TrimSpace(*in.Description)
	}
	if in.Emoji != nil && strings.TrimSpace(*in.Emoji) != "" {
		e.Emoji = strings.TrimSpace(*in.Emoji)
	}
	e.UpdatedAt = s.timestamp()

	if err := s.store.UpdateExpense(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) DeleteExpense(ctx context.Context, userID, id string) error {
	if err := s.store.DeleteExpense(ctx, userID, id); err != nil {
		return err
	}
	slog.Info("Expense deleted", "user_id", userID, "expense_id", id)
	return nil
}
