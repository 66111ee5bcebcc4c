// internal/service/category.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"expense-tracker/internal/domain"
	"expense-tracker/internal/storage"
	val "expense-tracker/internal/validator"

	"github.com/google/uuid"
)

type CategoryInput struct {
	Name  string `json:"name" validate:"max=100"`
	Emoji string `json:"emoji" validate:"max=32"`
	Color string `json:"color" validate:"omitempty,hexcolor6"`
}

// CategoryUpdate leaves nil fields unchanged.
type CategoryUpdate struct {
	Name  *string `json:"name" validate:"omitempty,notblank,max=100"`
	Emoji *string `json:"emoji" validate:"omitempty,max=32"`
	Color *string `json:"color" validate:"omitempty,hexcolor6"`
}

type DeleteCategoryResult struct {
	CategoryID      string `json:"categoryId"`
	Name            string `json:"name"`
	ExpensesDeleted int64  `json:"expensesDeleted"`
}

var (
	errCategoryNameRequired = domain.NewValidationError("Category name is required")
	errCategoryDuplicate    = &domain.DuplicateError{Message: "Category with this name already exists"}
)

func (s *Service) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	return s.store.ListCategories(ctx, userID)
}

func (s *Service) CreateCategory(ctx context.Context, userID string, in CategoryInput) (*domain.Category, error) {
	name := domain.NormalizeName(in.Name)
	if name == "" {
		return nil, errCategoryNameRequired
	}
	if err := val.Struct(in); err != nil {
		return nil, err
	}
	if err := s.checkCategoryName(ctx, userID, name, ""); err != nil {
		return nil, err
	}

	now := s.timestamp()
	c := &domain.Category{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		NameKey:   domain.NameKey(name),
		Emoji:     orDefault(in.Emoji, domain.DefaultCategoryEmoji),
		Color:     strings.ToUpper(orDefault(in.Color, domain.DefaultCategoryColor)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	slog.Info("Category created", "user_id", userID, "category_id", c.ID)
	return c, nil
}

// checkCategoryName rejects a name that folds to the same key as another of
// the user's categories.
func (s *Service) checkCategoryName(ctx context.Context, userID, name, excludeID string) error {
	taken, err := s.store.CategoryNameTaken(ctx, userID, domain.NameKey(name), excludeID)
	if err != nil {
		return err
	}
	if taken {
		return errCategoryDuplicate
	}
	return nil
}

// FindCategoryByName resolves name case-insensitively to the user's category.
func (s *Service) FindCategoryByName(ctx context.Context, userID, name string) (*domain.Category, error) {
	key := domain.NameKey(name)
	categories, err := s.store.ListCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].NameKey == key || domain.NameKey(categories[i].Name) == key {
			return &categories[i], nil
		}
	}
	return nil, &domain.NotFoundError{Message: fmt.Sprintf("Category %q not found", domain.NormalizeName(name))}
}

// UpdateCategory applies the given fields. A name change, including a
// case-only one, is propagated to the user's expenses.
func (s *Service) UpdateCategory(ctx context.Context, userID, id string, in CategoryUpdate) (*domain.Category, error) {
	if err := val.Struct(in); err != nil {
		return nil, err
	}

	current, err := s.store.GetCategory(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	if in.Name != nil {
		updated.Name = domain.NormalizeName(*in.Name)
		updated.NameKey = domain.NameKey(updated.Name)
	}
	if in.Emoji != nil && strings.TrimSpace(*in.Emoji) != "" {
		updated.Emoji = strings.TrimSpace(*in.Emoji)
	}
	if in.Color != nil && *in.Color != "" {
		updated.Color = strings.ToUpper(*in.Color)
	}
	updated.UpdatedAt = s.timestamp()

	if updated.Name == current.Name {
		if err := s.store.UpdateCategory(ctx, &updated); err != nil {
			return nil, err
		}
		return &updated, nil
	}

	if err := s.checkCategoryName(ctx, userID, updated.Name, id); err != nil {
		return nil, err
	}
	if s.sequential() {
		err = s.renameSequential(ctx, current.Name, &updated)
	} else {
		err = s.renameAtomic(ctx, current.Name, &updated)
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Service) renameAtomic(ctx context.Context, oldName string, c *domain.Category) error {
	var n int64
	err := s.store.WithTx(ctx, func(tx storage.Tx) error {
		if err := tx.UpdateCategory(ctx, c); err != nil {
			return err
		}
		var err error
		n, err = tx.RenameExpenseCategory(ctx, c.UserID, oldName, c.Name)
		return err
	})
	if err != nil {
		return err
	}
	slog.Info("Category renamed", "user_id", c.UserID, "category_id", c.ID, "expenses_updated", n)
	return nil
}

// renameSequential commits the rename together with a pending propagation
// entry, then rewrites the expenses as a separate step.
func (s *Service) renameSequential(ctx context.Context, oldName string, c *domain.Category) error {
	p := s.newPropagation(c.UserID, domain.PropagationRename, c.ID, oldName, c.Name)
	err := s.store.WithTx(ctx, func(tx storage.Tx) error {
		if err := tx.UpdateCategory(ctx, c); err != nil {
			return err
		}
		return tx.CreatePropagation(ctx, p)
	})
	if err != nil {
		return err
	}

	var n int64
	err = s.withRetry(ctx, func(ctx context.Context) error {
		var err error
		n, err = s.store.RenameExpenseCategory(ctx, c.UserID, oldName, c.Name)
		return err
	})
	if err != nil {
		return s.partial(ctx, p, err)
	}

	s.completePropagation(ctx, p)
	slog.Info("Category renamed", "user_id", c.UserID, "category_id", c.ID, "expenses_updated", n, "propagation_id", p.ID)
	return nil
}

// DeleteCategory removes the category and every expense filed under its
// current name.
func (s *Service) DeleteCategory(ctx context.Context, userID, id string) (*DeleteCategoryResult, error) {
	if s.sequential() {
		return s.deleteSequential(ctx, userID, id)
	}

	res := &DeleteCategoryResult{CategoryID: id}
	err := s.store.WithTx(ctx, func(tx storage.Tx) error {
		c, err := tx.GetCategory(ctx, userID, id)
		if err != nil {
			return err
		}
		res.Name = c.Name
		if res.ExpensesDeleted, err = tx.DeleteExpensesByCategory(ctx, userID, c.Name); err != nil {
			return err
		}
		return tx.DeleteCategory(ctx, userID, id)
	})
	if err != nil {
		return nil, err
	}
	slog.Info("Category deleted", "user_id", userID, "category_id", id, "expenses_deleted", res.ExpensesDeleted)
	return res, nil
}

func (s *Service) deleteSequential(ctx context.Context, userID, id string) (*DeleteCategoryResult, error) {
	c, err := s.store.GetCategory(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	res := &DeleteCategoryResult{CategoryID: id, Name: c.Name}

	p := s.newPropagation(userID, domain.PropagationDelete, id, c.Name, "")
	if err := s.store.CreatePropagation(ctx, p); err != nil {
		return nil, err
	}

	err = s.withRetry(ctx, func(ctx context.Context) error {
		var err error
		res.ExpensesDeleted, err = s.store.DeleteExpensesByCategory(ctx, userID, c.Name)
		return err
	})
	if err != nil {
		// Nothing was removed yet, so the log entry is dropped.
		if derr := s.store.DeletePropagation(context.WithoutCancel(ctx), p.ID); derr != nil {
			slog.Error("Failed to discard propagation", "error", derr, "propagation_id", p.ID)
		}
		return nil, err
	}

	err = s.withRetry(ctx, func(ctx context.Context) error {
		return ignoreNotFound(s.store.DeleteCategory(ctx, userID, id))
	})
	if err != nil {
		return nil, s.partial(ctx, p, err)
	}

	s.completePropagation(ctx, p)
	slog.Info("Category deleted", "user_id", userID, "category_id", id, "expenses_deleted", res.ExpensesDeleted, "propagation_id", p.ID)
	return res, nil
}

func ignoreNotFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
