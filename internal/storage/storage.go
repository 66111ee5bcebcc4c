// internal/storage/storage.go
package storage

import (
	"context"
	"time"

	"expense-tracker/internal/domain"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks expense-tracker/internal/storage Store

// Every method that takes a userID filters by it. A record owned by another
// user is reported exactly like a missing one (domain.ErrNotFound).

type UserStorage interface {
	CreateUser(ctx context.Context, u *domain.User) error
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, u *domain.User) error
}

type CategoryStorage interface {
	CreateCategory(ctx context.Context, c *domain.Category) error
	GetCategory(ctx context.Context, userID, id string) (*domain.Category, error)
	// ListCategories returns the newest categories first.
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
	// CategoryNameTaken checks nameKey against the user's other categories,
	// ignoring excludeID when it is not empty.
	CategoryNameTaken(ctx context.Context, userID, nameKey, excludeID string) (bool, error)
	UpdateCategory(ctx context.Context, c *domain.Category) error
	DeleteCategory(ctx context.Context, userID, id string) error
}

type ExpenseStorage interface {
	CreateExpense(ctx context.Context, e *domain.Expense) error
	GetExpense(ctx context.Context, userID, id string) (*domain.Expense, error)
	// ListExpenses orders by date, then creation time, newest first.
	ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, e *domain.Expense) error
	DeleteExpense(ctx context.Context, userID, id string) error
	// RenameExpenseCategory rewrites category == oldName to newName in one
	// statement and returns the number of rows changed.
	RenameExpenseCategory(ctx context.Context, userID, oldName, newName string) (int64, error)
	// DeleteExpensesByCategory removes category == name in one statement.
	DeleteExpensesByCategory(ctx context.Context, userID, name string) (int64, error)
}

type PropagationStorage interface {
	CreatePropagation(ctx context.Context, p *domain.Propagation) error
	GetPropagation(ctx context.Context, userID, id string) (*domain.Propagation, error)
	ListPendingPropagations(ctx context.Context, userID string) ([]domain.Propagation, error)
	// ListStalePropagations returns pending entries of any user last touched
	// before the given time, oldest first.
	ListStalePropagations(ctx context.Context, before time.Time, limit int) ([]domain.Propagation, error)
	// MarkPropagation sets the status, records lastError and bumps attempts.
	MarkPropagation(ctx context.Context, id string, status domain.PropagationStatus, lastError string, at time.Time) error
	DeletePropagation(ctx context.Context, id string) error
}

type TelegramStorage interface {
	CreateLinkCode(ctx context.Context, lc *domain.LinkCode) error
	// ClaimLinkCode consumes an unexpired code and binds chatID to its user.
	ClaimLinkCode(ctx context.Context, code string, chatID int64, now time.Time) (string, error)
	UserIDByChat(ctx context.Context, chatID int64) (string, error)
}

// Tx is the set of operations available inside a transaction.
type Tx interface {
	UserStorage
	CategoryStorage
	ExpenseStorage
	PropagationStorage
}

type Store interface {
	Tx
	TelegramStorage
	// WithTx runs fn in one transaction, committing when fn returns nil.
	WithTx(ctx context.Context, fn func(tx Tx) error) error
}
