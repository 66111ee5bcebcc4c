package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"expense-tracker/internal/domain"
	"expense-tracker/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StorageTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *Storage
	now   time.Time
}

func (s *StorageTestSuite) SetupTest() {
	s.ctx = context.Background()
	store, err := Open(s.ctx, ":memory:")
	require.NoError(s.T(), err, "failed to open test database")
	s.store = store
	s.now = time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
}

func (s *StorageTestSuite) TearDownTest() {
	if s.store != nil {
		s.store.Close()
	}
}

func TestStorageTestSuite(t *testing.T) {
	suite.Run(t, new(StorageTestSuite))
}

func (s *StorageTestSuite) category(userID, name string, offset time.Duration) *domain.Category {
	c := &domain.Category{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		NameKey:   domain.NameKey(name),
		Emoji:     domain.DefaultCategoryEmoji,
		Color:     domain.DefaultCategoryColor,
		CreatedAt: s.now.Add(offset),
		UpdatedAt: s.now.Add(offset),
	}
	require.NoError(s.T(), s.store.CreateCategory(s.ctx, c))
	return c
}

func (s *StorageTestSuite) expense(userID, category string, cents int64, day int, offset time.Duration) *domain.Expense {
	e := &domain.Expense{
		ID:          uuid.NewString(),
		UserID:      userID,
		Amount:      domain.Cents(cents),
		Date:        domain.NewDate(2024, time.January, day),
		Category:    category,
		Emoji:       domain.DefaultExpenseEmoji,
		Description: "test",
		CreatedAt:   s.now.Add(offset),
		UpdatedAt:   s.now.Add(offset),
	}
	require.NoError(s.T(), s.store.CreateExpense(s.ctx, e))
	return e
}

func (s *StorageTestSuite) TestUsers() {
	u := &domain.User{
		ID: uuid.NewString(), FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
		PasswordHash: "hash", CreatedAt: s.now, UpdatedAt: s.now,
	}
	require.NoError(s.T(), s.store.CreateUser(s.ctx, u))

	dup := *u
	dup.ID = uuid.NewString()
	err := s.store.CreateUser(s.ctx, &dup)
	assert.ErrorIs(s.T(), err, domain.ErrDuplicate)

	got, err := s.store.GetUserByEmail(s.ctx, "ada@example.com")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), u.ID, got.ID)
	assert.True(s.T(), u.CreatedAt.Equal(got.CreatedAt))

	got.LastName = "King"
	got.UpdatedAt = s.now.Add(time.Hour)
	require.NoError(s.T(), s.store.UpdateUser(s.ctx, got))

	got, err = s.store.GetUserByID(s.ctx, u.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "King", got.LastName)

	_, err = s.store.GetUserByID(s.ctx, "missing")
	assert.ErrorIs(s.T(), err, domain.ErrNotFound)
}

func (s *StorageTestSuite) TestCategoryUniquenessIsCaseInsensitive() {
	food := s.category("u1", "Food", 0)

	taken, err := s.store.CategoryNameTaken(s.ctx, "u1", domain.NameKey("FOOD"), "")
	require.NoError(s.T(), err)
	assert.True(s.T(), taken)

	taken, err = s.store.CategoryNameTaken(s.ctx, "u1", domain.NameKey("food"), food.ID)
	require.NoError(s.T(), err)
	assert.False(s.T(), taken, "a category does not collide with itself")

	taken, err = s.store.CategoryNameTaken(s.ctx, "u2", domain.NameKey("Food"), "")
	require.NoError(s.T(), err)
	assert.False(s.T(), taken, "names are unique per user only")

	err = s.store.CreateCategory(s.ctx, &domain.Category{
		ID: uuid.NewString(), UserID: "u1", Name: "fOOd", NameKey: domain.NameKey("fOOd"),
		CreatedAt: s.now, UpdatedAt: s.now,
	})
	assert.ErrorIs(s.T(), err, domain.ErrDuplicate, "the unique index backs the check")
}

func (s *StorageTestSuite) TestListCategoriesNewestFirst() {
	s.category("u1", "Old", 0)
	s.category("u1", "New", time.Minute)
	s.category("u2", "Other", 2*time.Minute)

	cats, err := s.store.ListCategories(s.ctx, "u1")
	require.NoError(s.T(), err)
	require.Len(s.T(), cats, 2)
	assert.Equal(s.T(), "New", cats[0].Name)
	assert.Equal(s.T(), "Old", cats[1].Name)
}

func (s *StorageTestSuite) TestCategoryOwnership() {
	c := s.category("u1", "Food", 0)

	_, err := s.store.GetCategory(s.ctx, "u2", c.ID)
	assert.ErrorIs(s.T(), err, domain.ErrNotFound)

	other := *c
	other.UserID = "u2"
	other.Name = "Hijacked"
	assert.ErrorIs(s.T(), s.store.UpdateCategory(s.ctx, &other), domain.ErrNotFound)
	assert.ErrorIs(s.T(), s.store.DeleteCategory(s.ctx, "u2", c.ID), domain.ErrNotFound)

	got, err := s.store.GetCategory(s.ctx, "u1", c.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Food", got.Name)
}

func (s *StorageTestSuite) TestListExpensesOrder() {
	s.expense("u1", "Food", 100, 5, 0)
	s.expense("u1", "Food", 200, 10, 0)
	s.expense("u1", "Food", 300, 10, time.Minute)
	s.expense("u2", "Food", 400, 20, 0)

	list, err := s.store.ListExpenses(s.ctx, "u1")
	require.NoError(s.T(), err)
	require.Len(s.T(), list, 3)
	assert.Equal(s.T(), int64(300), list[0].Amount.Cents, "same day: latest created first")
	assert.Equal(s.T(), int64(200), list[1].Amount.Cents)
	assert.Equal(s.T(), int64(100), list[2].Amount.Cents)
	assert.Equal(s.T(), domain.NewDate(2024, time.January, 5), list[2].Date)
}

func (s *StorageTestSuite) TestExpenseUpdateAndDelete() {
	e := s.expense("u1", "Food", 100, 5, 0)

	e.Amount = domain.Cents(150)
	e.Description = "lunch"
	require.NoError(s.T(), s.store.UpdateExpense(s.ctx, e))

	got, err := s.store.GetExpense(s.ctx, "u1", e.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(150), got.Amount.Cents)
	assert.Equal(s.T(), "lunch", got.Description)

	err = s.store.DeleteExpense(s.ctx, "u2", e.ID)
	assert.ErrorIs(s.T(), err, domain.ErrNotFound)
	assert.EqualError(s.T(), err, "Expense not found or unauthorized")

	require.NoError(s.T(), s.store.DeleteExpense(s.ctx, "u1", e.ID))
	_, err = s.store.GetExpense(s.ctx, "u1", e.ID)
	assert.ErrorIs(s.T(), err, domain.ErrNotFound)
}

func (s *StorageTestSuite) TestRenameAndDeleteByCategoryAreScoped() {
	s.expense("u1", "Food", 100, 5, 0)
	s.expense("u1", "Food", 200, 6, 0)
	s.expense("u1", "food", 300, 7, 0)
	s.expense("u2", "Food", 400, 8, 0)

	n, err := s.store.RenameExpenseCategory(s.ctx, "u1", "Food", "Groceries")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), n, "exact match on the old name")

	list, err := s.store.ListExpenses(s.ctx, "u2")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Food", list[0].Category, "other users are untouched")

	n, err = s.store.DeleteExpensesByCategory(s.ctx, "u1", "Groceries")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), n)

	list, err = s.store.ListExpenses(s.ctx, "u1")
	require.NoError(s.T(), err)
	require.Len(s.T(), list, 1)
	assert.Equal(s.T(), "food", list[0].Category)
}

func (s *StorageTestSuite) TestWithTxRollsBack() {
	c := s.category("u1", "Food", 0)
	s.expense("u1", "Food", 100, 5, 0)

	boom := errors.New("boom")
	err := s.store.WithTx(s.ctx, func(tx storage.Tx) error {
		renamed := *c
		renamed.Name, renamed.NameKey = "Groceries", domain.NameKey("Groceries")
		if err := tx.UpdateCategory(s.ctx, &renamed); err != nil {
			return err
		}
		if _, err := tx.RenameExpenseCategory(s.ctx, "u1", "Food", "Groceries"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(s.T(), err, boom)

	got, err := s.store.GetCategory(s.ctx, "u1", c.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Food", got.Name)

	list, err := s.store.ListExpenses(s.ctx, "u1")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Food", list[0].Category)
}

func (s *StorageTestSuite) TestPropagations() {
	p := &domain.Propagation{
		ID: uuid.NewString(), UserID: "u1", Kind: domain.PropagationRename, CategoryID: "c1",
		OldName: "Food", NewName: "Groceries", Status: domain.PropagationPending,
		CreatedAt: s.now, UpdatedAt: s.now,
	}
	require.NoError(s.T(), s.store.CreatePropagation(s.ctx, p))

	pending, err := s.store.ListPendingPropagations(s.ctx, "u1")
	require.NoError(s.T(), err)
	require.Len(s.T(), pending, 1)
	assert.Equal(s.T(), "Groceries", pending[0].NewName)

	stale, err := s.store.ListStalePropagations(s.ctx, s.now.Add(time.Second), 10)
	require.NoError(s.T(), err)
	assert.Len(s.T(), stale, 1)
	stale, err = s.store.ListStalePropagations(s.ctx, s.now, 10)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), stale)

	require.NoError(s.T(), s.store.MarkPropagation(s.ctx, p.ID, domain.PropagationDone, "", s.now.Add(time.Minute)))
	got, err := s.store.GetPropagation(s.ctx, "u1", p.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), domain.PropagationDone, got.Status)
	assert.Equal(s.T(), 1, got.Attempts)

	_, err = s.store.GetPropagation(s.ctx, "u2", p.ID)
	assert.ErrorIs(s.T(), err, domain.ErrNotFound)

	pending, err = s.store.ListPendingPropagations(s.ctx, "u1")
	require.NoError(s.T(), err)
	assert.Empty(s.T(), pending)

	require.NoError(s.T(), s.store.DeletePropagation(s.ctx, p.ID))
	_, err = s.store.GetPropagation(s.ctx, "u1", p.ID)
	assert.ErrorIs(s.T(), err, domain.ErrNotFound)
}

func (s *StorageTestSuite) TestLinkCodes() {
	require.NoError(s.T(), s.store.CreateLinkCode(s.ctx, &domain.LinkCode{
		Code: "ABC123", UserID: "u1", ExpiresAt: s.now.Add(10 * time.Minute),
	}))
	require.NoError(s.T(), s.store.CreateLinkCode(s.ctx, &domain.LinkCode{
		Code: "OLD999", UserID: "u1", ExpiresAt: s.now.Add(-time.Minute),
	}))

	_, err := s.store.ClaimLinkCode(s.ctx, "OLD999", 42, s.now)
	assert.ErrorIs(s.T(), err, domain.ErrNotFound)

	userID, err := s.store.ClaimLinkCode(s.ctx, "ABC123", 42, s.now)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "u1", userID)

	_, err = s.store.ClaimLinkCode(s.ctx, "ABC123", 42, s.now)
	assert.ErrorIs(s.T(), err, domain.ErrNotFound, "codes are single use")

	userID, err = s.store.UserIDByChat(s.ctx, 42)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "u1", userID)

	_, err = s.store.UserIDByChat(s.ctx, 7)
	assert.ErrorIs(s.T(), err, domain.ErrNotFound)
}
