package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"expense-tracker/internal/domain"
	"expense-tracker/internal/storage"
	"expense-tracker/internal/storage/migrations"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// PostgresTestSuite runs against a disposable database named by
// TEST_DATABASE_URL. Every test starts from empty tables.
type PostgresTestSuite struct {
	suite.Suite
	ctx   context.Context
	pool  *pgxpool.Pool
	store *Storage
	now   time.Time
	u1    string
	u2    string
}

func TestPostgresTestSuite(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	suite.Run(t, &PostgresTestSuite{})
}

func (s *PostgresTestSuite) SetupSuite() {
	s.ctx = context.Background()
	pool, err := Connect(s.ctx, os.Getenv("TEST_DATABASE_URL"))
	require.NoError(s.T(), err)
	s.pool = pool

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	require.NoError(s.T(), migrations.Up(s.ctx, "postgres", db))

	s.store = NewStorage(pool)
	s.now = time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
}

func (s *PostgresTestSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *PostgresTestSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, `TRUNCATE telegram_links, telegram_link_codes, category_propagations, expenses, categories, users`)
	require.NoError(s.T(), err)
	s.u1 = s.user("ada@example.com")
	s.u2 = s.user("alan@example.com")
}

func (s *PostgresTestSuite) user(email string) string {
	u := &domain.User{
		ID: uuid.NewString(), FirstName: "Test", LastName: "User", Email: email,
		PasswordHash: "hash", CreatedAt: s.now, UpdatedAt: s.now,
	}
	require.NoError(s.T(), s.store.CreateUser(s.ctx, u))
	return u.ID
}

func (s *PostgresTestSuite) category(userID, name string, offset time.Duration) *domain.Category {
	c := &domain.Category{
		ID: uuid.NewString(), UserID: userID, Name: name, NameKey: domain.NameKey(name),
		Emoji: domain.DefaultCategoryEmoji, Color: domain.DefaultCategoryColor,
		CreatedAt: s.now.Add(offset), UpdatedAt: s.now.Add(offset),
	}
	require.NoError(s.T(), s.store.CreateCategory(s.ctx, c))
	return c
}

func (s *PostgresTestSuite) expense(userID, category string, cents int64, day int) *domain.Expense {
	e := &domain.Expense{
		ID: uuid.NewString(), UserID: userID, Amount: domain.Cents(cents),
		Date: domain.NewDate(2024, time.January, day), Category: category,
		Emoji: domain.DefaultExpenseEmoji, Description: "test",
		CreatedAt: s.now, UpdatedAt: s.now,
	}
	require.NoError(s.T(), s.store.CreateExpense(s.ctx, e))
	return e
}

func (s *PostgresTestSuite) TestUsers() {
	err := s.store.CreateUser(s.ctx, &domain.User{
		ID: uuid.NewString(), FirstName: "A", LastName: "B", Email: "ada@example.com",
		PasswordHash: "x", CreatedAt: s.now, UpdatedAt: s.now,
	})
	assert.ErrorIs(s.T(), err, domain.ErrDuplicate)

	got, err := s.store.GetUserByEmail(s.ctx, "ada@example.com")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), s.u1, got.ID)

	_, err = s.store.GetUserByID(s.ctx, uuid.NewString())
	assert.ErrorIs(s.T(), err, domain.ErrNotFound)
}

func (s *PostgresTestSuite) TestCategoryUniqueness() {
	food := s.category(s.u1, "Food", 0)
	s.category(s.u2, "Food", 0)

	taken, err := s.store.CategoryNameTaken(s.ctx, s.u1, domain.NameKey("FOOD"), "")
	require.NoError(s.T(), err)
	assert.True(s.T(), taken)

	taken, err = s.store.CategoryNameTaken(s.ctx, s.u1, domain.NameKey("food"), food.ID)
	require.NoError(s.T(), err)
	assert.False(s.T(), taken)

	err = s.store.CreateCategory(s.ctx, &domain.Category{
		ID: uuid.NewString(), UserID: s.u1, Name: "fOOd", NameKey: domain.NameKey("fOOd"),
		Emoji: "x", Color: "#000000", CreatedAt: s.now, UpdatedAt: s.now,
	})
	assert.ErrorIs(s.T(), err, domain.ErrDuplicate)
}

func (s *PostgresTestSuite) TestExpensesOrderAndScope() {
	s.expense(s.u1, "Food", 100, 5)
	s.expense(s.u1, "Food", 200, 10)
	s.expense(s.u2, "Food", 300, 12)

	list, err := s.store.ListExpenses(s.ctx, s.u1)
	require.NoError(s.T(), err)
	require.Len(s.T(), list, 2)
	assert.Equal(s.T(), int64(200), list[0].Amount.Cents)
	assert.Equal(s.T(), domain.NewDate(2024, time.January, 5), list[1].Date)

	err = s.store.DeleteExpense(s.ctx, s.u2, list[0].ID)
	assert.ErrorIs(s.T(), err, domain.ErrNotFound)
}

func (s *PostgresTestSuite) TestWithTxRollsBack() {
	c := s.category(s.u1, "Food", 0)
	s.expense(s.u1, "Food", 100, 5)

	boom := errors.New("boom")
	err := s.store.WithTx(s.ctx, func(tx storage.Tx) error {
		renamed := *c
		renamed.Name, renamed.NameKey = "Groceries", domain.NameKey("Groceries")
		if err := tx.UpdateCategory(s.ctx, &renamed); err != nil {
			return err
		}
		if _, err := tx.RenameExpenseCategory(s.ctx, s.u1, "Food", "Groceries"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(s.T(), err, boom)

	got, err := s.store.GetCategory(s.ctx, s.u1, c.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Food", got.Name)
	list, err := s.store.ListExpenses(s.ctx, s.u1)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Food", list[0].Category)
}

func (s *PostgresTestSuite) TestPropagations() {
	p := &domain.Propagation{
		ID: uuid.NewString(), UserID: s.u1, Kind: domain.PropagationDelete, CategoryID: uuid.NewString(),
		OldName: "Food", Status: domain.PropagationPending, CreatedAt: s.now, UpdatedAt: s.now,
	}
	require.NoError(s.T(), s.store.CreatePropagation(s.ctx, p))

	stale, err := s.store.ListStalePropagations(s.ctx, s.now.Add(time.Second), 10)
	require.NoError(s.T(), err)
	assert.Len(s.T(), stale, 1)

	require.NoError(s.T(), s.store.MarkPropagation(s.ctx, p.ID, domain.PropagationPending, "boom", s.now.Add(time.Minute)))
	got, err := s.store.GetPropagation(s.ctx, s.u1, p.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "boom", got.LastError)
	assert.Equal(s.T(), 1, got.Attempts)

	assert.ErrorIs(s.T(), s.store.MarkPropagation(s.ctx, uuid.NewString(), domain.PropagationDone, "", s.now), domain.ErrNotFound)
}

func (s *PostgresTestSuite) TestLinkCodes() {
	require.NoError(s.T(), s.store.CreateLinkCode(s.ctx, &domain.LinkCode{
		Code: "ABC123", UserID: s.u1, ExpiresAt: s.now.Add(10 * time.Minute),
	}))

	userID, err := s.store.ClaimLinkCode(s.ctx, "ABC123", 42, s.now)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), s.u1, userID)

	_, err = s.store.ClaimLinkCode(s.ctx, "ABC123", 42, s.now)
	assert.ErrorIs(s.T(), err, domain.ErrNotFound)

	userID, err = s.store.UserIDByChat(s.ctx, 42)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), s.u1, userID)
}
