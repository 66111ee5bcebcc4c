package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"expense-tracker/internal/auth"
	"expense-tracker/internal/config"
	"expense-tracker/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStoreSQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{
		DBDriver:     config.DriverSQLite,
		DBConn:       filepath.Join(t.TempDir(), "nested", "expenses.db"),
		JWTSecret:    "s",
		JWTExpiresIn: time.Hour,
		BcryptCost:   4,
	}

	store, closeStore, err := OpenStore(ctx, cfg)
	require.NoError(t, err)
	defer closeStore()

	client, err := NewEventsClient(cfg)
	require.NoError(t, err)
	assert.Nil(t, client)

	svc := NewService(cfg, store, auth.NewTokenService(cfg), client)
	user, err := svc.Signup(ctx, service.SignupInput{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		Password:        "engine1843!",
		ConfirmPassword: "engine1843!",
	})
	require.NoError(t, err)

	got, err := store.GetUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestOpenStoreUnknownDriver(t *testing.T) {
	_, _, err := OpenStore(context.Background(), config.Config{DBDriver: "mysql", DBConn: "x"})
	assert.Error(t, err)
}
