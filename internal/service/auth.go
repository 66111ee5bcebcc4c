// internal/service/auth.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"expense-tracker/internal/domain"
	"expense-tracker/internal/storage"
	val "expense-tracker/internal/validator"

	"github.com/google/uuid"
)

type SignupInput struct {
	FirstName       string `json:"firstName" validate:"max=100"`
	LastName        string `json:"lastName" validate:"max=100"`
	Email           string `json:"email" validate:"email,max=254"`
	Password        string `json:"password" validate:"strongpassword"`
	ConfirmPassword string `json:"confirmPassword"`
	ContactNumber   string `json:"contactNumber" validate:"max=32"`
	ProfileImage    string `json:"profileImage" validate:"max=2048"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *domain.User `json:"user"`
}

type ProfileInput struct {
	FirstName     string `json:"firstName" validate:"max=100"`
	LastName      string `json:"lastName" validate:"max=100"`
	Email         string `json:"email" validate:"email,max=254"`
	ContactNumber string `json:"contactNumber" validate:"max=32"`
	ProfileImage  string `json:"profileImage" validate:"max=2048"`
	OldPassword   string `json:"oldPassword"`
	NewPassword   string `json:"newPassword"`
}

var errInvalidCredentials = &domain.AuthError{Kind: domain.AuthBadCredentials, Message: "Invalid credentials"}

func normalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// Signup registers a user and, when enabled, gives them the default
// categories in the same transaction.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*domain.User, error) {
	if blank(in.FirstName, in.LastName, in.Email, in.Password, in.ConfirmPassword) {
		return nil, domain.NewValidationError("All fields are required")
	}
	if in.Password != in.ConfirmPassword {
		return nil, domain.NewValidationError("Passwords do not match")
	}
	in.Email = normalizeEmail(in.Email)
	if err := val.Struct(in); err != nil {
		return nil, err
	}

	if _, err := s.store.GetUserByEmail(ctx, in.Email); err == nil {
		return nil, &domain.DuplicateError{Message: "User already exists"}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := s.timestamp()
	user := &domain.User{
		ID:            uuid.NewString(),
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		Email:         in.Email,
		ContactNumber: strings.TrimSpace(in.ContactNumber),
		ProfileImage:  strings.TrimSpace(in.ProfileImage),
		PasswordHash:  hash,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = s.store.WithTx(ctx, func(tx storage.Tx) error {
		if err := tx.CreateUser(ctx, user); err != nil {
			return err
		}
		if !s.opts.SeedDefaultCategories {
			return nil
		}
		for i, tpl := range domain.DefaultCategories {
			// Newest first listing shows the defaults in template order.
			at := now.Add(-time.Duration(i) * time.Microsecond)
			c := &domain.Category{
				ID:        uuid.NewString(),
				UserID:    user.ID,
				Name:      tpl.Name,
				NameKey:   domain.NameKey(tpl.Name),
				Emoji:     tpl.Emoji,
				Color:     tpl.Color,
				CreatedAt: at,
				UpdatedAt: at,
			}
			if err := tx.CreateCategory(ctx, c); err != nil {
				return fmt.Errorf("seed category %q: %w", tpl.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("User registered", "user_id", user.ID, "seeded", s.opts.SeedDefaultCategories)
	return user, nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if blank(in.Email, in.Password) {
		return nil, domain.NewValidationError("Email and password are required")
	}

	user, err := s.store.GetUserByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	ok, err := s.hasher.Check(user.PasswordHash, in.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		slog.Info("Login rejected", "user_id", user.ID)
		return nil, errInvalidCredentials
	}

	token, exp, err := s.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: exp, User: user}, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.store.GetUserByID(ctx, userID)
}

// UpdateProfile changes the user's details, and the password when
// NewPassword is set and OldPassword matches.
func (s *Service) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*domain.User, error) {
	if blank(in.FirstName, in.LastName, in.Email) {
		return nil, domain.NewValidationError("First name, last name and email are required")
	}
	in.Email = normalizeEmail(in.Email)
	if err := val.Struct(in); err != nil {
		return nil, err
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.NewPassword != "" {
		if in.OldPassword == "" {
			return nil, domain.NewValidationError("Old password required")
		}
		ok, err := s.hasher.Check(user.PasswordHash, in.OldPassword)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &domain.AuthError{Kind: domain.AuthBadCredentials, Message: "Current password is incorrect"}
		}
		if !val.IsStrongPassword(in.NewPassword) {
			return nil, domain.NewValidationError("New password must be at least 8 characters long and contain at least one letter, one number, and one special character (@$!%%*#?&)")
		}
		hash, err := s.hasher.Hash(in.NewPassword)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if in.Email != user.Email {
		other, err := s.store.GetUserByEmail(ctx, in.Email)
		switch {
		case err == nil && other.ID != user.ID:
			return nil, &domain.DuplicateError{Message: "Email is already in use"}
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("lookup user: %w", err)
		}
	}

	user.FirstName = strings.TrimSpace(in.FirstName)
	user.LastName = strings.TrimSpace(in.LastName)
	user.Email = in.Email
	user.ContactNumber = strings.TrimSpace(in.ContactNumber)
	user.ProfileImage = strings.TrimSpace(in.ProfileImage)
	user.UpdatedAt = s.timestamp()

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	slog.Info("Profile updated", "user_id", user.ID, "password_changed", in.NewPassword != "")
	return user, nil
}
