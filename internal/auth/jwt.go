// internal/auth/jwt.go
package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"expense-tracker/internal/config"
	"expense-tracker/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the token contents: the user id and email.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secretKey []byte
	expiresIn time.Duration
	now       func() time.Time
}

func NewTokenService(cfg config.Config) *TokenService {
	return &TokenService{
		secretKey: []byte(cfg.JWTSecret),
		expiresIn: cfg.JWTExpiresIn,
		now:       time.Now,
	}
}

// GenerateToken signs an HS256 token for the user.
func (s *TokenService) GenerateToken(userID, email string) (string, time.Time, error) {
	issuedAt := s.now()
	expTime := issuedAt.Add(s.expiresIn)
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	slog.Debug("JWT generated", "user_id", userID, "expires_at", expTime.Format(time.DateTime))
	return tokenStr, expTime, nil
}

// ParseToken verifies the token and returns its claims. Failures are
// *domain.AuthError with Kind AuthExpired or AuthInvalid.
func (s *TokenService) ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, &domain.AuthError{Kind: domain.AuthExpired, Message: "Token expired"}
		}
		slog.Debug("JWT rejected", "error", err)
		return nil, &domain.AuthError{Kind: domain.AuthInvalid, Message: "Invalid token"}
	}
	if !token.Valid || claims.UserID == "" {
		return nil, &domain.AuthError{Kind: domain.AuthInvalid, Message: "Invalid token"}
	}
	return claims, nil
}
