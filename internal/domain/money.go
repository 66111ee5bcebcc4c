// internal/domain/money.go
package domain

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

var maxCents = decimal.NewFromInt(1<<63 - 1)

// Bounds checked before scaling; anything outside them cannot fit in int64 cents.
const (
	maxAmountLen      = 64
	maxAmountExponent = 18
	minAmountExponent = -20
)

// Money is an amount in cents.
type Money struct {
	Cents int64
}

func Cents(c int64) Money { return Money{Cents: c} }

// ParseMoney parses a decimal string ("12.34", "12,34", "12") and rounds
// half-up to whole cents.
func ParseMoney(s string) (Money, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" || len(s) > maxAmountLen {
		return Money{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	if exp := d.Exponent(); exp > maxAmountExponent || exp < minAmountExponent {
		return Money{}, ErrInvalidAmount
	}
	cents := d.Shift(2).Round(0)
	if cents.Abs().GreaterThan(maxCents) {
		return Money{}, ErrInvalidAmount
	}
	return Money{Cents: cents.IntPart()}, nil
}

func (m Money) Decimal() decimal.Decimal { return decimal.New(m.Cents, -2) }

func (m Money) Float64() float64 { return m.Decimal().InexactFloat64() }

func (m Money) String() string { return m.Decimal().StringFixed(2) }

func (m Money) IsPositive() bool { return m.Cents > 0 }

func (m Money) Add(o Money) Money { return Money{Cents: m.Cents + o.Cents} }

// DivRound divides by n and rounds half away from zero. n <= 0 is treated as 1.
func (m Money) DivRound(n int) Money {
	if n <= 1 {
		return m
	}
	q := decimal.NewFromInt(m.Cents).Div(decimal.NewFromInt(int64(n))).Round(0)
	return Money{Cents: q.IntPart()}
}

// MarshalJSON writes the amount as a JSON number with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string.
func (m *Money) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	s := string(b)
	if strings.HasPrefix(s, `"`) {
		unq, err := strconv.Unquote(s)
		if err != nil {
			return ErrInvalidAmount
		}
		s = unq
	}
	parsed, err := ParseMoney(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
