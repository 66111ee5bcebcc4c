package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"12.34", 1234, false},
		{"12,34", 1234, false},
		{"12", 1200, false},
		{"0.5", 50, false},
		{"12.345", 1235, false},
		{"12.344", 1234, false},
		{" 7.10 ", 710, false},
		{"-3.5", -350, false},
		{"", 0, true},
		{"abc", 0, true},
		{"1.2.3", 0, true},
		{"1e2", 10000, false},
		{"1e20000000", 0, true},
		{"1e-20000000", 0, true},
		{"99999999999999999999", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMoney(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Cents)
		})
	}
}

func TestParseMoneyHugeExponentIsFast(t *testing.T) {
	start := time.Now()
	for _, in := range []string{"1e20000000", "-1E999999999", "5e-99999999"} {
		_, err := ParseMoney(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, in)
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	var m Money
	assert.ErrorIs(t, json.Unmarshal([]byte(`"1e20000000"`), &m), ErrInvalidAmount)
}

func TestMoneyJSON(t *testing.T) {
	var v struct {
		A Money  `json:"a"`
		B Money  `json:"b"`
		C *Money `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 10.5, "b": "3,25", "c": null}`), &v))
	assert.Equal(t, int64(1050), v.A.Cents)
	assert.Equal(t, int64(325), v.B.Cents)
	assert.Nil(t, v.C)

	out, err := json.Marshal(struct {
		A Money `json:"a"`
	}{Cents(1050)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 10.50}`, string(out))

	err = json.Unmarshal([]byte(`{"a": "ten"}`), &v)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestMoneyDivRound(t *testing.T) {
	assert.Equal(t, int64(333), Cents(1000).DivRound(3).Cents)
	assert.Equal(t, int64(667), Cents(2000).DivRound(3).Cents)
	assert.Equal(t, int64(250), Cents(500).DivRound(2).Cents)
	assert.Equal(t, int64(500), Cents(500).DivRound(0).Cents)
	assert.Equal(t, "10.50", Cents(1050).String())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.January, 5), d)

	d, err = ParseDate("2024-01-05T23:30:00-05:00")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.January, 5), d)

	_, err = ParseDate("05/01/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-05"`, string(out))
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 31, DaysIn(2024, time.January))
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 28, DaysIn(2023, time.February))
	assert.Equal(t, 30, DaysIn(2024, time.April))
}

func TestNameKey(t *testing.T) {
	assert.Equal(t, NameKey("Food"), NameKey("  FOOD "))
	assert.Equal(t, NameKey("straße"), NameKey("STRASSE"))
	// "é" precomposed and decomposed fold to the same key
	assert.Equal(t, NameKey("Caf\u00e9"), NameKey("CAFE\u0301"))
	assert.NotEqual(t, NameKey("Food"), NameKey("Foods"))
	assert.Equal(t, "Food", NormalizeName("  Food\t"))
}

func TestPeriodContains(t *testing.T) {
	now := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		period Period
		date   Date
		want   bool
	}{
		{PeriodThisMonth, NewDate(2024, time.January, 1), true},
		{PeriodThisMonth, NewDate(2023, time.January, 1), false},
		{PeriodLastMonth, NewDate(2023, time.December, 31), true},
		{PeriodLastMonth, NewDate(2024, time.December, 31), false},
		{PeriodThisYear, NewDate(2024, time.December, 31), true},
		{PeriodThisYear, NewDate(2023, time.December, 31), false},
		{PeriodLastYear, NewDate(2023, time.June, 1), true},
		{PeriodAll, NewDate(1999, time.June, 1), true},
	}
	for _, tt := range tests {
		t.Run(string(tt.period)+"/"+tt.date.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.period.Contains(tt.date, now))
		})
	}
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, PeriodThisMonth, p)

	p, err = ParsePeriod("lastYear")
	require.NoError(t, err)
	assert.Equal(t, PeriodLastYear, p)

	_, err = ParsePeriod("fortnight")
	assert.True(t, IsValidation(err))
}

func TestErrorMatching(t *testing.T) {
	assert.ErrorIs(t, &DuplicateError{Message: "x"}, ErrDuplicate)
	assert.ErrorIs(t, &NotFoundError{Message: "x"}, ErrNotFound)
	assert.ErrorIs(t, &AuthError{Kind: AuthExpired, Message: "Token expired"}, ErrUnauthorized)

	cause := errors.New("connection reset")
	partial := &PartialPropagationError{Op: PropagationRename, CategoryID: "c1", PropagationID: "p1", Err: cause}
	assert.ErrorIs(t, partial, cause)
	assert.True(t, IsPartialPropagation(partial))
	assert.Contains(t, partial.Error(), "p1")
}
