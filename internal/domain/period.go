// internal/domain/period.go
package domain

import "time"

// Period is a named date range relative to a reference time.
type Period string

const (
	PeriodThisMonth Period = "thisMonth"
	PeriodLastMonth Period = "lastMonth"
	PeriodThisYear  Period = "thisYear"
	PeriodLastYear  Period = "lastYear"
	PeriodAll       Period = "all"
)

var Periods = []Period{PeriodThisMonth, PeriodLastMonth, PeriodThisYear, PeriodLastYear, PeriodAll}

// ParsePeriod defaults to thisMonth for an empty string.
func ParsePeriod(s string) (Period, error) {
	if s == "" {
		return PeriodThisMonth, nil
	}
	for _, p := range Periods {
		if string(p) == s {
			return p, nil
		}
	}
	return "", NewValidationError("Invalid period %q: must be one of thisMonth, lastMonth, thisYear, lastYear, all", s)
}

func (p Period) IsMonthScoped() bool { return p == PeriodThisMonth || p == PeriodLastMonth }

func (p Period) IsYearScoped() bool { return p == PeriodThisYear || p == PeriodLastYear }

// Month returns the (year, month) a month-scoped period refers to.
// lastMonth in January is December of the previous year.
func (p Period) Month(now time.Time) (int, time.Month) {
	y, m := now.Year(), now.Month()
	if p == PeriodLastMonth {
		if m == time.January {
			return y - 1, time.December
		}
		return y, m - 1
	}
	return y, m
}

// Year returns the year a year-scoped period refers to.
func (p Period) Year(now time.Time) int {
	if p == PeriodLastYear {
		return now.Year() - 1
	}
	return now.Year()
}

// Contains reports whether d falls within the period relative to now.
func (p Period) Contains(d Date, now time.Time) bool {
	switch {
	case p.IsMonthScoped():
		y, m := p.Month(now)
		return d.Year() == y && d.Month() == m
	case p.IsYearScoped():
		return d.Year() == p.Year(now)
	default:
		return true
	}
}

func (p Period) String() string { return string(p) }

// FilterExpenses keeps the expenses within p, preserving order.
func FilterExpenses(expenses []Expense, p Period, now time.Time) []Expense {
	out := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if p.Contains(e.Date, now) {
			out = append(out, e)
		}
	}
	return out
}
