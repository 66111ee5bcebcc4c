// internal/analytics/analytics.go
package analytics

import (
	"sort"
	"strconv"
	"time"

	"expense-tracker/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	NoTopCategory    = "N/A"
	categoryTrendMax = 3
	trailingMonths   = 6
)

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var weekLabels = [4]string{"Week 1", "Week 2", "Week 3", "Week 4"}

type Granularity string

const (
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityDay   Granularity = "day"
)

type Summary struct {
	TotalSpending     domain.Money `json:"totalSpending"`
	MonthlyAverage    domain.Money `json:"monthlyAverage"`
	DailyAverage      domain.Money `json:"dailyAverage"`
	TopCategory       string       `json:"topCategory"`
	TopCategoryAmount domain.Money `json:"topCategoryAmount"`
	ExpenseCount      int          `json:"expenseCount"`
}

// BreakdownEntry is one category's share of the period total. Percentage is
// formatted with one decimal, e.g. "33.3".
type BreakdownEntry struct {
	Label      string       `json:"label"`
	Value      domain.Money `json:"value"`
	Color      string       `json:"color"`
	Percentage string       `json:"percentage"`
}

type Point struct {
	Label string       `json:"label"`
	Value domain.Money `json:"value"`
}

type Series struct {
	Granularity Granularity `json:"granularity"`
	Points      []Point     `json:"points"`
}

type CategoryTrend struct {
	Category string  `json:"category"`
	Color    string  `json:"color"`
	Points   []Point `json:"points"`
}

type Report struct {
	Period            domain.Period    `json:"period"`
	Summary           Summary          `json:"summary"`
	CategoryBreakdown []BreakdownEntry `json:"categoryBreakdown"`
	Trend             Series           `json:"trend"`
	Pattern           Series           `json:"pattern"`
	CategoryTrends    []CategoryTrend  `json:"categoryTrends"`
}

// Build derives the report for period from the given expenses and
// categories. It does no I/O, and the same inputs always give the same output.
func Build(expenses []domain.Expense, categories []domain.Category, period domain.Period, now time.Time) Report {
	filtered := domain.FilterExpenses(expenses, period, now)
	totals := categoryTotals(filtered)
	colors := colorIndex(categories)

	return Report{
		Period:            period,
		Summary:           summarize(filtered, totals, period),
		CategoryBreakdown: breakdown(totals, colors),
		Trend:             trend(filtered, period),
		Pattern:           pattern(filtered, period, now),
		CategoryTrends:    categoryTrends(expenses, totals, colors, period, now),
	}
}

type categoryTotal struct {
	name string
	sum  domain.Money
}

// categoryTotals sums amounts per category name in first-seen order.
func categoryTotals(expenses []domain.Expense) []categoryTotal {
	index := make(map[string]int)
	var out []categoryTotal
	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(out)
			index[e.Category] = i
			out = append(out, categoryTotal{name: e.Category})
		}
		out[i].sum = out[i].sum.Add(e.Amount)
	}
	return out
}

func colorIndex(categories []domain.Category) map[string]string {
	colors := make(map[string]string, len(categories))
	for _, c := range categories {
		if _, ok := colors[c.Name]; !ok && c.Color != "" {
			colors[c.Name] = c.Color
		}
	}
	return colors
}

func colorFor(colors map[string]string, name string) string {
	if c, ok := colors[name]; ok {
		return c
	}
	return domain.DefaultBreakdownColor
}

func summarize(expenses []domain.Expense, totals []categoryTotal, period domain.Period) Summary {
	var total domain.Money
	months := make(map[[2]int]struct{})
	days := make(map[string]struct{})
	for _, e := range expenses {
		total = total.Add(e.Amount)
		months[[2]int{e.Date.Year(), int(e.Date.Month())}] = struct{}{}
		days[e.Date.String()] = struct{}{}
	}

	monthDivisor := 1
	switch {
	case period.IsYearScoped():
		monthDivisor = 12
	case period == domain.PeriodAll:
		monthDivisor = max(1, len(months))
	}

	s := Summary{
		TotalSpending:  total,
		MonthlyAverage: total.DivRound(monthDivisor),
		DailyAverage:   total.DivRound(max(1, len(days))),
		TopCategory:    NoTopCategory,
		ExpenseCount:   len(expenses),
	}

	ranked := make([]categoryTotal, len(totals))
	copy(ranked, totals)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].sum.Cents > ranked[j].sum.Cents })
	if len(ranked) > 0 {
		s.TopCategory = ranked[0].name
		s.TopCategoryAmount = ranked[0].sum
	}
	return s
}

func breakdown(totals []categoryTotal, colors map[string]string) []BreakdownEntry {
	var total int64
	for _, t := range totals {
		total += t.sum.Cents
	}

	out := make([]BreakdownEntry, 0, len(totals))
	for _, t := range totals {
		out = append(out, BreakdownEntry{
			Label:      t.name,
			Value:      t.sum,
			Color:      colorFor(colors, t.name),
			Percentage: percentage(t.sum.Cents, total),
		})
	}
	return out
}

func percentage(part, total int64) string {
	if total == 0 {
		return "0.0"
	}
	p := decimal.NewFromInt(part).Mul(decimal.NewFromInt(100)).DivRound(decimal.NewFromInt(total), 1)
	return p.StringFixed(1)
}

// weekIndex maps a day of month to its bucket: 1-7, 8-14, 15-21, 22-end.
func weekIndex(day int) int {
	return min((day-1)/7, len(weekLabels)-1)
}

func trend(expenses []domain.Expense, period domain.Period) Series {
	if period.IsMonthScoped() {
		sums := make([]domain.Money, len(weekLabels))
		for _, e := range expenses {
			i := weekIndex(e.Date.Day())
			sums[i] = sums[i].Add(e.Amount)
		}
		return Series{Granularity: GranularityWeek, Points: points(weekLabels[:], sums)}
	}
	return Series{Granularity: GranularityMonth, Points: byMonthOfYear(expenses)}
}

func pattern(expenses []domain.Expense, period domain.Period, now time.Time) Series {
	if period.IsYearScoped() {
		return Series{Granularity: GranularityMonth, Points: byMonthOfYear(expenses)}
	}

	days := 31
	if period.IsMonthScoped() {
		y, m := period.Month(now)
		days = domain.DaysIn(y, m)
	}
	labels := make([]string, days)
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	sums := make([]domain.Money, days)
	for _, e := range expenses {
		if d := e.Date.Day(); d <= days {
			sums[d-1] = sums[d-1].Add(e.Amount)
		}
	}
	return Series{Granularity: GranularityDay, Points: points(labels, sums)}
}

func byMonthOfYear(expenses []domain.Expense) []Point {
	sums := make([]domain.Money, len(monthLabels))
	for _, e := range expenses {
		i := int(e.Date.Month()) - 1
		sums[i] = sums[i].Add(e.Amount)
	}
	return points(monthLabels[:], sums)
}

func points(labels []string, sums []domain.Money) []Point {
	out := make([]Point, len(labels))
	for i, l := range labels {
		out[i] = Point{Label: l, Value: sums[i]}
	}
	return out
}

type yearMonth struct {
	year  int
	month time.Month
}

// trendWindow returns the months a category trend covers: the twelve months
// of the target year for year periods, otherwise the six months ending at the
// period's reference month.
func trendWindow(period domain.Period, now time.Time) []yearMonth {
	if period.IsYearScoped() {
		y := period.Year(now)
		out := make([]yearMonth, 12)
		for i := range out {
			out[i] = yearMonth{year: y, month: time.Month(i + 1)}
		}
		return out
	}

	y, m := period.Month(now)
	end := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	out := make([]yearMonth, trailingMonths)
	for i := range out {
		t := end.AddDate(0, i-(trailingMonths-1), 0)
		out[i] = yearMonth{year: t.Year(), month: t.Month()}
	}
	return out
}

// categoryTrends covers the first three categories seen in the period.
// Monthly sums are taken over all expenses, not only the period's, and the
// window comes from trendWindow rather than a fixed January to June of the
// current year. A thisMonth report in March therefore shows October to March.
func categoryTrends(all []domain.Expense, totals []categoryTotal, colors map[string]string, period domain.Period, now time.Time) []CategoryTrend {
	window := trendWindow(period, now)
	slot := make(map[yearMonth]int, len(window))
	labels := make([]string, len(window))
	for i, ym := range window {
		slot[ym] = i
		labels[i] = monthLabels[ym.month-1]
	}

	n := min(categoryTrendMax, len(totals))
	sums := make(map[string][]domain.Money, n)
	for _, t := range totals[:n] {
		sums[t.name] = make([]domain.Money, len(window))
	}
	for _, e := range all {
		row, ok := sums[e.Category]
		if !ok {
			continue
		}
		if i, ok := slot[yearMonth{year: e.Date.Year(), month: e.Date.Month()}]; ok {
			row[i] = row[i].Add(e.Amount)
		}
	}

	out := make([]CategoryTrend, 0, n)
	for _, t := range totals[:n] {
		out = append(out, CategoryTrend{
			Category: t.name,
			Color:    colorFor(colors, t.name),
			Points:   points(labels, sums[t.name]),
		})
	}
	return out
}
