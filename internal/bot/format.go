// internal/bot/format.go
package bot

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"expense-tracker/internal/analytics"
	"expense-tracker/internal/domain"

	"github.com/dustin/go-humanize"
)

const summaryBreakdownLines = 3

var periodTitles = map[domain.Period]string{
	domain.PeriodThisMonth: "this month",
	domain.PeriodLastMonth: "last month",
	domain.PeriodThisYear:  "this year",
	domain.PeriodLastYear:  "last year",
	domain.PeriodAll:       "all time",
}

// formatMoney groups thousands and always shows two decimals: 1,234.50.
func formatMoney(m domain.Money) string {
	return humanize.FormatFloat("#,###.##", m.Float64())
}

func formatSummary(r analytics.Report) string {
	s := r.Summary
	if s.ExpenseCount == 0 {
		return fmt.Sprintf("📭 No expenses %s", periodTitles[r.Period])
	}

	lines := []string{
		fmt.Sprintf("📊 *Spending %s*", periodTitles[r.Period]),
		fmt.Sprintf("Total: %s (%s expenses)", formatMoney(s.TotalSpending), humanize.Comma(int64(s.ExpenseCount))),
		fmt.Sprintf("Monthly average: %s", formatMoney(s.MonthlyAverage)),
		fmt.Sprintf("Daily average: %s", formatMoney(s.DailyAverage)),
		fmt.Sprintf("Top category: %s (%s)", escape(s.TopCategory), formatMoney(s.TopCategoryAmount)),
	}

	entries := slices.Clone(r.CategoryBreakdown)
	slices.SortStableFunc(entries, func(a, b analytics.BreakdownEntry) int {
		return cmp.Compare(b.Value.Cents, a.Value.Cents)
	})
	entries = entries[:min(summaryBreakdownLines, len(entries))]
	if len(entries) > 0 {
		lines = append(lines, "")
		for i, e := range entries {
			lines = append(lines, fmt.Sprintf("%s %s: %s (%s%%)",
				humanize.Ordinal(i+1), escape(e.Label), formatMoney(e.Value), e.Percentage))
		}
	}
	return strings.Join(lines, "\n")
}
