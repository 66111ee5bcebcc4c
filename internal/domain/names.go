// internal/domain/names.go
package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

const (
	DefaultCategoryEmoji  = "📝"
	DefaultCategoryColor  = "#6366F1"
	DefaultExpenseEmoji   = "💰"
	DefaultBreakdownColor = "#6B7280"
)

// NormalizeName trims s and puts it in NFC form.
func NormalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// NameKey is the comparison key for category names: normalized and
// Unicode case-folded, so "Food", "FOOD" and "food" share one key.
func NameKey(s string) string {
	return cases.Fold().String(NormalizeName(s))
}

type CategoryTemplate struct {
	Name  string
	Emoji string
	Color string
}

// DefaultCategories are seeded for new users.
var DefaultCategories = []CategoryTemplate{
	{Name: "Food & Dining", Emoji: "🍽️", Color: "#FF6B6B"},
	{Name: "Transportation", Emoji: "🚗", Color: "#4ECDC4"},
	{Name: "Shopping", Emoji: "🛍️", Color: "#45B7D1"},
	{Name: "Entertainment", Emoji: "🎬", Color: "#96CEB4"},
	{Name: "Healthcare", Emoji: "🏥", Color: "#FFEAA7"},
	{Name: "Utilities", Emoji: "💡", Color: "#DDA0DD"},
}
