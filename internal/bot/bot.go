// internal/bot/bot.go
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"expense-tracker/internal/analytics"
	"expense-tracker/internal/domain"
	"expense-tracker/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/text/encoding/charmap"
)

const recentLimit = 5

const helpText = "💸 *Expense tracker*\n\n" +
	"Commands:\n" +
	"`/link CODE` link this chat to your account\n" +
	"`/categories` list your categories\n" +
	"`/add 12.50 Food & Dining: lunch` record an expense for today\n" +
	"`/summary [thisMonth|lastMonth|thisYear|lastYear|all]` spending summary\n" +
	"`/recent` last 5 expenses"

// Service is the part of the service layer the bot talks to.
type Service interface {
	LinkChat(ctx context.Context, code string, chatID int64) (*domain.User, error)
	UserIDByChat(ctx context.Context, chatID int64) (string, error)
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
	FindCategoryByName(ctx context.Context, userID, name string) (*domain.Category, error)
	CreateExpense(ctx context.Context, userID string, in service.ExpenseInput) (*domain.Expense, error)
	ListExpenses(ctx context.Context, userID string, period domain.Period) ([]domain.Expense, error)
	Analytics(ctx context.Context, userID string, period domain.Period) (analytics.Report, error)
}

// Sender is satisfied by *tgbotapi.BotAPI.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Bot struct {
	svc    Service
	sender Sender
	now    func() time.Time
}

func New(svc Service, sender Sender) *Bot {
	return &Bot{svc: svc, sender: sender, now: time.Now}
}

// WithClock replaces the time source used to date /add expenses.
func (b *Bot) WithClock(now func() time.Time) *Bot {
	b.now = now
	return b
}

// Run handles updates until ctx is done or the channel closes.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate answers a single message. Updates without text are ignored.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || update.Message.Chat == nil {
		return
	}
	chatID := update.Message.Chat.ID
	text := cleanText(update.Message.Text)
	if text == "" {
		return
	}
	slog.Info("Bot message received", "chat_id", chatID, "text", text)

	msg := tgbotapi.NewMessage(chatID, b.Reply(ctx, chatID, text))
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.sender.Send(msg); err != nil {
		slog.Error("Failed to send bot reply", "error", err, "chat_id", chatID)
	}
}

// Reply runs the command in text for chatID and returns the answer.
func (b *Bot) Reply(ctx context.Context, chatID int64, text string) string {
	cmd, args := splitCommand(text)

	var (
		reply string
		err   error
	)
	switch cmd {
	case "/start", "/help":
		reply = helpText
	case "/link":
		reply, err = b.link(ctx, chatID, args)
	case "/categories":
		reply, err = b.withUser(ctx, chatID, b.categories)
	case "/add":
		reply, err = b.withUser(ctx, chatID, func(ctx context.Context, userID string) (string, error) {
			return b.add(ctx, userID, args)
		})
	case "/summary":
		reply, err = b.withUser(ctx, chatID, func(ctx context.Context, userID string) (string, error) {
			return b.summary(ctx, userID, args)
		})
	case "/recent":
		reply, err = b.withUser(ctx, chatID, b.recent)
	default:
		reply = "Unknown command. Send /help"
	}
	if err != nil {
		return errorReply(err, chatID)
	}
	return reply
}

var errNotLinked = errors.New("chat not linked")

func (b *Bot) withUser(ctx context.Context, chatID int64, fn func(ctx context.Context, userID string) (string, error)) (string, error) {
	userID, err := b.svc.UserIDByChat(ctx, chatID)
	if errors.Is(err, domain.ErrNotFound) {
		return "", errNotLinked
	}
	if err != nil {
		return "", err
	}
	return fn(ctx, userID)
}

func (b *Bot) link(ctx context.Context, chatID int64, code string) (string, error) {
	if code == "" {
		return "❌ Use: /link CODE", nil
	}
	user, err := b.svc.LinkChat(ctx, code, chatID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("✅ Linked to %s", escape(user.FirstName+" "+user.LastName)), nil
}

func (b *Bot) categories(ctx context.Context, userID string) (string, error) {
	categories, err := b.svc.ListCategories(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(categories) == 0 {
		return "📭 No categories yet", nil
	}
	lines := []string{"🗂 *Categories*"}
	for _, c := range categories {
		lines = append(lines, fmt.Sprintf("%s %s", c.Emoji, escape(c.Name)))
	}
	return strings.Join(lines, "\n"), nil
}

// add parses "<amount> <category>: <description>".
func (b *Bot) add(ctx context.Context, userID, args string) (string, error) {
	const usage = "❌ Use: /add 12.50 Food & Dining: lunch"
	amountStr, rest, ok := strings.Cut(args, " ")
	if !ok {
		return usage, nil
	}
	categoryName, description, ok := strings.Cut(rest, ":")
	categoryName, description = strings.TrimSpace(categoryName), strings.TrimSpace(description)
	if !ok || categoryName == "" || description == "" {
		return usage, nil
	}
	amount, err := domain.ParseMoney(amountStr)
	if err != nil {
		return fmt.Sprintf("❌ Invalid amount: %s", escape(amountStr)), nil
	}

	category, err := b.svc.FindCategoryByName(ctx, userID, categoryName)
	if err != nil {
		return "", err
	}
	date := domain.DateOf(b.now())
	expense, err := b.svc.CreateExpense(ctx, userID, service.ExpenseInput{
		Amount:      &amount,
		Date:        &date,
		Category:    category.Name,
		Description: description,
		Emoji:       category.Emoji,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("✅ Saved %s %s in %s", expense.Emoji, formatMoney(expense.Amount), escape(expense.Category)), nil
}

func (b *Bot) summary(ctx context.Context, userID, args string) (string, error) {
	period, err := domain.ParsePeriod(args)
	if err != nil {
		return "", err
	}
	report, err := b.svc.Analytics(ctx, userID, period)
	if err != nil {
		return "", err
	}
	return formatSummary(report), nil
}

func (b *Bot) recent(ctx context.Context, userID string) (string, error) {
	expenses, err := b.svc.ListExpenses(ctx, userID, domain.PeriodAll)
	if err != nil {
		return "", err
	}
	if len(expenses) == 0 {
		return "📭 No expenses yet", nil
	}
	lines := []string{"🧾 *Recent expenses*"}
	for _, e := range expenses[:min(recentLimit, len(expenses))] {
		lines = append(lines, fmt.Sprintf("%s %s %s %s: %s",
			e.Date, e.Emoji, formatMoney(e.Amount), escape(e.Category), escape(e.Description)))
	}
	return strings.Join(lines, "\n"), nil
}

// errorReply shows caller-facing errors and hides the rest.
func errorReply(err error, chatID int64) string {
	var (
		invalid  *domain.ValidationError
		notFound *domain.NotFoundError
		dup      *domain.DuplicateError
	)
	switch {
	case errors.Is(err, errNotLinked):
		return "🔗 This chat is not linked. Get a code in the app and send /link CODE"
	case errors.As(err, &invalid):
		return "❌ " + escape(invalid.Message)
	case errors.As(err, &notFound):
		return "❌ " + escape(notFound.Message)
	case errors.As(err, &dup):
		return "❌ " + escape(dup.Message)
	default:
		slog.Error("Bot command failed", "error", err, "chat_id", chatID)
		return "❌ Something went wrong, try again later"
	}
}

// splitCommand returns the command without a @botname suffix, and its arguments.
func splitCommand(text string) (string, string) {
	cmd, args, _ := strings.Cut(text, " ")
	cmd, _, _ = strings.Cut(cmd, "@")
	return strings.ToLower(cmd), strings.TrimSpace(args)
}

// cleanText repairs text that is not valid UTF-8, assuming Windows-1251, and
// collapses runs of whitespace.
func cleanText(s string) string {
	if !utf8.ValidString(s) {
		if fixed, err := charmap.Windows1251.NewDecoder().String(s); err == nil && utf8.ValidString(fixed) {
			s = fixed
		} else {
			s = strings.ToValidUTF8(s, "")
		}
	}
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}
