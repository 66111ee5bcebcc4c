package bot

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"expense-tracker/internal/auth"
	"expense-tracker/internal/config"
	"expense-tracker/internal/domain"
	"expense-tracker/internal/service"
	"expense-tracker/internal/storage/sqlite"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const chatID int64 = 4242

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

type BotTestSuite struct {
	suite.Suite
	ctx    context.Context
	store  *sqlite.Storage
	svc    *service.Service
	sender *fakeSender
	bot    *Bot
	user   *domain.User
}

func (s *BotTestSuite) SetupTest() {
	s.ctx = context.Background()
	store, err := sqlite.Open(s.ctx, ":memory:")
	require.NoError(s.T(), err)
	s.store = store

	now := func() time.Time { return time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC) }
	tokens := auth.NewTokenService(config.Config{JWTSecret: "bot-secret", JWTExpiresIn: time.Hour})
	s.svc = service.New(store, tokens, auth.NewPasswordHasher(4), nil, service.Options{
		SeedDefaultCategories: true,
		LinkCodeTTL:           10 * time.Minute,
	}).WithClock(now)
	s.sender = &fakeSender{}
	s.bot = New(s.svc, s.sender).WithClock(now)

	s.user, err = s.svc.Signup(s.ctx, service.SignupInput{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		Password:        "engine1843!",
		ConfirmPassword: "engine1843!",
	})
	require.NoError(s.T(), err)
}

func (s *BotTestSuite) TearDownTest() {
	if s.store != nil {
		s.store.Close()
	}
}

func TestBotSuite(t *testing.T) {
	suite.Run(t, new(BotTestSuite))
}

func (s *BotTestSuite) link() {
	lc, err := s.svc.IssueLinkCode(s.ctx, s.user.ID)
	require.NoError(s.T(), err)
	reply := s.bot.Reply(s.ctx, chatID, "/link "+lc.Code)
	require.Equal(s.T(), "✅ Linked to Ada Lovelace", reply)
}

func (s *BotTestSuite) TestHelp() {
	for _, cmd := range []string{"/start", "/help", "/help@expense_bot"} {
		assert.Equal(s.T(), helpText, s.bot.Reply(s.ctx, chatID, cmd))
	}
	assert.Equal(s.T(), "Unknown command. Send /help", s.bot.Reply(s.ctx, chatID, "hello"))
}

func (s *BotTestSuite) TestUnlinkedChat() {
	for _, cmd := range []string{"/categories", "/recent", "/summary", "/add 5 Shopping: socks"} {
		assert.Contains(s.T(), s.bot.Reply(s.ctx, chatID, cmd), "not linked", cmd)
	}
}

func (s *BotTestSuite) TestLink() {
	assert.Equal(s.T(), "❌ Use: /link CODE", s.bot.Reply(s.ctx, chatID, "/link"))
	assert.Equal(s.T(), "❌ Link code not found or expired", s.bot.Reply(s.ctx, chatID, "/link NOPE1234"))

	lc, err := s.svc.IssueLinkCode(s.ctx, s.user.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "✅ Linked to Ada Lovelace", s.bot.Reply(s.ctx, chatID, "/link "+lc.Code))
	assert.Equal(s.T(), "❌ Link code not found or expired", s.bot.Reply(s.ctx, chatID+1, "/link "+lc.Code), "codes are single use")
}

func (s *BotTestSuite) TestCategories() {
	s.link()
	reply := s.bot.Reply(s.ctx, chatID, "/categories")
	assert.Contains(s.T(), reply, "*Categories*")
	for _, tpl := range domain.DefaultCategories {
		assert.Contains(s.T(), reply, tpl.Name)
	}
}

func (s *BotTestSuite) TestAdd() {
	s.link()

	reply := s.bot.Reply(s.ctx, chatID, "/add 12.50 food & dining: lunch with Bob")
	assert.Equal(s.T(), "✅ Saved "+emojiOf("Food & Dining")+" 12.50 in Food & Dining", reply)

	expenses, err := s.svc.ListExpenses(s.ctx, s.user.ID, domain.PeriodAll)
	require.NoError(s.T(), err)
	require.Len(s.T(), expenses, 1)
	assert.Equal(s.T(), "Food & Dining", expenses[0].Category)
	assert.Equal(s.T(), "lunch with Bob", expenses[0].Description)
	assert.Equal(s.T(), domain.NewDate(2024, time.January, 15), expenses[0].Date)
	assert.Equal(s.T(), int64(1250), expenses[0].Amount.Cents)
}

func (s *BotTestSuite) TestAddErrors() {
	s.link()
	tests := []struct {
		name string
		text string
		want string
	}{
		{"no arguments", "/add", "❌ Use: /add 12.50 Food & Dining: lunch"},
		{"no description", "/add 5 Shopping", "❌ Use: /add 12.50 Food & Dining: lunch"},
		{"bad amount", "/add lots Shopping: socks", "❌ Invalid amount: lots"},
		{"zero amount", "/add 0 Shopping: socks", "❌ Amount must be greater than 0"},
		{"unknown category", "/add 5 Gadgets: phone", `❌ Category "Gadgets" not found`},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			assert.Equal(s.T(), tt.want, s.bot.Reply(s.ctx, chatID, tt.text))
		})
	}
}

func (s *BotTestSuite) TestSummary() {
	s.link()
	assert.Equal(s.T(), "📭 No expenses this month", s.bot.Reply(s.ctx, chatID, "/summary"))

	s.bot.Reply(s.ctx, chatID, "/add 12.50 Food & Dining: lunch")
	s.bot.Reply(s.ctx, chatID, "/add 30 Shopping: shoes")

	reply := s.bot.Reply(s.ctx, chatID, "/summary thisMonth")
	assert.Contains(s.T(), reply, "*Spending this month*")
	assert.Contains(s.T(), reply, "Total: 42.50 (2 expenses)")
	assert.Contains(s.T(), reply, "Top category: Shopping (30.00)")
	assert.Contains(s.T(), reply, "1st Shopping: 30.00 (70.6%)")
	assert.Contains(s.T(), reply, "2nd Food & Dining: 12.50 (29.4%)")

	assert.Equal(s.T(), "📭 No expenses last month", s.bot.Reply(s.ctx, chatID, "/summary lastMonth"))
	assert.Contains(s.T(), s.bot.Reply(s.ctx, chatID, "/summary decade"), "❌ Invalid period")
}

func (s *BotTestSuite) TestRecent() {
	s.link()
	assert.Equal(s.T(), "📭 No expenses yet", s.bot.Reply(s.ctx, chatID, "/recent"))

	for range 7 {
		s.bot.Reply(s.ctx, chatID, "/add 1 Utilities: fee")
	}
	reply := s.bot.Reply(s.ctx, chatID, "/recent")
	assert.Contains(s.T(), reply, "2024-01-15 "+emojiOf("Utilities")+" 1.00 Utilities: fee")
	assert.Len(s.T(), strings.Split(reply, "\n"), 1+recentLimit)
}

func (s *BotTestSuite) TestHandleUpdate() {
	s.bot.HandleUpdate(s.ctx, tgbotapi.Update{})
	assert.Empty(s.T(), s.sender.sent)

	s.bot.HandleUpdate(s.ctx, tgbotapi.Update{Message: &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: chatID},
		Text: "  /help  ",
	}})
	require.Len(s.T(), s.sender.sent, 1)
	assert.Equal(s.T(), chatID, s.sender.sent[0].ChatID)
	assert.Equal(s.T(), tgbotapi.ModeMarkdown, s.sender.sent[0].ParseMode)
	assert.Equal(s.T(), helpText, s.sender.sent[0].Text)

	s.sender.err = errors.New("telegram down")
	s.bot.HandleUpdate(s.ctx, tgbotapi.Update{Message: &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: chatID},
		Text: "/start",
	}})
	assert.Len(s.T(), s.sender.sent, 2)
}

func (s *BotTestSuite) TestRunStopsWhenChannelCloses() {
	updates := make(chan tgbotapi.Update, 1)
	updates <- tgbotapi.Update{Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: chatID}, Text: "/help"}}
	close(updates)

	require.NoError(s.T(), s.bot.Run(s.ctx, updates))
	assert.Len(s.T(), s.sender.sent, 1)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "/add 5 Shopping: socks", cleanText("  /add\t 5 Shopping:   socks \n"))
	assert.Equal(t, "Привет", cleanText("\xcf\xf0\xe8\xe2\xe5\xf2"))
	assert.Empty(t, cleanText("   "))
}

func TestSplitCommand(t *testing.T) {
	cmd, args := splitCommand("/Summary@expense_bot   lastYear")
	assert.Equal(t, "/summary", cmd)
	assert.Equal(t, "lastYear", args)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "1,234.50", formatMoney(domain.Cents(123450)))
	assert.Equal(t, "0.05", formatMoney(domain.Cents(5)))
	assert.Equal(t, "60.00", formatMoney(domain.Cents(6000)))
}

func emojiOf(name string) string {
	for _, tpl := range domain.DefaultCategories {
		if tpl.Name == name {
			return tpl.Emoji
		}
	}
	return ""
}
