// internal/service/service.go
package service

import (
	"context"
	"errors"
	"time"

	"expense-tracker/internal/auth"
	"expense-tracker/internal/config"
	"expense-tracker/internal/storage"

	"github.com/sethvargo/go-retry"
)

// PropagationPublisher announces propagations that need another attempt.
type PropagationPublisher interface {
	PublishPropagationRetry(ctx context.Context, userID, propagationID string) error
}

type nopPublisher struct{}

func (nopPublisher) PublishPropagationRetry(context.Context, string, string) error { return nil }

type Options struct {
	ConsistencyMode       string
	PropagationRetries    int
	PropagationRetryDelay time.Duration
	SeedDefaultCategories bool
	LinkCodeTTL           time.Duration
}

func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		ConsistencyMode:       cfg.ConsistencyMode,
		PropagationRetries:    cfg.PropagationRetries,
		PropagationRetryDelay: cfg.PropagationRetryDelay,
		SeedDefaultCategories: cfg.SeedDefaultCategories,
		LinkCodeTTL:           cfg.LinkCodeTTL,
	}
}

// Service holds the business rules shared by the HTTP API, the bot and the
// propagation worker. Every method that takes a userID only sees that user's
// records.
type Service struct {
	store     storage.Store
	tokens    *auth.TokenService
	hasher    *auth.PasswordHasher
	publisher PropagationPublisher
	opts      Options
	now       func() time.Time
}

func New(store storage.Store, tokens *auth.TokenService, hasher *auth.PasswordHasher, publisher PropagationPublisher, opts Options) *Service {
	if publisher == nil {
		publisher = nopPublisher{}
	}
	if opts.ConsistencyMode == "" {
		opts.ConsistencyMode = config.ModeAtomic
	}
	if opts.PropagationRetryDelay <= 0 {
		opts.PropagationRetryDelay = 100 * time.Millisecond
	}
	if opts.LinkCodeTTL <= 0 {
		opts.LinkCodeTTL = 10 * time.Minute
	}
	return &Service{
		store:     store,
		tokens:    tokens,
		hasher:    hasher,
		publisher: publisher,
		opts:      opts,
		now:       time.Now,
	}
}

// WithClock replaces the time source, used for timestamps and analytics.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) sequential() bool { return s.opts.ConsistencyMode == config.ModeSequential }

func (s *Service) timestamp() time.Time { return s.now().UTC() }

// withRetry runs fn with exponential backoff. Context errors end it at once.
func (s *Service) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	b := retry.NewExponential(s.opts.PropagationRetryDelay)
	b = retry.WithMaxRetries(uint64(max(0, s.opts.PropagationRetries)), b)
	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return retry.RetryableError(err)
	})
}
