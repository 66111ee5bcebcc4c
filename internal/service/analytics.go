// internal/service/analytics.go
package service

import (
	"context"

	"expense-tracker/internal/analytics"
	"expense-tracker/internal/domain"

	"golang.org/x/sync/errgroup"
)

// Analytics loads the user's expenses and categories concurrently and builds
// the report for period.
func (s *Service) Analytics(ctx context.Context, userID string, period domain.Period) (analytics.Report, error) {
	var (
		expenses   []domain.Expense
		categories []domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = s.store.ListExpenses(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.store.ListCategories(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return analytics.Report{}, err
	}

	return analytics.Build(expenses, categories, period, s.now()), nil
}
