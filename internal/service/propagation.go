// internal/service/propagation.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"expense-tracker/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

func (s *Service) newPropagation(userID string, kind domain.PropagationKind, categoryID, oldName, newName string) *domain.Propagation {
	now := s.timestamp()
	return &domain.Propagation{
		ID:         uuid.NewString(),
		UserID:     userID,
		Kind:       kind,
		CategoryID: categoryID,
		OldName:    oldName,
		NewName:    newName,
		Status:     domain.PropagationPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// partial handles the first failure of a sequential rename or delete: it
// leaves the entry pending and announces it once for a later retry.
func (s *Service) partial(ctx context.Context, p *domain.Propagation, cause error) error {
	if err := s.publisher.PublishPropagationRetry(context.WithoutCancel(ctx), p.UserID, p.ID); err != nil {
		slog.Error("Failed to publish propagation retry", "error", err, "propagation_id", p.ID)
	}
	return s.leavePending(ctx, p, cause)
}

// leavePending records the failure on the still pending entry and wraps cause
// in a PartialPropagationError. Nothing is published, so a failed retry is
// picked up again only by the stale sweep. The bookkeeping runs even when ctx
// is already cancelled.
func (s *Service) leavePending(ctx context.Context, p *domain.Propagation, cause error) error {
	if err := s.store.MarkPropagation(context.WithoutCancel(ctx), p.ID, domain.PropagationPending, cause.Error(), s.timestamp()); err != nil {
		slog.Error("Failed to record propagation failure", "error", err, "propagation_id", p.ID)
	}
	slog.Warn("Propagation left pending",
		"user_id", p.UserID,
		"propagation_id", p.ID,
		"kind", p.Kind,
		"category_id", p.CategoryID,
		"error", cause)
	return &domain.PartialPropagationError{
		Op:            p.Kind,
		CategoryID:    p.CategoryID,
		PropagationID: p.ID,
		Err:           cause,
	}
}

// completePropagation marks p done. The expense side is already applied, so
// a failure here only leaves an entry whose replay is a no-op.
func (s *Service) completePropagation(ctx context.Context, p *domain.Propagation) {
	now := s.timestamp()
	if err := s.store.MarkPropagation(context.WithoutCancel(ctx), p.ID, domain.PropagationDone, "", now); err != nil {
		slog.Error("Failed to mark propagation done", "error", err, "propagation_id", p.ID)
		return
	}
	p.Status = domain.PropagationDone
	p.LastError = ""
	p.Attempts++
	p.UpdatedAt = now
}

func (s *Service) ListPendingPropagations(ctx context.Context, userID string) ([]domain.Propagation, error) {
	return s.store.ListPendingPropagations(ctx, userID)
}

// RetryPropagation re-runs only the expense side of a pending rename or
// delete. Entries already done are returned unchanged. A failed retry leaves
// the entry pending without publishing another retry message.
func (s *Service) RetryPropagation(ctx context.Context, userID, id string) (*domain.Propagation, error) {
	p, err := s.store.GetPropagation(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if p.Status == domain.PropagationDone {
		return p, nil
	}
	if err := s.applyPropagation(ctx, p); err != nil {
		return nil, s.leavePending(ctx, p, err)
	}
	s.completePropagation(ctx, p)
	slog.Info("Propagation resumed", "user_id", userID, "propagation_id", p.ID, "kind", p.Kind)
	return p, nil
}

// applyPropagation is idempotent: replaying it after a success changes nothing.
func (s *Service) applyPropagation(ctx context.Context, p *domain.Propagation) error {
	switch p.Kind {
	case domain.PropagationRename:
		target := p.NewName
		// Follow later renames so the expenses land on the current name.
		if c, err := s.store.GetCategory(ctx, p.UserID, p.CategoryID); err == nil {
			target = c.Name
		} else if ignoreNotFound(err) != nil {
			return err
		}
		return s.withRetry(ctx, func(ctx context.Context) error {
			_, err := s.store.RenameExpenseCategory(ctx, p.UserID, p.OldName, target)
			return err
		})
	case domain.PropagationDelete:
		return s.withRetry(ctx, func(ctx context.Context) error {
			if _, err := s.store.DeleteExpensesByCategory(ctx, p.UserID, p.OldName); err != nil {
				return err
			}
			return ignoreNotFound(s.store.DeleteCategory(ctx, p.UserID, p.CategoryID))
		})
	default:
		return fmt.Errorf("unknown propagation kind %q", p.Kind)
	}
}

// ResumeStale retries pending propagations of any user that have not been
// touched for olderThan. It returns how many completed and every failure.
func (s *Service) ResumeStale(ctx context.Context, olderThan time.Duration, limit int) (int, error) {
	stale, err := s.store.ListStalePropagations(ctx, s.timestamp().Add(-olderThan), limit)
	if err != nil {
		return 0, err
	}

	var errs error
	done := 0
	for i := range stale {
		if ctx.Err() != nil {
			return done, multierr.Append(errs, ctx.Err())
		}
		if _, err := s.RetryPropagation(ctx, stale[i].UserID, stale[i].ID); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("propagation %s: %w", stale[i].ID, err))
			continue
		}
		done++
	}
	if len(stale) > 0 {
		slog.Info("Stale propagations swept", "found", len(stale), "completed", done)
	}
	return done, errs
}
