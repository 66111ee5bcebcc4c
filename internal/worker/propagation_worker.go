// internal/worker/propagation_worker.go
package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"expense-tracker/internal/domain"
	"expense-tracker/internal/events"
)

const defaultBatchSize = 100

// Resumer re-runs pending propagations.
type Resumer interface {
	RetryPropagation(ctx context.Context, userID, id string) (*domain.Propagation, error)
	ResumeStale(ctx context.Context, olderThan time.Duration, limit int) (int, error)
}

// PropagationWorker finishes renames and deletes whose expense step failed,
// both on request (retry messages) and periodically (stale sweep).
type PropagationWorker struct {
	resumer    Resumer
	interval   time.Duration
	staleAfter time.Duration
	batchSize  int
}

func NewPropagationWorker(resumer Resumer, interval, staleAfter time.Duration, batchSize int) *PropagationWorker {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &PropagationWorker{
		resumer:    resumer,
		interval:   interval,
		staleAfter: staleAfter,
		batchSize:  batchSize,
	}
}

// HandleRetryMessage resumes the propagation named in msg. A returned error
// asks for the message to be requeued.
func (w *PropagationWorker) HandleRetryMessage(ctx context.Context, msg *events.PropagationRetryMessage) error {
	slog.InfoContext(ctx, "Processing propagation retry",
		"user_id", msg.UserID,
		"propagation_id", msg.PropagationID)

	p, err := w.resumer.RetryPropagation(ctx, msg.UserID, msg.PropagationID)
	switch {
	case err == nil:
		slog.InfoContext(ctx, "Propagation completed", "propagation_id", p.ID, "kind", p.Kind)
		return nil
	case errors.Is(err, domain.ErrNotFound):
		slog.WarnContext(ctx, "Propagation no longer exists", "propagation_id", msg.PropagationID)
		return nil
	case domain.IsPartialPropagation(err):
		// Stays pending until the stale sweep picks it up.
		slog.WarnContext(ctx, "Propagation still pending", "propagation_id", msg.PropagationID, "error", err)
		return nil
	default:
		return err
	}
}

// Sweep resumes every stale pending propagation once.
func (w *PropagationWorker) Sweep(ctx context.Context) error {
	n, err := w.resumer.ResumeStale(ctx, w.staleAfter, w.batchSize)
	if err != nil {
		slog.ErrorContext(ctx, "Propagation sweep had failures", "completed", n, "error", err)
		return err
	}
	if n > 0 {
		slog.InfoContext(ctx, "Propagation sweep completed", "completed", n)
	}
	return nil
}

// RunSweeper sweeps immediately and then every interval until ctx is done.
// Sweep failures are logged and do not stop the loop.
func (w *PropagationWorker) RunSweeper(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		_ = w.Sweep(ctx)
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Stopping propagation sweeper", "reason", ctx.Err())
			return nil
		case <-ticker.C:
		}
	}
}
