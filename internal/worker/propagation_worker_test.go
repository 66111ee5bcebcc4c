package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"expense-tracker/internal/domain"
	"expense-tracker/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResumer struct {
	retryErr  error
	staleErr  error
	sweeps    atomic.Int32
	lastLimit int
}

func (f *fakeResumer) RetryPropagation(_ context.Context, userID, id string) (*domain.Propagation, error) {
	if f.retryErr != nil {
		return nil, f.retryErr
	}
	return &domain.Propagation{ID: id, UserID: userID, Kind: domain.PropagationRename, Status: domain.PropagationDone}, nil
}

func (f *fakeResumer) ResumeStale(_ context.Context, _ time.Duration, limit int) (int, error) {
	f.sweeps.Add(1)
	f.lastLimit = limit
	return 1, f.staleErr
}

func TestHandleRetryMessage(t *testing.T) {
	msg := events.NewPropagationRetryMessage("user-1", "prop-1")

	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "completed", err: nil},
		{name: "missing entry is dropped", err: &domain.NotFoundError{Message: "Propagation not found"}},
		{name: "still pending is acked", err: &domain.PartialPropagationError{Op: domain.PropagationRename, PropagationID: "prop-1", Err: errors.New("down")}},
		{name: "unexpected error requeues", err: errors.New("db down"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewPropagationWorker(&fakeResumer{retryErr: tt.err}, time.Minute, time.Minute, 0)
			err := w.HandleRetryMessage(context.Background(), msg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSweep(t *testing.T) {
	r := &fakeResumer{}
	w := NewPropagationWorker(r, time.Minute, time.Minute, 0)
	require.NoError(t, w.Sweep(context.Background()))
	assert.Equal(t, defaultBatchSize, r.lastLimit)

	r.staleErr = errors.New("partial")
	assert.Error(t, w.Sweep(context.Background()))
}

func TestRunSweeperStopsOnCancel(t *testing.T) {
	r := &fakeResumer{}
	w := NewPropagationWorker(r, 5*time.Millisecond, time.Minute, 10)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- w.RunSweeper(ctx) }()

	require.Eventually(t, func() bool { return r.sweeps.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
