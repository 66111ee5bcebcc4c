package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDelivery struct {
	acked, nacked, requeued bool
}

func (d *fakeDelivery) Ack(bool) error {
	d.acked = true
	return nil
}

func (d *fakeDelivery) Nack(_, requeue bool) error {
	d.nacked = true
	d.requeued = requeue
	return nil
}

func TestPropagationRetryMessageFromJSON(t *testing.T) {
	body, err := NewPropagationRetryMessage("user-1", "prop-1").ToJSON()
	require.NoError(t, err)

	msg, err := PropagationRetryMessageFromJSON(body)
	require.NoError(t, err)
	assert.Equal(t, "user-1", msg.UserID)
	assert.Equal(t, "prop-1", msg.PropagationID)
	assert.False(t, msg.Timestamp.IsZero())

	_, err = PropagationRetryMessageFromJSON([]byte(`{"userId":"user-1"}`))
	assert.Error(t, err)

	_, err = PropagationRetryMessageFromJSON([]byte(`not json`))
	assert.Error(t, err)
}

func TestHandleDelivery(t *testing.T) {
	valid, err := NewPropagationRetryMessage("user-1", "prop-1").ToJSON()
	require.NoError(t, err)

	tests := []struct {
		name       string
		body       []byte
		handlerErr error
		acked      bool
		requeued   bool
		called     bool
	}{
		{name: "success acks", body: valid, acked: true, called: true},
		{name: "handler failure requeues", body: valid, handlerErr: errors.New("boom"), requeued: true, called: true},
		{name: "malformed body is dropped", body: []byte(`{`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &fakeDelivery{}
			called := false
			HandleDelivery(context.Background(), d, tt.body, func(_ context.Context, msg *PropagationRetryMessage) error {
				called = true
				assert.Equal(t, "prop-1", msg.PropagationID)
				return tt.handlerErr
			})

			assert.Equal(t, tt.called, called)
			assert.Equal(t, tt.acked, d.acked)
			assert.Equal(t, !tt.acked, d.nacked)
			assert.Equal(t, tt.requeued, d.requeued)
		})
	}
}
