// internal/events/messages.go
package events

import (
	"encoding/json"
	"errors"
	"time"
)

// PropagationRetryMessage asks a worker to resume a pending propagation.
// The worker reloads the entry, so only its identity travels.
type PropagationRetryMessage struct {
	UserID        string    `json:"userId"`
	PropagationID string    `json:"propagationId"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewPropagationRetryMessage(userID, propagationID string) *PropagationRetryMessage {
	return &PropagationRetryMessage{
		UserID:        userID,
		PropagationID: propagationID,
		Timestamp:     time.Now().UTC(),
	}
}

func (m *PropagationRetryMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func PropagationRetryMessageFromJSON(data []byte) (*PropagationRetryMessage, error) {
	var msg PropagationRetryMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if msg.UserID == "" || msg.PropagationID == "" {
		return nil, errors.New("userId and propagationId are required")
	}
	return &msg, nil
}
