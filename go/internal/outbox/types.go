package outbox

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event is one row of the outbox table. Rows are written in the same
// transaction as the state change they describe and published asynchronously
// by the Worker.
type Event struct {
	ID        uuid.UUID       `json:"id"`
	EntityID  uuid.UUID       `json:"entity_id"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
	SentAt    *time.Time      `json:"sent_at,omitempty"`
}

// NewEvent builds an unsent outbox event with a fresh id
func NewEvent(entityID uuid.UUID, eventType string, payload []byte, now time.Time) Event {
	return Event{
		ID:        uuid.New(),
		EntityID:  entityID,
		EventType: eventType,
		Payload:   payload,
		CreatedAt: now,
	}
}
