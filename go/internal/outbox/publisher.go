package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// EventPublisher delivers an outbox event to the message bus
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// NATSPublisher publishes events to NATS as fantasy.<event_type> subjects
type NATSPublisher struct {
	conn          *nats.Conn
	subjectPrefix string
}

func NewNATSPublisher(conn *nats.Conn, subjectPrefix string) *NATSPublisher {
	return &NATSPublisher{
		conn:          conn,
		subjectPrefix: subjectPrefix,
	}
}

func (p *NATSPublisher) Publish(ctx context.Context, event Event) error {
	envelope := map[string]any{
		"event_id":   event.ID.String(),
		"event_type": event.EventType,
		"entity_id":  event.EntityID.String(),
		"created_at": event.CreatedAt,
		"payload":    json.RawMessage(event.Payload),
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := fmt.Sprintf("%s.%s", p.subjectPrefix, event.EventType)
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	return nil
}

// LogPublisher logs events instead of publishing them; used for local
// development when no NATS server is configured
type LogPublisher struct {
	logger zerolog.Logger
}

func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event Event) error {
	p.logger.Info().
		Str("event_id", event.ID.String()).
		Str("event_type", event.EventType).
		Str("entity_id", event.EntityID.String()).
		Msg("publishing event")
	return nil
}
