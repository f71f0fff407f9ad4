package outbox

import (
	"context"
	"fmt"
	"time"

	"github.com/blueline/fantasyhockey/go/internal/sqlutil"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Repository reads and writes outbox rows. Insert is expected to run on a
// transaction shared with the originating state change.
type Repository struct {
	db sqlutil.DBTX
}

func NewRepository(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

// Insert appends an unsent event
func (r *Repository) Insert(ctx context.Context, evt Event) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO outbox_events (id, entity_id, event_type, payload, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		evt.ID, evt.EntityID, evt.EventType, []byte(evt.Payload), evt.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}
	return nil
}

// FetchUnsent claims a batch of unsent events. Rows are locked with SKIP
// LOCKED so multiple workers never publish the same event twice.
func (r *Repository) FetchUnsent(ctx context.Context, limit int32) ([]Event, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, entity_id, event_type, payload, created_at
		 FROM outbox_events
		 WHERE sent_at IS NULL
		 ORDER BY created_at
		 LIMIT $1
		 FOR UPDATE SKIP LOCKED`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unsent events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var evt Event
		if err := rows.Scan(&evt.ID, &evt.EntityID, &evt.EventType, (*[]byte)(&evt.Payload), &evt.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan outbox event: %w", err)
		}
		events = append(events, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read outbox events: %w", err)
	}
	return events, nil
}

// MarkSent stamps the given events as published
func (r *Repository) MarkSent(ctx context.Context, ids []uuid.UUID, sentAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE outbox_events SET sent_at = $2 WHERE id = ANY($1)`, pq.Array(ids), sentAt)
	if err != nil {
		return fmt.Errorf("failed to mark events sent: %w", err)
	}
	return nil
}
