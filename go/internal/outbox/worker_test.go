package outbox

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// flakyPublisher fails the first failures calls, then succeeds.
type flakyPublisher struct {
	failures int
	calls    int
}

func (p *flakyPublisher) Publish(ctx context.Context, event Event) error {
	p.calls++
	if p.calls <= p.failures {
		return errors.New("bus unavailable")
	}
	return nil
}

func testWorker(publisher EventPublisher, cfg Config) *Worker {
	// An unreachable database: polls fail and are logged, nothing panics.
	db, _ := sql.Open("postgres", "host=127.0.0.1 port=1 user=none dbname=none sslmode=disable")
	return NewWorker(db, publisher, cfg, clockwork.NewRealClock(), zerolog.Nop())
}

func TestWorkerStartStop(t *testing.T) {
	w := testWorker(&flakyPublisher{}, DefaultConfig())

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start() = %v, want nil", err)
	}
	if err := w.Start(context.Background()); err == nil {
		t.Fatal("second Start() = nil, want already-running error")
	}
	if err := w.Stop(); err != nil {
		t.Fatalf("Stop() = %v, want nil", err)
	}
	if err := w.Stop(); err == nil {
		t.Fatal("second Stop() = nil, want not-running error")
	}
}

func TestPublishWithRetry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRetries = 2
	cfg.RetryDelay = time.Millisecond

	event := NewEvent(uuid.New(), "trade.completed", []byte(`{}`), time.Now())

	t.Run("succeeds after transient failures", func(t *testing.T) {
		publisher := &flakyPublisher{failures: 2}
		w := testWorker(publisher, cfg)
		if err := w.publishWithRetry(context.Background(), event); err != nil {
			t.Fatalf("publishWithRetry() = %v, want nil", err)
		}
		if publisher.calls != 3 {
			t.Fatalf("publish calls = %d, want 3", publisher.calls)
		}
	})

	t.Run("gives up past the retry cap", func(t *testing.T) {
		publisher := &flakyPublisher{failures: 10}
		w := testWorker(publisher, cfg)
		if err := w.publishWithRetry(context.Background(), event); err == nil {
			t.Fatal("publishWithRetry() = nil, want error")
		}
		if publisher.calls != 3 {
			t.Fatalf("publish calls = %d, want 3", publisher.calls)
		}
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		publisher := &flakyPublisher{failures: 10}
		w := testWorker(publisher, cfg)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := w.publishWithRetry(ctx, event); !errors.Is(err, context.Canceled) {
			t.Fatalf("publishWithRetry() = %v, want context.Canceled", err)
		}
	})
}
