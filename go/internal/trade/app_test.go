package trade

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/blueline/fantasyhockey/go/internal/sqlutil"
)

func TestCompletionError(t *testing.T) {
	aborted := fmt.Errorf("failed to insert slot: %w", sqlutil.ErrSerializationFailure)
	if got := completionError(aborted); !errors.Is(got, ErrConcurrentModification) {
		t.Fatalf("completionError(%v) = %v, want ErrConcurrentModification", aborted, got)
	}

	other := errors.New("connection reset")
	if got := completionError(other); got != other {
		t.Fatalf("completionError(%v) = %v, want error unchanged", other, got)
	}

	notOnTeam := fmt.Errorf("leg validation: %w", ErrPlayerNotOnTeam)
	if got := completionError(notOnTeam); !errors.Is(got, ErrPlayerNotOnTeam) || errors.Is(got, ErrConcurrentModification) {
		t.Fatalf("completionError(%v) = %v, want ErrPlayerNotOnTeam untouched", notOnTeam, got)
	}
}

func TestStampTransition(t *testing.T) {
	now := time.Date(2026, 1, 12, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		next        models.TradeStatus
		wantStamped bool
	}{
		{"accept stamps responded_at", models.TradeStatusAccepted, true},
		{"reject stamps responded_at", models.TradeStatusRejected, true},
		{"cancel is a withdrawal, not a response", models.TradeStatusCancelled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trade := &models.Trade{Status: models.TradeStatusPending}
			stampTransition(trade, tt.next, now)

			if trade.Status != tt.next {
				t.Fatalf("status = %s, want %s", trade.Status, tt.next)
			}
			if tt.wantStamped {
				if trade.RespondedAt == nil || !trade.RespondedAt.Equal(now) {
					t.Fatalf("RespondedAt = %v, want %v", trade.RespondedAt, now)
				}
			} else if trade.RespondedAt != nil {
				t.Fatalf("RespondedAt = %v, want nil", trade.RespondedAt)
			}
		})
	}
}
