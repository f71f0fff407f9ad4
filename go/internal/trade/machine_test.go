package trade

import (
	"errors"
	"testing"

	"github.com/blueline/fantasyhockey/go/internal/models"
)

func TestTransition(t *testing.T) {
	statuses := []models.TradeStatus{
		models.TradeStatusPending,
		models.TradeStatusAccepted,
		models.TradeStatusRejected,
		models.TradeStatusCancelled,
		models.TradeStatusCompleted,
	}

	legal := map[models.TradeStatus]map[models.TradeStatus]bool{
		models.TradeStatusPending: {
			models.TradeStatusAccepted:  true,
			models.TradeStatusRejected:  true,
			models.TradeStatusCancelled: true,
		},
		models.TradeStatusAccepted: {
			models.TradeStatusCompleted: true,
		},
	}

	// Every pair not listed as legal must fail, including responding twice
	// (accepted -> accepted/rejected) and completing a pending trade.
	for _, from := range statuses {
		for _, to := range statuses {
			err := Transition(from, to)
			if legal[from][to] {
				if err != nil {
					t.Errorf("%s -> %s should be legal, got %v", from, to, err)
				}
				continue
			}
			if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("%s -> %s should fail with ErrInvalidTransition, got %v", from, to, err)
			}
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	tests := []struct {
		status   models.TradeStatus
		terminal bool
	}{
		{models.TradeStatusPending, false},
		{models.TradeStatusAccepted, false},
		{models.TradeStatusRejected, true},
		{models.TradeStatusCancelled, true},
		{models.TradeStatusCompleted, true},
	}

	for _, tc := range tests {
		if got := tc.status.IsTerminal(); got != tc.terminal {
			t.Errorf("%s: IsTerminal() = %v, expected %v", tc.status, got, tc.terminal)
		}
	}
}
