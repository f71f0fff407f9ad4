package sqlutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestTranslateSerializationFailure(t *testing.T) {
	serializationErr := &pq.Error{Code: "40001", Message: "could not serialize access due to concurrent update"}
	uniqueErr := &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"}
	plainErr := errors.New("connection reset")

	tests := []struct {
		name       string
		err        error
		wantMapped bool
	}{
		{"serialization failure", serializationErr, true},
		{"wrapped serialization failure", fmt.Errorf("failed to update roster: %w", serializationErr), true},
		{"unique violation passes through", uniqueErr, false},
		{"plain error passes through", plainErr, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateSerializationFailure(tt.err)
			if mapped := errors.Is(got, ErrSerializationFailure); mapped != tt.wantMapped {
				t.Fatalf("translateSerializationFailure(%v): mapped = %v, want %v", tt.err, mapped, tt.wantMapped)
			}
			if !tt.wantMapped && got != tt.err {
				t.Fatalf("translateSerializationFailure(%v) = %v, want error unchanged", tt.err, got)
			}
		})
	}
}

func TestTranslateSerializationFailureNil(t *testing.T) {
	if got := translateSerializationFailure(nil); got != nil {
		t.Fatalf("translateSerializationFailure(nil) = %v, want nil", got)
	}
}
