package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{name: "validation", err: Validation("bad input"), kind: KindValidation},
		{name: "not found", err: NotFound("missing"), kind: KindNotFound},
		{name: "gateway", err: Gateway("upstream down", errors.New("dial tcp")), kind: KindGateway},
		{name: "malformed", err: MalformedResponse("not json", nil), kind: KindMalformedResponse},
		{name: "store", err: Store("db broke", errors.New("pq")), kind: KindStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !IsKind(tt.err, tt.kind) {
				t.Errorf("IsKind(%v, %s) = false", tt.err, tt.kind)
			}
			if got := KindOf(tt.err); got != tt.kind {
				t.Errorf("KindOf = %s, want %s", got, tt.kind)
			}
		})
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("handling request: %w", NotFound("session not found"))
	if !IsKind(err, KindNotFound) {
		t.Error("kind lost through fmt.Errorf wrapping")
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := Gateway("upstream down", cause)
	if !errors.Is(err, cause) {
		t.Error("cause not reachable via errors.Is")
	}
}

func TestUnclassifiedDefaultsToStore(t *testing.T) {
	if got := KindOf(errors.New("random")); got != KindStore {
		t.Errorf("KindOf(plain error) = %s, want %s", got, KindStore)
	}
	if IsKind(errors.New("random"), KindStore) {
		t.Error("IsKind must only match real AppErrors")
	}
}
