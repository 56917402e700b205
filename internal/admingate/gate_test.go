package admingate

import (
	"errors"
	"testing"
)

func TestSecretGateAcceptsMatchingToken(t *testing.T) {
	gate, err := NewSecretGate("s3cret")
	if err != nil {
		t.Fatalf("failed to build gate: %v", err)
	}
	if err := gate.Authorize("s3cret"); err != nil {
		t.Fatalf("expected matching token to pass, got %v", err)
	}
}

func TestSecretGateRejectsWrongToken(t *testing.T) {
	gate, err := NewSecretGate("s3cret")
	if err != nil {
		t.Fatalf("failed to build gate: %v", err)
	}
	if err := gate.Authorize("guess"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := gate.Authorize(""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for empty token, got %v", err)
	}
}

func TestUnconfiguredGateRejectsEverything(t *testing.T) {
	gate, err := NewSecretGate("")
	if err != nil {
		t.Fatalf("failed to build gate: %v", err)
	}
	if err := gate.Authorize("anything"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
