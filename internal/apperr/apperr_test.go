package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOfTaxonomyError(t *testing.T) {
	err := Conflict("appraisal already exists")
	if KindOf(err) != KindConflict {
		t.Fatalf("expected conflict kind, got %s", KindOf(err))
	}
	if !IsKind(err, KindConflict) {
		t.Fatal("expected IsKind to match conflict")
	}
}

func TestKindOfWrappedError(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFound("department not found"))
	if KindOf(err) != KindNotFound {
		t.Fatalf("expected not_found through wrapping, got %s", KindOf(err))
	}
	if Message(err) != "department not found" {
		t.Fatalf("unexpected message: %s", Message(err))
	}
}

func TestKindOfForeignError(t *testing.T) {
	err := errors.New("connection reset")
	if KindOf(err) != KindInternal {
		t.Fatalf("expected internal for foreign error, got %s", KindOf(err))
	}
}

func TestInternalUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := Internal("store operation failed", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable")
	}
}
