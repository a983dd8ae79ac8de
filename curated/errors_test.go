package curated_test

import (
	"testing"

	"github.com/tilebound/nescore/curated"
)

func TestDeduplication(t *testing.T) {
	inner := curated.Errorf("cpu: %s", "unimplemented instruction")
	outer := curated.Errorf("cpu: %v", inner)

	got := outer.Error()
	want := "cpu: unimplemented instruction"
	if got != want {
		t.Errorf("unexpected de-duplicated message: got %q, want %q", got, want)
	}
}

func TestIsAndHas(t *testing.T) {
	leaf := curated.Errorf("widenes: %s", "stale callback")
	wrapped := curated.Errorf("engine: %v", leaf)

	if !curated.IsAny(wrapped) {
		t.Error("expected wrapped to be a curated error")
	}
	if curated.Is(wrapped, "widenes: %s") {
		t.Error("Is should only match the outermost pattern")
	}
	if !curated.Has(wrapped, "widenes: %s") {
		t.Error("Has should find the wrapped pattern")
	}
	if curated.Has(wrapped, "nope: %s") {
		t.Error("Has should not match an absent pattern")
	}
}

func TestNilError(t *testing.T) {
	if curated.IsAny(nil) {
		t.Error("nil should not be a curated error")
	}
	if curated.Is(nil, "x") {
		t.Error("nil should not match any pattern")
	}
	if curated.Has(nil, "x") {
		t.Error("nil should not contain any pattern")
	}
}
