package logger_test

import (
	"strings"
	"testing"

	"github.com/tilebound/nescore/logger"
)

func TestDeduplicatesConsecutiveEntries(t *testing.T) {
	logger.Clear()
	logger.Log("cpu", "unimplemented instruction (0xff) at ($8000)")
	logger.Log("cpu", "unimplemented instruction (0xff) at ($8000)")
	logger.Log("cpu", "unimplemented instruction (0xff) at ($8000)")

	entries := logger.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected repeated entries to coalesce, got %d entries", len(entries))
	}

	var b strings.Builder
	logger.Write(&b)
	if !strings.Contains(b.String(), "repeat x3") {
		t.Errorf("expected repeat counter in output, got %q", b.String())
	}
}

func TestDistinctEntriesAreNotCoalesced(t *testing.T) {
	logger.Clear()
	logger.Log("widenes", "zelda heuristic engaged")
	logger.Log("widenes", "mmc3 status bar engaged")

	if got := len(logger.Entries()); got != 2 {
		t.Fatalf("expected 2 distinct entries, got %d", got)
	}
}

func TestTail(t *testing.T) {
	logger.Clear()
	for i := 0; i < 5; i++ {
		logger.Logf("cpu", "step %d", i)
	}

	var b strings.Builder
	logger.Tail(&b, 2)
	out := b.String()
	if !strings.Contains(out, "step 3") || !strings.Contains(out, "step 4") {
		t.Errorf("expected tail to contain the last two entries, got %q", out)
	}
	if strings.Contains(out, "step 2") {
		t.Errorf("tail should not contain earlier entries, got %q", out)
	}
}
