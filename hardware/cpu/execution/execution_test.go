package execution_test

import (
	"testing"

	"github.com/tilebound/nescore/hardware/cpu/execution"
	"github.com/tilebound/nescore/hardware/cpu/instructions"
)

func TestIsValidFixedCost(t *testing.T) {
	r := execution.Result{Defn: instructions.Opcodes[0xEA], Cycles: 2} // NOP
	if err := r.IsValid(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.Cycles = 3
	if err := r.IsValid(); err == nil {
		t.Fatalf("expected error for wrong fixed cycle count")
	}
}

func TestIsValidPageSensitive(t *testing.T) {
	r := execution.Result{Defn: instructions.Opcodes[0xBD], Cycles: 4} // LDA absX
	if err := r.IsValid(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.Cycles = 5
	if err := r.IsValid(); err != nil {
		t.Fatalf("unexpected error for page-crossing +1: %v", err)
	}
	r.Cycles = 6
	if err := r.IsValid(); err == nil {
		t.Fatalf("expected error for +2 on a non-branch page-sensitive opcode")
	}
}

func TestIsValidBranch(t *testing.T) {
	r := execution.Result{Defn: instructions.Opcodes[0xD0], Cycles: 2} // BNE
	if err := r.IsValid(); err != nil {
		t.Fatalf("not-taken: unexpected error: %v", err)
	}
	r.Cycles = 3
	if err := r.IsValid(); err != nil {
		t.Fatalf("taken: unexpected error: %v", err)
	}
	r.Cycles = 5
	if err := r.IsValid(); err != nil {
		t.Fatalf("taken+page-cross: unexpected error: %v", err)
	}
	r.Cycles = 4
	if err := r.IsValid(); err == nil {
		t.Fatalf("expected error for impossible branch cycle count")
	}
}

func TestIsValidSkipsInterruptSteps(t *testing.T) {
	r := execution.Result{Interrupt: execution.NMIInterrupt, Cycles: 7}
	if err := r.IsValid(); err != nil {
		t.Fatalf("interrupt-diverted steps skip descriptor validation: %v", err)
	}
}
