// Package execution describes the outcome of a single CPU step: which
// instruction ran, how many cycles it cost, and whether a documented 6502
// hardware bug or an interrupt diversion shaped the outcome.
package execution

import (
	"github.com/tilebound/nescore/curated"
	"github.com/tilebound/nescore/hardware/cpu/instructions"
)

// Bug names a documented 6502 hardware quirk that a step's execution
// triggered. The zero value, NoBug, means the step executed normally.
type Bug string

const (
	NoBug Bug = ""

	// JmpIndirectPageBug: JMP (ind) never crosses a page boundary when
	// fetching the target address — if the low byte of the pointer is
	// 0xFF, the high byte is read from ind&0xFF00 rather than ind+1 (§3).
	JmpIndirectPageBug Bug = "indirect JMP page wrap"

	// ZeroPageIndexWrapBug: a zero-page indexed effective address wraps
	// within the zero page rather than carrying into page one.
	ZeroPageIndexWrapBug Bug = "zero page index wrap"
)

// Interrupt identifies which interrupt, if any, diverted this step instead
// of executing the fetched opcode.
type Interrupt string

const (
	NoInterrupt    Interrupt = ""
	ResetInterrupt Interrupt = "RESET"
	NMIInterrupt   Interrupt = "NMI"
	IRQInterrupt   Interrupt = "IRQ"
	BRKInterrupt   Interrupt = "BRK"
)

// Result is the diagnostic record produced by every CPU.Step call. Final is
// false until the step has fully committed — a Result is only handed to the
// caller (via CPU.LastResult) once Final is true.
type Result struct {
	PC        uint16
	Defn      instructions.Opcode
	Operand   uint16
	Bytes     int
	Cycles    int
	PageFault bool
	Bug       Bug
	Interrupt Interrupt
	Final     bool
}

// IsValid reports whether the recorded cycle count is consistent with the
// instruction's descriptor: base cycles, plus one for a page-crossing
// penalty on a page-sensitive addressing mode, plus the branch-specific
// rules (taken adds one, taken-with-page-cross adds three).
func (r Result) IsValid() error {
	if r.Interrupt != NoInterrupt {
		return nil
	}
	if r.Defn.IsInvalid() {
		return curated.Errorf("execution: invalid result for undefined opcode")
	}

	want := r.Defn.Cycles
	switch {
	case r.Defn.Mnemonic.IsBranch():
		// base cycles assume not-taken; Cycles may be +1 (taken) or +3
		// (taken, and the branch target is on a different page: the CPU
		// charges 2 for the page cross, as the reference does).
		if r.Cycles != want && r.Cycles != want+1 && r.Cycles != want+3 {
			return curated.Errorf("execution: branch cycle count %d inconsistent with base %d", r.Cycles, want)
		}
	case r.Defn.CheckPgCross:
		if r.Cycles != want && r.Cycles != want+1 {
			return curated.Errorf("execution: cycle count %d inconsistent with base %d (page-sensitive)", r.Cycles, want)
		}
	default:
		if r.Cycles != want {
			return curated.Errorf("execution: cycle count %d inconsistent with fixed base %d", r.Cycles, want)
		}
	}
	return nil
}

// String renders a one-line trace entry, suitable for logger output.
func (r Result) String() string {
	if r.Interrupt != NoInterrupt {
		return string(r.Interrupt) + " serviced"
	}
	return r.Defn.String()
}
