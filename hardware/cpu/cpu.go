// Package cpu implements a cycle-accounted 6502-family CPU interpreter: the
// register file, addressing-mode resolution, instruction dispatch and
// interrupt servicing the rest of the console depends on.
package cpu

import (
	"fmt"

	"github.com/tilebound/nescore/curated"
	"github.com/tilebound/nescore/hardware/cpu/execution"
	"github.com/tilebound/nescore/hardware/cpu/instructions"
	"github.com/tilebound/nescore/hardware/cpu/registers"
	"github.com/tilebound/nescore/hardware/interrupts"
	"github.com/tilebound/nescore/hardware/membus"
	"github.com/tilebound/nescore/internal/instance"
	"github.com/tilebound/nescore/logger"
	"github.com/tilebound/nescore/prefs"
)

// State is the CPU's run state.
type State int

const (
	Running State = iota
	Halted
)

func (s State) String() string {
	if s == Halted {
		return "Halted"
	}
	return "Running"
}

// Preferences holds the CPU's runtime-togglable knobs: neither belongs on
// the constructor as a plain bool, since both can be flipped mid-session by
// a host (a debugger UI, a test harness).
type Preferences struct {
	// RandomState, when true, makes PowerCycle draw A/X/Y/P from the
	// instance's deterministic random source instead of the fixed
	// power-on pattern.
	RandomState *prefs.Bool

	// NESTESTMode short-circuits RESET servicing to load PC with 0xC000
	// rather than reading the reset vector, for running headless
	// conformance fixtures without a full cartridge image.
	NESTESTMode *prefs.Bool
}

// NewPreferences creates a Preferences with both knobs at their defaults
// (off).
func NewPreferences() *Preferences {
	return &Preferences{
		RandomState: prefs.NewBool(false),
		NESTESTMode: prefs.NewBool(false),
	}
}

// CPU is a 6502-family interpreter. It owns no memory of its own — reads
// and writes go through the Bus supplied at construction — and it owns no
// interrupt sources, only the shared Lines it polls each Step.
type CPU struct {
	PC registers.ProgramCounter
	S  registers.StackPointer
	A  *registers.Register
	X  *registers.Register
	Y  *registers.Register
	P  registers.Status

	Preferences *Preferences

	mem        membus.Bus
	interrupts *interrupts.Lines
	instance   *instance.Instance

	cycles uint64
	state  State

	lastResult execution.Result
}

// NewCPU creates a CPU wired to mem and lines, then powers it on. ins may be
// nil; every instance-touching code path guards against that.
func NewCPU(mem membus.Bus, lines *interrupts.Lines, ins *instance.Instance) *CPU {
	mc := &CPU{
		A:           registers.New(0, "A"),
		X:           registers.New(0, "X"),
		Y:           registers.New(0, "Y"),
		Preferences: NewPreferences(),
		mem:         mem,
		interrupts:  lines,
		instance:    ins,
	}
	mc.PowerCycle()
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s %s %s %s %s %s [%s]", mc.PC, mc.S, mc.A, mc.X, mc.Y, mc.P, mc.state)
}

// State returns the CPU's current run state.
func (mc *CPU) State() State { return mc.state }

// Cycles returns the total number of cycles this CPU has executed since
// its last PowerCycle (construction included).
func (mc *CPU) Cycles() uint64 { return mc.cycles }

// LastResult returns the execution.Result produced by the most recently
// completed Step call.
func (mc *CPU) LastResult() execution.Result { return mc.lastResult }

// randomByte draws a byte from the instance's deterministic random source,
// seeded from this CPU's own cycle counter, falling back to zero when no
// instance or random source is wired (e.g. most unit tests).
func (mc *CPU) randomByte() uint8 {
	if mc.instance == nil || mc.instance.Random == nil {
		return 0
	}
	return uint8(mc.instance.Random.Intn(256))
}

// PowerCycle resets every register to the documented NES power-on state
// (https://wiki.nesdev.com/w/index.php/CPU_power_up_state), or — when the
// RandomState preference is enabled — to values drawn from the instance's
// random source instead, for power-on state fuzzing.
func (mc *CPU) PowerCycle() {
	mc.cycles = 0

	if mc.Preferences.RandomState.Get().(bool) {
		mc.P.FromUint8(mc.randomByte())
		mc.A.Load(mc.randomByte())
		mc.X.Load(mc.randomByte())
		mc.Y.Load(mc.randomByte())
	} else {
		mc.P.FromUint8(0x34) // I=1, B=1, U=1
		mc.A.Load(0x00)
		mc.X.Load(0x00)
		mc.Y.Load(0x00)
	}

	mc.S.Load(0xFD)
	mc.state = Running
}

// Reset requests a RESET interrupt and applies the two adjustments the
// 6502 makes immediately, ahead of the vector fetch that happens lazily on
// the next Step: the stack pointer drops by three (the CPU "pretends" to
// have pushed PC and P, as it would for IRQ/NMI, without actually writing
// them) and the interrupt-disable flag is forced on.
func (mc *CPU) Reset() {
	mc.S.Load(mc.S.Value() - 3)
	mc.P.InterruptDisable = true
	mc.state = Running
	mc.interrupts.Request(interrupts.RESET)
}

// Step executes exactly one of {service a pending interrupt; execute one
// instruction} and returns the number of cycles it took. In the Halted
// state it does no work and returns 0.
func (mc *CPU) Step() uint64 {
	old := mc.cycles

	if mc.state == Halted {
		return 0
	}

	if kind := mc.interrupts.Get(); kind != interrupts.NONE {
		mc.serviceInterrupt(kind, false)
		return mc.cycles - old
	}

	opPC := mc.PC.Next()
	op := mc.mem.Read(opPC)
	defn := instructions.Opcodes[op]

	if defn.IsInvalid() {
		logger.Log("cpu", curated.Errorf("unimplemented opcode %#02x at %#04x", op, opPC).Error())
		mc.state = Halted
		mc.lastResult = execution.Result{PC: opPC, Defn: defn, Final: true}
		return mc.cycles - old
	}

	addr, bug := mc.operandAddress(defn.Mode)

	pageFault := false
	if defn.CheckPgCross {
		pageFault = mc.checkPageCross(defn.Mode, addr)
		if pageFault {
			mc.cycles++
		}
	}

	mc.execute(defn, addr)
	if defn.Mnemonic != instructions.BRK {
		// BRK's 7 cycles are already accounted for inside
		// serviceInterrupt, which execute calls directly for it.
		mc.cycles += uint64(defn.Cycles)
	}

	mc.lastResult = execution.Result{
		PC:        opPC,
		Defn:      defn,
		Operand:   addr,
		Bytes:     1 + defn.Mode.OperandBytes(),
		Cycles:    int(mc.cycles - old),
		PageFault: pageFault,
		Bug:       bug,
		Final:     true,
	}
	return mc.cycles - old
}

// checkPageCross reports whether the addressing mode's pre-indexing base
// and the final effective address differ in their high byte.
func (mc *CPU) checkPageCross(mode instructions.AddressingMode, addr uint16) bool {
	var index uint16
	switch mode {
	case instructions.AbsX:
		index = uint16(mc.X.Value())
	case instructions.AbsY, instructions.IndY:
		index = uint16(mc.Y.Value())
	default:
		return false
	}
	base := addr - index
	return base&0xFF00 != addr&0xFF00
}

// serviceInterrupt implements §4.C.2: push PC/P (unless RESET), force I,
// add 7 cycles, then conditionally load PC from the interrupt's vector.
func (mc *CPU) serviceInterrupt(kind interrupts.Kind, brk bool) {
	iWasSet := mc.P.InterruptDisable

	if kind == interrupts.RESET && mc.Preferences.NESTESTMode.Get().(bool) {
		mc.PC.Load(0xC000)
		mc.interrupts.Service(kind)
		mc.lastResult = execution.Result{Interrupt: execution.ResetInterrupt, Final: true}
		return
	}

	mc.P.InterruptDisable = true

	if kind != interrupts.RESET {
		mc.pushPC()
		mc.pushStatus()
	}

	mc.cycles += 7

	resultKind := execution.IRQInterrupt
	switch kind {
	case interrupts.IRQ:
		if brk {
			resultKind = execution.BRKInterrupt
		}
		if brk || !iWasSet {
			mc.PC.Load(membus.Read16(mc.mem, 0xFFFE))
		}
	case interrupts.RESET:
		resultKind = execution.ResetInterrupt
		mc.PC.Load(membus.Read16(mc.mem, 0xFFFC))
	case interrupts.NMI:
		resultKind = execution.NMIInterrupt
		mc.PC.Load(membus.Read16(mc.mem, 0xFFFA))
	}

	mc.interrupts.Service(kind)
	mc.lastResult = execution.Result{Interrupt: resultKind, Final: true}
}

func (mc *CPU) pushByte(v uint8) {
	mc.mem.Write(mc.S.PredecrementAddress(), v)
}

func (mc *CPU) pullByte() uint8 {
	return mc.mem.Read(mc.S.PreincrementAddress())
}

func (mc *CPU) pushPC() {
	mc.pushByte(uint8(mc.PC.Value() >> 8))
	mc.pushByte(uint8(mc.PC.Value()))
}

func (mc *CPU) pullPC() uint16 {
	lo := uint16(mc.pullByte())
	hi := uint16(mc.pullByte())
	return hi<<8 | lo
}

func (mc *CPU) pushStatus() {
	mc.pushByte(mc.P.ToUint8())
}

func (mc *CPU) pullStatus() {
	mc.P.FromUint8(mc.pullByte() | 0x20)
}
