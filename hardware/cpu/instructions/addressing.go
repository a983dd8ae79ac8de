// Package instructions defines the 256-entry opcode descriptor table the
// CPU core dispatches through: for each opcode byte, which mnemonic,
// addressing mode, base cycle count and page-crossing sensitivity apply.
package instructions

// AddressingMode names how an instruction's operand address is computed.
type AddressingMode int

// Recognised addressing modes (§4.C.3).
const (
	INVALIDMode AddressingMode = iota
	Abs                        // abs
	AbsX                       // abs,X
	AbsY                       // abs,Y
	Ind                        // (ind) — indirect, JMP only
	IndY                       // (ind),Y — indirect indexed
	XInd                       // (ind,X) — indexed indirect
	Zpg                        // zpg
	ZpgX                       // zpg,X
	ZpgY                       // zpg,Y
	Rel                        // relative, branches only
	Imm                        // immediate
	Acc                        // accumulator
	Impl                       // implied, no operand
)

func (m AddressingMode) String() string {
	switch m {
	case Abs:
		return "abs"
	case AbsX:
		return "absX"
	case AbsY:
		return "absY"
	case Ind:
		return "ind"
	case IndY:
		return "indY"
	case XInd:
		return "Xind"
	case Zpg:
		return "zpg"
	case ZpgX:
		return "zpgX"
	case ZpgY:
		return "zpgY"
	case Rel:
		return "rel"
	case Imm:
		return "imm"
	case Acc:
		return "acc"
	case Impl:
		return "impl"
	}
	return "INVALID"
}

// OperandBytes returns the number of operand bytes that follow the opcode
// byte for the given addressing mode.
func (m AddressingMode) OperandBytes() int {
	switch m {
	case Abs, AbsX, AbsY, Ind:
		return 2
	case IndY, XInd, Zpg, ZpgX, ZpgY, Rel, Imm:
		return 1
	case Acc, Impl:
		return 0
	}
	return 0
}
