package instructions

import "fmt"

// Opcode is the descriptor for a single opcode byte: its mnemonic,
// addressing mode, base cycle cost, and whether a page-crossing penalty
// applies. Unused opcode bytes resolve to the zero value, i.e.
// {INVALID, INVALIDMode, 0, false} (§3).
type Opcode struct {
	Mnemonic     Mnemonic
	Mode         AddressingMode
	Cycles       int
	CheckPgCross bool
}

func (o Opcode) String() string {
	if o.Mnemonic == INVALID {
		return "INVALID"
	}
	return fmt.Sprintf("%s %s (%d cycles, pgcross=%v)", o.Mnemonic, o.Mode, o.Cycles, o.CheckPgCross)
}

// IsInvalid reports whether the opcode byte this descriptor was looked up
// with has no defined instruction.
func (o Opcode) IsInvalid() bool {
	return o.Mnemonic == INVALID
}

// Opcodes is the flat 256-entry descriptor table, indexed by opcode byte.
// Only legal, documented 6502 opcodes are populated; every other index is
// the zero Opcode (INVALID).
var Opcodes = [256]Opcode{
	// ADC
	0x69: {ADC, Imm, 2, false},
	0x65: {ADC, Zpg, 3, false},
	0x75: {ADC, ZpgX, 4, false},
	0x6D: {ADC, Abs, 4, false},
	0x7D: {ADC, AbsX, 4, true},
	0x79: {ADC, AbsY, 4, true},
	0x61: {ADC, XInd, 6, false},
	0x71: {ADC, IndY, 5, true},

	// AND
	0x29: {AND, Imm, 2, false},
	0x25: {AND, Zpg, 3, false},
	0x35: {AND, ZpgX, 4, false},
	0x2D: {AND, Abs, 4, false},
	0x3D: {AND, AbsX, 4, true},
	0x39: {AND, AbsY, 4, true},
	0x21: {AND, XInd, 6, false},
	0x31: {AND, IndY, 5, true},

	// ASL
	0x0A: {ASL, Acc, 2, false},
	0x06: {ASL, Zpg, 5, false},
	0x16: {ASL, ZpgX, 6, false},
	0x0E: {ASL, Abs, 6, false},
	0x1E: {ASL, AbsX, 7, false},

	// Branches
	0x90: {BCC, Rel, 2, false},
	0xB0: {BCS, Rel, 2, false},
	0xF0: {BEQ, Rel, 2, false},
	0x30: {BMI, Rel, 2, false},
	0xD0: {BNE, Rel, 2, false},
	0x10: {BPL, Rel, 2, false},
	0x50: {BVC, Rel, 2, false},
	0x70: {BVS, Rel, 2, false},

	// BIT
	0x24: {BIT, Zpg, 3, false},
	0x2C: {BIT, Abs, 4, false},

	// BRK
	0x00: {BRK, Impl, 7, false},

	// Flag clear/set
	0x18: {CLC, Impl, 2, false},
	0xD8: {CLD, Impl, 2, false},
	0x58: {CLI, Impl, 2, false},
	0xB8: {CLV, Impl, 2, false},
	0x38: {SEC, Impl, 2, false},
	0xF8: {SED, Impl, 2, false},
	0x78: {SEI, Impl, 2, false},

	// CMP
	0xC9: {CMP, Imm, 2, false},
	0xC5: {CMP, Zpg, 3, false},
	0xD5: {CMP, ZpgX, 4, false},
	0xCD: {CMP, Abs, 4, false},
	0xDD: {CMP, AbsX, 4, true},
	0xD9: {CMP, AbsY, 4, true},
	0xC1: {CMP, XInd, 6, false},
	0xD1: {CMP, IndY, 5, true},

	// CPX / CPY
	0xE0: {CPX, Imm, 2, false},
	0xE4: {CPX, Zpg, 3, false},
	0xEC: {CPX, Abs, 4, false},
	0xC0: {CPY, Imm, 2, false},
	0xC4: {CPY, Zpg, 3, false},
	0xCC: {CPY, Abs, 4, false},

	// DEC / DEX / DEY
	0xC6: {DEC, Zpg, 5, false},
	0xD6: {DEC, ZpgX, 6, false},
	0xCE: {DEC, Abs, 6, false},
	0xDE: {DEC, AbsX, 7, false},
	0xCA: {DEX, Impl, 2, false},
	0x88: {DEY, Impl, 2, false},

	// EOR
	0x49: {EOR, Imm, 2, false},
	0x45: {EOR, Zpg, 3, false},
	0x55: {EOR, ZpgX, 4, false},
	0x4D: {EOR, Abs, 4, false},
	0x5D: {EOR, AbsX, 4, true},
	0x59: {EOR, AbsY, 4, true},
	0x41: {EOR, XInd, 6, false},
	0x51: {EOR, IndY, 5, true},

	// INC / INX / INY
	0xE6: {INC, Zpg, 5, false},
	0xF6: {INC, ZpgX, 6, false},
	0xEE: {INC, Abs, 6, false},
	0xFE: {INC, AbsX, 7, false},
	0xE8: {INX, Impl, 2, false},
	0xC8: {INY, Impl, 2, false},

	// JMP / JSR
	0x4C: {JMP, Abs, 3, false},
	0x6C: {JMP, Ind, 5, false},
	0x20: {JSR, Abs, 6, false},

	// LDA
	0xA9: {LDA, Imm, 2, false},
	0xA5: {LDA, Zpg, 3, false},
	0xB5: {LDA, ZpgX, 4, false},
	0xAD: {LDA, Abs, 4, false},
	0xBD: {LDA, AbsX, 4, true},
	0xB9: {LDA, AbsY, 4, true},
	0xA1: {LDA, XInd, 6, false},
	0xB1: {LDA, IndY, 5, true},

	// LDX
	0xA2: {LDX, Imm, 2, false},
	0xA6: {LDX, Zpg, 3, false},
	0xB6: {LDX, ZpgY, 4, false},
	0xAE: {LDX, Abs, 4, false},
	0xBE: {LDX, AbsY, 4, true},

	// LDY
	0xA0: {LDY, Imm, 2, false},
	0xA4: {LDY, Zpg, 3, false},
	0xB4: {LDY, ZpgX, 4, false},
	0xAC: {LDY, Abs, 4, false},
	0xBC: {LDY, AbsX, 4, true},

	// LSR
	0x4A: {LSR, Acc, 2, false},
	0x46: {LSR, Zpg, 5, false},
	0x56: {LSR, ZpgX, 6, false},
	0x4E: {LSR, Abs, 6, false},
	0x5E: {LSR, AbsX, 7, false},

	// NOP
	0xEA: {NOP, Impl, 2, false},

	// ORA
	0x09: {ORA, Imm, 2, false},
	0x05: {ORA, Zpg, 3, false},
	0x15: {ORA, ZpgX, 4, false},
	0x0D: {ORA, Abs, 4, false},
	0x1D: {ORA, AbsX, 4, true},
	0x19: {ORA, AbsY, 4, true},
	0x01: {ORA, XInd, 6, false},
	0x11: {ORA, IndY, 5, true},

	// Stack
	0x48: {PHA, Impl, 3, false},
	0x08: {PHP, Impl, 3, false},
	0x68: {PLA, Impl, 4, false},
	0x28: {PLP, Impl, 4, false},

	// ROL / ROR
	0x2A: {ROL, Acc, 2, false},
	0x26: {ROL, Zpg, 5, false},
	0x36: {ROL, ZpgX, 6, false},
	0x2E: {ROL, Abs, 6, false},
	0x3E: {ROL, AbsX, 7, false},
	0x6A: {ROR, Acc, 2, false},
	0x66: {ROR, Zpg, 5, false},
	0x76: {ROR, ZpgX, 6, false},
	0x6E: {ROR, Abs, 6, false},
	0x7E: {ROR, AbsX, 7, false},

	// RTI / RTS
	0x40: {RTI, Impl, 6, false},
	0x60: {RTS, Impl, 6, false},

	// SBC
	0xE9: {SBC, Imm, 2, false},
	0xE5: {SBC, Zpg, 3, false},
	0xF5: {SBC, ZpgX, 4, false},
	0xED: {SBC, Abs, 4, false},
	0xFD: {SBC, AbsX, 4, true},
	0xF9: {SBC, AbsY, 4, true},
	0xE1: {SBC, XInd, 6, false},
	0xF1: {SBC, IndY, 5, true},

	// STA
	0x85: {STA, Zpg, 3, false},
	0x95: {STA, ZpgX, 4, false},
	0x8D: {STA, Abs, 4, false},
	0x9D: {STA, AbsX, 5, false},
	0x99: {STA, AbsY, 5, false},
	0x81: {STA, XInd, 6, false},
	0x91: {STA, IndY, 6, false},

	// STX / STY
	0x86: {STX, Zpg, 3, false},
	0x96: {STX, ZpgY, 4, false},
	0x8E: {STX, Abs, 4, false},
	0x84: {STY, Zpg, 3, false},
	0x94: {STY, ZpgX, 4, false},
	0x8C: {STY, Abs, 4, false},

	// Register transfers
	0xAA: {TAX, Impl, 2, false},
	0xA8: {TAY, Impl, 2, false},
	0xBA: {TSX, Impl, 2, false},
	0x8A: {TXA, Impl, 2, false},
	0x9A: {TXS, Impl, 2, false},
	0x98: {TYA, Impl, 2, false},
}
