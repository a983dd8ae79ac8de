package registers

import "strings"

// Status is the CPU's status flag register (P): carry, zero,
// interrupt-disable, decimal, break, overflow and negative. Bit 5 (U,
// unused) is not stored as a field — it is always 1, synthesised by
// ToUint8 and ignored by FromUint8.
type Status struct {
	Negative         bool // N
	Overflow         bool // V
	Break            bool // B
	DecimalMode      bool // D — flag is preserved, but arithmetic ignores it (§3)
	InterruptDisable bool // I
	Zero             bool // Z
	Carry            bool // C
}

// NewStatus creates a zeroed status register.
func NewStatus() Status {
	return Status{}
}

// Label returns the register's canonical name.
func (sr Status) Label() string { return "P" }

// String renders the flags as a labelled bit pattern, upper case when set.
func (sr Status) String() string {
	s := strings.Builder{}
	writeFlag(&s, sr.Negative, 'N')
	writeFlag(&s, sr.Overflow, 'V')
	s.WriteRune('-')
	writeFlag(&s, sr.Break, 'B')
	writeFlag(&s, sr.DecimalMode, 'D')
	writeFlag(&s, sr.InterruptDisable, 'I')
	writeFlag(&s, sr.Zero, 'Z')
	writeFlag(&s, sr.Carry, 'C')
	return s.String()
}

func writeFlag(s *strings.Builder, set bool, r rune) {
	if set {
		s.WriteRune(r)
	} else {
		s.WriteRune(r + ('a' - 'A'))
	}
}

// ToUint8 packs the flags into the "raw" byte form used when pushing P onto
// the stack. Bit 5 (U) is always set, per §3's invariant.
func (sr Status) ToUint8() uint8 {
	var v uint8
	if sr.Negative {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	v |= 0x20 // U, always 1
	if sr.Break {
		v |= 0x10
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}
	return v
}

// FromUint8 unpacks a raw byte (e.g. pulled from the stack) into the flags.
// Bit 5 is ignored on the way in — Status never stores it — so ToUint8 is
// the only place it's synthesised.
func (sr *Status) FromUint8(v uint8) {
	sr.Negative = v&0x80 != 0
	sr.Overflow = v&0x40 != 0
	sr.Break = v&0x10 != 0
	sr.DecimalMode = v&0x08 != 0
	sr.InterruptDisable = v&0x04 != 0
	sr.Zero = v&0x02 != 0
	sr.Carry = v&0x01 != 0
}

// SetZN sets the Zero and Negative flags from result, matching the "set_zn"
// helper shared by almost every load/transfer/RMW instruction.
func (sr *Status) SetZN(result uint8) {
	sr.Zero = result == 0
	sr.Negative = result&0x80 != 0
}
