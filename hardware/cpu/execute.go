package cpu

import (
	"github.com/tilebound/nescore/hardware/cpu/instructions"
	"github.com/tilebound/nescore/hardware/interrupts"
)

// execute dispatches defn against addr, mutating registers, memory and the
// cycle counter as needed beyond the base cycle cost Step adds afterwards.
func (mc *CPU) execute(defn instructions.Opcode, addr uint16) {
	switch defn.Mnemonic {
	case instructions.JMP:
		mc.PC.Load(addr)

	case instructions.JSR:
		ret := mc.PC.Value() - 1
		mc.pushByte(uint8(ret >> 8))
		mc.pushByte(uint8(ret))
		mc.PC.Load(addr)

	case instructions.RTS:
		mc.PC.Load(mc.pullPC() + 1)

	case instructions.RTI:
		mc.pullStatus()
		mc.PC.Load(mc.pullPC())

	case instructions.BRK:
		mc.serviceInterrupt(interrupts.IRQ, true)

	case instructions.NOP:
		// nothing to do

	case instructions.LDA:
		mc.A.Load(mc.mem.Read(addr))
		mc.P.SetZN(mc.A.Value())
	case instructions.LDX:
		mc.X.Load(mc.mem.Read(addr))
		mc.P.SetZN(mc.X.Value())
	case instructions.LDY:
		mc.Y.Load(mc.mem.Read(addr))
		mc.P.SetZN(mc.Y.Value())

	case instructions.STA:
		mc.mem.Write(addr, mc.A.Value())
	case instructions.STX:
		mc.mem.Write(addr, mc.X.Value())
	case instructions.STY:
		mc.mem.Write(addr, mc.Y.Value())

	case instructions.TAX:
		mc.X.Load(mc.A.Value())
		mc.P.SetZN(mc.X.Value())
	case instructions.TAY:
		mc.Y.Load(mc.A.Value())
		mc.P.SetZN(mc.Y.Value())
	case instructions.TXA:
		mc.A.Load(mc.X.Value())
		mc.P.SetZN(mc.A.Value())
	case instructions.TYA:
		mc.A.Load(mc.Y.Value())
		mc.P.SetZN(mc.A.Value())
	case instructions.TSX:
		mc.X.Load(mc.S.Value())
		mc.P.SetZN(mc.X.Value())
	case instructions.TXS:
		mc.S.Load(mc.X.Value())

	case instructions.PHA:
		mc.pushByte(mc.A.Value())
	case instructions.PHP:
		mc.pushByte(mc.P.ToUint8())
	case instructions.PLA:
		mc.A.Load(mc.pullByte())
		mc.P.SetZN(mc.A.Value())
	case instructions.PLP:
		mc.pullStatus()

	case instructions.AND:
		mc.A.Load(mc.A.Value() & mc.mem.Read(addr))
		mc.P.SetZN(mc.A.Value())
	case instructions.ORA:
		mc.A.Load(mc.A.Value() | mc.mem.Read(addr))
		mc.P.SetZN(mc.A.Value())
	case instructions.EOR:
		mc.A.Load(mc.A.Value() ^ mc.mem.Read(addr))
		mc.P.SetZN(mc.A.Value())

	case instructions.BIT:
		v := mc.mem.Read(addr)
		mc.P.Zero = mc.A.Value()&v == 0
		mc.P.Overflow = v&0x40 != 0
		mc.P.Negative = v&0x80 != 0

	case instructions.ADC:
		mc.adc(mc.mem.Read(addr))
	case instructions.SBC:
		mc.adc(^mc.mem.Read(addr))

	case instructions.CMP:
		mc.compare(mc.A.Value(), mc.mem.Read(addr))
	case instructions.CPX:
		mc.compare(mc.X.Value(), mc.mem.Read(addr))
	case instructions.CPY:
		mc.compare(mc.Y.Value(), mc.mem.Read(addr))

	case instructions.INC:
		v := mc.mem.Read(addr) + 1
		mc.mem.Write(addr, v)
		mc.P.SetZN(v)
	case instructions.DEC:
		v := mc.mem.Read(addr) - 1
		mc.mem.Write(addr, v)
		mc.P.SetZN(v)
	case instructions.INX:
		mc.X.Load(mc.X.Value() + 1)
		mc.P.SetZN(mc.X.Value())
	case instructions.INY:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.P.SetZN(mc.Y.Value())
	case instructions.DEX:
		mc.X.Load(mc.X.Value() - 1)
		mc.P.SetZN(mc.X.Value())
	case instructions.DEY:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.P.SetZN(mc.Y.Value())

	case instructions.ASL:
		mc.shift(defn.Mode, addr, true, false)
	case instructions.LSR:
		mc.shift(defn.Mode, addr, false, false)
	case instructions.ROL:
		mc.shift(defn.Mode, addr, true, true)
	case instructions.ROR:
		mc.shift(defn.Mode, addr, false, true)

	case instructions.CLC:
		mc.P.Carry = false
	case instructions.SEC:
		mc.P.Carry = true
	case instructions.CLI:
		mc.P.InterruptDisable = false
	case instructions.SEI:
		mc.P.InterruptDisable = true
	case instructions.CLD:
		mc.P.DecimalMode = false
	case instructions.SED:
		mc.P.DecimalMode = true
	case instructions.CLV:
		mc.P.Overflow = false

	case instructions.BCC:
		mc.branch(!mc.P.Carry, addr)
	case instructions.BCS:
		mc.branch(mc.P.Carry, addr)
	case instructions.BEQ:
		mc.branch(mc.P.Zero, addr)
	case instructions.BNE:
		mc.branch(!mc.P.Zero, addr)
	case instructions.BMI:
		mc.branch(mc.P.Negative, addr)
	case instructions.BPL:
		mc.branch(!mc.P.Negative, addr)
	case instructions.BVS:
		mc.branch(mc.P.Overflow, addr)
	case instructions.BVC:
		mc.branch(!mc.P.Overflow, addr)
	}
}

// adc implements both ADC and SBC: SBC passes the bit-complemented operand,
// after which the addition formula is identical (§4.C.4).
func (mc *CPU) adc(operand uint8) {
	carry := uint16(0)
	if mc.P.Carry {
		carry = 1
	}
	a := mc.A.Value()
	sum := uint16(a) + uint16(operand) + carry

	mc.P.Carry = sum > 0xFF
	result := uint8(sum)
	mc.P.Zero = result == 0
	mc.P.Overflow = (^(a ^ operand) & (a ^ result) & 0x80) != 0
	mc.P.Negative = result&0x80 != 0
	mc.A.Load(result)
}

func (mc *CPU) compare(reg, operand uint8) {
	mc.P.Carry = reg >= operand
	mc.P.SetZN(reg - operand)
}

// shift implements ASL/LSR/ROL/ROR, operating on the accumulator when mode
// is Acc and on the read-modify-write memory location otherwise.
func (mc *CPU) shift(mode instructions.AddressingMode, addr uint16, left, rotate bool) {
	var v uint8
	if mode == instructions.Acc {
		v = mc.A.Value()
	} else {
		v = mc.mem.Read(addr)
	}

	var carryOut bool
	var result uint8
	if left {
		carryOut = v&0x80 != 0
		result = v << 1
		if rotate && mc.P.Carry {
			result |= 0x01
		}
	} else {
		carryOut = v&0x01 != 0
		result = v >> 1
		if rotate && mc.P.Carry {
			result |= 0x80
		}
	}

	mc.P.Carry = carryOut
	mc.P.SetZN(result)

	if mode == instructions.Acc {
		mc.A.Load(result)
	} else {
		mc.mem.Write(addr, result)
	}
}

// branch implements the shared Bxx contract: if taken, add 1 cycle (plus 2
// more if the target is on a different page than the post-fetch PC).
func (mc *CPU) branch(taken bool, addr uint16) {
	if !taken {
		return
	}
	offset := int8(mc.mem.Read(addr))
	mc.cycles++

	before := mc.PC.Value()
	after := uint16(int32(before) + int32(offset))
	if before&0xFF00 != after&0xFF00 {
		mc.cycles += 2
	}
	mc.PC.Load(after)
}
