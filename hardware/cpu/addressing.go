package cpu

import (
	"github.com/tilebound/nescore/hardware/cpu/execution"
	"github.com/tilebound/nescore/hardware/cpu/instructions"
	"github.com/tilebound/nescore/hardware/membus"
)

func (mc *CPU) fetch8() uint8 {
	v := mc.mem.Read(mc.PC.Value())
	mc.PC.Advance(1)
	return v
}

func (mc *CPU) fetch16() uint16 {
	v := membus.Read16(mc.mem, mc.PC.Value())
	mc.PC.Advance(2)
	return v
}

// operandAddress computes the effective address for mode, advancing PC past
// the operand bytes it consumes (§4.C.3), and reports any documented
// hardware bug the computation triggered.
func (mc *CPU) operandAddress(mode instructions.AddressingMode) (addr uint16, bug execution.Bug) {
	switch mode {
	case instructions.Abs:
		addr = mc.fetch16()

	case instructions.AbsX:
		addr = mc.fetch16() + uint16(mc.X.Value())

	case instructions.AbsY:
		addr = mc.fetch16() + uint16(mc.Y.Value())

	case instructions.Ind:
		ptr := mc.fetch16()
		addr = membus.Read16PageWrap(mc.mem, ptr)
		if ptr&0x00FF == 0x00FF {
			bug = execution.JmpIndirectPageBug
		}

	case instructions.IndY:
		zp := mc.fetch8()
		addr = membus.Read16Zpg(mc.mem, zp) + uint16(mc.Y.Value())

	case instructions.XInd:
		zp := mc.fetch8()
		if int(zp)+int(mc.X.Value()) > 0xFF {
			bug = execution.ZeroPageIndexWrapBug
		}
		addr = membus.Read16Zpg(mc.mem, zp+mc.X.Value())

	case instructions.Zpg:
		addr = uint16(mc.fetch8())

	case instructions.ZpgX:
		zp := mc.fetch8()
		if int(zp)+int(mc.X.Value()) > 0xFF {
			bug = execution.ZeroPageIndexWrapBug
		}
		addr = uint16(zp + mc.X.Value())

	case instructions.ZpgY:
		zp := mc.fetch8()
		if int(zp)+int(mc.Y.Value()) > 0xFF {
			bug = execution.ZeroPageIndexWrapBug
		}
		addr = uint16(zp + mc.Y.Value())

	case instructions.Rel:
		addr = mc.PC.Value()
		mc.PC.Advance(1)

	case instructions.Imm:
		addr = mc.PC.Value()
		mc.PC.Advance(1)

	case instructions.Acc, instructions.Impl:
		// sentinel: no operand memory location
	}

	return addr, bug
}
