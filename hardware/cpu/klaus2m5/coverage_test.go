package klaus2m5

import (
	"testing"

	"github.com/tilebound/nescore/hardware/cpu"
	"github.com/tilebound/nescore/hardware/cpu/instructions"
	"github.com/tilebound/nescore/hardware/interrupts"
	"github.com/tilebound/nescore/hardware/membus"
)

// TestEveryLegalOpcodeExecutes drives each populated entry of the opcode
// descriptor table once, on a freshly powered CPU, and checks that it
// dispatches without halting and with a self-consistent cycle count.
func TestEveryLegalOpcodeExecutes(t *testing.T) {
	for op := 0; op < 256; op++ {
		defn := instructions.Opcodes[op]
		if defn.IsInvalid() {
			continue
		}

		t.Run(defn.String(), func(t *testing.T) {
			bus := membus.NewFlat()
			mc := cpu.NewCPU(bus, interrupts.New(), nil)

			program := make([]byte, 1+defn.Mode.OperandBytes())
			program[0] = byte(op)
			for i := 1; i < len(program); i++ {
				program[i] = 0x01 // benign placeholder operand byte
			}
			bus.LoadAt(0x8000, program)
			mc.PC.Load(0x8000)

			mc.Step()

			if mc.State() == cpu.Halted {
				t.Fatalf("opcode %#02x (%s) halted the CPU", op, defn)
			}

			result := mc.LastResult()
			if err := result.IsValid(); err != nil {
				t.Fatalf("opcode %#02x (%s): %v", op, defn, err)
			}
		})
	}
}
