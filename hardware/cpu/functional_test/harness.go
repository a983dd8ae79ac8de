// Package functional_test runs small text fixtures against a CPU instance:
// each line is a directive (reset, run, poke, expect) parsed through a
// github.com/beevik/cmd tree, in the same command/args/Data shape the
// go6502 debugger host uses for its interactive commands.
package functional_test

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/cmd"

	"github.com/tilebound/nescore/hardware/cpu"
	"github.com/tilebound/nescore/hardware/interrupts"
	"github.com/tilebound/nescore/hardware/membus"
)

// Harness wires a CPU to a flat bus and a directive command tree, so a
// conformance fixture can be expressed as a short list of text lines rather
// than Go code.
type Harness struct {
	CPU   *cpu.CPU
	Bus   *membus.Flat
	Lines *interrupts.Lines
	tree  *cmd.Tree
}

// NewHarness creates a Harness around a fresh CPU and flat bus.
func NewHarness() *Harness {
	bus := membus.NewFlat()
	lines := interrupts.New()
	h := &Harness{
		CPU:   cpu.NewCPU(bus, lines, nil),
		Bus:   bus,
		Lines: lines,
	}
	h.tree = buildTree()
	return h
}

func buildTree() *cmd.Tree {
	root := cmd.NewTree(cmd.TreeDescriptor{Name: "fixture"})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "reset",
		Brief:       "request a RESET interrupt",
		Description: "Requests a RESET interrupt, serviced on the next step.",
		Usage:       "reset",
		Data:        (*Harness).cmdReset,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "run",
		Brief:       "step the CPU N times",
		Description: "Calls CPU.Step the given number of times.",
		Usage:       "run <n>",
		Data:        (*Harness).cmdRun,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "poke",
		Brief:       "write bytes into memory",
		Description: "Writes one or more hex byte values starting at an address.",
		Usage:       "poke <addr> <byte...>",
		Data:        (*Harness).cmdPoke,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "expect",
		Brief:       "assert a register or flag value",
		Description: "Checks pc, a, x, y, s or p against a hex value.",
		Usage:       "expect <field> <value>",
		Data:        (*Harness).cmdExpect,
	})
	return root
}

// Run executes every non-blank, non-comment line of a fixture in order,
// stopping and returning the first error encountered.
func (h *Harness) Run(fixture string) error {
	for n, raw := range strings.Split(fixture, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		node, args, err := h.tree.Lookup(line)
		switch {
		case err == cmd.ErrNotFound:
			return fmt.Errorf("fixture line %d: unknown directive %q", n+1, line)
		case err == cmd.ErrAmbiguous:
			return fmt.Errorf("fixture line %d: ambiguous directive %q", n+1, line)
		case err != nil:
			return fmt.Errorf("fixture line %d: %w", n+1, err)
		}
		command, ok := node.(*cmd.Command)
		if !ok {
			continue
		}
		handler := command.Data.(func(*Harness, []string) error)
		if err := handler(h, args); err != nil {
			return fmt.Errorf("fixture line %d (%q): %w", n+1, line, err)
		}
	}
	return nil
}

func (h *Harness) cmdReset(_ []string) error {
	h.CPU.Reset()
	return nil
}

func (h *Harness) cmdRun(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("run requires a count")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid run count %q: %w", args[0], err)
	}
	for i := 0; i < n; i++ {
		h.CPU.Step()
	}
	return nil
}

func (h *Harness) cmdPoke(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("poke requires an address and at least one byte")
	}
	addr, err := parseHex16(args[0])
	if err != nil {
		return err
	}
	data := make([]byte, 0, len(args)-1)
	for _, a := range args[1:] {
		v, err := strconv.ParseUint(strings.TrimPrefix(a, "$"), 16, 8)
		if err != nil {
			return fmt.Errorf("invalid byte %q: %w", a, err)
		}
		data = append(data, byte(v))
	}
	h.Bus.LoadAt(addr, data)
	return nil
}

func (h *Harness) cmdExpect(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("expect requires a field and a value")
	}
	field := strings.ToLower(args[0])
	want, err := parseHex16(args[1])
	if err != nil {
		return err
	}

	var got uint16
	switch field {
	case "pc":
		got = h.CPU.PC.Value()
	case "a":
		got = uint16(h.CPU.A.Value())
	case "x":
		got = uint16(h.CPU.X.Value())
	case "y":
		got = uint16(h.CPU.Y.Value())
	case "s":
		got = uint16(h.CPU.S.Value())
	case "p":
		got = uint16(h.CPU.P.ToUint8())
	default:
		return fmt.Errorf("unknown field %q", field)
	}

	if got != want {
		return fmt.Errorf("%s: expected %#04x, got %#04x", field, want, got)
	}
	return nil
}

func parseHex16(s string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "$"), 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid hex value %q: %w", s, err)
	}
	return uint16(v), nil
}
