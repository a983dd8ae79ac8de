// Package membus defines the address-decoded 16-bit read/write fabric the
// CPU core depends on. Address decoding, mirroring and device attachment
// belong to the external provider (the console's cartridge/mapper/PPU/APU
// wiring); this package only defines the contract and a flat reference
// implementation used by tests and the conformance harness.
package membus

// Bus is the memory fabric the CPU reads and writes through. Implementations
// never report failure: an out-of-range or unmapped address is the bus
// implementer's problem, not the CPU's (§7).
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
}

// Read16 performs a little-endian 16-bit read as two consecutive Read calls.
func Read16(b Bus, addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return hi<<8 | lo
}

// Read16Zpg performs a 16-bit read that replicates the 6502 zero-page wrap
// bug: the low byte comes from addr, the high byte from (addr+1)&0xFF, so
// Read16Zpg(0xFF) reads its high byte from 0x00 rather than crossing into
// page 1.
func Read16Zpg(b Bus, addr uint8) uint16 {
	lo := uint16(b.Read(uint16(addr)))
	hi := uint16(b.Read(uint16(addr + 1)))
	return hi<<8 | lo
}

// Read16PageWrap performs a 16-bit read that replicates the 6502's indirect
// JMP page-wrap bug: the low byte comes from addr, the high byte from
// (addr&0xFF00)|((addr+1)&0xFF) — if addr's low byte is 0xFF, the high byte
// is fetched from the start of the same page rather than the next one.
func Read16PageWrap(b Bus, addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hiAddr := (addr & 0xFF00) | ((addr + 1) & 0x00FF)
	hi := uint16(b.Read(hiAddr))
	return hi<<8 | lo
}

// Flat is a flat 64KiB memory array satisfying Bus. It performs no address
// decoding or mirroring and exists only for tests and the conformance
// harness (cpu/functional_test) — the real console's bus wiring is an
// external collaborator per §1.
type Flat [65536]byte

// NewFlat creates a zeroed Flat bus.
func NewFlat() *Flat {
	return &Flat{}
}

// Read returns the byte at addr.
func (f *Flat) Read(addr uint16) uint8 {
	return f[addr]
}

// Write stores val at addr.
func (f *Flat) Write(addr uint16, val uint8) {
	f[addr] = val
}

// LoadAt copies data into the bus starting at addr, for test fixture setup.
func (f *Flat) LoadAt(addr uint16, data []byte) {
	copy(f[int(addr):], data)
}
