// Package ppuobs defines the PPU observation contract WideNES consumes: a
// small sink-registration interface modeled on the teacher's
// television.Television / PixelRenderer pairing. Where a PixelRenderer
// registers with a Television to receive NewFrame/NewScanline/SetPixel
// callbacks, a ppuobs.Sink registers with a ppuobs.Port to receive
// WriteStart/WriteEnd/FrameEnd callbacks timed around CPU-visible PPU
// register writes and frame completion.
package ppuobs

// PPUMaskView mirrors the bits of $2001 (PPUMASK) that WideNES's heuristics
// read: whether rendering (background or sprites) is currently enabled, and
// M, the "show background in the leftmost 8 pixels" bit (any nonzero value
// counts as set; zero makes WideNES clip the left 8-pixel column).
type PPUMaskView struct {
	IsRendering bool
	M           uint8
}

// TRegisterView exposes the PPU's internal loopy-T scroll register's coarse
// components, which double as a scroll source when rewritten through $2006.
type TRegisterView struct {
	CoarseX uint8
	CoarseY uint8
}

// Registers is the read-only view of PPU state a Sink needs to interpret a
// register write: which scanline it happened on, which half of PPUSCROLL
// the latch currently points at, whether rendering is active, and the
// scroll implied by the T register.
type Registers struct {
	Scanline    int // 0..261
	ScrollLatch bool
	PPUMask     PPUMaskView
	T           TRegisterView
}

// Framebuffer is a 256x240 ARGB8888 frame, packed row-major.
type Framebuffer struct {
	Pixels [256 * 240]uint32
}

// At returns the pixel at (x, y), or 0 if out of bounds.
func (f *Framebuffer) At(x, y int) uint32 {
	if x < 0 || x >= 256 || y < 0 || y >= 240 {
		return 0
	}
	return f.Pixels[y*256+x]
}

// Set stores the pixel at (x, y). Out-of-bounds coordinates are ignored.
func (f *Framebuffer) Set(x, y int, argb uint32) {
	if x < 0 || x >= 256 || y < 0 || y >= 240 {
		return
	}
	f.Pixels[y*256+x] = argb
}

// Sink receives PPU register-write and frame-completion callbacks. The
// WideNES Engine implements Sink the way a teacher PixelRenderer implements
// television.PixelRenderer.
type Sink interface {
	// WriteStart fires before a CPU-visible PPU register write takes
	// effect.
	WriteStart(addr uint16, val uint8)

	// WriteEnd fires after the write has taken effect; the Port's
	// Registers() reflects post-write state at this point.
	WriteEnd(addr uint16, val uint8)

	// FrameEnd fires once per completed frame, after the framebuffers are
	// valid for the frame just finished.
	FrameEnd()
}

// Port is the PPU-side contract: it exposes the register/framebuffer views
// and lets any number of Sinks register for callbacks, the way a
// television.Television lets PixelRenderers register with AddPixelRenderer.
type Port interface {
	AddSink(Sink)

	Registers() Registers
	Framebuffer() *Framebuffer
	BackgroundFramebuffer() *Framebuffer
}

// Mapper is the cartridge-side contract a mapper IRQ source (e.g. MMC3)
// satisfies so WideNES can read the programmed IRQ latch at the moment of
// an interrupt.
type Mapper interface {
	PeekIRQLatch() uint8
}

// IRQSink receives mapper IRQ notifications, kept separate from Sink since
// it is driven by the cartridge rather than the PPU.
type IRQSink interface {
	MMC3IRQ(active bool, mapper Mapper)
}
