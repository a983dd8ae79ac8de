package widenes

import (
	"github.com/tilebound/nescore/curated"
	"github.com/tilebound/nescore/hardware/ppuobs"
	"github.com/tilebound/nescore/logger"
)

const (
	addrPPUMask   = 0x2001
	addrPPUScroll = 0x2005
	addrPPUAddr   = 0x2006

	scrollFuzz = 10
)

// Engine is the WideNES scene-stitcher. It registers itself with a
// ppuobs.Port to observe PPUSCROLL/PPUADDR writes and mapper IRQs, and
// stitches the PPU's background framebuffer into a persistent TileMap at
// the end of every frame.
type Engine struct {
	port  ppuobs.Port
	prefs *Preferences
	tiles *TileMap

	pad    padState
	scroll scrollState

	lastScroll scroll8
	ppuscroll  ppuscrollState
	ppuaddr    ppuaddrState
	mmc3       mmc3State
}

// NewEngine creates an Engine and registers it as a sink on port.
func NewEngine(port ppuobs.Port, p *Preferences) *Engine {
	if p == nil {
		p = NewPreferences()
	}
	e := &Engine{
		port:  port,
		prefs: p,
		tiles: newTileMap(),
	}
	port.AddSink(e)
	return e
}

// Tiles returns the engine's persistent tile map.
func (e *Engine) Tiles() *TileMap { return e.tiles }

// Scroll returns the engine's current accumulated scroll position and the
// most recent frame's delta, for diagnostics.
func (e *Engine) Scroll() (x, y, dx, dy int) {
	return e.scroll.x, e.scroll.y, e.scroll.dx, e.scroll.dy
}

// PadTotal returns the current clipping totals, for diagnostics.
func (e *Engine) PadTotal() (l, r, t, b int) {
	return e.pad.total.l, e.pad.total.r, e.pad.total.t, e.pad.total.b
}

// SetPadOffset adjusts the user-supplied border offset (§4.E.4).
func (e *Engine) SetPadOffset(l, r, t, b int) {
	e.pad.offset = edges{l: l, r: r, t: t, b: b}
}

// ClearTiles discards every stitched tile (§4.E.4).
func (e *Engine) ClearTiles() {
	e.tiles.Clear()
}

// WriteStart implements ppuobs.Sink. WideNES has nothing to observe before
// a write takes effect; every heuristic reads post-write state.
func (e *Engine) WriteStart(addr uint16, val uint8) {}

// WriteEnd implements ppuobs.Sink, per §4.E.1.
func (e *Engine) WriteEnd(addr uint16, val uint8) {
	switch addr {
	case addrPPUScroll:
		regs := e.port.Registers()
		if regs.ScrollLatch {
			e.ppuscroll.curr.x = int(val)
		} else {
			e.ppuscroll.curr.y = int(val)
		}

	case addrPPUAddr:
		regs := e.port.Registers()
		e.ppuaddr.didChange = true
		e.ppuaddr.changed.onScanline = regs.Scanline
		e.ppuaddr.changed.whileRendering = regs.PPUMask.IsRendering
		if regs.ScrollLatch {
			e.ppuaddr.newScroll.x = 8 * int(regs.T.CoarseX)
		} else {
			e.ppuaddr.newScroll.y = 8 * int(regs.T.CoarseY)
		}
	}
}

// MMC3IRQ implements ppuobs.IRQSink, per §4.E.2.
func (e *Engine) MMC3IRQ(active bool, mapper ppuobs.Mapper) {
	e.mmc3.scrollPreIRQ = e.ppuscroll.curr
	e.mmc3.happened = true
	if active {
		e.mmc3.onScanline = int(mapper.PeekIRQLatch())
	} else {
		e.mmc3.onScanline = 239
	}
}

// FrameEnd implements ppuobs.Sink: the eleven-step end-of-frame pipeline of
// §4.E.3.
func (e *Engine) FrameEnd() {
	// (1) Seed current scroll.
	curr := e.ppuscroll.curr

	// (2) Left-column clip guess.
	e.pad.guess = edges{}
	regs := e.port.Registers()
	if regs.PPUMask.M == 0 {
		e.pad.guess.l = 8
	}

	// (3) Zelda-class heuristic.
	if e.ppuaddr.didChange && e.ppuaddr.changed.onScanline < 241 && e.ppuaddr.changed.whileRendering {
		e.ppuaddr.active = true
		e.ppuaddr.cutScanline = e.ppuaddr.changed.onScanline
		if e.ppuaddr.cutScanline < 120 {
			e.pad.guess.t = e.ppuaddr.cutScanline
			logger.Log("widenes", curated.Errorf("zelda-class cut: top HUD at scanline %d", e.ppuaddr.cutScanline).Error())
		} else {
			// Deliberately reads mmc3.onScanline even when no mmc3 IRQ
			// fired this frame; a documented quirk of the reference
			// heuristic, preserved rather than "fixed".
			if !e.mmc3.happened {
				logger.Log("widenes", curated.Errorf("zelda-class cut: bottom HUD read stale mmc3.on_scanline=%d (no mmc3 IRQ this frame)", e.mmc3.onScanline).Error())
			}
			e.pad.guess.b = 239 - e.mmc3.onScanline
			logger.Log("widenes", curated.Errorf("zelda-class cut: bottom HUD at scanline %d", e.mmc3.onScanline).Error())
		}
		curr.y = e.ppuaddr.newScroll.y
	}
	e.ppuaddr.didChange = false

	// (4) Mapper IRQ "status-bar" heuristic.
	if e.mmc3.happened {
		if e.mmc3.onScanline < 120 {
			e.pad.guess.t = e.mmc3.onScanline
		} else {
			e.pad.guess.b = 239 - e.mmc3.onScanline
			curr = e.mmc3.scrollPreIRQ
		}
		logger.Log("widenes", curated.Errorf("mmc3 status-bar cut at scanline %d", e.mmc3.onScanline).Error())
		e.mmc3.happened = false
	}

	// (5) Padding totals.
	e.pad.total = edges{
		l: e.pad.guess.l + e.pad.offset.l,
		r: e.pad.guess.r + e.pad.offset.r,
		t: e.pad.guess.t + e.pad.offset.t,
		b: e.pad.guess.b + e.pad.offset.b,
	}.clampNonNegative()

	// (6) Scroll delta with wrap detection.
	dx := curr.x - e.lastScroll.x
	dy := curr.y - e.lastScroll.y

	threshW := (256 - e.pad.total.l - e.pad.total.r) - scrollFuzz
	if abs(dx) > threshW {
		if dx < 0 {
			dx += 256
		} else {
			dx -= 256
		}
	}
	threshH := (240 - e.pad.total.t - e.pad.total.b) - scrollFuzz
	if abs(dy) > threshH {
		if dy < 0 {
			dy += 240
		} else {
			dy -= 240
		}
	}

	// (7) Zelda-scroll anti-jump.
	if e.ppuaddr.active && abs(dy) > e.ppuaddr.cutScanline {
		dy = 0
	}

	// (8) Commit scroll.
	e.scroll.x += dx
	e.scroll.y += dy
	e.scroll.dx = dx
	e.scroll.dy = dy
	e.lastScroll = curr

	// (9) Pixel projection.
	fb := e.port.BackgroundFramebuffer()
	firstSeen := e.prefs.FirstSeen.Get().(bool)
	for sy := e.pad.total.t; sy < tileH-e.pad.total.b; sy++ {
		for sx := e.pad.total.l; sx < tileW-e.pad.total.r; sx++ {
			tx := floorDiv(e.scroll.x+sx, tileW)
			ty := floorDiv(e.scroll.y+sy, tileH)
			tile := e.tiles.Get(tx, ty)

			ddx := (e.scroll.x - tx*tileW) + sx
			ddy := (e.scroll.y - ty*tileH) + sy
			bx, by := ddx/blockGridW, ddy/blockGridW

			if firstSeen && tile.Done(bx, by) {
				continue
			}

			r, g, b, a := decodeARGB(fb.At(sx, sy))
			tile.WritePixel(ddx, ddy, r, g, b, a)
		}
	}

	// (10) Block commit, for the up to four tiles touched this frame.
	tx0, ty0 := floorDiv(e.scroll.x, tileW), floorDiv(e.scroll.y, tileH)
	for _, off := range [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		if t, ok := e.tiles.Lookup(tx0+off[0], ty0+off[1]); ok {
			t.commitBlocks()
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// floorDiv is integer division that rounds toward negative infinity, as
// opposed to Go's native truncating division.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func decodeARGB(argb uint32) (r, g, b, a byte) {
	a = byte(argb >> 24)
	r = byte(argb >> 16)
	g = byte(argb >> 8)
	b = byte(argb)
	return
}

var _ ppuobs.Sink = (*Engine)(nil)
var _ ppuobs.IRQSink = (*Engine)(nil)
