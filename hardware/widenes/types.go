package widenes

// scroll8 is a raw scroll sample, as written through PPUSCROLL or derived
// from the t register via PPUADDR — before wrap correction. Held as int
// (rather than uint8) purely for arithmetic convenience; values sourced
// from a register write stay in [0,255].
type scroll8 struct {
	x, y int
}

// scrollState is the fully accumulated, unwrapped scroll position the
// engine tracks across frames, plus the most recent frame's delta.
type scrollState struct {
	x, y   int
	dx, dy int
}

// edges bundles the four border measurements (left, right, top, bottom)
// that pad.guess/pad.offset/pad.total all share the shape of.
type edges struct {
	l, r, t, b int
}

func (e edges) clampNonNegative() edges {
	return edges{
		l: max0(e.l), r: max0(e.r), t: max0(e.t), b: max0(e.b),
	}
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// padState is the border-clipping model: guess is recomputed every frame
// from the heuristics below, offset is user-supplied (§4.E.4), and total is
// their clamped sum.
type padState struct {
	guess  edges
	offset edges
	total  edges
}

// ppuscrollState latches the most recent PPUSCROLL-derived scroll sample.
type ppuscrollState struct {
	curr scroll8
}

// ppuaddrState tracks mid-frame PPUADDR rewrites for the Zelda-class
// heuristic (§4.E.1, §4.E.3 step 3).
type ppuaddrState struct {
	didChange bool
	changed   struct {
		onScanline     int
		whileRendering bool
	}
	active      bool
	cutScanline int
	newScroll   scroll8
}

// mmc3State tracks the most recent mapper-IRQ observation for the
// status-bar heuristic (§4.E.2, §4.E.3 step 4).
type mmc3State struct {
	happened     bool
	onScanline   int
	scrollPreIRQ scroll8
}
