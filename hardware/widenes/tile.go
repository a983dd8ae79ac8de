// Package widenes implements the scene-stitching engine: it fuses PPU
// register-write callbacks and per-frame scroll heuristics into a
// persistent tile-based map of the game world, the way the original
// WideNES GUI module sniffed PPUSCROLL/PPUADDR/mapper-IRQ activity to build
// up a map far larger than a single NES frame.
package widenes

// blockGridW and blockGridH are the tile's block grid dimensions: a tile
// covers one NES frame (256x240 pixels), partitioned into 16x16 blocks.
const (
	blockGridW = 16
	blockGridH = 15
	tileW      = 256
	tileH      = 240
)

// Tile is one 256x240 cell of the persistent world map, addressed by its
// (tx, ty) grid coordinate. Fb holds committed pixels; FbNew accumulates
// the pixels sampled so far this frame, block by block, until a block's
// fill count reaches 256 (every pixel in the 16x16 block sampled at least
// once) and is copied into Fb.
type Tile struct {
	TX, TY int

	Fb    [tileW * tileH * 4]byte
	FbNew [tileW * tileH * 4]byte

	fill [blockGridW][blockGridH]int
	done [blockGridW][blockGridH]bool
}

func newTile(tx, ty int) *Tile {
	return &Tile{TX: tx, TY: ty}
}

// Done reports whether the block at (bx, by) has been fully sampled and
// committed to Fb at least once.
func (t *Tile) Done(bx, by int) bool {
	if bx < 0 || bx >= blockGridW || by < 0 || by >= blockGridH {
		return false
	}
	return t.done[bx][by]
}

// FillCount returns the current sample count for block (bx, by).
func (t *Tile) FillCount(bx, by int) int {
	if bx < 0 || bx >= blockGridW || by < 0 || by >= blockGridH {
		return 0
	}
	return t.fill[bx][by]
}

// WritePixel stamps an RGBA sample at tile-local (dx, dy) into FbNew and
// bumps the owning block's fill counter, per §4.E.3 step 9. Coordinates
// outside the tile are ignored.
func (t *Tile) WritePixel(dx, dy int, r, g, b, a byte) {
	if dx < 0 || dx >= tileW || dy < 0 || dy >= tileH {
		return
	}
	i := (dy*tileW + dx) * 4
	t.FbNew[i+0] = r
	t.FbNew[i+1] = g
	t.FbNew[i+2] = b
	t.FbNew[i+3] = a

	bx, by := dx/blockGridW, dy/blockGridW
	if bx < blockGridW && by < blockGridH {
		t.fill[bx][by]++
	}
}

// commitBlocks copies every fully-sampled 16x16 block from FbNew into Fb
// and resets every block's fill counter, per §4.E.3 step 10.
func (t *Tile) commitBlocks() {
	for bx := 0; bx < blockGridW; bx++ {
		for by := 0; by < blockGridH; by++ {
			if t.fill[bx][by] == blockGridW*blockGridW {
				t.copyBlock(bx, by)
				t.done[bx][by] = true
			}
			t.fill[bx][by] = 0
		}
	}
}

func (t *Tile) copyBlock(bx, by int) {
	for y := 0; y < blockGridW; y++ {
		row := by*blockGridW + y
		if row >= tileH {
			continue
		}
		start := (row*tileW + bx*blockGridW) * 4
		width := blockGridW * 4
		if bx*blockGridW+blockGridW > tileW {
			width = (tileW - bx*blockGridW) * 4
		}
		copy(t.Fb[start:start+width], t.FbNew[start:start+width])
	}
}

// TileMap is the persistent, (tx,ty)-keyed collection of Tiles the Engine
// builds up across frames.
type TileMap struct {
	tiles map[int]map[int]*Tile
}

func newTileMap() *TileMap {
	return &TileMap{tiles: make(map[int]map[int]*Tile)}
}

// Get returns the tile at (tx, ty), creating it if absent.
func (m *TileMap) Get(tx, ty int) *Tile {
	row, ok := m.tiles[tx]
	if !ok {
		row = make(map[int]*Tile)
		m.tiles[tx] = row
	}
	t, ok := row[ty]
	if !ok {
		t = newTile(tx, ty)
		row[ty] = t
	}
	return t
}

// Lookup returns the tile at (tx, ty) without creating it.
func (m *TileMap) Lookup(tx, ty int) (*Tile, bool) {
	row, ok := m.tiles[tx]
	if !ok {
		return nil, false
	}
	t, ok := row[ty]
	return t, ok
}

// Clear discards every tile, for the "clear all tiles" user action (§4.E.4).
func (m *TileMap) Clear() {
	m.tiles = make(map[int]map[int]*Tile)
}

// Each calls fn for every tile currently in the map, in no particular
// order.
func (m *TileMap) Each(fn func(*Tile)) {
	for _, row := range m.tiles {
		for _, t := range row {
			fn(t)
		}
	}
}

// Bounds returns the inclusive (tx,ty) range spanning every tile currently
// in the map. ok is false if the map is empty.
func (m *TileMap) Bounds() (minTX, minTY, maxTX, maxTY int, ok bool) {
	first := true
	m.Each(func(t *Tile) {
		if first {
			minTX, maxTX = t.TX, t.TX
			minTY, maxTY = t.TY, t.TY
			first = false
			return
		}
		if t.TX < minTX {
			minTX = t.TX
		}
		if t.TX > maxTX {
			maxTX = t.TX
		}
		if t.TY < minTY {
			minTY = t.TY
		}
		if t.TY > maxTY {
			maxTY = t.TY
		}
	})
	return minTX, minTY, maxTX, maxTY, !first
}
