package widenes

import "testing"

func TestWritePixelIncrementsFillAndStoresBytes(t *testing.T) {
	tile := newTile(0, 0)
	tile.WritePixel(5, 5, 0x11, 0x22, 0x33, 0xFF)

	if got := tile.FillCount(0, 0); got != 1 {
		t.Fatalf("fill count = %d, want 1", got)
	}

	i := (5*tileW + 5) * 4
	if tile.FbNew[i] != 0x11 || tile.FbNew[i+1] != 0x22 || tile.FbNew[i+2] != 0x33 || tile.FbNew[i+3] != 0xFF {
		t.Fatalf("pixel bytes not stored as written")
	}
}

func TestWritePixelOutOfBoundsIgnored(t *testing.T) {
	tile := newTile(0, 0)
	tile.WritePixel(-1, 0, 1, 2, 3, 4)
	tile.WritePixel(0, tileH, 1, 2, 3, 4)

	for bx := 0; bx < blockGridW; bx++ {
		for by := 0; by < blockGridH; by++ {
			if tile.FillCount(bx, by) != 0 {
				t.Fatalf("out-of-bounds write should not bump any block's fill count")
			}
		}
	}
}

func TestCommitBlocksCopiesFullBlocksOnly(t *testing.T) {
	tile := newTile(0, 0)
	for y := 0; y < blockGridW; y++ {
		for x := 0; x < blockGridW; x++ {
			tile.WritePixel(x, y, 0xFF, 0, 0, 0xFF) // fills block (0,0) exactly
		}
	}
	// Partially fill block (1,0): only half its columns.
	for y := 0; y < blockGridW; y++ {
		for x := 0; x < blockGridW/2; x++ {
			tile.WritePixel(blockGridW+x, y, 0, 0xFF, 0, 0xFF)
		}
	}

	tile.commitBlocks()

	if !tile.Done(0, 0) {
		t.Fatalf("fully sampled block (0,0) should be done")
	}
	if tile.Done(1, 0) {
		t.Fatalf("partially sampled block (1,0) should not be done")
	}
	if tile.FillCount(0, 0) != 0 || tile.FillCount(1, 0) != 0 {
		t.Fatalf("fill counters must reset to 0 after commit regardless of done state")
	}
	if tile.Fb[0] != 0xFF || tile.Fb[3] != 0xFF {
		t.Fatalf("committed block (0,0) pixel data not copied into fb")
	}
}

func TestTileMapGetCreatesAndLookupDoesNot(t *testing.T) {
	m := newTileMap()
	if _, ok := m.Lookup(3, 4); ok {
		t.Fatalf("Lookup should not create a tile")
	}

	tile := m.Get(3, 4)
	if tile.TX != 3 || tile.TY != 4 {
		t.Fatalf("Get returned tile with wrong coordinates: (%d,%d)", tile.TX, tile.TY)
	}

	got, ok := m.Lookup(3, 4)
	if !ok || got != tile {
		t.Fatalf("Lookup should now find the tile created by Get")
	}
}

func TestTileMapBoundsAndClear(t *testing.T) {
	m := newTileMap()
	if _, _, _, _, ok := m.Bounds(); ok {
		t.Fatalf("Bounds on empty map should report ok=false")
	}

	m.Get(-2, 1)
	m.Get(5, -3)

	minTX, minTY, maxTX, maxTY, ok := m.Bounds()
	if !ok || minTX != -2 || maxTX != 5 || minTY != -3 || maxTY != 1 {
		t.Fatalf("Bounds = (%d,%d,%d,%d), want (-2,-3,5,1)", minTX, minTY, maxTX, maxTY)
	}

	m.Clear()
	if _, _, _, _, ok := m.Bounds(); ok {
		t.Fatalf("Bounds after Clear should report ok=false")
	}
}
