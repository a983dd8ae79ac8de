package widenes

import "testing"

func TestAtlasEmptyMapIsZeroSized(t *testing.T) {
	m := newTileMap()
	atlas, err := m.Atlas()
	if err != nil {
		t.Fatalf("Atlas: %v", err)
	}
	if !atlas.Bounds().Empty() {
		t.Fatalf("expected an empty atlas for an empty tile map")
	}
}

func TestAtlasSizedToTileBounds(t *testing.T) {
	m := newTileMap()
	m.Get(0, 0)
	m.Get(1, 0)
	m.Get(0, 1)

	atlas, err := m.Atlas()
	if err != nil {
		t.Fatalf("Atlas: %v", err)
	}

	want := atlas.Bounds()
	if want.Dx() != 2*tileW || want.Dy() != 2*tileH {
		t.Fatalf("atlas size = %v, want %dx%d", want, 2*tileW, 2*tileH)
	}
}

func TestThumbnailFitsWithinBounds(t *testing.T) {
	m := newTileMap()
	m.Get(0, 0)
	m.Get(1, 0)

	thumb, err := m.Thumbnail(128, 128)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}
	if thumb.Bounds().Dx() > 128 || thumb.Bounds().Dy() > 128 {
		t.Fatalf("thumbnail %v exceeds requested bounds", thumb.Bounds())
	}
}
