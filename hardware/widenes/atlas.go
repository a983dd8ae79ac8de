package widenes

import (
	"image"
	stddraw "image/draw"

	"golang.org/x/image/draw"
)

// Encode returns the tile's committed framebuffer as a standard library
// image, sharing storage with Fb (no copy), suitable for a caller to pass
// to png.Encode. The engine owns no file I/O itself.
func (t *Tile) Encode() (*image.RGBA, error) {
	return &image.RGBA{
		Pix:    t.Fb[:],
		Stride: tileW * 4,
		Rect:   image.Rect(0, 0, tileW, tileH),
	}, nil
}

// Atlas composes every tile in the map into a single image at native
// resolution, tiles laid out by their (tx,ty) grid position. Gaps for
// missing tiles are left transparent.
func (m *TileMap) Atlas() (*image.RGBA, error) {
	minTX, minTY, maxTX, maxTY, ok := m.Bounds()
	if !ok {
		return image.NewRGBA(image.Rect(0, 0, 0, 0)), nil
	}

	w := (maxTX - minTX + 1) * tileW
	h := (maxTY - minTY + 1) * tileH
	atlas := image.NewRGBA(image.Rect(0, 0, w, h))

	m.Each(func(t *Tile) {
		ox := (t.TX - minTX) * tileW
		oy := (t.TY - minTY) * tileH
		dstRect := image.Rect(ox, oy, ox+tileW, oy+tileH)
		img, _ := t.Encode()
		stddraw.Draw(atlas, dstRect, img, image.Point{}, stddraw.Src)
	})

	return atlas, nil
}

// Thumbnail returns the full atlas scaled to fit within maxW x maxH,
// preserving aspect ratio, for a diagnostic overview too large to render
// at native resolution.
func (m *TileMap) Thumbnail(maxW, maxH int) (*image.RGBA, error) {
	atlas, err := m.Atlas()
	if err != nil {
		return nil, err
	}
	b := atlas.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return atlas, nil
	}

	scale := float64(maxW) / float64(b.Dx())
	if alt := float64(maxH) / float64(b.Dy()); alt < scale {
		scale = alt
	}
	if scale > 1 {
		scale = 1
	}

	dw := int(float64(b.Dx()) * scale)
	dh := int(float64(b.Dy()) * scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), atlas, atlas.Bounds(), draw.Src, nil)
	return dst, nil
}
