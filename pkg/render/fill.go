package render

import (
	"image"
	"image/color"
)

// fillRect paints an opaque rectangle by writing img.Pix directly. It is the
// fast path for large areas and matches what a path fill of the same
// pixel-aligned rectangle produces. The rectangle is clipped to img.
func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Rect)
	if r.Empty() {
		return
	}

	// Build the first row, then copy it down.
	first := img.PixOffset(r.Min.X, r.Min.Y)
	rowLen := r.Dx() * 4
	row := img.Pix[first : first+rowLen]
	for i := 0; i < rowLen; i += 4 {
		row[i+0] = c.R
		row[i+1] = c.G
		row[i+2] = c.B
		row[i+3] = 0xff
	}
	for y := r.Min.Y + 1; y < r.Max.Y; y++ {
		off := img.PixOffset(r.Min.X, y)
		copy(img.Pix[off:off+rowLen], row)
	}
}
