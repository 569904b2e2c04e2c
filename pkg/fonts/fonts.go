// Package fonts provides the embedded typeface used for raster rendering.
//
// The Go Bold font ships inside golang.org/x/image, so the binary carries it
// and no font files need to be installed next to it. The font is parsed once
// on first use; faces are cheap and are created per render because a face is
// not safe for concurrent use.
package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

// Family is the display name of the embedded font.
const Family = "Go Bold"

var (
	bold     *truetype.Font
	boldErr  error
	boldOnce sync.Once
)

// BoldTTF returns the raw TrueType data.
func BoldTTF() []byte {
	return gobold.TTF
}

// Bold returns the parsed bold font. The result is cached after the first call.
func Bold() (*truetype.Font, error) {
	boldOnce.Do(func() {
		bold, boldErr = truetype.Parse(gobold.TTF)
		if boldErr != nil {
			boldErr = fmt.Errorf("fonts: parse %s: %w", Family, boldErr)
		}
	})
	return bold, boldErr
}

// Face returns a face of f at size pixels. Sizes are in device pixels (72 DPI).
func Face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}
