package render

import "image/color"

// Canvas size in device pixels.
const (
	Width  = 1920
	Height = 1080
)

// Quality is the JPEG quality factor (0-100).
const Quality = 50

// Palette.
var (
	Background = color.RGBA{0x4f, 0x73, 0x59, 0xff}
	BoxColor   = color.RGBA{0x46, 0x68, 0x50, 0xff}
	TextColor  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	FrameColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Font sizes in pixels.
const (
	titleSize = 140
	textSize  = 100
)

const (
	frameStroke = 30

	titleBaseline = 140 // from the top edge
	labelBaseline = 260

	rows       = 5
	rowTop     = 290 // top of the first row of boxes
	rowSpacing = 155
	boxHeight  = 130

	// Text baseline within a box, measured from the box top.
	textBaselineInBox = boxHeight - 32

	// Team names are left aligned with this inset; other cells are centered.
	teamInsetX = 20
)

// column is one box in a data row.
type column struct {
	x, width float64
}

var (
	teamCol      = column{50, 850}
	winsCol      = column{950, 170}
	lossesCol    = column{1160, 170}
	gamesBackCol = column{1360, 140}
	halfGameCol  = column{1500, 120} // touches gamesBackCol
	lastTenCol   = column{1650, 210}
)

// dataColumns lists the boxes of a row, left to right.
var dataColumns = []column{teamCol, winsCol, lossesCol, gamesBackCol, halfGameCol, lastTenCol}

// rowY returns the top of row i.
func rowY(i int) float64 {
	return float64(rowTop + i*rowSpacing)
}
