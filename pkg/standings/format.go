package standings

import (
	"math"
	"strconv"
)

// HalfGlyph is the vulgar fraction one half, drawn after the whole games back.
const HalfGlyph = "½"

// HasHalfGame reports whether gamesBack has a fractional part.
func HasHalfGame(gamesBack float64) bool {
	return math.Floor(gamesBack) != gamesBack
}

// FormatGamesBack splits gamesBack into its display cells: the whole part
// ("-" for zero) and the half-game glyph or "".
//
//	FormatGamesBack(0)   // "-", ""
//	FormatGamesBack(2)   // "2", ""
//	FormatGamesBack(2.5) // "2", "½"
func FormatGamesBack(gamesBack float64) (whole, half string) {
	if gamesBack == 0 {
		whole = "-"
	} else {
		whole = strconv.FormatFloat(math.Floor(gamesBack), 'f', 0, 64)
	}
	if HasHalfGame(gamesBack) {
		half = HalfGlyph
	}
	return whole, half
}

// FormatRecord renders a win-loss pair as "W-L".
func FormatRecord(wins, losses int) string {
	return strconv.Itoa(wins) + "-" + strconv.Itoa(losses)
}
