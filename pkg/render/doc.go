// Package render draws one division's standings as a fixed-layout JPEG.
//
// # Overview
//
// [Compositor.Render] takes a [standings.Snapshot] and a conference/division
// selector and returns an [Image] holding the encoded bytes. The canvas is
// always 1920×1080:
//
//   - a solid background filled by writing the pixel buffer directly
//   - a white frame stroked as one connected path so the corners have no seams
//   - the centered title, e.g. "AL EAST"
//   - the column labels W, L, GB and L10, each centered over its column
//   - five rows of boxes: team, wins, losses, games back, half game, last ten
//
// The games-back and half-game boxes touch so they read as a single GB
// column. The team name is inset from the left edge of its box; every other
// cell is centered using the measured width of its text.
//
// # Determinism
//
// Rendering has no inputs besides its arguments and the embedded font, and
// JPEG encoding uses a fixed quality of 50, so the same snapshot always
// produces the same bytes. The compositor keeps no mutable state between
// calls and is safe for concurrent use.
//
// [standings.Snapshot]: github.com/matzehuels/standings/pkg/standings.Snapshot
package render
