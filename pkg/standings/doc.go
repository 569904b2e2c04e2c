// Package standings turns the raw league feed into the canonical standings
// snapshot that the image compositor draws from.
//
// # Snapshot Shape
//
// A [Snapshot] is keyed by conference, then division, and holds each
// division's teams in the rank order the feed delivered them:
//
//	{"AL": {"E": [...5 teams...], "C": [...], "W": [...]}, "NL": {...}}
//
// The order is significant and is never re-sorted. A division is complete
// when it holds exactly [TeamsPerDivision] teams; [Snapshot.Division]
// refuses to hand out anything shorter.
//
// # Normalizer
//
// [Normalizer.Snapshot] consults the cache first and only fetches on a miss.
// Both leagues must fetch and parse cleanly or no snapshot is returned; a
// partial snapshot is never produced or cached. Fresh snapshots are cached
// until the next 04:00 local time.
//
// # Games Back
//
// The feed reports games back as "-" for a division leader or as a decimal
// string such as "2.5". [FormatGamesBack] splits the value into the whole
// part and an optional half-game glyph for display.
package standings
