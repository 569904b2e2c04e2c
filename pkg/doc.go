// Package pkg provides the libraries behind the standings image builder.
//
// # Overview
//
// Once a day the standings feed is fetched, normalized into a fixed
// conference/division/team structure and cached until the next 04:00
// refresh. Each division is then drawn onto a 1920x1080 canvas and encoded
// as a JPEG for a display.
//
//	MLB stats API (or embedded fixtures)
//	         ↓
//	    [integrations/mlb] raw standings records
//	         ↓
//	    [standings] normalized Snapshot, cached by [cache]
//	         ↓
//	    [render] one JPEG per division
//	         ↓
//	    [sink] directory, S3, Redis or GridFS
//
// [builder] runs the whole flow; the CLI and HTTP server sit on top of it.
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/standings/pkg/builder"
//	    "github.com/matzehuels/standings/pkg/cache"
//	    "github.com/matzehuels/standings/pkg/integrations/mlb"
//	    "github.com/matzehuels/standings/pkg/render"
//	    "github.com/matzehuels/standings/pkg/sink"
//	    "github.com/matzehuels/standings/pkg/standings"
//	)
//
//	store := cache.NewStore("standings-cache.json")
//	n := standings.NewNormalizer(mlb.NewClient(mlb.DefaultBaseURL, mlb.DefaultUserAgent, 0), store)
//	comp, _ := render.NewCompositor()
//	out, _ := sink.NewDir("./images")
//
//	result, err := builder.New(n, comp, out).CreateImages(ctx, 2026)
//
// # Supporting Packages
//
// [config] loads the TOML/environment configuration, [errors] defines the
// coded errors shared by every layer, [fonts] holds the embedded typeface
// and [observability] exposes optional fetch, cache and render hooks.
//
// [integrations/mlb]: https://pkg.go.dev/github.com/matzehuels/standings/pkg/integrations/mlb
// [standings]: https://pkg.go.dev/github.com/matzehuels/standings/pkg/standings
// [cache]: https://pkg.go.dev/github.com/matzehuels/standings/pkg/cache
// [render]: https://pkg.go.dev/github.com/matzehuels/standings/pkg/render
// [sink]: https://pkg.go.dev/github.com/matzehuels/standings/pkg/sink
// [builder]: https://pkg.go.dev/github.com/matzehuels/standings/pkg/builder
// [config]: https://pkg.go.dev/github.com/matzehuels/standings/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/standings/pkg/errors
// [fonts]: https://pkg.go.dev/github.com/matzehuels/standings/pkg/fonts
// [observability]: https://pkg.go.dev/github.com/matzehuels/standings/pkg/observability
package pkg
