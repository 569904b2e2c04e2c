// Package builder produces the full set of standings images.
//
// # Overview
//
// [Builder.CreateImages] fetches (or loads from cache) one standings snapshot,
// renders all six divisions and hands each image to a [sink.Sink] under its
// conventional file name:
//
//	standings-AL-E.jpg  standings-AL-C.jpg  standings-AL-W.jpg
//	standings-NL-E.jpg  standings-NL-C.jpg  standings-NL-W.jpg
//
// The snapshot is the only hard dependency: without it nothing is rendered
// and an error is returned. Once a snapshot exists, each division succeeds or
// fails on its own; a failed division is logged, recorded in the [Result] and
// skipped.
//
// Renders run in parallel. The compositor keeps no shared state, so the
// only thing the workers share is the read-only snapshot.
//
// [sink.Sink]: github.com/matzehuels/standings/pkg/sink.Sink
package builder

import (
	"context"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/standings/pkg/errors"
	"github.com/matzehuels/standings/pkg/render"
	"github.com/matzehuels/standings/pkg/sink"
	"github.com/matzehuels/standings/pkg/standings"
)

// Target is one (conference, division) pair.
type Target struct {
	Conference standings.Conference
	Division   standings.Division
}

// FileName returns the image file name for t.
func (t Target) FileName() string { return render.FileName(t.Conference, t.Division) }

// Targets lists every division in build order: AL then NL, each E, C, W.
func Targets() []Target {
	out := make([]Target, 0, len(standings.Conferences)*len(standings.Divisions))
	for _, c := range standings.Conferences {
		for _, d := range standings.Divisions {
			out = append(out, Target{c, d})
		}
	}
	return out
}

// Result summarizes one CreateImages run.
type Result struct {
	RunID   string
	Written []string         // file names saved, in build order
	Failed  map[string]error // file name -> reason
	Expires time.Time        // when the snapshot behind these images refreshes
	Stats   Stats
}

// OK reports whether every division was written.
func (r *Result) OK() bool { return len(r.Failed) == 0 }

// Stats holds timing for a run.
type Stats struct {
	SnapshotTime time.Duration
	RenderTime   time.Duration
	Bytes        int
}

// Option configures a [Builder].
type Option func(*Builder)

// WithLogger sets the logger. Each run adds its run id.
func WithLogger(l *log.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithParallelism bounds concurrent renders. Values below 1 select
// GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(b *Builder) { b.parallel = n }
}

// Builder wires the normalizer, compositor and sink together.
//
// A Builder is stateless between runs and safe for concurrent use.
type Builder struct {
	normalizer *standings.Normalizer
	compositor *render.Compositor
	sink       sink.Sink
	logger     *log.Logger
	parallel   int
}

// New creates a Builder. The sink may be nil when only [Builder.Image] and
// [Builder.Snapshot] are used.
func New(n *standings.Normalizer, c *render.Compositor, s sink.Sink, opts ...Option) *Builder {
	b := &Builder{
		normalizer: n,
		compositor: c,
		sink:       s,
		logger:     log.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.parallel < 1 {
		b.parallel = runtime.GOMAXPROCS(0)
	}
	return b
}

// Snapshot returns the standings for season, from cache when possible.
func (b *Builder) Snapshot(ctx context.Context, season int) (standings.Snapshot, error) {
	return b.normalizer.Snapshot(ctx, season)
}

// Image renders a single division. The returned image carries the snapshot's
// refresh time in Expires.
func (b *Builder) Image(ctx context.Context, season int, conf standings.Conference, div standings.Division) (*render.Image, error) {
	snap, err := b.normalizer.Snapshot(ctx, season)
	if err != nil {
		return nil, err
	}
	img, err := b.compositor.Render(ctx, snap, conf, div)
	if err != nil {
		return nil, err
	}
	// NextRefresh matches the cache entry's expiry because both come from
	// the fixed daily refresh hour.
	img.Expires = b.normalizer.NextRefresh()
	return img, nil
}

// CreateImages renders and saves all six divisions.
//
// It returns an error only when no snapshot could be obtained. Division
// failures (incomplete data, sink errors) are logged and listed in
// Result.Failed.
func (b *Builder) CreateImages(ctx context.Context, season int) (*Result, error) {
	if b.sink == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "builder: no sink configured")
	}
	result := &Result{
		RunID:  uuid.NewString(),
		Failed: make(map[string]error),
	}
	logger := b.logger.With("run", result.RunID)

	start := time.Now()
	snap, err := b.normalizer.Snapshot(ctx, season)
	if err != nil {
		logger.Error("builder: no data", "season", season, "err", err)
		return nil, err
	}
	result.Stats.SnapshotTime = time.Since(start)
	result.Expires = b.normalizer.NextRefresh() // same policy as the cache entry

	targets := Targets()
	sizes := make([]int, len(targets))
	errs := make([]error, len(targets))

	renderStart := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.parallel)
	for i, t := range targets {
		g.Go(func() error {
			sizes[i], errs[i] = b.build(gctx, logger, snap, t)
			return nil
		})
	}
	_ = g.Wait() // workers record their own errors
	result.Stats.RenderTime = time.Since(renderStart)

	for i, t := range targets {
		name := t.FileName()
		if errs[i] != nil {
			result.Failed[name] = errs[i]
			continue
		}
		result.Written = append(result.Written, name)
		result.Stats.Bytes += sizes[i]
	}

	logger.Info("builder: done",
		"written", len(result.Written),
		"failed", len(result.Failed),
		"snapshot", result.Stats.SnapshotTime,
		"render", result.Stats.RenderTime)
	return result, nil
}

func (b *Builder) build(ctx context.Context, logger *log.Logger, snap standings.Snapshot, t Target) (int, error) {
	img, err := b.compositor.Render(ctx, snap, t.Conference, t.Division)
	if err != nil {
		logger.Error("builder: no image", "conf", t.Conference, "div", t.Division, "err", err)
		return 0, err
	}
	name := img.FileName()
	logger.Info("builder: writing", "file", name, "bytes", len(img.Data))
	if err := b.sink.Save(ctx, name, img.Data); err != nil {
		logger.Error("builder: save failed", "file", name, "err", err)
		return 0, err
	}
	return len(img.Data), nil
}

