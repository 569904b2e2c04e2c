package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/standings/pkg/builder"
	"github.com/matzehuels/standings/pkg/config"
	"github.com/matzehuels/standings/pkg/sink"
)

// buildCommand creates the build command.
func (c *CLI) buildCommand() *cobra.Command {
	var (
		outDir   string
		parallel int
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render all six division images and save them to the sink",
		Long: `Build fetches the standings (or reuses today's cached copy), renders one
image per division and saves each as standings-{CONF}-{DIV}.jpg.

A division with incomplete data is skipped with a warning; the command only
fails when no standings could be obtained at all.`,
		Example: `  standings build --out ./images
  standings build --fixtures -v
  STANDINGS_SINK_KIND=s3 STANDINGS_SINK_S3_BUCKET=displays standings build`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			if outDir != "" {
				cfg.Sink.Kind = sink.KindDir
				cfg.Sink.Dir = outDir
			}
			return c.runBuild(cmd.Context(), cfg, parallel)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "write images to this directory instead of the configured sink")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 0, "concurrent renders (default: number of CPUs)")

	return cmd
}

func (c *CLI) runBuild(ctx context.Context, cfg config.Config, parallel int) error {
	s, err := openSink(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	b, err := c.newBuilder(cfg, s, builder.WithParallelism(parallel))
	if err != nil {
		return err
	}

	season := cfg.SeasonAt(time.Now())
	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Building %d standings...", season))
	spinner.Start()
	result, err := b.CreateImages(ctx, season)
	spinner.Stop()
	if err != nil {
		printError("No standings for %d", season)
		return err
	}
	prog.done(fmt.Sprintf("Built %d images", len(result.Written)))

	printBuildResult(result, sink.Describe(cfg.Sink))
	return nil
}

func printBuildResult(r *builder.Result, dest string) {
	if len(r.Written) > 0 {
		printSuccess("Saved %d images to %s", len(r.Written), dest)
	}
	for _, name := range r.Written {
		printFile(name)
	}
	for _, t := range builder.Targets() {
		if err, ok := r.Failed[t.FileName()]; ok {
			printWarning("Skipped %s: %v", t.FileName(), err)
		}
	}
	printStats(len(r.Written), r.Stats.Bytes, r.Expires)
}
