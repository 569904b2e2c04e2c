package cli

import (
	"context"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/standings/pkg/builder"
	"github.com/matzehuels/standings/pkg/config"
	"github.com/matzehuels/standings/pkg/render"
	"github.com/matzehuels/standings/pkg/sink"
	"github.com/matzehuels/standings/pkg/standings"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	conf        string
	div         string
	outDir      string
	interactive bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single division image",
		Long: `Render produces the image for one division and saves it to the sink.

Select the division with --conf and --div, or pick it from a list with
--interactive.`,
		Example: `  standings render --conf AL --div E
  standings render -i --fixtures --out /tmp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			if opts.outDir != "" {
				cfg.Sink.Kind = sink.KindDir
				cfg.Sink.Dir = opts.outDir
			}

			var t builder.Target
			if opts.interactive {
				picked, ok, err := pickDivision()
				if err != nil {
					return err
				}
				if !ok {
					printInfo("Cancelled")
					return nil
				}
				t = picked
			} else if t, err = parseTarget(opts.conf, opts.div); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cfg, t)
		},
	}

	cmd.Flags().StringVar(&opts.conf, "conf", "", "conference: AL or NL")
	cmd.Flags().StringVar(&opts.div, "div", "", "division: E, C or W")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "write the image to this directory instead of the configured sink")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick the division from a list")

	cmd.RegisterFlagCompletionFunc("conf", fixedCompletion("AL", "NL"))
	cmd.RegisterFlagCompletionFunc("div", fixedCompletion("E", "C", "W"))

	return cmd
}

// parseTarget validates a conference and division given on the command line.
func parseTarget(conf, div string) (builder.Target, error) {
	c, err := standings.ParseConference(conf)
	if err != nil {
		return builder.Target{}, err
	}
	d, err := standings.ParseDivision(div)
	if err != nil {
		return builder.Target{}, err
	}
	return builder.Target{Conference: c, Division: d}, nil
}

func (c *CLI) runRender(ctx context.Context, cfg config.Config, t builder.Target) error {
	s, err := openSink(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	b, err := c.newBuilder(cfg, s)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	img, err := b.Image(ctx, cfg.SeasonAt(time.Now()), t.Conference, t.Division)
	if err != nil {
		return err
	}
	if err := s.Save(ctx, img.FileName(), img.Data); err != nil {
		return err
	}
	prog.done("Rendered " + render.Title(t.Conference, t.Division))

	printSuccess("Saved %s to %s", img.FileName(), sink.Describe(cfg.Sink))
	printDetail("%s · data refreshes %s", humanize.Bytes(uint64(len(img.Data))), humanize.Time(img.Expires))
	return nil
}

func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var out []string
		for _, v := range values {
			if strings.HasPrefix(v, strings.ToUpper(toComplete)) {
				out = append(out, v)
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}
