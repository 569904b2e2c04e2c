package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/standings/pkg/builder"
	"github.com/matzehuels/standings/pkg/render"
	"github.com/matzehuels/standings/pkg/standings"
)

// showCommand creates the show command.
func (c *CLI) showCommand() *cobra.Command {
	var conf, div string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print division standings as a table",
		Long: `Show prints the standings that would be rendered, without drawing
images. Limit the output with --conf and --div.`,
		Example: `  standings show
  standings show --conf NL --div W --fixtures`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			targets, err := filterTargets(conf, div)
			if err != nil {
				return err
			}

			b, err := c.newBuilder(cfg, nil)
			if err != nil {
				return err
			}
			season := cfg.SeasonAt(time.Now())
			snap, err := b.Snapshot(cmd.Context(), season)
			if err != nil {
				return err
			}

			for _, t := range targets {
				teams, err := snap.Division(t.Conference, t.Division)
				if err != nil {
					printWarning("%s: %v", render.Title(t.Conference, t.Division), err)
					continue
				}
				fmt.Println(standingsTable(render.Title(t.Conference, t.Division), teams))
				printNewline()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&conf, "conf", "", "only this conference: AL or NL")
	cmd.Flags().StringVar(&div, "div", "", "only this division: E, C or W")

	return cmd
}

// filterTargets returns the divisions matching conf and div; an empty value
// matches everything.
func filterTargets(conf, div string) ([]builder.Target, error) {
	var (
		wantConf standings.Conference
		wantDiv  standings.Division
		err      error
	)
	if conf != "" {
		if wantConf, err = standings.ParseConference(conf); err != nil {
			return nil, err
		}
	}
	if div != "" {
		if wantDiv, err = standings.ParseDivision(div); err != nil {
			return nil, err
		}
	}

	var out []builder.Target
	for _, t := range builder.Targets() {
		if wantConf != "" && t.Conference != wantConf {
			continue
		}
		if wantDiv != "" && t.Division != wantDiv {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// standingsTable renders one division the way the image lays it out, plus
// the streak and clinch columns the image leaves off.
func standingsTable(title string, teams []standings.TeamRecord) string {
	rows := make([][]string, len(teams))
	for i, tr := range teams {
		whole, half := standings.FormatGamesBack(tr.GamesBack)
		rows[i] = []string{
			tr.Location,
			strconv.Itoa(tr.Wins),
			strconv.Itoa(tr.Losses),
			whole + half,
			tr.LastTen,
			tr.Streak,
			tr.ClinchIndicator,
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Team", "W", "L", "GB", "L10", "Strk", "Clinch").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle.Padding(0, 1)
			case row == 0:
				return cellStyle.Foreground(colorGreen)
			case col == 0:
				return cellStyle.Foreground(colorWhite)
			default:
				return cellStyle.Foreground(colorGray)
			}
		})

	return StyleTitle.Render(title) + "\n" + t.Render()
}
