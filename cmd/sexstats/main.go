// Sexstats reads a personal activity log or a wHealth CSV export and
// renders frequency, time-of-day and density charts in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/BaksiLi/sex-stats/internal/aggregate"
	"github.com/BaksiLi/sex-stats/internal/model"
	"github.com/BaksiLi/sex-stats/internal/reader"
	"github.com/BaksiLi/sex-stats/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

type options struct {
	File        string
	Chart       string
	Combined    bool
	Granularity string
	HeaderLines int
	ConfigPath  string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	var showVersion bool

	cmd := &cobra.Command{
		Use:   "sexstats",
		Short: "Visualize personal activity statistics in the terminal",
		Long: `Sexstats parses a personal activity log (or a wHealth CSV export) and
draws charts of the recorded activities:

  freq  activity frequency per calendar period, stacked by category
  day   activities scattered over the hours of a day, with the mean
  kde   kernel density estimate of activity counts over the day
  all   the three charts shown one after another

With --all the three charts are combined into a single dashboard view.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Printf("sexstats %s (commit %s, built %s)\n", version, commit, buildTime)
				return nil
			}
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "path to the activity log or wHealth CSV export")
	cmd.Flags().StringVar(&opts.Chart, "chart", "", "chart to show (freq|day|kde|all)")
	cmd.Flags().BoolVar(&opts.Combined, "all", false, "show all charts in one combined view")
	cmd.Flags().StringVarP(&opts.Granularity, "granularity", "g", "", "period granularity for the frequency chart (W|SM|M|Q|A|H)")
	cmd.Flags().IntVar(&opts.HeaderLines, "header-lines", -1, "header lines to skip in activity logs")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file (default is $HOME/.config/sexstats/config.yml)")
	cmd.Flags().BoolVar(&showVersion, "version", false, "print version information")

	_ = cmd.MarkFlagRequired("file")
	cmd.MarkFlagsMutuallyExclusive("chart", "all")
	cmd.MarkFlagsOneRequired("chart", "all")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Flags win over config file and environment.
	if !cmd.Flags().Changed("granularity") {
		opts.Granularity = cfg.Granularity
	}
	if !cmd.Flags().Changed("header-lines") {
		opts.HeaderLines = cfg.HeaderLines
	}

	granularity, err := aggregate.ParseGranularity(opts.Granularity)
	if err != nil {
		return err
	}

	if !opts.Combined {
		switch opts.Chart {
		case "freq", "day", "kde", "all":
		default:
			return fmt.Errorf("unknown chart %q (want freq, day, kde or all)", opts.Chart)
		}
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("charts require a terminal; stdout is not one")
	}

	records, err := reader.ReadFile(opts.File, opts.HeaderLines)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no usable records in %s", opts.File)
	}

	app, err := buildApp(records, opts.Chart, opts.Combined, granularity)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running charts: %w", err)
	}
	return nil
}

// buildApp assembles the page sequence for the requested chart mode.
func buildApp(records model.RecordSet, chart string, combined bool, g aggregate.Granularity) (*tui.App, error) {
	groups := aggregate.GroupByClock(records)
	buckets, err := aggregate.GroupByPeriod(records, g)
	if err != nil {
		return nil, err
	}

	freq := tui.NewFreqDeck(buckets, g)
	day := tui.NewDayDeck(groups)
	kde := tui.NewKDEDeck(groups)

	if combined {
		return tui.NewApp(tui.NewDashboardPage(day, freq, kde, groups.Categories, len(records))), nil
	}

	switch chart {
	case "freq":
		return tui.NewApp(tui.NewChartPage("freq", freq, "")), nil
	case "day":
		return tui.NewApp(tui.NewChartPage("day", day, "")), nil
	case "kde":
		return tui.NewApp(tui.NewChartPage("kde", kde, "")), nil
	default: // "all"
		return tui.NewApp(
			tui.NewChartPage("freq", freq, "day"),
			tui.NewChartPage("day", day, "kde"),
			tui.NewChartPage("kde", kde, ""),
		), nil
	}
}
