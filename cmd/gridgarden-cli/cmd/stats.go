package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gridgarden/landing/cmd/gridgarden-cli/internal/output"
	"github.com/gridgarden/landing/internal/motion"
	"github.com/gridgarden/landing/web/src/templates/sections"
	"github.com/spf13/cobra"
)

func newStatsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Inspect the animated stat counters",
	}
	cmd.AddCommand(newStatsPreviewCmd(opts))
	return cmd
}

func newStatsPreviewCmd(opts *options) *cobra.Command {
	var (
		fps     int
		samples int
		locale  string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the values each stat counter displays while counting up",
		Long: `Run every stat counter against synthetic frames at the given frame rate and
print a sample of the displayed values, the way a visitor's page would see them.

Examples:
  gridgarden-cli stats preview
  gridgarden-cli stats preview --fps 60 --samples 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fps < 1 {
				return fmt.Errorf("--fps must be positive, got %d", fps)
			}
			if samples < 2 {
				return fmt.Errorf("--samples must be at least 2, got %d", samples)
			}
			site, err := opts.loadSite()
			if err != nil {
				return err
			}

			p := sections.NumberPrinter(locale)
			interval := motion.FPS(fps)
			// One frame past the duration so every counter lands on its target.
			frameCount := int(site.CounterDuration/interval) + 2

			tbl := output.Table{Headers: []string{"Stat", "Frames", "Values"}}
			for _, stat := range site.Stats.Items {
				counter := motion.NewCountUp(stat.Number, stat.Suffix, site.CounterDuration)
				counter.Start()

				var values []int
				for v := range counter.Sequence(motion.UniformFrames(time.Time{}, interval, frameCount)) {
					values = append(values, v)
				}

				shown := make([]string, 0, samples)
				for _, v := range sample(values, samples) {
					shown = append(shown, sections.FormatStat(p, v, stat.Suffix))
				}
				tbl.Rows = append(tbl.Rows, []string{
					stat.Label,
					strconv.Itoa(len(values)),
					strings.Join(shown, " → "),
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Counter duration %s at %d fps\n\n", site.CounterDuration, fps)
			return output.PrintTable(cmd.OutOrStdout(), tbl)
		},
	}

	cmd.Flags().IntVar(&fps, "fps", 30, "frames per second")
	cmd.Flags().IntVar(&samples, "samples", 6, "number of values to print per counter")
	cmd.Flags().StringVar(&locale, "locale", "en", "locale used to format the numbers")
	return cmd
}

// sample picks n evenly spaced values including the first and last.
func sample(values []int, n int) []int {
	if len(values) <= n {
		return values
	}
	out := make([]int, 0, n)
	for i := range n {
		out = append(out, values[i*(len(values)-1)/(n-1)])
	}
	return out
}
