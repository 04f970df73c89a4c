package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/ytget/countries/internal/dataset"
)

func newStatsCommand(a *app) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print statistics of the merged file",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			f, err := formatter(lang)
			if err != nil {
				return err
			}
			store, err := a.loadStore()
			if err != nil {
				return err
			}
			return a.printStats(store, f)
		},
	}
	cmd.Flags().StringVar(&lang, flagLang, "es", "language used to group digits (es or en)")
	return cmd
}

func (a *app) printStats(store *dataset.Store, f dataset.Formatter) error {
	stats, notice := dataset.ComputeStats(store)
	if notice != nil {
		fmt.Fprintln(a.errOut, noticeMessage(notice))
		return nil
	}

	st := newStyles(colorEnabled(a.out, a.opts.noColor))
	fmt.Fprintln(a.out, st.heading.Render(fmt.Sprintf("Statistics of %d countries", stats.Count)))
	pairs := [][2]string{
		{"Largest population", fmt.Sprintf("%s (%s)", stats.MaxPopulation.NameCommon, f.Population(stats.MaxPopulation.Population))},
		{"Smallest population", fmt.Sprintf("%s (%s)", stats.MinPopulation.NameCommon, f.Population(stats.MinPopulation.Population))},
		{"Mean population", f.Int(math.Round(stats.MeanPopulation))},
		{"Mean area", f.Area(stats.MeanArea)},
	}
	if err := keyValues(a.out, st, pairs); err != nil {
		return err
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, st.heading.Render("Countries per continent"))
	t := &table{header: []string{"Continent", "Count"}, numeric: []bool{false, true}}
	for _, c := range stats.ByContinent {
		t.rows = append(t.rows, []string{c.Continent, f.Int(float64(c.Count))})
	}
	return t.render(a.out, st, terminalWidth(a.out))
}
