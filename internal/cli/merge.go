package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/countries/internal/merge"
)

func newMergeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "merge",
		Short: "Merge the region CSV files into one file with a continent column",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := a.merge()
			return err
		},
	}
}

// merge runs the merge stage and prints rows per input file
func (a *app) merge() (*merge.Result, error) {
	st := newStyles(colorEnabled(a.out, a.opts.noColor))
	out := a.pipeline.MergedPath()

	var merger merge.Merger = merge.NewService(a.log.WithName("merge"))
	res, err := merger.Merge(a.pipeline.DataDir, out)
	if err != nil {
		fmt.Fprintln(a.out, st.fail.Render("Merge failed: "+err.Error()))
		return nil, err
	}

	fmt.Fprintln(a.out, st.heading.Render(fmt.Sprintf("Merging %d files into %s", len(res.Files), res.OutputPath)))
	for _, f := range res.Files {
		note := ""
		if f.Skipped {
			note = st.muted.Render("  (no header, skipped)")
		}
		fmt.Fprintf(a.out, "  %-14s %4d rows%s\n", f.Name, f.Rows, note)
	}
	fmt.Fprintln(a.out, st.ok.Render(fmt.Sprintf("%d countries merged", res.TotalRows)))
	return res, nil
}
