package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ytget/countries/internal/dataset"
	"github.com/ytget/countries/internal/model"
)

const (
	flagSearch        = "search"
	flagWhere         = "where"
	flagContinent     = "continent"
	flagMinPopulation = "min-population"
	flagMaxPopulation = "max-population"
	flagMinArea       = "min-area"
	flagMaxArea       = "max-area"
	flagSort          = "sort"
	flagDesc          = "desc"
)

type listOptions struct {
	search     string
	where      string
	filter     dataset.FilterInput
	sortColumn string
	descending bool
}

func newListCommand(a *app) *cobra.Command {
	var o listOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the countries of the merged file as a table",
		Long: "list prints the merged file. --search keeps the countries whose name\n" +
			"starts with the given text. The filter flags keep the countries within\n" +
			"inclusive bounds; --where takes a CEL expression over name, official_name,\n" +
			"capital, region, continent, population and area.",
		Example: "  countries list --search ar\n" +
			"  countries list --continent Europe --min-population 10.000.000 --sort area --desc\n" +
			"  countries list --where 'area < 1000.0 && population > 100000'",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.loadStore()
			if err != nil {
				return err
			}
			filtering := anyChanged(cmd.Flags(), flagContinent, flagMinPopulation, flagMaxPopulation, flagMinArea, flagMaxArea)
			view, notice, err := o.view(store, filtering)
			if err != nil {
				return err
			}
			if notice != nil {
				fmt.Fprintln(a.errOut, noticeMessage(notice))
				return nil
			}
			return a.printRows(view.Rows)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.search, flagSearch, "", "keep countries whose name starts with this text")
	f.StringVar(&o.where, flagWhere, "", "CEL expression every listed country must satisfy")
	f.StringVar(&o.filter.Continent, flagContinent, dataset.AllContinents, "keep one continent")
	f.StringVar(&o.filter.MinPopulation, flagMinPopulation, "", "minimum population, dots allowed as separators")
	f.StringVar(&o.filter.MaxPopulation, flagMaxPopulation, "", "maximum population")
	f.StringVar(&o.filter.MinArea, flagMinArea, "", "minimum area in km²")
	f.StringVar(&o.filter.MaxArea, flagMaxArea, "", "maximum area in km²")
	f.StringVar(&o.sortColumn, flagSort, "", "column to sort by: name_common, population, area, continent")
	f.BoolVar(&o.descending, flagDesc, false, "sort in descending order")
	cmd.MarkFlagsMutuallyExclusive(flagSearch, flagWhere)
	return cmd
}

// view sorts the store when asked, then applies --where, the filter flags or
// --search, in that order of precedence
func (o listOptions) view(store *dataset.Store, filtering bool) (dataset.View, *dataset.Notice, error) {
	view := dataset.ShowAll(store)
	if o.sortColumn != "" {
		var err error
		if view, _, err = dataset.Sort(store, view, o.sortColumn, o.descending); err != nil {
			return view, nil, err
		}
	}

	switch {
	case o.where != "":
		return dataset.FilterExpr(store, view, o.where)
	case filtering:
		return dataset.Filter(store, view, o.filter)
	default:
		if store.Len() == 0 {
			return view, &dataset.Notice{Code: dataset.NoticeNoData}, nil
		}
		v, notice := dataset.Search(store, o.search)
		return v, notice, nil
	}
}

func (a *app) printRows(rows []model.Country) error {
	st := newStyles(colorEnabled(a.out, a.opts.noColor))
	t := &table{
		header:  model.DisplayColumns,
		numeric: []bool{false, true, true, false},
	}
	for _, rec := range rows {
		t.rows = append(t.rows, dataset.DisplayRow(rec))
	}
	if err := t.render(a.out, st, terminalWidth(a.out)); err != nil {
		return err
	}
	fmt.Fprintln(a.out, st.muted.Render(fmt.Sprintf("%d countries", len(rows))))
	return nil
}

func anyChanged(flags *pflag.FlagSet, names ...string) bool {
	for _, name := range names {
		if flags.Changed(name) {
			return true
		}
	}
	return false
}
