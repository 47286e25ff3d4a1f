package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rilchief/afrostats/internal/dataset"
	"github.com/rilchief/afrostats/internal/filter"
)

// filterFlags are the filter controls shared by the dashboard, report
// and email commands.
type filterFlags struct {
	search       string
	curators     []string
	minYear      int
	maxYear      int
	diasporaOnly bool
}

func addFilterFlags(cmd *cobra.Command) *filterFlags {
	f := &filterFlags{}
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "substring to match against playlist names")
	cmd.Flags().StringArrayVar(&f.curators, "curator", nil, "curator category to include (repeatable; default all)")
	cmd.Flags().IntVar(&f.minYear, "min-year", 0, "minimum release year (default: dataset minimum)")
	cmd.Flags().IntVar(&f.maxYear, "max-year", 0, "maximum release year (default: dataset maximum)")
	cmd.Flags().BoolVar(&f.diasporaOnly, "diaspora-only", false, "only count diaspora tracks")
	return f
}

// buildState turns the flag values into a filter state, starting from
// the dataset defaults so unset flags keep their default meaning.
func (f *filterFlags) buildState(d *dataset.Dataset) (*filter.State, error) {
	state := filter.NewState(d)
	state.SetSearch(f.search)
	if len(f.curators) > 0 {
		if err := state.SetCuratorTypes(f.curators); err != nil {
			return nil, err
		}
	}
	if f.minYear != 0 {
		state.SetMinYear(f.minYear)
	}
	if f.maxYear != 0 {
		state.SetMaxYear(f.maxYear)
	}
	state.SetDiasporaOnly(f.diasporaOnly)
	return state, nil
}
