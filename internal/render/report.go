package render

import (
	"github.com/rilchief/afrostats/internal/analysis"
	"github.com/rilchief/afrostats/internal/dataset"
	"github.com/rilchief/afrostats/internal/filter"
)

// FilterSummary records the selection a report was computed under.
type FilterSummary struct {
	Search       string   `yaml:"search,omitempty"`
	CuratorTypes []string `yaml:"curator_types"`
	MinYear      int      `yaml:"min_year"`
	MaxYear      int      `yaml:"max_year"`
	DiasporaOnly bool     `yaml:"diaspora_only"`
}

// Report is the full machine-readable dashboard output.
type Report struct {
	Health   analysis.HealthReport    `yaml:"dataset_health"`
	Filters  FilterSummary            `yaml:"filters"`
	Summary  analysis.Summary         `yaml:"summary"`
	Regions  BarSeries                `yaml:"regions"`
	Features analysis.FeatureAverages `yaml:"feature_averages"`
	Curators BarSeries                `yaml:"curator_shares"`
	Rows     []analysis.PlaylistRow   `yaml:"playlists"`
}

// BuildReport assembles the report for one dataset and filter state.
func BuildReport(d *dataset.Dataset, state *filter.State, country string) Report {
	playlists := filter.FilterPlaylists(d, state)
	tracks := filter.FlattenTracks(playlists)
	view := BuildView(playlists, tracks, country)

	return Report{
		Health: analysis.Health(d),
		Filters: FilterSummary{
			Search:       state.Search(),
			CuratorTypes: state.AcceptedCuratorTypes(),
			MinYear:      state.MinYear(),
			MaxYear:      state.MaxYear(),
			DiasporaOnly: state.DiasporaOnly(),
		},
		Summary:  analysis.Summarize(playlists, tracks, country),
		Regions:  view.RegionChart,
		Features: analysis.AverageFeatures(tracks),
		Curators: view.CuratorChart,
		Rows:     view.Rows,
	}
}
